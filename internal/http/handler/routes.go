package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/auth"
	"docshare/internal/http/middleware"
	"docshare/internal/service"
)

// RegisterRoutes wires all API routes onto the app.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	codec *auth.TokenCodec,
	authSvc service.AuthService,
	docSvc service.DocumentService,
	statsSvc service.StatsService,
	fileSvc service.FileService,
) {
	requireAuth := middleware.RequireAuth(codec)
	optionalAuth := middleware.OptionalAuth(codec)

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", Register(authSvc))
	authGroup.Post("/login", Login(authSvc))
	authGroup.Post("/logout", Logout())
	authGroup.Get("/me", requireAuth, Me(authSvc))

	docs := api.Group("/documents")
	docs.Get("/", optionalAuth, ListDocuments(docSvc))
	docs.Get("/:id", optionalAuth, GetDocument(docSvc))
	docs.Post("/", requireAuth, CreateDocument(docSvc))
	docs.Put("/:id", requireAuth, UpdateDocument(docSvc))
	docs.Delete("/:id", requireAuth, DeleteDocument(docSvc))
	docs.Post("/:id/download", requireAuth, RecordDownload(docSvc))

	stats := api.Group("/stats")
	stats.Get("/system", SystemStats(statsSvc))
	stats.Get("/teacher/:userId", requireAuth, TeacherStats(statsSvc))
	stats.Get("/student/:userId", requireAuth, StudentStats(statsSvc))

	api.Post("/upload", requireAuth, UploadFile(fileSvc))
	api.Get("/uploads/:filename", DownloadFile(fileSvc))
}
