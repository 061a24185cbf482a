package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/http/middleware"
	"docshare/internal/model"
	"docshare/internal/service"
)

func parseID(c *fiber.Ctx, param string) (int64, error) {
	return strconv.ParseInt(c.Params(param), 10, 64)
}

// ListDocuments handles GET /api/documents. The listing is public; an
// attached identity is tolerated but unused.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "20"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), c.Query("search"), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDocument handles GET /api/documents/:id.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// CreateDocument handles POST /api/documents. Requires a teacher identity.
func CreateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "TOKEN_REQUIRED", "access token required")
		}

		var in service.CreateDocumentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}

		doc, err := svc.Create(c.UserContext(), identity, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": doc.ID})
	}
}

// UpdateDocument handles PUT /api/documents/:id. Requires the owner. Fields
// outside the DocumentUpdate allow-list are dropped during body parsing.
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "TOKEN_REQUIRED", "access token required")
		}

		id, err := parseID(c, "id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var upd model.DocumentUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}

		if err := svc.Update(c.UserContext(), identity, id, upd); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "document updated"})
	}
}

// DeleteDocument handles DELETE /api/documents/:id. Requires the owner.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "TOKEN_REQUIRED", "access token required")
		}

		id, err := parseID(c, "id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), identity, id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "document deleted"})
	}
}

// RecordDownload handles POST /api/documents/:id/download. Always succeeds
// for an authenticated caller; there is no per-user limit and no check that
// the document exists.
func RecordDownload(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "TOKEN_REQUIRED", "access token required")
		}

		id, err := parseID(c, "id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if _, err := svc.RecordDownload(c.UserContext(), identity, id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "download recorded"})
	}
}
