package handler

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/service"
)

// UploadFile handles POST /api/upload. Expects a multipart form with a
// single "file" field. Requires authentication.
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		defer f.Close()

		contentType := fh.Header.Get(fiber.HeaderContentType)
		if contentType == "" {
			contentType = fiber.MIMEOctetStream
		}

		uploaded, err := svc.Upload(c.UserContext(), f, fh.Filename, contentType, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"file":    uploaded,
		})
	}
}

// DownloadFile handles GET /api/uploads/:filename, streaming the stored
// object as an attachment under its original name.
func DownloadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Download(c.UserContext(), c.Params("filename"))
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderContentType, info.MimeType)
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(info.OriginalName)))

		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}
