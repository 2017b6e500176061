package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"tradejournal/internal/domain"
)

// UploadHandler handles chart image uploads
type UploadHandler struct {
	uploader domain.Uploader
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploader domain.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload stores the posted file and returns its serving URL
// POST /api/upload
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return BadRequestResponse(c, "No file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return InternalServerErrorResponse(c, "File upload failed", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	url, err := h.uploader.Save(ctx, fileHeader.Filename, src)
	if err != nil {
		return InternalServerErrorResponse(c, "File upload failed", err)
	}

	return SuccessResponse(c, map[string]string{"url": url})
}
