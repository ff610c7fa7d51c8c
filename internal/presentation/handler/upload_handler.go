package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"songart/internal/application/usecase/abstraction"
	"songart/internal/domain/dto"
	"songart/internal/presentation"
	"songart/pkg/logger"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// HandleUpload handles POST /api/upload requests carrying the file as the
// raw request body, named by the X-Filename header.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	filename := c.Request().Header.Get(presentation.FilenameKey)
	if filename == "" {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "X-Filename header is required"})
	}

	contentType := c.Request().Header.Get(presentation.TypeKey)
	body := c.Request().Body
	size := c.Request().ContentLength

	media, err := h.uploader.Upload(c.Request().Context(), body, size, contentType, filename)
	if err != nil {
		trace, _ := c.Get(presentation.KeyTraceID).(string)
		logger.Error("upload failed", "filename", filename, "trace", trace, "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Failed to upload file. Please try again later."})
	}

	return c.JSON(http.StatusOK, dto.UploadResult{
		Success:  true,
		URL:      media.PublicURL,
		FileName: media.Key,
		Size:     media.Size,
	})
}

// HandleUploadTarget handles GET /api/upload requests, issuing a signed
// URL so the browser can upload straight to object storage.
func (h *UploadHandler) HandleUploadTarget(c echo.Context) error {
	filename := c.QueryParam("filename")
	if filename == "" {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "'filename' parameter is required"})
	}
	contentType := c.QueryParam("contentType")

	target, err := h.uploader.UploadTarget(c.Request().Context(), filename, contentType)
	if err != nil {
		logger.Error("presign failed", "filename", filename, "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Failed to create upload URL."})
	}

	return c.JSON(http.StatusOK, target)
}
