package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"songart/internal/application/usecase/abstraction"
	"songart/internal/domain/dto"
	"songart/pkg/logger"
)

type GenerateHandler struct {
	generator abstraction.Generator
}

func NewGenerateHandler(generator abstraction.Generator) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

type generateArtRequest struct {
	Prompt      string `json:"prompt"`
	Model       string `json:"model"`
	AspectRatio string `json:"aspectRatio"`
}

type generateQRRequest struct {
	URL            string  `json:"url"`
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negativePrompt"`
	QRStrength     float64 `json:"qrStrength"`
	Seed           int64   `json:"seed"`
}

// HandleGenerateArt handles POST /api/generate-art requests.
func (h *GenerateHandler) HandleGenerateArt(c echo.Context) error {
	var req generateArtRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "invalid request body"})
	}
	if req.Prompt == "" {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "'prompt' is required"})
	}

	image, err := h.generator.GenerateArt(c.Request().Context(), req.Prompt, req.Model, req.AspectRatio)
	if err != nil {
		logger.Error("art generation failed", "model", req.Model, "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Image generation failed. Please try again."})
	}

	return c.JSON(http.StatusOK, dto.GeneratedImage{Image: image})
}

// HandleGenerateQR handles POST /api/generate requests for QR-conditioned art.
func (h *GenerateHandler) HandleGenerateQR(c echo.Context) error {
	var req generateQRRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "invalid request body"})
	}
	if req.URL == "" {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "'url' is required"})
	}
	if req.Prompt == "" {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "'prompt' is required"})
	}

	image, err := h.generator.GenerateQRArt(c.Request().Context(), req.URL, req.Prompt, req.NegativePrompt, req.QRStrength, req.Seed)
	if err != nil {
		logger.Error("qr art generation failed", "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Image generation failed. Please try again."})
	}

	return c.JSON(http.StatusOK, dto.GeneratedImage{Image: image})
}
