package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"songart/internal/application/usecase"
	"songart/internal/application/usecase/abstraction"
	"songart/internal/domain/dto"
	"songart/internal/domain/model"
	"songart/internal/presentation"
	"songart/pkg/logger"
)

type LinkHandler struct {
	linker abstraction.Linker
}

func NewLinkHandler(linker abstraction.Linker) *LinkHandler {
	return &LinkHandler{linker: linker}
}

// HandleCreatePlayer handles POST /p requests.
func (h *LinkHandler) HandleCreatePlayer(c echo.Context) error {
	var config model.PlayerConfig
	if err := c.Bind(&config); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "invalid request body"})
	}
	if config.Audio == "" {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "'audio' is required"})
	}

	id, err := h.linker.CreatePlayer(c.Request().Context(), config)
	if err != nil {
		logger.Error("player creation failed", "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Failed to create player."})
	}

	return c.JSON(http.StatusOK, dto.CreatedRef{ID: id})
}

// HandleGetPlayer handles GET /p/:id requests.
func (h *LinkHandler) HandleGetPlayer(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	config, err := h.linker.GetPlayer(c.Request().Context(), id)
	if errors.Is(err, usecase.ErrNotFound) {
		return c.JSON(http.StatusNotFound, dto.Error{Message: "not found"})
	}
	if err != nil {
		logger.Error("player lookup failed", "id", id, "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Failed to load player."})
	}

	return c.JSON(http.StatusOK, config)
}

// HandleCreatePlaylist handles POST /pl requests.
func (h *LinkHandler) HandleCreatePlaylist(c echo.Context) error {
	var config model.PlaylistConfig
	if err := c.Bind(&config); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "invalid request body"})
	}
	if config.Name == "" {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "'name' is required"})
	}
	if len(config.Tracks) == 0 {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "'tracks' must not be empty"})
	}

	id, err := h.linker.CreatePlaylist(c.Request().Context(), config)
	if err != nil {
		logger.Error("playlist creation failed", "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Failed to create playlist."})
	}

	return c.JSON(http.StatusOK, dto.CreatedRef{ID: id})
}

// HandleGetPlaylist handles GET /pl/:id requests.
func (h *LinkHandler) HandleGetPlaylist(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	config, err := h.linker.GetPlaylist(c.Request().Context(), id)
	if errors.Is(err, usecase.ErrNotFound) {
		return c.JSON(http.StatusNotFound, dto.Error{Message: "not found"})
	}
	if err != nil {
		logger.Error("playlist lookup failed", "id", id, "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Failed to load playlist."})
	}

	return c.JSON(http.StatusOK, config)
}
