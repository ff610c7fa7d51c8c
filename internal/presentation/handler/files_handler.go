package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"songart/internal/application/usecase/abstraction"
	"songart/internal/domain/dto"
	"songart/pkg/logger"
)

const defaultRecentLimit = 50

type FilesHandler struct {
	lister  abstraction.Lister
	catalog abstraction.CatalogLister
}

func NewFilesHandler(lister abstraction.Lister, catalog abstraction.CatalogLister) *FilesHandler {
	return &FilesHandler{
		lister:  lister,
		catalog: catalog,
	}
}

// HandleList handles GET /api/files requests against the live bucket.
func (h *FilesHandler) HandleList(c echo.Context) error {
	prefix := c.QueryParam("prefix")

	listing, err := h.lister.ListFiles(c.Request().Context(), prefix)
	if err != nil {
		logger.Error("file listing failed", "prefix", prefix, "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Failed to list files."})
	}

	return c.JSON(http.StatusOK, listing)
}

// HandleRecent handles GET /api/media/recent requests against the catalog.
func (h *FilesHandler) HandleRecent(c echo.Context) error {
	limit := int64(defaultRecentLimit)
	if s := c.QueryParam("limit"); s != "" {
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, dto.Error{Message: "invalid 'limit' parameter"})
		}
		limit = parsed
	}

	media, err := h.catalog.Recent(c.Request().Context(), limit)
	if err != nil {
		logger.Error("catalog read failed", "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Failed to read recent media."})
	}

	return c.JSON(http.StatusOK, media)
}
