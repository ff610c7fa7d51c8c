package handler

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"songart/internal/application/usecase/abstraction"
	"songart/internal/domain/dto"
	"songart/internal/render"
	"songart/pkg/logger"
)

type CompositeHandler struct {
	compositor abstraction.Compositor
}

func NewCompositeHandler(compositor abstraction.Compositor) *CompositeHandler {
	return &CompositeHandler{compositor: compositor}
}

// HandleComposite handles POST /api/composite requests: a multipart form
// with the artwork under "image" and layout settings as form fields. The
// response is the rendered PNG.
func (h *CompositeHandler) HandleComposite(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "'image' file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "cannot read uploaded image"})
	}
	defer src.Close()

	background, _, err := image.Decode(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "uploaded file is not a decodable image"})
	}

	layout, ok := render.LayoutByValue(c.FormValue("layout"))
	if !ok {
		return c.JSON(http.StatusBadRequest, dto.Error{Message: "unknown 'layout'"})
	}

	bgColor := c.FormValue("bgColor")
	if bgColor != "" && bgColor != "auto" {
		if _, err := render.ParseHexColor(bgColor); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error{Message: "invalid 'bgColor'"})
		}
	}

	params := render.Params{
		Background: background,
		Layout:     layout,
		TargetURL:  c.FormValue("url"),
		Title:      c.FormValue("title"),
		Lyrics:     c.FormValue("lyrics"),
		QRTheme:    render.ThemeByName(c.FormValue("qrTheme")),
		QRSize:     formInt(c, "qrSize"),
		QROpacity:  formFloat(c, "qrOpacity"),
		FontSize:   formInt(c, "fontSize"),
		AutoFit:    c.FormValue("autoFit") != "false",
		PanelRatio: formInt(c, "panelRatio"),
		BgColor:    bgColor,
		Columns:    formInt(c, "columns"),
	}

	result, err := h.compositor.Composite(params)
	if err != nil {
		if errors.Is(err, render.ErrNoBackground) {
			return c.JSON(http.StatusBadRequest, dto.Error{Message: err.Error()})
		}

		logger.Error("composition failed", "layout", layout.Value, "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Message: "Composition failed."})
	}

	return c.Blob(http.StatusOK, "image/png", result)
}

func formInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.FormValue(name))
	if err != nil {
		return 0
	}

	return v
}

func formFloat(c echo.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.FormValue(name), 64)
	if err != nil {
		return 0
	}

	return v
}
