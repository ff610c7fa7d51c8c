package web

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"songart/internal/application/usecase"
	"songart/internal/application/usecase/abstraction"
	"songart/internal/presentation"
	"songart/pkg/logger"
)

//go:embed templates static
var content embed.FS

// Pages serves the playback pages. Templates and static assets are
// embedded so the binary is self-contained.
type Pages struct {
	linker    abstraction.Linker
	mediaBase string
	templates *template.Template
}

func NewPages(linker abstraction.Linker, mediaBase string) (*Pages, error) {
	templates, err := template.ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Pages{
		linker:    linker,
		mediaBase: mediaBase,
		templates: templates,
	}, nil
}

func (p *Pages) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return p.templates.ExecuteTemplate(w, name, data)
}

// Register mounts the playback routes and static assets on e.
func (p *Pages) Register(e *echo.Echo) {
	e.Renderer = p
	e.StaticFS("/static", echo.MustSubFS(content, "static"))
	e.GET("/play", p.HandlePlay)
	e.GET("/player/:"+presentation.IDParam, p.HandlePlayer)
	e.GET("/playlist/:"+presentation.IDParam, p.HandlePlaylist)
}

// ResolveRef turns a stored media reference into a playable URL. Absolute
// URLs pass through; bare object keys are joined onto base.
func ResolveRef(base, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}

type playerPage struct {
	Audio string
	Image string
	Title string
}

type playlistPage struct {
	Name   string
	Tracks []playerPage
}

// HandlePlay renders a player straight from query parameters, for links
// minted before short IDs existed.
func (p *Pages) HandlePlay(c echo.Context) error {
	page := playerPage{
		Audio: ResolveRef(p.mediaBase, c.QueryParam("a")),
		Image: ResolveRef(p.mediaBase, c.QueryParam("i")),
		Title: c.QueryParam("t"),
	}
	if page.Audio == "" {
		return c.String(http.StatusBadRequest, "missing 'a' parameter")
	}

	return c.Render(http.StatusOK, "play.html", page)
}

// HandlePlayer renders the player stored under a short ID.
func (p *Pages) HandlePlayer(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	config, err := p.linker.GetPlayer(c.Request().Context(), id)
	if errors.Is(err, usecase.ErrNotFound) {
		return c.String(http.StatusNotFound, "player not found")
	}
	if err != nil {
		logger.Error("player page failed", "id", id, "error", err)

		return c.String(http.StatusInternalServerError, "something went wrong")
	}

	page := playerPage{Audio: ResolveRef(p.mediaBase, config.Audio)}
	if config.Image != nil {
		page.Image = ResolveRef(p.mediaBase, *config.Image)
	}
	if config.Title != nil {
		page.Title = *config.Title
	}

	return c.Render(http.StatusOK, "play.html", page)
}

// HandlePlaylist renders the playlist stored under a short ID.
func (p *Pages) HandlePlaylist(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	config, err := p.linker.GetPlaylist(c.Request().Context(), id)
	if errors.Is(err, usecase.ErrNotFound) {
		return c.String(http.StatusNotFound, "playlist not found")
	}
	if err != nil {
		logger.Error("playlist page failed", "id", id, "error", err)

		return c.String(http.StatusInternalServerError, "something went wrong")
	}

	page := playlistPage{Name: config.Name}
	for _, track := range config.Tracks {
		page.Tracks = append(page.Tracks, playerPage{
			Audio: ResolveRef(p.mediaBase, track.URL),
			Title: track.Title,
		})
	}

	return c.Render(http.StatusOK, "playlist.html", page)
}
