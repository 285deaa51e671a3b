package website

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// staticMaxAge is the Cache-Control max-age for embedded assets
const staticMaxAge = "public, max-age=3600"

// NewRouter builds the chi router serving pages and embedded assets
func NewRouter() (http.Handler, error) {
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.GetHead)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5, "text/css", "text/javascript", "application/javascript", "image/svg+xml"))
		r.Use(middleware.SetHeader("Cache-Control", staticMaxAge))
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
	})

	r.Get("/", LandingPage)
	r.Get("/chat", ChatPage)

	return r, nil
}

// RegisterRoutes mounts the website router on the paths Echo leaves to it.
// HEAD is forwarded too and answered by chi's GET routes.
func RegisterRoutes(e *echo.Echo, site http.Handler) {
	h := echo.WrapHandler(site)
	for _, path := range []string{"/", "/chat", "/static/*"} {
		e.GET(path, h)
		e.HEAD(path, h)
	}
}
