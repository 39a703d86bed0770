package web

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"folio/config"
	"folio/infras/otel"
	"folio/shared/constant"
	"folio/shared/failure"
	"folio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const indexFile = "index.html"

// Handler serves the single page app. Paths without a matching file get the
// app shell so client-side routes like /portfolio resolve.
type Handler struct {
	root string
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		root: cfg.App.StaticDir,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/*", handler.ServeApp)
}

func (handler *Handler) ServeApp(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ServeApp")
	defer scope.End()

	if handler.root == constant.Empty {
		response.WithError(w, failure.NotFound("page not found"))

		return
	}

	name := filepath.Join(handler.root, filepath.FromSlash(path.Clean("/"+r.URL.Path)))

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)

		return
	}

	index := filepath.Join(handler.root, indexFile)
	if _, err := os.Stat(index); err != nil {
		log.Error().Err(err).Str("root", handler.root).Msg("app shell is missing")

		response.WithError(w, failure.NotFound("page not found"))

		return
	}

	http.ServeFile(w, r, index)
}
