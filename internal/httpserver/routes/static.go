package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/vivancedata/site/internal/httpserver/deps"
	"github.com/vivancedata/site/internal/httpserver/handlers"
	"github.com/vivancedata/site/internal/httpserver/mw"
)

func init() { Register("static", registerStatic) }

func registerStatic(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/static/*", handlers.Static(d))
}
