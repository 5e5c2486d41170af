package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/vivancedata/site/internal/httpserver/deps"
	"github.com/vivancedata/site/internal/httpserver/handlers"
	"github.com/vivancedata/site/internal/httpserver/mw"
)

func init() { Register("cache", registerFlush) }

func registerFlush(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger), mw.EnforceHost(d.AllowedHosts, d.Logger)).Post("/cache/flush", handlers.FlushCache(d))
}
