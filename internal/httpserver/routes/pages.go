package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/vivancedata/site/internal/httpserver/deps"
	"github.com/vivancedata/site/internal/httpserver/handlers"
	"github.com/vivancedata/site/internal/httpserver/mw"
	"github.com/vivancedata/site/internal/site"
)

func init() { Register("pages", registerPages) }

// PagePaths maps URL paths to page names.
var PagePaths = map[string]string{
	"/":     site.PageHome,
	"/team": site.PageTeam,
	"/faq":  site.PageFAQ,
}

func registerPages(r chi.Router, d deps.Deps) {
	pages := r.With(
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateLimit.Burst,
			RefillPerIPPerMin: d.RateLimit.RefillPerMin,
			MaxEntries:        d.RateLimit.MaxEntries,
			IdleTTL:           d.RateLimit.IdleTTL,
			SweepInterval:     d.RateLimit.SweepInterval,
			TrustProxy:        d.TrustProxy,
		}),
	)
	for path, name := range PagePaths {
		pages.Get(path, handlers.Page(d, name))
	}
}
