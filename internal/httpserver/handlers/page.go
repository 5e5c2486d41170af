package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vivancedata/site/internal/httpserver/deps"
	"github.com/vivancedata/site/internal/logger"
	"github.com/vivancedata/site/internal/site"
)

// Page serves a rendered page with an ETag and answers matching
// If-None-Match requests with 304.
func Page(d deps.Deps, name string) http.HandlerFunc {
	cacheControl := fmt.Sprintf("public, max-age=%d", int(d.CacheMaxAge.Seconds()))

	return func(w http.ResponseWriter, r *http.Request) {
		page, err := d.Renderer.Render(r.Context(), name)
		if err != nil {
			if errors.Is(err, site.ErrUnknownPage) {
				http.NotFound(w, r)
				return
			}
			d.Logger.Error("page render failed",
				logger.String("page", name),
				logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h := w.Header()
		h.Set("ETag", page.ETag)
		h.Set("Cache-Control", cacheControl)
		h.Set("Vary", "Accept-Encoding")

		if etagMatches(r.Header.Get("If-None-Match"), page.ETag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		h.Set("Content-Type", "text/html; charset=utf-8")
		if page.Cached {
			h.Set("X-Page-Cache", "hit")
		} else {
			h.Set("X-Page-Cache", "miss")
		}
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		if _, err := w.Write(page.Body); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}

// NotFound renders a plain 404 for paths without a route.
func NotFound(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Logger.Debug("no route", logger.String("path", r.URL.Path))
		http.NotFound(w, r)
	}
}

// etagMatches reports whether an If-None-Match header value matches etag.
// Weak validators compare equal to their strong form.
func etagMatches(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == etag {
			return true
		}
	}
	return false
}
