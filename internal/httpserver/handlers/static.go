package handlers

import (
	"fmt"
	"net/http"

	"github.com/vivancedata/site/internal/httpserver/deps"
	"github.com/vivancedata/site/web"
)

// Static serves the embedded stylesheet and images under /static/.
func Static(d deps.Deps) http.HandlerFunc {
	files := http.StripPrefix("/static/", http.FileServer(http.FS(web.Static())))
	cacheControl := fmt.Sprintf("public, max-age=%d", int(d.CacheMaxAge.Seconds()))

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		files.ServeHTTP(w, r)
	}
}
