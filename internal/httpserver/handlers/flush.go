package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vivancedata/site/internal/httpserver/deps"
	"github.com/vivancedata/site/internal/logger"
)

type flushResponse struct {
	Flushed int    `json:"flushed"`
	Error   string `json:"error,omitempty"`
}

// FlushCache drops every cached page body so the next request re-renders.
func FlushCache(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		if d.PageCache == nil {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(flushResponse{Error: "page cache disabled"})
			return
		}

		n, err := d.PageCache.Flush(r.Context())
		if err != nil {
			d.Logger.Error("page cache flush failed",
				logger.String("remote_ip", r.RemoteAddr),
				logger.Error(err))
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(flushResponse{Flushed: n, Error: "flush failed"})
			return
		}

		d.Logger.Info("page cache flushed via endpoint",
			logger.Int("keys", n),
			logger.String("remote_ip", r.RemoteAddr))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(flushResponse{Flushed: n})
	}
}
