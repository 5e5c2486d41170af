package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/vivancedata/site/internal/httpserver/deps"
)

type componentStatus struct {
	OK     bool           `json:"ok"`
	Mode   string         `json:"mode,omitempty"`
	Source string         `json:"source,omitempty"`
	Counts map[string]int `json:"counts,omitempty"`
	Impact string         `json:"impact,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

// Infra reports loaded content sizes and the page cache state.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		components := map[string]componentStatus{
			"content":    contentStatus(d),
			"page_cache": checkPageCache(r, d),
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			ServingMode: determineServingMode(components),
			Components:  components,
		})
	}
}

func contentStatus(d deps.Deps) componentStatus {
	if d.Tables == nil {
		return componentStatus{OK: false, Error: "not loaded"}
	}
	t := d.Tables
	return componentStatus{
		OK:     true,
		Source: d.ContentSource,
		Counts: map[string]int{
			"team_members": len(t.TeamMembers),
			"footer_links": len(t.FooterLinks),
			"social_links": len(t.SocialLinks),
			"questions":    len(t.Questions),
		},
	}
}

func checkPageCache(r *http.Request, d deps.Deps) componentStatus {
	if d.PageCache == nil {
		return componentStatus{
			OK:     true,
			Mode:   "disabled",
			Impact: "pages-rendered-per-request",
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := d.PageCache.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "pages-rendered-per-request",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "redis",
		Impact: "pages-served-from-cache",
	}
}

func determineServingMode(components map[string]componentStatus) string {
	if c, ok := components["content"]; ok && !c.OK {
		return "critical"
	}
	if c, ok := components["page_cache"]; ok {
		switch {
		case !c.OK:
			return "degraded"
		case c.Mode == "disabled":
			return "direct"
		}
	}
	return "cached"
}
