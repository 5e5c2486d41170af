package deps

import (
	"context"
	"time"

	"github.com/vivancedata/site/internal/content"
	"github.com/vivancedata/site/internal/logger"
	"github.com/vivancedata/site/internal/site"
)

// PageRenderer produces named pages. Satisfied by *site.Renderer.
type PageRenderer interface {
	Render(ctx context.Context, name string) (*site.Page, error)
}

// PageCache is the ops view of the page cache. Satisfied by the redis page store.
type PageCache interface {
	Flush(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time // for testing, defaults to time.Now
	AllowedHosts   []string         // Host headers allowed to access the server
	AllowedCIDRS   []string         // IPs allowed to access ops endpoints
	TrustProxy     bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RequestTimeout time.Duration    // per-request deadline, 0 = 2s
	Tables         *content.Tables  // loaded content, for infra counts
	ContentSource  string           // where Tables came from
	Renderer       PageRenderer     // page builder
	CacheMaxAge    time.Duration    // Cache-Control max-age on pages
	RateLimit      RateLimit        // per-IP limits on page routes
	PageCache      PageCache        // nil when the page cache is disabled
}

// RateLimit mirrors the page route limiter settings.
type RateLimit struct {
	Burst         int
	RefillPerMin  int
	MaxEntries    int
	IdleTTL       time.Duration
	SweepInterval time.Duration
}
