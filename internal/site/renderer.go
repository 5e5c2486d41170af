package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	g "maragu.dev/gomponents"

	"github.com/vivancedata/site/internal/content"
	"github.com/vivancedata/site/internal/logger"
	redisstore "github.com/vivancedata/site/internal/store/redis"
	"github.com/vivancedata/site/internal/view"
)

// Page names served by the site.
const (
	PageHome = "home"
	PageTeam = "team"
	PageFAQ  = "faq"
)

// ErrUnknownPage is returned by Render for a name not in Pages.
var ErrUnknownPage = errors.New("unknown page")

var pages = map[string]func(view.PageData) g.Node{
	PageHome: view.Home,
	PageTeam: view.TeamPage,
	PageFAQ:  view.FAQPage,
}

// Pages lists the renderable page names.
func Pages() []string { return []string{PageHome, PageTeam, PageFAQ} }

// Cache stores rendered bodies. Get returns nil, nil on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
}

// Page is a rendered page ready to be written to a response.
type Page struct {
	Name   string
	Body   []byte
	ETag   string
	Cached bool
}

// Renderer turns content tables into HTML pages.
type Renderer struct {
	tables      *content.Tables
	fingerprint string
	cache       Cache
	now         func() time.Time
	logger      logger.Logger
}

// NewRenderer creates a renderer. cache may be nil to always render.
func NewRenderer(tables *content.Tables, cache Cache, now func() time.Time, log logger.Logger) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{
		tables:      tables,
		fingerprint: tables.Fingerprint(),
		cache:       cache,
		now:         now,
		logger:      log,
	}
}

// Tables returns the content the renderer draws from.
func (r *Renderer) Tables() *content.Tables { return r.tables }

// Render produces the named page. Cache failures are logged and the page is
// rendered directly.
func (r *Renderer) Render(ctx context.Context, name string) (*Page, error) {
	build, ok := pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}

	year := r.now().Year()
	key := redisstore.PageKey(name, year, r.fingerprint)

	if r.cache != nil {
		body, err := r.cache.Get(ctx, key)
		switch {
		case err != nil:
			r.logger.Warn("page cache read failed, rendering",
				logger.String("page", name),
				logger.Error(err))
		case body != nil:
			r.logger.Debug("page cache hit", logger.String("page", name))
			return &Page{Name: name, Body: body, ETag: ETag(body), Cached: true}, nil
		}
	}

	var buf bytes.Buffer
	if err := build(view.PageData{Tables: r.tables, Year: year}).Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	body := buf.Bytes()

	if r.cache != nil {
		if err := r.cache.Put(ctx, key, body); err != nil {
			r.logger.Warn("page cache write failed",
				logger.String("page", name),
				logger.Error(err))
		}
	}

	return &Page{Name: name, Body: body, ETag: ETag(body)}, nil
}

// ETag returns a strong entity tag for body.
func ETag(body []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
}
