package site

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vivancedata/site/internal/content"
	"github.com/vivancedata/site/internal/logger"
)

type fakeCache struct {
	entries map[string][]byte
	getErr  error
	putErr  error
	gets    int
	puts    int
}

func newFakeCache() *fakeCache { return &fakeCache{entries: make(map[string][]byte)} }

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[key], nil
}

func (c *fakeCache) Put(_ context.Context, key string, body []byte) error {
	c.puts++
	if c.putErr != nil {
		return c.putErr
	}
	c.entries[key] = append([]byte(nil), body...)
	return nil
}

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.March, 1, 12, 0, 0, 0, time.UTC) }
}

func TestRenderAllPages(t *testing.T) {
	r := NewRenderer(content.Default(), nil, fixedClock(2026), logger.Nop())

	for _, name := range Pages() {
		t.Run(name, func(t *testing.T) {
			page, err := r.Render(context.Background(), name)
			if err != nil {
				t.Fatalf("Render(%q) error = %v", name, err)
			}
			if page.Name != name {
				t.Errorf("Name = %q, want %q", page.Name, name)
			}
			if !bytes.Contains(page.Body, []byte("© 2026 VivanceData")) {
				t.Error("rendered page should carry the clock's year in the footer")
			}
			if page.ETag != ETag(page.Body) {
				t.Errorf("ETag = %s, want %s", page.ETag, ETag(page.Body))
			}
			if page.Cached {
				t.Error("page should not be marked cached without a cache")
			}
		})
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r := NewRenderer(content.Default(), nil, fixedClock(2026), logger.Nop())

	_, err := r.Render(context.Background(), "pricing")
	if !errors.Is(err, ErrUnknownPage) {
		t.Errorf("Render(pricing) error = %v, want ErrUnknownPage", err)
	}
}

func TestRenderStableETag(t *testing.T) {
	r := NewRenderer(content.Default(), nil, fixedClock(2026), logger.Nop())

	a, _ := r.Render(context.Background(), PageHome)
	b, _ := r.Render(context.Background(), PageHome)
	if a.ETag != b.ETag {
		t.Errorf("ETag changed between renders: %s vs %s", a.ETag, b.ETag)
	}

	next := NewRenderer(content.Default(), nil, fixedClock(2027), logger.Nop())
	c, _ := next.Render(context.Background(), PageHome)
	if c.ETag == a.ETag {
		t.Error("ETag should change with the copyright year")
	}
}

func TestRenderUsesCache(t *testing.T) {
	cache := newFakeCache()
	r := NewRenderer(content.Default(), cache, fixedClock(2026), logger.Nop())
	ctx := context.Background()

	first, err := r.Render(ctx, PageFAQ)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if first.Cached || cache.puts != 1 {
		t.Fatalf("first render should miss and store (cached=%v, puts=%d)", first.Cached, cache.puts)
	}

	second, err := r.Render(ctx, PageFAQ)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !second.Cached {
		t.Error("second render should be served from cache")
	}
	if cache.puts != 1 {
		t.Errorf("cache hit should not write again, puts=%d", cache.puts)
	}
	if second.ETag != first.ETag {
		t.Error("cached body should keep the same ETag")
	}
}

func TestRenderCacheHitSkipsRendering(t *testing.T) {
	cache := newFakeCache()
	tables := content.Default()
	r := NewRenderer(tables, cache, fixedClock(2026), logger.Nop())

	// First render stores under the exact key the second lookup uses.
	if _, err := r.Render(context.Background(), PageTeam); err != nil {
		t.Fatal(err)
	}
	for k := range cache.entries {
		cache.entries[k] = []byte("<p>from cache</p>")
	}

	page, err := r.Render(context.Background(), PageTeam)
	if err != nil {
		t.Fatal(err)
	}
	if string(page.Body) != "<p>from cache</p>" {
		t.Errorf("expected cached body, got %q", page.Body)
	}
}

func TestRenderCacheFailuresDegrade(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.putErr = errors.New("redis down")
	r := NewRenderer(content.Default(), cache, fixedClock(2026), logger.Nop())

	page, err := r.Render(context.Background(), PageHome)
	if err != nil {
		t.Fatalf("Render() should succeed when the cache fails, got %v", err)
	}
	if page.Cached {
		t.Error("page should not be marked cached")
	}
	if !strings.Contains(string(page.Body), "Meet Our Team") {
		t.Error("home page should still render the team section")
	}
}

func TestRenderEmptyQuestions(t *testing.T) {
	tables := content.Default()
	tables.Questions = nil
	r := NewRenderer(tables, nil, fixedClock(2026), logger.Nop())

	page, err := r.Render(context.Background(), PageFAQ)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if bytes.Contains(page.Body, []byte("faq-entry")) {
		t.Error("no FAQ entries should render for an empty question list")
	}
}
