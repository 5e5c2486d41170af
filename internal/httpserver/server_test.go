package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"github.com/vivancedata/site/internal/content"
	"github.com/vivancedata/site/internal/httpserver/deps"
	"github.com/vivancedata/site/internal/logger"
	"github.com/vivancedata/site/internal/site"
	redisstore "github.com/vivancedata/site/internal/store/redis"
)

type fakeCache struct {
	n       int
	err     error
	pingErr error
}

func (f *fakeCache) Flush(context.Context) (int, error) { return f.n, f.err }
func (f *fakeCache) Ping(context.Context) error         { return f.pingErr }

type failingRenderer struct{}

func (failingRenderer) Render(context.Context, string) (*site.Page, error) {
	return nil, errors.New("template exploded")
}

func testDeps() deps.Deps {
	tables := content.Default()
	now := func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }
	return deps.Deps{
		Logger:        logger.Nop(),
		StartTime:     now().Add(-time.Minute),
		TimeNow:       now,
		Version:       "test",
		Tables:        tables,
		ContentSource: "embedded",
		Renderer:      site.NewRenderer(tables, nil, now, logger.Nop()),
		CacheMaxAge:   5 * time.Minute,
		RateLimit:     deps.RateLimit{Burst: 100, RefillPerMin: 100},
	}
}

func serve(t *testing.T, d deps.Deps, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewRouter(d.Logger, d).ServeHTTP(rec, req)
	return rec
}

func TestPages(t *testing.T) {
	d := testDeps()

	tests := []struct {
		path string
		want string
	}{
		{"/", "Schedule a Demo"},
		{"/team", "Meet Our Team"},
		{"/faq", "Frequently Asked Questions"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(t, d, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=300" {
				t.Errorf("Cache-Control = %q", cc)
			}
			if etag := rec.Header().Get("ETag"); etag != site.ETag(rec.Body.Bytes()) {
				t.Errorf("ETag = %q does not match body", etag)
			}
			if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("security headers missing")
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
		})
	}
}

func TestPageNotModified(t *testing.T) {
	d := testDeps()

	first := serve(t, d, httptest.NewRequest(http.MethodGet, "/", nil))
	etag := first.Header().Get("ETag")

	for _, header := range []string{etag, "W/" + etag, `"other", ` + etag, "*"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("If-None-Match", header)
		rec := serve(t, d, req)
		if rec.Code != http.StatusNotModified {
			t.Errorf("If-None-Match %q: status = %d, want 304", header, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("If-None-Match %q: 304 should have no body", header)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", `"stale"`)
	if rec := serve(t, d, req); rec.Code != http.StatusOK {
		t.Errorf("stale ETag: status = %d, want 200", rec.Code)
	}
}

func TestPageHead(t *testing.T) {
	rec := serve(t, testDeps(), httptest.NewRequest(http.MethodHead, "/faq", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Error("HEAD should not write a body")
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("HEAD should carry the ETag")
	}
}

func TestPageRenderFailure(t *testing.T) {
	d := testDeps()
	d.Renderer = failingRenderer{}

	rec := serve(t, d, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestUnknownPath(t *testing.T) {
	rec := serve(t, testDeps(), httptest.NewRequest(http.MethodGet, "/pricing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPagesEnforceHost(t *testing.T) {
	d := testDeps()
	d.AllowedHosts = []string{"vivancedata.com"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "elsewhere.example"
	if rec := serve(t, d, req); rec.Code != http.StatusMisdirectedRequest {
		t.Errorf("status = %d, want 421", rec.Code)
	}

	// Health stays open for probes that use the pod IP.
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Host = "10.0.0.12:8080"
	if rec := serve(t, d, req); rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", rec.Code)
	}
}

func TestStaticAssets(t *testing.T) {
	d := testDeps()

	tests := []struct {
		path string
		code int
		ct   string
	}{
		{"/static/site.css", http.StatusOK, "text/css"},
		{"/static/logo.svg", http.StatusOK, "image/svg+xml"},
		{"/static/team/emily-johnson.svg", http.StatusOK, "image/svg+xml"},
		{"/static/nope.js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(t, d, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.code {
				t.Fatalf("status = %d, want %d", rec.Code, tt.code)
			}
			if tt.ct != "" && !strings.HasPrefix(rec.Header().Get("Content-Type"), tt.ct) {
				t.Errorf("Content-Type = %q, want %s", rec.Header().Get("Content-Type"), tt.ct)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	rec := serve(t, testDeps(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Status        string  `json:"status"`
		UptimeSeconds float64 `json:"uptime_seconds"`
		Version       string  `json:"version"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Status != "ok" || body.Version != "test" || body.UptimeSeconds != 60 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestReadyz(t *testing.T) {
	d := testDeps()
	if rec := serve(t, d, httptest.NewRequest(http.MethodGet, "/readyz", nil)); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	d.Tables = nil
	if rec := serve(t, d, httptest.NewRequest(http.MethodGet, "/readyz", nil)); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 without content", rec.Code)
	}
}

func TestOpsEndpointsRestricted(t *testing.T) {
	d := testDeps()
	d.AllowedCIDRS = []string{"10.0.0.0/8"}

	for _, path := range []string{"/readyz", "/infra"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "203.0.113.50:4000"
		if rec := serve(t, d, req); rec.Code != http.StatusForbidden {
			t.Errorf("%s from outside: status = %d, want 403", path, rec.Code)
		}

		req = httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "10.2.3.4:4000"
		if rec := serve(t, d, req); rec.Code != http.StatusOK {
			t.Errorf("%s from inside: status = %d, want 200", path, rec.Code)
		}
	}
}

type infraBody struct {
	ServingMode string `json:"serving_mode"`
	Components  map[string]struct {
		OK     bool           `json:"ok"`
		Mode   string         `json:"mode"`
		Counts map[string]int `json:"counts"`
	} `json:"components"`
}

func decodeInfra(t *testing.T, rec *httptest.ResponseRecorder) infraBody {
	t.Helper()
	var body infraBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return body
}

func TestInfraWithoutCache(t *testing.T) {
	body := decodeInfra(t, serve(t, testDeps(), httptest.NewRequest(http.MethodGet, "/infra", nil)))

	if body.ServingMode != "direct" {
		t.Errorf("serving_mode = %q, want direct", body.ServingMode)
	}
	c := body.Components["content"]
	if !c.OK || c.Counts["team_members"] != 3 || c.Counts["footer_links"] != 3 || c.Counts["questions"] != 4 {
		t.Errorf("unexpected content status: %+v", c)
	}
	if body.Components["page_cache"].Mode != "disabled" {
		t.Errorf("page_cache mode = %q, want disabled", body.Components["page_cache"].Mode)
	}
}

func TestInfraWithCache(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantMode string
	}{
		{"healthy", nil, "cached"},
		{"unreachable", errors.New("dial tcp: connection refused"), "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			if tt.pingErr != nil {
				mock.ExpectPing().SetErr(tt.pingErr)
			} else {
				mock.ExpectPing().SetVal("PONG")
			}

			d := testDeps()
			d.PageCache = redisstore.NewPageStore(client, time.Minute)
			body := decodeInfra(t, serve(t, d, httptest.NewRequest(http.MethodGet, "/infra", nil)))

			if body.ServingMode != tt.wantMode {
				t.Errorf("serving_mode = %q, want %q", body.ServingMode, tt.wantMode)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestFlushCache(t *testing.T) {
	tests := []struct {
		name    string
		flusher deps.PageCache
		want    int
		flushed int
	}{
		{"disabled", nil, http.StatusConflict, 0},
		{"flushed", &fakeCache{n: 3}, http.StatusOK, 3},
		{"redis error", &fakeCache{n: 1, err: errors.New("boom")}, http.StatusBadGateway, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDeps()
			d.PageCache = tt.flusher

			rec := serve(t, d, httptest.NewRequest(http.MethodPost, "/cache/flush", nil))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			var body struct {
				Flushed int `json:"flushed"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body.Flushed != tt.flushed {
				t.Errorf("flushed = %d, want %d", body.Flushed, tt.flushed)
			}
		})
	}
}

func TestFlushCacheRejectsGet(t *testing.T) {
	d := testDeps()
	d.PageCache = &fakeCache{}
	if rec := serve(t, d, httptest.NewRequest(http.MethodGet, "/cache/flush", nil)); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
