package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/xilo-pro/xilo/internal/adapters/fs"
	"github.com/xilo-pro/xilo/internal/config"
	"github.com/xilo-pro/xilo/internal/core"
	"github.com/xilo-pro/xilo/internal/usecase"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const builtIndex = "<!doctype html><html><body>built</body></html>"

func testService() *usecase.PageService {
	return usecase.NewPageService(config.StaticSource{Config: config.Default()})
}

func testArtifact() (*core.Manifest, fs.FileSystem) {
	files := fstest.MapFS{
		"index.html":        {Data: []byte(builtIndex)},
		"404.html":          {Data: []byte("<!doctype html><html><body>missing</body></html>")},
		"globals.css":       {Data: []byte(":root{}")},
		"public/robots.txt": {Data: []byte("User-agent: *")},
	}

	m := core.NewManifest()
	m.Entries[core.HomeEntry] = core.ManifestEntry{Route: "/", HTML: "/index.html", Status: http.StatusOK}
	m.Entries[core.NotFoundEntry] = core.ManifestEntry{HTML: "/404.html", Status: http.StatusNotFound}
	m.AddFile(core.StylesheetPath, files["globals.css"].Data)
	return m, fs.NewReadOnlyFileSystem(files)
}

func serve(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPageHandlerDevRendersHome(t *testing.T) {
	h := NewPageHandler(testService(), core.HomeEntry, nil, nil, true, discardLogger)

	rec := serve(h, http.MethodGet, "/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Expected html content type, got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Xilo Pro - soon...") {
		t.Errorf("Expected message in body, got %s", body)
	}
	if !strings.Contains(body, ReloadPath) {
		t.Error("Expected reload script in dev")
	}
	if rec.Header().Get("Cache-Control") != "no-cache" {
		t.Errorf("Expected no-cache in dev, got %q", rec.Header().Get("Cache-Control"))
	}
}

func TestPageHandlerETag(t *testing.T) {
	h := NewPageHandler(testService(), core.HomeEntry, nil, nil, true, discardLogger)

	first := serve(h, http.MethodGet, "/", nil)
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("Expected ETag header")
	}

	second := serve(h, http.MethodGet, "/", nil)
	if second.Header().Get("ETag") != etag || second.Body.String() != first.Body.String() {
		t.Error("Expected identical responses for repeated requests")
	}

	cached := serve(h, http.MethodGet, "/", http.Header{"If-None-Match": {etag}})
	if cached.Code != http.StatusNotModified {
		t.Errorf("Expected 304, got %d", cached.Code)
	}
	if cached.Body.Len() != 0 {
		t.Errorf("Expected empty 304 body, got %q", cached.Body.String())
	}
}

func TestPageHandlerHead(t *testing.T) {
	manifest, artifact := testArtifact()
	h := NewPageHandler(testService(), core.HomeEntry, manifest, artifact, false, discardLogger)

	rec := serve(h, http.MethodHead, "/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("Expected no body for HEAD, got %q", rec.Body.String())
	}
	if rec.Header().Get("Content-Length") != "46" {
		t.Errorf("Expected Content-Length 46, got %q", rec.Header().Get("Content-Length"))
	}
}

func TestPageHandlerProd(t *testing.T) {
	manifest, artifact := testArtifact()

	tests := []struct {
		name       string
		entry      string
		wantStatus int
		wantBody   string
	}{
		{name: "home", entry: core.HomeEntry, wantStatus: http.StatusOK, wantBody: builtIndex},
		{name: "not found", entry: core.NotFoundEntry, wantStatus: http.StatusNotFound, wantBody: "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPageHandler(testService(), tt.entry, manifest, artifact, false, discardLogger)
			rec := serve(h, http.MethodGet, "/", nil)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("Expected body to contain %q, got %q", tt.wantBody, rec.Body.String())
			}
			if strings.Contains(rec.Body.String(), ReloadPath) {
				t.Error("Expected no reload script in prod")
			}
		})
	}
}

func TestPageHandlerProdWithoutBuild(t *testing.T) {
	h := NewPageHandler(testService(), core.HomeEntry, nil, nil, false, discardLogger)

	rec := serve(h, http.MethodGet, "/", nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "xilo build") {
		t.Errorf("Expected build hint, got %s", body)
	}
	if strings.Contains(body, "<pre>") {
		t.Error("Expected error details to be hidden in prod")
	}
}

func TestPageHandlerDevShowsErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Site.Title = ""
	service := usecase.NewPageService(config.StaticSource{Config: cfg})
	h := NewPageHandler(service, core.HomeEntry, nil, nil, true, discardLogger)

	rec := serve(h, http.MethodGet, "/", nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "site.title is required") {
		t.Errorf("Expected error message in dev, got %s", rec.Body.String())
	}
}

func TestStylesheetHandler(t *testing.T) {
	manifest, artifact := testArtifact()

	dev := serve(NewStylesheetHandler(testService(), nil, nil, true, discardLogger), http.MethodGet, core.StylesheetPath, nil)
	if dev.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", dev.Code)
	}
	if ct := dev.Header().Get("Content-Type"); ct != "text/css; charset=utf-8" {
		t.Errorf("Expected css content type, got %q", ct)
	}
	if !strings.Contains(dev.Body.String(), "--foreground-rgb") {
		t.Errorf("Expected theme variables, got %s", dev.Body.String())
	}

	prod := serve(NewStylesheetHandler(testService(), manifest, artifact, false, discardLogger), http.MethodGet, core.StylesheetPath, nil)
	if prod.Code != http.StatusOK || prod.Body.String() != ":root{}" {
		t.Errorf("Expected built stylesheet, got %d %q", prod.Code, prod.Body.String())
	}

	missing := serve(NewStylesheetHandler(testService(), nil, nil, false, discardLogger), http.MethodGet, core.StylesheetPath, nil)
	if missing.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 without build, got %d", missing.Code)
	}
}

func TestPublicHandler(t *testing.T) {
	files := fs.NewReadOnlyFileSystem(fstest.MapFS{
		"robots.txt":   {Data: []byte("User-agent: *")},
		"img/logo.svg": {Data: []byte("<svg/>")},
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := NewPublicHandler(files, next, false)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantType   string
	}{
		{name: "text file", method: http.MethodGet, path: "/robots.txt", wantStatus: http.StatusOK, wantType: "text/plain; charset=utf-8"},
		{name: "nested svg", method: http.MethodGet, path: "/img/logo.svg", wantStatus: http.StatusOK, wantType: "image/svg+xml"},
		{name: "missing file", method: http.MethodGet, path: "/nope.txt", wantStatus: http.StatusTeapot},
		{name: "directory", method: http.MethodGet, path: "/img", wantStatus: http.StatusTeapot},
		{name: "root", method: http.MethodGet, path: "/", wantStatus: http.StatusTeapot},
		{name: "post", method: http.MethodPost, path: "/robots.txt", wantStatus: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, tt.method, tt.path, nil)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantType != "" && rec.Header().Get("Content-Type") != tt.wantType {
				t.Errorf("Expected content type %q, got %q", tt.wantType, rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestPublicHandlerRejectsTraversal(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := NewPublicHandler(fs.NewReadOnlyFileSystem(fstest.MapFS{"a.txt": {Data: []byte("a")}}), next, false)

	req := httptest.NewRequest(http.MethodGet, "/a.txt", nil)
	req.URL.Path = "/../a.txt"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("Expected traversal to fall through, got %d", rec.Code)
	}
}

func TestETagMatches(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{header: "", want: false},
		{header: `"1"`, want: true},
		{header: `W/"1"`, want: true},
		{header: `"2", "1"`, want: true},
		{header: `*`, want: true},
		{header: `"2"`, want: false},
	}

	for _, tt := range tests {
		if got := etagMatches(tt.header, `"1"`); got != tt.want {
			t.Errorf("etagMatches(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
