package http

import (
	"bytes"
	"errors"
	"html"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/xilo-pro/xilo/internal/core"
)

const htmlContentType = "text/html; charset=utf-8"

// writeContent answers with body and its ETag. A matching If-None-Match
// on a 200 response short-circuits to 304.
func writeContent(w http.ResponseWriter, req *http.Request, contentType string, status int, body []byte, isDev bool) {
	etag := core.ETag(body)

	header := w.Header()
	header.Set("Content-Type", contentType)
	header.Set("ETag", etag)
	if isDev {
		header.Set("Cache-Control", "no-cache")
	} else {
		header.Set("Cache-Control", "public, max-age=0, must-revalidate")
	}

	if status == http.StatusOK && etagMatches(req.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	header.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		c := strings.TrimSpace(candidate)
		if c == "*" || strings.TrimPrefix(c, "W/") == etag {
			return true
		}
	}
	return false
}

func serveError(w http.ResponseWriter, req *http.Request, logger *slog.Logger, err error, isDev bool) {
	logger.ErrorContext(req.Context(), "request.failed", "path", req.URL.Path, "error", err)

	data := core.ErrorData{
		Message: err.Error(),
		IsDev:   isDev,
	}
	if errors.Is(err, core.ErrManifestMissing) || errors.Is(err, core.ErrEntryNotBuilt) {
		data.Hint = "Run 'xilo build' and restart the server."
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.Header().Set("Cache-Control", "no-store")

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
