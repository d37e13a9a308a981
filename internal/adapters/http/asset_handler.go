package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xilo-pro/xilo/internal/adapters/fs"
	"github.com/xilo-pro/xilo/internal/core"
	"github.com/xilo-pro/xilo/internal/usecase"
)

type StylesheetHandler struct {
	service  *usecase.PageService
	manifest *core.Manifest
	artifact fs.FileSystem
	isDev    bool
	logger   *slog.Logger
}

func NewStylesheetHandler(
	service *usecase.PageService,
	manifest *core.Manifest,
	artifact fs.FileSystem,
	isDev bool,
	logger *slog.Logger,
) http.Handler {
	return &StylesheetHandler{
		service:  service,
		manifest: manifest,
		artifact: artifact,
		isDev:    isDev,
		logger:   logger,
	}
}

func (h *StylesheetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	output := h.service.ServeStylesheet(req.Context(), usecase.ServeStylesheetInput{
		IsDev:    h.isDev,
		Manifest: h.manifest,
	})

	if output.Error != nil {
		serveError(w, req, h.logger, output.Error, h.isDev)
		return
	}

	contentType := core.GetContentType(core.StylesheetPath)

	if output.Action == core.ActionRenderPage {
		writeContent(w, req, contentType, http.StatusOK, output.CSS, true)
		return
	}

	if h.artifact == nil {
		serveError(w, req, h.logger, core.ErrManifestMissing, h.isDev)
		return
	}
	data, err := h.artifact.ReadFile(output.Path)
	if err != nil {
		serveError(w, req, h.logger, fmt.Errorf("failed to read %s: %w", output.Path, err), h.isDev)
		return
	}
	writeContent(w, req, contentType, http.StatusOK, data, false)
}

// PublicHandler serves files of the public directory at the site root and
// hands everything else to next.
type PublicHandler struct {
	files fs.FileSystem
	next  http.Handler
	isDev bool
}

func NewPublicHandler(files fs.FileSystem, next http.Handler, isDev bool) http.Handler {
	return &PublicHandler{
		files: files,
		next:  next,
		isDev: isDev,
	}
}

func (h *PublicHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	if h.files == nil || path == "/" || (req.Method != http.MethodGet && req.Method != http.MethodHead) {
		h.next.ServeHTTP(w, req)
		return
	}

	if err := core.ValidateAssetPath(path); err != nil || !h.files.FileExists(path) {
		h.next.ServeHTTP(w, req)
		return
	}

	data, err := h.files.ReadFile(path)
	if err != nil {
		h.next.ServeHTTP(w, req)
		return
	}

	writeContent(w, req, core.GetContentType(path), http.StatusOK, data, h.isDev)
}
