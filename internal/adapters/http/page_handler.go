package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xilo-pro/xilo/internal/adapters/fs"
	"github.com/xilo-pro/xilo/internal/core"
	"github.com/xilo-pro/xilo/internal/usecase"
)

type PageHandler struct {
	service   *usecase.PageService
	entryName string
	manifest  *core.Manifest
	artifact  fs.FileSystem
	isDev     bool
	logger    *slog.Logger
}

// NewPageHandler serves one page entry. In prod the document is read from
// artifact, the build output.
func NewPageHandler(
	service *usecase.PageService,
	entryName string,
	manifest *core.Manifest,
	artifact fs.FileSystem,
	isDev bool,
	logger *slog.Logger,
) http.Handler {
	return &PageHandler{
		service:   service,
		entryName: entryName,
		manifest:  manifest,
		artifact:  artifact,
		isDev:     isDev,
		logger:    logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		EntryName: h.entryName,
		IsDev:     h.isDev,
		Manifest:  h.manifest,
	})

	if output.Error != nil {
		serveError(w, req, h.logger, output.Error, h.isDev)
		return
	}

	switch output.Action {
	case core.ActionServeBuiltFile:
		h.serveBuiltFile(w, req, output.HTMLPath, output.Status)

	case core.ActionRenderPage:
		body := output.HTML
		if h.isDev {
			body = InjectReloadScript(body)
		}
		writeContent(w, req, htmlContentType, output.Status, body, h.isDev)
	}
}

func (h *PageHandler) serveBuiltFile(w http.ResponseWriter, req *http.Request, path string, status int) {
	if h.artifact == nil {
		serveError(w, req, h.logger, core.ErrManifestMissing, h.isDev)
		return
	}

	data, err := h.artifact.ReadFile(path)
	if err != nil {
		serveError(w, req, h.logger, fmt.Errorf("failed to read built page %s: %w", path, err), h.isDev)
		return
	}

	writeContent(w, req, htmlContentType, status, data, false)
}
