package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xilo-pro/xilo/internal/core"
)

type ServePageInput struct {
	EntryName string
	IsDev     bool
	Manifest  *core.Manifest
}

type ServePageOutput struct {
	Action   core.PageAction
	HTML     []byte
	HTMLPath string
	Status   int
	Error    error
}

type ServeStylesheetInput struct {
	IsDev    bool
	Manifest *core.Manifest
}

type ServeStylesheetOutput struct {
	Action core.PageAction
	CSS    []byte
	Path   string
	Error  error
}

type PageService struct {
	source SiteSource
}

func NewPageService(source SiteSource) *PageService {
	return &PageService{source: source}
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	page, ok := core.PageByEntry(input.EntryName)
	if !ok {
		return ServePageOutput{
			Status: http.StatusInternalServerError,
			Error:  fmt.Errorf("unknown page entry %q", input.EntryName),
		}
	}

	entry, _ := input.Manifest.Entry(input.EntryName)
	decision := core.DecidePageAction(core.PageRequest{
		IsDev:       input.IsDev,
		HasManifest: input.Manifest != nil,
		EntryName:   input.EntryName,
	}, entry)

	switch decision.Action {
	case core.ActionServeBuiltFile:
		status := entry.Status
		if status == 0 {
			status = page.Status
		}
		return ServePageOutput{
			Action:   core.ActionServeBuiltFile,
			HTMLPath: decision.HTMLPath,
			Status:   status,
		}

	case core.ActionNeedsBuild:
		return ServePageOutput{
			Action: core.ActionNeedsBuild,
			Status: http.StatusInternalServerError,
			Error:  decision.Err,
		}
	}

	if err := ctx.Err(); err != nil {
		return ServePageOutput{Status: http.StatusInternalServerError, Error: err}
	}

	cfg, err := s.source.Load()
	if err != nil {
		return ServePageOutput{Status: http.StatusInternalServerError, Error: fmt.Errorf("load config: %w", err)}
	}
	if err := cfg.Validate(); err != nil {
		return ServePageOutput{Status: http.StatusInternalServerError, Error: err}
	}

	html, err := renderEntry(cfg, page)
	if err != nil {
		return ServePageOutput{Status: http.StatusInternalServerError, Error: err}
	}

	return ServePageOutput{
		Action: core.ActionRenderPage,
		HTML:   html,
		Status: page.Status,
	}
}

func (s *PageService) ServeStylesheet(ctx context.Context, input ServeStylesheetInput) ServeStylesheetOutput {
	if !input.IsDev {
		if input.Manifest == nil {
			return ServeStylesheetOutput{Action: core.ActionNeedsBuild, Error: core.ErrManifestMissing}
		}
		if _, ok := input.Manifest.Hash(core.StylesheetPath); !ok {
			return ServeStylesheetOutput{Action: core.ActionNeedsBuild, Error: core.ErrEntryNotBuilt}
		}
		return ServeStylesheetOutput{Action: core.ActionServeBuiltFile, Path: core.StylesheetPath}
	}

	if err := ctx.Err(); err != nil {
		return ServeStylesheetOutput{Error: err}
	}

	cfg, err := s.source.Load()
	if err != nil {
		return ServeStylesheetOutput{Error: fmt.Errorf("load config: %w", err)}
	}

	css, err := renderStylesheet(cfg)
	if err != nil {
		return ServeStylesheetOutput{Error: err}
	}
	return ServeStylesheetOutput{Action: core.ActionRenderPage, CSS: css}
}
