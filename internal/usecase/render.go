package usecase

import (
	"fmt"

	"github.com/xilo-pro/xilo/internal/config"
	"github.com/xilo-pro/xilo/internal/core"
	"github.com/xilo-pro/xilo/internal/theme"
)

func renderStylesheet(cfg config.Config) ([]byte, error) {
	t, err := cfg.ThemeValue()
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	css, err := theme.Render(t)
	if err != nil {
		return nil, fmt.Errorf("render stylesheet: %w", err)
	}
	return []byte(css), nil
}

func renderEntry(cfg config.Config, page core.Page) ([]byte, error) {
	html, err := core.RenderPage(cfg.SiteMeta(), page)
	if err != nil {
		return nil, fmt.Errorf("render page %s: %w", page.Entry, err)
	}
	return []byte(html), nil
}
