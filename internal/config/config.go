// Package config loads the site configuration: built-in defaults, then an
// optional YAML file, then XILO_* environment variables. CLI flags are
// applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/xilo-pro/xilo/internal/core"
	"github.com/xilo-pro/xilo/internal/theme"
)

const (
	DefaultFile    = "xilo.yaml"
	DefaultAddr    = ":3000"
	DefaultOutDir  = ".xilo"
	DefaultPublic  = "public"
	DefaultFontURL = "https://fonts.googleapis.com/css2?family=Inter"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Site   Site   `yaml:"site"`
	Theme  Theme  `yaml:"theme"`
	Server Server `yaml:"server"`
}

type Site struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Lang        string `yaml:"lang"`
	Message     string `yaml:"message"`
	FontHref    string `yaml:"font_href"`
}

type Theme struct {
	FontFamily string  `yaml:"font_family"`
	Light      Palette `yaml:"light"`
	Dark       Palette `yaml:"dark"`
}

// Palette values are "r, g, b" strings, the same notation the stylesheet uses.
type Palette struct {
	Foreground      string `yaml:"foreground"`
	BackgroundStart string `yaml:"background_start"`
	BackgroundEnd   string `yaml:"background_end"`
}

type Server struct {
	Addr      string `yaml:"addr"`
	OutDir    string `yaml:"out_dir"`
	PublicDir string `yaml:"public_dir"`
}

func Default() Config {
	th := theme.Default()
	return Config{
		Site: Site{
			Title:       "Xilo Pro",
			Description: "Xilo Pro - soon...",
			Lang:        "en",
			Message:     "Xilo Pro - soon...",
			FontHref:    DefaultFontURL,
		},
		Theme: Theme{
			FontFamily: th.FontFamily,
			Light:      paletteFrom(th.Light),
			Dark:       paletteFrom(th.Dark),
		},
		Server: Server{
			Addr:      DefaultAddr,
			OutDir:    DefaultOutDir,
			PublicDir: DefaultPublic,
		},
	}
}

func paletteFrom(p theme.Palette) Palette {
	return Palette{
		Foreground:      p.Foreground.String(),
		BackgroundStart: p.BackgroundStart.String(),
		BackgroundEnd:   p.BackgroundEnd.String(),
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path falls back to DefaultFile when it exists; a missing explicit path is
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return cfg, nil
		}
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides server settings from XILO_ADDR, XILO_OUT_DIR and
// XILO_PUBLIC_DIR.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("XILO_ADDR"); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup("XILO_OUT_DIR"); ok && v != "" {
		c.Server.OutDir = v
	}
	if v, ok := lookup("XILO_PUBLIC_DIR"); ok && v != "" {
		c.Server.PublicDir = v
	}
}

func (c Config) Validate() error {
	errs := c.Problems()
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Problems lists every validation failure, in field order.
func (c Config) Problems() []error {
	var errs []error

	if strings.TrimSpace(c.Site.Title) == "" {
		errs = append(errs, errors.New("site.title is required"))
	}
	if strings.TrimSpace(c.Site.Message) == "" {
		errs = append(errs, errors.New("site.message is required"))
	}
	if _, err := language.Parse(c.Site.Lang); err != nil {
		errs = append(errs, fmt.Errorf("site.lang %q: %v", c.Site.Lang, err))
	}
	if c.Site.FontHref != "" {
		u, err := url.Parse(c.Site.FontHref)
		if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			errs = append(errs, fmt.Errorf("site.font_href %q must be an absolute http(s) URL", c.Site.FontHref))
		}
	}
	if c.Theme.FontFamily == "" || strings.ContainsAny(c.Theme.FontFamily, "\"';{}\\\n") {
		errs = append(errs, fmt.Errorf("theme.font_family %q is empty or contains CSS delimiters", c.Theme.FontFamily))
	}
	if _, err := c.ThemeValue(); err != nil {
		errs = append(errs, err)
	}
	if c.Server.OutDir == "" {
		errs = append(errs, errors.New("server.out_dir is required"))
	}
	return errs
}

// ThemeValue converts the configured palettes into a theme.Theme.
func (c Config) ThemeValue() (theme.Theme, error) {
	light, err := c.Theme.Light.parse("theme.light")
	if err != nil {
		return theme.Theme{}, err
	}
	dark, err := c.Theme.Dark.parse("theme.dark")
	if err != nil {
		return theme.Theme{}, err
	}
	return theme.Theme{Light: light, Dark: dark, FontFamily: c.Theme.FontFamily}, nil
}

func (p Palette) parse(prefix string) (theme.Palette, error) {
	var out theme.Palette
	fields := []struct {
		name string
		src  string
		dst  *theme.RGB
	}{
		{"foreground", p.Foreground, &out.Foreground},
		{"background_start", p.BackgroundStart, &out.BackgroundStart},
		{"background_end", p.BackgroundEnd, &out.BackgroundEnd},
	}
	for _, f := range fields {
		c, err := theme.ParseRGB(f.src)
		if err != nil {
			return theme.Palette{}, fmt.Errorf("%s.%s: %w", prefix, f.name, err)
		}
		*f.dst = c
	}
	return out, nil
}

// SiteMeta is the layout metadata for core pages.
func (c Config) SiteMeta() core.Site {
	lang := c.Site.Lang
	if tag, err := language.Parse(lang); err == nil {
		lang = tag.String()
	}
	return core.Site{
		Lang:           lang,
		Title:          c.Site.Title,
		Description:    c.Site.Description,
		Message:        c.Site.Message,
		FontHref:       c.Site.FontHref,
		StylesheetHref: core.StylesheetPath,
	}
}
