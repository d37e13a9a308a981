// Package xilo serves the Xilo Pro landing page: a single home page, a
// not-found page and a theme stylesheet, rendered live in dev and served
// from a build directory in prod.
package xilo

import (
	iofs "io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/xilo-pro/xilo/internal/adapters/env"
	adhttp "github.com/xilo-pro/xilo/internal/adapters/http"
	"github.com/xilo-pro/xilo/internal/adapters/logger"
	"github.com/xilo-pro/xilo/internal/config"
	"github.com/xilo-pro/xilo/internal/core"
	"github.com/xilo-pro/xilo/internal/usecase"
)

type Mode = core.Mode

const (
	ModeDev  = core.ModeDev
	ModeProd = core.ModeProd
)

type App struct {
	cfg        config.Config
	source     config.Source
	mode       Mode
	modeSet    bool
	logger     *slog.Logger
	artifactFS iofs.FS
	watchPaths []string
	renderer   *renderer
	pages      *usecase.PageService
}

type Option func(*App)

// WithMode overrides the XILO_DEV environment detection.
func WithMode(mode Mode) Option {
	return func(a *App) {
		a.mode = mode
		a.modeSet = true
	}
}

func WithConfig(cfg config.Config) Option {
	return func(a *App) {
		a.source = config.StaticSource{Config: cfg}
	}
}

func WithSource(source config.Source) Option {
	return func(a *App) {
		a.source = source
	}
}

// WithArtifactFS serves prod responses from fsys instead of the configured
// out directory, e.g. an embed.FS of a build.
func WithArtifactFS(fsys iofs.FS) Option {
	return func(a *App) {
		a.artifactFS = fsys
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithWatchPaths replaces the files and directories the dev server watches.
func WithWatchPaths(paths ...string) Option {
	return func(a *App) {
		a.watchPaths = append([]string{}, paths...)
	}
}

func New(opts ...Option) (*App, error) {
	app := &App{}
	for _, opt := range opts {
		opt(app)
	}

	if !app.modeSet {
		app.mode = env.DetectMode()
	}
	if app.logger == nil {
		app.logger = logger.L()
	}
	if app.source == nil {
		app.source = config.NewFileSource("")
	}

	cfg, err := app.source.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		if app.mode != ModeDev {
			return nil, err
		}
		app.logger.Warn("config.invalid", "error", err)
	}
	app.cfg = cfg

	if app.watchPaths == nil {
		app.watchPaths = []string{config.DefaultFile, cfg.Server.PublicDir}
	}

	r, err := newRenderer(app)
	if err != nil {
		return nil, err
	}
	app.renderer = r
	app.pages = usecase.NewPageService(app.source)

	return app, nil
}

func (a *App) Mode() Mode {
	return a.mode
}

func (a *App) Config() config.Config {
	return a.cfg
}

// Handler returns the full site behind the default middleware stack.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(adhttp.RequestLogger(a.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))
	r.Use(middleware.SetHeader("Referrer-Policy", "strict-origin-when-cross-origin"))
	r.Use(middleware.Heartbeat("/healthz"))
	return a.Wrap(r)
}

// Wrap mounts the site routes on r. Unmatched requests fall through to the
// public directory and then to the not-found page.
func (a *App) Wrap(r chi.Router) http.Handler {
	isDev := a.mode == ModeDev
	rr := a.renderer

	var notFound http.Handler
	for _, page := range core.Pages() {
		handler := adhttp.NewPageHandler(a.pages, page.Entry, rr.manifest, rr.artifact, isDev, a.logger)
		if page.Route == "" {
			notFound = handler
			continue
		}
		r.Method(http.MethodGet, page.Route, handler)
	}

	r.Method(http.MethodGet, core.StylesheetPath, adhttp.NewStylesheetHandler(a.pages, rr.manifest, rr.artifact, isDev, a.logger))

	if rr.hub != nil {
		r.Method(http.MethodGet, adhttp.ReloadPath, rr.hub)
	}

	r.NotFound(adhttp.NewPublicHandler(rr.public, notFound, isDev).ServeHTTP)
	return r
}

func (a *App) Stop() error {
	if a.renderer != nil {
		return a.renderer.stop()
	}
	return nil
}
