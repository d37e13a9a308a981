package xilo

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"time"

	"github.com/xilo-pro/xilo/internal/adapters/fs"
	adhttp "github.com/xilo-pro/xilo/internal/adapters/http"
	"github.com/xilo-pro/xilo/internal/core"
)

const watchDebounce = 100 * time.Millisecond

type renderer struct {
	isDev    bool
	manifest *core.Manifest
	artifact fs.FileSystem
	public   fs.FileSystem
	hub      *adhttp.ReloadHub
	cancel   context.CancelFunc
	done     chan struct{}
}

func newRenderer(app *App) (*renderer, error) {
	r := &renderer{
		isDev: app.mode == ModeDev,
	}

	if r.isDev {
		return r.initDevMode(app)
	}
	return r.initProdMode(app)
}

func (r *renderer) initProdMode(app *App) (*renderer, error) {
	artifactFS := app.artifactFS
	if artifactFS == nil {
		artifactFS = os.DirFS(app.cfg.Server.OutDir)
	}

	man, err := loadManifest(artifactFS)
	if err != nil {
		return nil, err
	}
	r.manifest = man
	r.artifact = fs.NewReadOnlyFileSystem(artifactFS)

	public, err := iofs.Sub(artifactFS, "public")
	if err != nil {
		return nil, fmt.Errorf("open public files: %w", err)
	}
	r.public = fs.NewReadOnlyFileSystem(public)

	app.logger.Debug("manifest.loaded", "entries", len(man.Entries), "assets", len(man.Assets))
	return r, nil
}

func loadManifest(fsys iofs.FS) (*core.Manifest, error) {
	data, err := iofs.ReadFile(fsys, core.ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrManifestMissing, err)
	}

	man, err := core.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", core.ManifestFile, err)
	}
	return man, nil
}

func (r *renderer) initDevMode(app *App) (*renderer, error) {
	r.public = fs.NewReadOnlyFileSystem(os.DirFS(app.cfg.Server.PublicDir))
	r.hub = adhttp.NewReloadHub()

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	watcher := adhttp.NewWatcher(app.watchPaths, watchDebounce, func() {
		app.logger.Info("reload.triggered")
		r.hub.Notify()
	}, app.logger)

	go func() {
		defer close(r.done)
		watcher.Run(ctx)
	}()

	return r, nil
}

func (r *renderer) stop() error {
	if r.cancel != nil {
		r.cancel()
		<-r.done
		r.cancel = nil
	}
	return nil
}
