package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/xilo-pro/xilo/internal/adapters/cli"
	"github.com/xilo-pro/xilo/internal/core"
)

var ErrUnsafeOutDir = errors.New("unsafe output directory")

type BuildInput struct {
	OutDir    string
	PublicDir string
}

type BuildOutput struct {
	Manifest *core.Manifest
	Files    []string
	Success  bool
	Error    error
}

type BuildService struct {
	source SiteSource
	fs     BuildFileSystem
	cli    CLIOutput
}

func NewBuildService(source SiteSource, fs BuildFileSystem, cli CLIOutput) *BuildService {
	return &BuildService{
		source: source,
		fs:     fs,
		cli:    cli,
	}
}

func (s *BuildService) BuildProject(ctx context.Context, input BuildInput) BuildOutput {
	s.cli.PrintHeader("Xilo Build")

	cfg, err := s.source.Load()
	if err != nil {
		return BuildOutput{Error: fmt.Errorf("failed to load config: %w", err)}
	}
	if err := cfg.Validate(); err != nil {
		return BuildOutput{Error: err}
	}

	outDir := input.OutDir
	if outDir == "" {
		outDir = cfg.Server.OutDir
	}
	publicDir := input.PublicDir
	if publicDir == "" {
		publicDir = cfg.Server.PublicDir
	}

	if err := checkOutDir(outDir, publicDir); err != nil {
		return BuildOutput{Error: err}
	}

	report := cli.NewBuildReport(s.cli, outDir)
	manifest := core.NewManifest()
	var files []string

	fail := func(step *cli.BuildStep, target string, err error) BuildOutput {
		report.EndStep(step, false, err.Error())
		report.AddError(target, step.Name+" failed", []string{err.Error()})
		report.SetFileCount(len(files))
		report.Render()
		return BuildOutput{Files: files, Error: err}
	}

	write := func(rel string, content []byte) error {
		if err := s.fs.WriteFile(filepath.Join(outDir, filepath.FromSlash(rel)), content, 0644); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		servedPath := path.Join("/", rel)
		manifest.AddFile(servedPath, content)
		files = append(files, servedPath)
		return nil
	}

	stepDirs := report.StartStep("Preparing output directory")
	if err := s.fs.Remove(outDir); err != nil {
		return fail(stepDirs, outDir, fmt.Errorf("failed to clean %s: %w", outDir, err))
	}
	if err := s.fs.MkdirAll(outDir, 0755); err != nil {
		return fail(stepDirs, outDir, fmt.Errorf("failed to create %s: %w", outDir, err))
	}
	report.EndStep(stepDirs, true, "")

	stepCSS := report.StartStep("Rendering stylesheet")
	css, err := renderStylesheet(cfg)
	if err == nil {
		err = write(core.StylesheetPath, css)
	}
	if err != nil {
		return fail(stepCSS, core.StylesheetPath, err)
	}
	report.EndStep(stepCSS, true, "")

	stepPages := report.StartStep("Rendering pages")
	for _, page := range core.Pages() {
		if err := ctx.Err(); err != nil {
			return fail(stepPages, page.Entry, err)
		}

		htmlPath := core.BuildHTMLPath(page.Entry)
		html, err := renderEntry(cfg, page)
		if err == nil {
			err = write(htmlPath, html)
		}
		if err != nil {
			return fail(stepPages, page.Entry, err)
		}

		manifest.Entries[page.Entry] = core.ManifestEntry{
			Route:  page.Route,
			HTML:   htmlPath,
			CSS:    core.StylesheetPath,
			Status: page.Status,
		}
	}
	report.EndStep(stepPages, true, "")

	if publicDir != "" && s.fs.FileExists(publicDir) {
		stepPublic := report.StartStep("Copying public assets")
		dest := filepath.Join(outDir, "public")
		copied, err := s.fs.CopyDir(publicDir, dest)
		if err != nil {
			report.AddWarning("Public assets", "Failed to copy public assets", []string{err.Error()})
		}
		for _, rel := range copied {
			content, err := s.fs.ReadFile(filepath.Join(dest, filepath.FromSlash(rel)))
			if err != nil {
				report.AddWarning("Public assets", "Failed to hash "+rel, []string{err.Error()})
				continue
			}
			servedPath := path.Join("/public", rel)
			manifest.AddFile(servedPath, content)
			files = append(files, servedPath)
		}
		report.EndStep(stepPublic, true, "")
	}

	stepManifest := report.StartStep("Writing manifest")
	data, err := manifest.Encode()
	if err != nil {
		return fail(stepManifest, core.ManifestFile, fmt.Errorf("encode manifest: %w", err))
	}
	if err := s.fs.WriteFile(filepath.Join(outDir, core.ManifestFile), data, 0644); err != nil {
		return fail(stepManifest, core.ManifestFile, fmt.Errorf("write manifest: %w", err))
	}
	report.EndStep(stepManifest, true, "")

	report.SetFileCount(len(files))
	report.Render()

	return BuildOutput{
		Manifest: manifest,
		Files:    files,
		Success:  true,
	}
}

// checkOutDir refuses output directories whose cleanup would remove the
// project, one of its parents, the home directory or the public files.
func checkOutDir(outDir, publicDir string) error {
	out, err := resolvePath(outDir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", outDir, err)
	}
	if filepath.Dir(out) == out {
		return fmt.Errorf("%w: %q is a filesystem root", ErrUnsafeOutDir, outDir)
	}

	wd, err := resolvePath(".")
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	if within(wd, out) {
		return fmt.Errorf("%w: %q contains the working directory", ErrUnsafeOutDir, outDir)
	}

	if home, err := os.UserHomeDir(); err == nil && within(evalExisting(home), out) {
		return fmt.Errorf("%w: %q contains the home directory", ErrUnsafeOutDir, outDir)
	}

	if publicDir != "" {
		pub, err := resolvePath(publicDir)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", publicDir, err)
		}
		if within(pub, out) || within(out, pub) {
			return fmt.Errorf("%w: %q overlaps the public directory %q", ErrUnsafeOutDir, outDir, publicDir)
		}
	}
	return nil
}

// within reports whether p is dir or lies below it. Both must be absolute.
func within(p, dir string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func resolvePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return evalExisting(abs), nil
}

// evalExisting resolves symlinks in the longest existing prefix of p.
func evalExisting(p string) string {
	if real, err := filepath.EvalSymlinks(p); err == nil {
		return real
	}
	parent := filepath.Dir(p)
	if parent == p {
		return p
	}
	return filepath.Join(evalExisting(parent), filepath.Base(p))
}
