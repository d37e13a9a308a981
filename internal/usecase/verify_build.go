package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/xilo-pro/xilo/internal/core"
)

var ErrBuildCorrupt = errors.New("build output does not match its manifest")

type VerifyInput struct {
	OutDir string
}

type VerifyOutput struct {
	Manifest *core.Manifest
	Problems []string
	Error    error
}

// VerifyService checks a build directory against its manifest.
type VerifyService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewVerifyService(fs FileSystem, cli CLIOutput) *VerifyService {
	return &VerifyService{fs: fs, cli: cli}
}

func (s *VerifyService) VerifyBuild(ctx context.Context, input VerifyInput) VerifyOutput {
	s.cli.PrintHeader("Xilo Doctor")

	data, err := s.fs.ReadFile(filepath.Join(input.OutDir, core.ManifestFile))
	if err != nil {
		return VerifyOutput{Error: fmt.Errorf("%w: %v", core.ErrManifestMissing, err)}
	}

	manifest, err := core.ParseManifest(data)
	if err != nil {
		return VerifyOutput{Error: fmt.Errorf("%w: parse manifest: %v", ErrBuildCorrupt, err)}
	}

	var problems []string
	for _, page := range core.Pages() {
		entry, ok := manifest.Entry(page.Entry)
		if !ok {
			problems = append(problems, fmt.Sprintf("entry %q missing from manifest", page.Entry))
			continue
		}
		if _, ok := manifest.Hash(entry.HTML); !ok {
			problems = append(problems, fmt.Sprintf("entry %q: %s not listed in assets", page.Entry, entry.HTML))
		}
	}
	if _, ok := manifest.Hash(core.StylesheetPath); !ok {
		problems = append(problems, core.StylesheetPath+" not listed in assets")
	}

	paths := make([]string, 0, len(manifest.Assets))
	for p := range manifest.Assets {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return VerifyOutput{Manifest: manifest, Problems: problems, Error: err}
		}
		if err := core.ValidateAssetPath(p); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", p, err))
			continue
		}

		content, err := s.fs.ReadFile(filepath.Join(input.OutDir, filepath.FromSlash(p)))
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: missing", p))
			continue
		}
		if got := core.HashContent(content); got != manifest.Assets[p] {
			problems = append(problems, fmt.Sprintf("%s: hash %s, manifest says %s", p, got, manifest.Assets[p]))
			continue
		}
		s.cli.PrintFile(p)
	}

	if len(problems) > 0 {
		for _, p := range problems {
			s.cli.PrintError("%s", p)
		}
		return VerifyOutput{
			Manifest: manifest,
			Problems: problems,
			Error:    fmt.Errorf("%w: %d problem(s)", ErrBuildCorrupt, len(problems)),
		}
	}

	s.cli.PrintSuccess("%d files verified", len(paths))
	return VerifyOutput{Manifest: manifest}
}
