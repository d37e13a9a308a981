package xilo

import (
	"context"

	"github.com/xilo-pro/xilo/internal/adapters/cli"
	"github.com/xilo-pro/xilo/internal/adapters/fs"
	"github.com/xilo-pro/xilo/internal/config"
	"github.com/xilo-pro/xilo/internal/usecase"
)

// Build writes the static artifact for source into input.OutDir.
func Build(ctx context.Context, source config.Source, out *cli.Output, input usecase.BuildInput) usecase.BuildOutput {
	return usecase.NewBuildService(source, fs.NewOSFileSystem(), out).BuildProject(ctx, input)
}

// Lint checks the configuration and the stylesheet rendered from it, or the
// given CSS files instead of the rendered one.
func Lint(ctx context.Context, source config.Source, out *cli.Output, files []string) usecase.LintOutput {
	return usecase.NewLintService(source, fs.NewOSFileSystem(), out).LintProject(ctx, usecase.LintInput{Files: files})
}

// Doctor verifies a build directory against its manifest.
func Doctor(ctx context.Context, out *cli.Output, outDir string) usecase.VerifyOutput {
	return usecase.NewVerifyService(fs.NewOSFileSystem(), out).VerifyBuild(ctx, usecase.VerifyInput{OutDir: outDir})
}
