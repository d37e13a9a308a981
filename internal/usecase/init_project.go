package usecase

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/xilo-pro/xilo/internal/config"
	"github.com/xilo-pro/xilo/internal/templates"
)

var ErrProjectExists = errors.New("project already initialized")

type InitInput struct {
	ProjectDir  string
	Title       string
	Description string
	Message     string
}

type InitOutput struct {
	Files   []string
	Success bool
	Error   error
}

type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

// InitProject writes the starter config, public directory and .gitignore.
// An existing xilo.yaml is never overwritten.
func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("Xilo Init")

	if s.fs.FileExists(filepath.Join(input.ProjectDir, config.DefaultFile)) {
		return InitOutput{Error: fmt.Errorf("%w: %s exists in %s", ErrProjectExists, config.DefaultFile, input.ProjectDir)}
	}

	defaults := config.Default()
	data := templates.TemplateData{
		Title:       input.Title,
		Description: input.Description,
		Message:     input.Message,
		Lang:        defaults.Site.Lang,
	}
	if data.Title == "" {
		data.Title = templates.DeriveTitle(input.ProjectDir)
	}
	if data.Description == "" {
		data.Description = data.Title + " - soon..."
	}
	if data.Message == "" {
		data.Message = data.Description
	}

	scaffold, err := templates.Scaffold()
	if err != nil {
		return InitOutput{Error: fmt.Errorf("failed to open scaffold: %w", err)}
	}

	var files []string
	err = fs.WalkDir(scaffold, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return s.fs.MkdirAll(filepath.Join(input.ProjectDir, path), 0755)
		}

		content, err := fs.ReadFile(scaffold, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		targetPath, isTemplate := templates.ProcessFilename(path)
		processed, err := templates.ProcessContent(path, content, isTemplate, data)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", path, err)
		}

		target := filepath.Join(input.ProjectDir, filepath.FromSlash(targetPath))
		if s.fs.FileExists(target) {
			s.cli.PrintWarning("Skipped %s (exists)", targetPath)
			return nil
		}
		if err := s.fs.WriteFile(target, processed, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}

		s.cli.PrintFile(targetPath)
		files = append(files, targetPath)
		return nil
	})
	if err != nil {
		return InitOutput{Files: files, Error: err}
	}

	cfg, err := config.Load(filepath.Join(input.ProjectDir, config.DefaultFile))
	if err != nil {
		return InitOutput{Files: files, Error: err}
	}
	if err := cfg.Validate(); err != nil {
		return InitOutput{Files: files, Error: err}
	}

	s.cli.PrintSuccess("Created %d files", len(files))
	s.cli.PrintStep("Next: xilo dev")
	return InitOutput{Files: files, Success: true}
}
