package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/xilo-pro/xilo/internal/theme"
)

var ErrLintFailed = errors.New("lint failed")

type LintInput struct {
	// Files are stylesheets to check. Empty means the stylesheet rendered
	// from the current config.
	Files []string
}

type LintIssue struct {
	Source  string
	Message string
}

func (i LintIssue) String() string {
	return i.Source + ": " + i.Message
}

type LintOutput struct {
	Issues []LintIssue
	Error  error
}

type LintService struct {
	source SiteSource
	fs     FileSystem
	cli    CLIOutput
}

func NewLintService(source SiteSource, fs FileSystem, cli CLIOutput) *LintService {
	return &LintService{
		source: source,
		fs:     fs,
		cli:    cli,
	}
}

func (s *LintService) LintProject(ctx context.Context, input LintInput) LintOutput {
	s.cli.PrintHeader("Xilo Lint")

	cfg, err := s.source.Load()
	if err != nil {
		return LintOutput{Error: fmt.Errorf("failed to load config: %w", err)}
	}

	var issues []LintIssue
	for _, problem := range cfg.Problems() {
		issues = append(issues, LintIssue{Source: "config", Message: problem.Error()})
	}

	sheets := make(map[string]string)
	var order []string
	if len(input.Files) == 0 {
		css, err := renderStylesheet(cfg)
		if err != nil {
			issues = append(issues, LintIssue{Source: "globals.css", Message: err.Error()})
		} else {
			sheets["globals.css"] = string(css)
			order = append(order, "globals.css")

			t, _ := cfg.ThemeValue()
			for _, issue := range theme.Drift(string(css), t) {
				issues = append(issues, LintIssue{Source: "globals.css", Message: issue.String()})
			}
		}
	}
	for _, file := range input.Files {
		data, err := s.fs.ReadFile(file)
		if err != nil {
			return LintOutput{Issues: issues, Error: fmt.Errorf("read %s: %w", file, err)}
		}
		sheets[file] = string(data)
		order = append(order, file)
	}

	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return LintOutput{Issues: issues, Error: err}
		}
		found := theme.Lint(sheets[name])
		for _, issue := range found {
			issues = append(issues, LintIssue{Source: name, Message: issue.String()})
		}
		if len(found) == 0 {
			s.cli.PrintSuccess("%s", name)
		}
	}

	if len(issues) > 0 {
		for _, issue := range issues {
			s.cli.PrintError("%s", issue)
		}
		return LintOutput{
			Issues: issues,
			Error:  fmt.Errorf("%w: %d issue(s)", ErrLintFailed, len(issues)),
		}
	}

	s.cli.PrintDone("No issues found")
	return LintOutput{}
}
