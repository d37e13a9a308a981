package cli

import (
	"fmt"
	"io"
	"time"
)

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type reportOutput interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Writer() io.Writer
	ErrWriter() io.Writer
}

type BuildError struct {
	Target  string
	Message string
	Details []string
}

type BuildReport struct {
	out         reportOutput
	steps       []*BuildStep
	warnings    []BuildError
	errors      []BuildError
	startTime   time.Time
	fileCount   int
	outputDir   string
	hasFailures bool
}

func NewBuildReport(out reportOutput, outputDir string) *BuildReport {
	return &BuildReport{
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *BuildReport) SetFileCount(count int) {
	r.fileCount = count
}

func (r *BuildReport) StartStep(name string) *BuildStep {
	step := &BuildStep{
		Name:      name,
		StartTime: time.Now(),
	}
	r.steps = append(r.steps, step)
	return step
}

func (r *BuildReport) EndStep(step *BuildStep, success bool, err string) {
	step.EndTime = time.Now()
	step.Success = success
	step.Error = err
	if !success {
		r.hasFailures = true
	}
}

func (r *BuildReport) AddWarning(target string, message string, details []string) {
	r.warnings = append(r.warnings, BuildError{
		Target:  target,
		Message: message,
		Details: details,
	})
}

func (r *BuildReport) AddError(target string, message string, details []string) {
	r.errors = append(r.errors, BuildError{
		Target:  target,
		Message: message,
		Details: details,
	})
	r.hasFailures = true
}

func (r *BuildReport) Steps() []BuildStep {
	steps := make([]BuildStep, len(r.steps))
	for i, s := range r.steps {
		steps[i] = *s
	}
	return steps
}

func (r *BuildReport) Render() {
	duration := time.Since(r.startTime)

	if len(r.errors) == 0 && len(r.warnings) == 0 {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *BuildReport) renderMinimal(duration time.Duration) {
	w := r.out.Writer()
	fmt.Fprintf(w, "  %s%d files written\n", r.out.Green("✓ "), r.fileCount)

	var failed []string
	for _, step := range r.steps {
		if !step.Success {
			failed = append(failed, "  "+r.out.Red("✗ ")+step.Name)
		}
	}

	if len(failed) == 0 {
		fmt.Fprintf(w, "  %sBuild complete in %s\n", r.out.Green("✓ "), formatDuration(duration))
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed steps:")
		for _, line := range failed {
			fmt.Fprintln(w, line)
		}
	}

	if r.outputDir != "" {
		fmt.Fprintf(w, "\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderVerbose(duration time.Duration) {
	w := r.out.Writer()
	fmt.Fprintf(w, "  %d files written\n", r.fileCount)

	fmt.Fprintln(w)
	for _, step := range r.steps {
		status := r.out.Green("✓")
		if !step.Success {
			status = r.out.Red("✗")
		}
		fmt.Fprintf(w, "  %s %s\n", status, step.Name)
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(r.out.ErrWriter(), "  %sErrors (%d):\n", r.out.Red("✗ "), len(r.errors))
		r.renderErrors(r.errors)
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %sWarnings (%d):\n", r.out.Yellow("⚠ "), len(r.warnings))
		r.renderErrors(r.warnings)
	}

	fmt.Fprintln(w)
	if len(r.errors) > 0 {
		fmt.Fprintf(r.out.ErrWriter(), "  %s\n", r.out.Red(fmt.Sprintf("Build failed after %s", formatDuration(duration))))
	} else {
		fmt.Fprintf(w, "  %sBuild complete in %s\n", r.out.Green("✓ "), formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(w, "\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderErrors(errors []BuildError) {
	w := r.out.Writer()
	for _, err := range errors {
		fmt.Fprintf(w, "  %s %s\n", r.out.Red("✗"), err.Target)
		fmt.Fprintf(w, "    %s\n", err.Message)

		for _, detail := range deduplicateStrings(err.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func (r *BuildReport) HasFailures() bool {
	return r.hasFailures
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicateStrings keeps first-seen order.
func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int)
	var order []string
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if counts[item] > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, counts[item]))
		} else {
			result = append(result, item)
		}
	}

	return result
}
