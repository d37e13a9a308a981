package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type Output struct {
	out          io.Writer
	errOut       io.Writer
	enableColors bool

	green  lipgloss.Style
	yellow lipgloss.Style
	red    lipgloss.Style
	gray   lipgloss.Style
	bold   lipgloss.Style
}

func NewOutput() *Output {
	return NewOutputTo(os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdout.Fd())))
}

func NewOutputTo(out, errOut io.Writer, colors bool) *Output {
	return &Output{
		out:          out,
		errOut:       errOut,
		enableColors: colors,
		green:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		yellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		red:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		gray:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		bold:         lipgloss.NewStyle().Bold(true),
	}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) Writer() io.Writer {
	return o.out
}

func (o *Output) ErrWriter() io.Writer {
	return o.errOut
}

func (o *Output) render(style lipgloss.Style, text string) string {
	if !o.enableColors {
		return text
	}
	return style.Render(text)
}

func (o *Output) Green(text string) string {
	return o.render(o.green, text)
}

func (o *Output) Yellow(text string) string {
	return o.render(o.yellow, text)
}

func (o *Output) Red(text string) string {
	return o.render(o.red, text)
}

func (o *Output) Gray(text string) string {
	return o.render(o.gray, text)
}

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.out, o.render(o.bold, msg))
	fmt.Fprintln(o.out)
}

func (o *Output) PrintStep(msg string, args ...any) {
	fmt.Fprintf(o.out, "  "+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.out, "  %s%s\n", o.Green("✓ "), formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.out, "  %s%s\n", o.Yellow("⚠ "), formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.errOut, "  %s%s\n", o.Red("✗ "), formatted)
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.out, "    %s\n", o.Gray(path))
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.out, msg)
}
