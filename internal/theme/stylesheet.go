package theme

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed globals.css.tmpl
var globalsSource string

var globalsTemplate = template.Must(template.New("globals.css").Parse(globalsSource))

// Render produces globals.css for t. Light values sit in the top-level :root,
// dark values override them under prefers-color-scheme: dark.
func Render(t Theme) (string, error) {
	var b strings.Builder
	if err := globalsTemplate.Execute(&b, t); err != nil {
		return "", err
	}
	return b.String(), nil
}
