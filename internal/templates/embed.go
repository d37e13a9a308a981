package templates

import (
	"bytes"
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

//go:embed all:scaffold
var scaffoldFS embed.FS

// Scaffold is the file tree `xilo init` writes into a new project.
func Scaffold() (fs.FS, error) {
	return fs.Sub(scaffoldFS, "scaffold")
}

type TemplateData struct {
	Title       string
	Description string
	Message     string
	Lang        string
}

func ProcessFilename(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(name string, content []byte, isTemplate bool, data TemplateData) ([]byte, error) {
	if !isTemplate {
		return content, nil
	}

	t, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeriveTitle turns a project directory into a site title:
// "xilo-pro" becomes "Xilo Pro".
func DeriveTitle(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "Xilo Pro"
	}

	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	if len(words) == 0 {
		return "Xilo Pro"
	}
	return strings.Join(words, " ")
}
