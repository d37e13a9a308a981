package core

import (
	"html/template"
	"strings"
)

// Document is everything the root layout needs: site metadata plus the
// already rendered page body.
type Document struct {
	Lang           string
	Title          string
	Description    string
	FontHref       string
	StylesheetHref string
	Body           template.HTML
}

var layoutTemplate = template.Must(template.New("layout").Parse(`<!doctype html>
<html lang="{{.Lang}}">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
    {{- if .Description}}
    <meta name="description" content="{{.Description}}" />
    {{- end}}
    {{- if .FontHref}}
    <link rel="preconnect" href="https://fonts.googleapis.com" />
    <link rel="stylesheet" href="{{.FontHref}}" />
    {{- end}}
    <link rel="stylesheet" href="{{.StylesheetHref}}" />
  </head>
  <body>
    {{.Body}}
  </body>
</html>
`))

// RenderDocument wraps doc.Body in the root <html><body> shell. It has no
// side effects and returns identical bytes for identical input.
func RenderDocument(doc Document) (string, error) {
	if doc.Lang == "" {
		doc.Lang = "en"
	}

	var b strings.Builder
	if err := layoutTemplate.Execute(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}
