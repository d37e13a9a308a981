package core

import (
	"html/template"
	"net/http"
	"strings"
)

// Site is the metadata shared by every page.
type Site struct {
	Lang           string
	Title          string
	Description    string
	Message        string
	FontHref       string
	StylesheetHref string
}

type RenderedPage struct {
	// Title replaces the site title when set.
	Title string
	Body  template.HTML
}

type Page struct {
	Route  string
	Entry  string
	Status int
	Render func(Site) (RenderedPage, error)
}

const (
	HomeEntry     = "index"
	NotFoundEntry = "404"

	NotFoundTitle = "404: This page could not be found."
)

var (
	homeTemplate = template.Must(template.New("home").Parse(
		`<main class="flex min-h-screen flex-col items-center justify-center p-24">{{.}}</main>`))

	notFoundTemplate = template.Must(template.New("not-found").Parse(
		`<main class="flex min-h-screen flex-col items-center justify-center p-24"><h1>404</h1><p>This page could not be found.</p></main>`))
)

func HomePage(site Site) (RenderedPage, error) {
	body, err := execute(homeTemplate, site.Message)
	if err != nil {
		return RenderedPage{}, err
	}
	return RenderedPage{Body: body}, nil
}

func NotFoundPage(Site) (RenderedPage, error) {
	body, err := execute(notFoundTemplate, nil)
	if err != nil {
		return RenderedPage{}, err
	}
	return RenderedPage{Title: NotFoundTitle, Body: body}, nil
}

// Pages lists every page the site serves. The not-found page has no route;
// it answers for everything the router does not match.
func Pages() []Page {
	return []Page{
		routed("/", http.StatusOK, HomePage),
		{Entry: NotFoundEntry, Status: http.StatusNotFound, Render: NotFoundPage},
	}
}

func routed(route string, status int, render func(Site) (RenderedPage, error)) Page {
	route = NormalizePath(route)
	return Page{
		Route:  route,
		Entry:  EntryNameForRoute(route),
		Status: status,
		Render: render,
	}
}

func PageByEntry(entry string) (Page, bool) {
	for _, p := range Pages() {
		if p.Entry == entry {
			return p, true
		}
	}
	return Page{}, false
}

// RenderPage composes page into the root layout.
func RenderPage(site Site, page Page) (string, error) {
	rendered, err := page.Render(site)
	if err != nil {
		return "", err
	}

	title := site.Title
	if rendered.Title != "" {
		title = rendered.Title
	}

	return RenderDocument(Document{
		Lang:           site.Lang,
		Title:          title,
		Description:    site.Description,
		FontHref:       site.FontHref,
		StylesheetHref: site.StylesheetHref,
		Body:           rendered.Body,
	})
}

func execute(t *template.Template, data any) (template.HTML, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
