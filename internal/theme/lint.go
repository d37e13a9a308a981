package theme

import (
	"fmt"
	"strings"
)

type Issue struct {
	Property string
	Scheme   Scheme
	Message  string
}

func (i Issue) String() string {
	if i.Property == "" {
		return i.Message
	}
	return fmt.Sprintf("%s (%s): %s", i.Property, i.Scheme, i.Message)
}

// Lint checks that both color schemes declare every required property
// explicitly with a valid "r, g, b" value. An empty result means the
// stylesheet is clean.
func Lint(css string) []Issue {
	sheet, err := ParseSheet(css)
	if err != nil {
		return []Issue{{Message: err.Error()}}
	}

	var issues []Issue
	check := func(scheme Scheme, decls map[string]string, where string) {
		for _, prop := range RequiredProperties {
			v, ok := decls[prop]
			if !ok {
				issues = append(issues, Issue{
					Property: prop,
					Scheme:   scheme,
					Message:  "missing from " + where,
				})
				continue
			}
			if _, err := ParseRGB(v); err != nil {
				issues = append(issues, Issue{
					Property: prop,
					Scheme:   scheme,
					Message:  err.Error(),
				})
			}
		}
	}

	check(SchemeLight, sheet.Root, ":root")
	check(SchemeDark, sheet.Dark, "@media (prefers-color-scheme: dark) :root")
	return issues
}

// Drift compares what css resolves to with t: both palettes and the font
// family. Missing or malformed properties are left to Lint.
func Drift(css string, t Theme) []Issue {
	sheet, err := ParseSheet(css)
	if err != nil {
		return []Issue{{Message: err.Error()}}
	}

	var issues []Issue
	for _, scheme := range []Scheme{SchemeLight, SchemeDark} {
		got, err := sheet.Computed(scheme)
		if err != nil {
			continue
		}
		want := t.Palette(scheme)
		for _, prop := range RequiredProperties {
			g, _ := got.Get(prop)
			w, _ := want.Get(prop)
			if g != w {
				issues = append(issues, Issue{
					Property: prop,
					Scheme:   scheme,
					Message:  fmt.Sprintf("resolves to %s, configured %s", g, w),
				})
			}
		}
	}

	if font, ok := sheet.Lookup(PropFontSans, SchemeLight); ok && strings.Trim(font, `"'`) != t.FontFamily {
		issues = append(issues, Issue{
			Property: PropFontSans,
			Scheme:   SchemeLight,
			Message:  fmt.Sprintf("resolves to %s, configured %q", font, t.FontFamily),
		})
	}
	return issues
}
