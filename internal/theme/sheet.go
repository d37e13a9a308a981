package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

var ErrSyntax = errors.New("stylesheet syntax error")

// Sheet holds the :root declarations of a stylesheet, split by the color
// scheme they apply to.
type Sheet struct {
	Root map[string]string
	Dark map[string]string
}

type block struct {
	rule   bool
	media  bool
	dark   bool
	target map[string]string
}

// ParseSheet tokenizes css and collects the declarations of top-level :root
// rules and of :root rules nested in a prefers-color-scheme: dark media block.
// Other rules are walked but not recorded.
func ParseSheet(css string) (*Sheet, error) {
	sheet := &Sheet{
		Root: make(map[string]string),
		Dark: make(map[string]string),
	}

	var (
		stack []block
		buf   strings.Builder
	)

	s := scanner.New(css)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if len(stack) > 0 {
				return nil, fmt.Errorf("%w: %d unclosed block(s)", ErrSyntax, len(stack))
			}
			return sheet, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("%w: line %d column %d: unexpected %q", ErrSyntax, tok.Line, tok.Column, tok.Value)
		case scanner.TokenComment:
			continue
		case scanner.TokenChar:
			switch tok.Value {
			case "{":
				stack = append(stack, openBlock(sheet, stack, buf.String()))
				buf.Reset()
				continue
			case "}":
				if len(stack) == 0 {
					return nil, fmt.Errorf("%w: line %d column %d: unbalanced }", ErrSyntax, tok.Line, tok.Column)
				}
				top := stack[len(stack)-1]
				if top.rule {
					addDeclaration(top.target, buf.String())
				}
				stack = stack[:len(stack)-1]
				buf.Reset()
				continue
			case ";":
				if len(stack) > 0 && stack[len(stack)-1].rule {
					addDeclaration(stack[len(stack)-1].target, buf.String())
				}
				buf.Reset()
				continue
			}
		}
		buf.WriteString(tok.Value)
	}
}

func openBlock(sheet *Sheet, stack []block, prelude string) block {
	prelude = strings.TrimSpace(prelude)

	var parent block
	if len(stack) > 0 {
		parent = stack[len(stack)-1]
	}

	if strings.HasPrefix(prelude, "@") {
		return block{
			media: true,
			dark:  parent.dark || isDarkQuery(prelude),
		}
	}

	b := block{rule: true}
	if !hasRootSelector(prelude) {
		return b
	}
	switch {
	case parent.dark:
		b.target = sheet.Dark
	case !parent.media:
		b.target = sheet.Root
	}
	return b
}

func isDarkQuery(prelude string) bool {
	q := strings.ToLower(strings.Join(strings.Fields(prelude), ""))
	return strings.HasPrefix(q, "@media") && strings.Contains(q, "prefers-color-scheme:dark")
}

func hasRootSelector(prelude string) bool {
	for _, sel := range strings.Split(prelude, ",") {
		if strings.TrimSpace(sel) == ":root" {
			return true
		}
	}
	return false
}

func addDeclaration(target map[string]string, decl string) {
	if target == nil {
		return
	}
	name, value, ok := strings.Cut(decl, ":")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	target[name] = strings.TrimSpace(value)
}

// Lookup returns the effective value of prop for a scheme: dark declarations
// override the top-level :root ones.
func (s *Sheet) Lookup(prop string, scheme Scheme) (string, bool) {
	if scheme == SchemeDark {
		if v, ok := s.Dark[prop]; ok {
			return v, true
		}
	}
	v, ok := s.Root[prop]
	return v, ok
}

// Computed resolves the palette a client with the given color-scheme
// preference ends up with.
func (s *Sheet) Computed(scheme Scheme) (Palette, error) {
	var p Palette
	for _, prop := range RequiredProperties {
		v, ok := s.Lookup(prop, scheme)
		if !ok {
			return Palette{}, fmt.Errorf("%s: %s is not defined", scheme, prop)
		}
		c, err := ParseRGB(v)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %s: %w", scheme, prop, err)
		}
		p.set(prop, c)
	}
	return p, nil
}
