package theme

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	PropForeground      = "--foreground-rgb"
	PropBackgroundStart = "--background-start-rgb"
	PropBackgroundEnd   = "--background-end-rgb"
	PropFontSans        = "--font-sans"
)

// RequiredProperties are the custom properties every color scheme must define.
var RequiredProperties = []string{
	PropForeground,
	PropBackgroundStart,
	PropBackgroundEnd,
}

// RGB is a color written the way the stylesheet consumes it: "r, g, b",
// wrapped by rgb(var(--name)) at the use site.
type RGB [3]uint8

func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c[0], c[1], c[2])
}

func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("rgb %q: want 3 comma separated channels, got %d", s, len(parts))
	}

	var c RGB
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return RGB{}, fmt.Errorf("rgb %q: channel %d: %w", s, i, err)
		}
		if n < 0 || n > 255 {
			return RGB{}, fmt.Errorf("rgb %q: channel %d out of range 0..255", s, i)
		}
		c[i] = uint8(n)
	}
	return c, nil
}

type Scheme int

const (
	SchemeLight Scheme = iota
	SchemeDark
)

func (s Scheme) String() string {
	switch s {
	case SchemeDark:
		return "dark"
	default:
		return "light"
	}
}

type Palette struct {
	Foreground      RGB
	BackgroundStart RGB
	BackgroundEnd   RGB
}

// Get returns the palette value bound to a required custom property.
func (p Palette) Get(prop string) (RGB, bool) {
	switch prop {
	case PropForeground:
		return p.Foreground, true
	case PropBackgroundStart:
		return p.BackgroundStart, true
	case PropBackgroundEnd:
		return p.BackgroundEnd, true
	}
	return RGB{}, false
}

func (p *Palette) set(prop string, c RGB) {
	switch prop {
	case PropForeground:
		p.Foreground = c
	case PropBackgroundStart:
		p.BackgroundStart = c
	case PropBackgroundEnd:
		p.BackgroundEnd = c
	}
}

type Theme struct {
	Light      Palette
	Dark       Palette
	FontFamily string
}

func Default() Theme {
	return Theme{
		Light: Palette{
			Foreground:      RGB{0, 0, 0},
			BackgroundStart: RGB{214, 219, 220},
			BackgroundEnd:   RGB{255, 255, 255},
		},
		Dark: Palette{
			Foreground:      RGB{255, 255, 255},
			BackgroundStart: RGB{0, 0, 0},
			BackgroundEnd:   RGB{0, 0, 0},
		},
		FontFamily: "Inter",
	}
}

func (t Theme) Palette(s Scheme) Palette {
	if s == SchemeDark {
		return t.Dark
	}
	return t.Light
}
