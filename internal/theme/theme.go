// Package theme defines the design system applied uniformly across widgets:
// colors, shapes, spacing, typography and visual effects. Builtin presets
// can be extended or overridden from configuration.
package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// BorderStyle selects how widget panels are outlined.
type BorderStyle string

const (
	BorderNone    BorderStyle = "none"
	BorderSolid   BorderStyle = "solid"
	BorderOutline BorderStyle = "outline"
)

// Theme is a complete visual preset. All colors are opaque RGBA.
type Theme struct {
	Name string

	// Design system colors.
	Primary   color.RGBA
	Secondary color.RGBA
	Success   color.RGBA
	Warning   color.RGBA
	Error     color.RGBA
	Muted     color.RGBA

	// Surface colors.
	Background     color.RGBA
	Surface        color.RGBA
	SurfaceVariant color.RGBA
	Border         color.RGBA

	// Text colors.
	TextPrimary   color.RGBA
	TextSecondary color.RGBA
	TextOnPrimary color.RGBA

	// Accent palette widgets cycle through by slot index.
	AccentColors []color.RGBA

	// Shape styling.
	CornerRadius int
	BorderWidth  int
	BorderStyle  BorderStyle

	// Spacing.
	LayoutPadding int
	WidgetPadding int
	Gap           int

	// Typography.
	ValueBold bool

	// Visual effects.
	Scanlines  bool
	InvertBars bool

	// Progress/gauge track color.
	BarBackground color.RGBA
}

// Accent returns the accent color for a slot index, cycling through the
// palette. Falls back to Primary when the palette is empty.
func (t Theme) Accent(index int) color.RGBA {
	if len(t.AccentColors) == 0 {
		return t.Primary
	}
	if index < 0 {
		index = -index
	}
	return t.AccentColors[index%len(t.AccentColors)]
}

// ParseHex parses a "#rrggbb" or "rrggbb" color string.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("theme: invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("theme: invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
