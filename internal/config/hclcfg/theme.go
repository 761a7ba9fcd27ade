package hclcfg

import (
	"fmt"
	"image/color"

	"github.com/DennisDane/geekmagic-go/internal/theme"
)

// themeBlock decodes a custom theme definition. Every field is optional;
// whatever stays unset is inherited from the base.
type themeBlock struct {
	Name string  `hcl:"name,label"`
	Base *string `hcl:"base,optional"`

	Primary        *string `hcl:"primary,optional"`
	Secondary      *string `hcl:"secondary,optional"`
	Success        *string `hcl:"success,optional"`
	Warning        *string `hcl:"warning,optional"`
	Error          *string `hcl:"error,optional"`
	Muted          *string `hcl:"muted,optional"`
	Background     *string `hcl:"background,optional"`
	Surface        *string `hcl:"surface,optional"`
	SurfaceVariant *string `hcl:"surface_variant,optional"`
	Border         *string `hcl:"border,optional"`
	TextPrimary    *string `hcl:"text_primary,optional"`
	TextSecondary  *string `hcl:"text_secondary,optional"`
	TextOnPrimary  *string `hcl:"text_on_primary,optional"`
	BarBackground  *string `hcl:"bar_background,optional"`

	AccentColors []string `hcl:"accent_colors,optional"`

	CornerRadius  *int    `hcl:"corner_radius,optional"`
	BorderWidth   *int    `hcl:"border_width,optional"`
	BorderStyle   *string `hcl:"border_style,optional"`
	LayoutPadding *int    `hcl:"layout_padding,optional"`
	WidgetPadding *int    `hcl:"widget_padding,optional"`
	Gap           *int    `hcl:"gap,optional"`

	ValueBold  *bool `hcl:"value_bold,optional"`
	Scanlines  *bool `hcl:"scanlines,optional"`
	InvertBars *bool `hcl:"invert_bars,optional"`
}

// translateTheme builds a theme from a block, inheriting from a base that
// may be a builtin or an earlier custom theme.
func translateTheme(b *themeBlock, custom map[string]theme.Theme) (theme.Theme, error) {
	base := theme.Default
	if b.Base != nil {
		if t, ok := custom[*b.Base]; ok {
			base = t
		} else if t, ok := theme.Lookup(*b.Base); ok {
			base = t
		} else {
			return theme.Theme{}, fmt.Errorf("hclcfg: theme %q: unknown base %q", b.Name, *b.Base)
		}
	}

	out := base
	out.Name = b.Name

	colorFields := []struct {
		src *string
		dst *color.RGBA
	}{
		{b.Primary, &out.Primary},
		{b.Secondary, &out.Secondary},
		{b.Success, &out.Success},
		{b.Warning, &out.Warning},
		{b.Error, &out.Error},
		{b.Muted, &out.Muted},
		{b.Background, &out.Background},
		{b.Surface, &out.Surface},
		{b.SurfaceVariant, &out.SurfaceVariant},
		{b.Border, &out.Border},
		{b.TextPrimary, &out.TextPrimary},
		{b.TextSecondary, &out.TextSecondary},
		{b.TextOnPrimary, &out.TextOnPrimary},
		{b.BarBackground, &out.BarBackground},
	}
	for _, f := range colorFields {
		if f.src == nil {
			continue
		}
		c, err := theme.ParseHex(*f.src)
		if err != nil {
			return theme.Theme{}, fmt.Errorf("hclcfg: theme %q: %w", b.Name, err)
		}
		*f.dst = c
	}

	if len(b.AccentColors) > 0 {
		accents := make([]color.RGBA, 0, len(b.AccentColors))
		for _, s := range b.AccentColors {
			c, err := theme.ParseHex(s)
			if err != nil {
				return theme.Theme{}, fmt.Errorf("hclcfg: theme %q accent: %w", b.Name, err)
			}
			accents = append(accents, c)
		}
		out.AccentColors = accents
	}

	if b.CornerRadius != nil {
		out.CornerRadius = *b.CornerRadius
	}
	if b.BorderWidth != nil {
		out.BorderWidth = *b.BorderWidth
	}
	if b.BorderStyle != nil {
		switch s := theme.BorderStyle(*b.BorderStyle); s {
		case theme.BorderNone, theme.BorderSolid, theme.BorderOutline:
			out.BorderStyle = s
		default:
			return theme.Theme{}, fmt.Errorf("hclcfg: theme %q: unknown border style %q", b.Name, *b.BorderStyle)
		}
	}
	if b.LayoutPadding != nil {
		out.LayoutPadding = *b.LayoutPadding
	}
	if b.WidgetPadding != nil {
		out.WidgetPadding = *b.WidgetPadding
	}
	if b.Gap != nil {
		out.Gap = *b.Gap
	}
	if b.ValueBold != nil {
		out.ValueBold = *b.ValueBold
	}
	if b.Scanlines != nil {
		out.Scanlines = *b.Scanlines
	}
	if b.InvertBars != nil {
		out.InvertBars = *b.InvertBars
	}
	return out, nil
}
