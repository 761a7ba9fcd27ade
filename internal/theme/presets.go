package theme

import "image/color"

// Builtin presets. Classic is the default and the fallback for unknown names.

// Classic is a balanced dark theme built on a colorblind-friendly palette.
var Classic = Theme{
	Name:           "classic",
	Primary:        rgb(27, 158, 119),
	Secondary:      rgb(117, 112, 179),
	Success:        rgb(102, 166, 30),
	Warning:        rgb(230, 171, 2),
	Error:          rgb(231, 76, 60),
	Muted:          rgb(100, 100, 100),
	Background:     rgb(0, 0, 0),
	Surface:        rgb(18, 18, 18),
	SurfaceVariant: rgb(28, 28, 28),
	Border:         rgb(60, 60, 60),
	TextPrimary:    rgb(255, 255, 255),
	TextSecondary:  rgb(150, 150, 150),
	TextOnPrimary:  rgb(255, 255, 255),
	AccentColors: []color.RGBA{
		rgb(27, 158, 119),  // teal
		rgb(217, 95, 2),    // orange
		rgb(117, 112, 179), // lavender
		rgb(231, 41, 138),  // magenta
		rgb(102, 166, 30),  // lime
		rgb(230, 171, 2),   // gold
	},
	CornerRadius:  8,
	BorderWidth:   0,
	BorderStyle:   BorderNone,
	LayoutPadding: 8,
	WidgetPadding: 6,
	Gap:           6,
	ValueBold:     true,
	BarBackground: rgb(50, 50, 50),
}

// Minimal is sharp, clean and monochrome with a single ice-blue accent.
var Minimal = Theme{
	Name:           "minimal",
	Primary:        rgb(100, 200, 255),
	Secondary:      rgb(180, 180, 180),
	Success:        rgb(100, 200, 100),
	Warning:        rgb(255, 200, 100),
	Error:          rgb(255, 100, 100),
	Muted:          rgb(80, 80, 80),
	Background:     rgb(0, 0, 0),
	Surface:        rgb(0, 0, 0),
	SurfaceVariant: rgb(15, 15, 15),
	Border:         rgb(80, 80, 80),
	TextPrimary:    rgb(255, 255, 255),
	TextSecondary:  rgb(120, 120, 120),
	TextOnPrimary:  rgb(0, 0, 0),
	AccentColors:   []color.RGBA{rgb(100, 200, 255)},
	CornerRadius:   0,
	BorderWidth:    1,
	BorderStyle:    BorderSolid,
	LayoutPadding:  4,
	WidgetPadding:  4,
	Gap:            4,
	ValueBold:      false,
	BarBackground:  rgb(40, 40, 40),
}

// Neon is a cyberpunk look with saturated cyan/magenta accents.
var Neon = Theme{
	Name:           "neon",
	Primary:        rgb(0, 255, 255),
	Secondary:      rgb(255, 0, 255),
	Success:        rgb(0, 255, 128),
	Warning:        rgb(255, 255, 0),
	Error:          rgb(255, 50, 50),
	Muted:          rgb(80, 80, 100),
	Background:     rgb(5, 5, 15),
	Surface:        rgb(10, 10, 20),
	SurfaceVariant: rgb(15, 15, 30),
	Border:         rgb(0, 255, 255),
	TextPrimary:    rgb(255, 255, 255),
	TextSecondary:  rgb(200, 200, 220),
	TextOnPrimary:  rgb(0, 0, 0),
	AccentColors: []color.RGBA{
		rgb(0, 255, 255),
		rgb(255, 0, 255),
		rgb(0, 255, 128),
		rgb(255, 100, 200),
		rgb(100, 200, 255),
		rgb(255, 255, 0),
	},
	CornerRadius:  4,
	BorderWidth:   2,
	BorderStyle:   BorderSolid,
	LayoutPadding: 8,
	WidgetPadding: 6,
	Gap:           6,
	ValueBold:     true,
	BarBackground: rgb(20, 20, 40),
}

// Retro is a green-phosphor terminal look with scanlines.
var Retro = Theme{
	Name:           "retro",
	Primary:        rgb(0, 255, 0),
	Secondary:      rgb(255, 180, 0),
	Success:        rgb(0, 255, 0),
	Warning:        rgb(255, 180, 0),
	Error:          rgb(255, 50, 0),
	Muted:          rgb(0, 100, 0),
	Background:     rgb(0, 8, 0),
	Surface:        rgb(0, 0, 0),
	SurfaceVariant: rgb(0, 15, 0),
	Border:         rgb(0, 180, 0),
	TextPrimary:    rgb(0, 255, 0),
	TextSecondary:  rgb(0, 150, 0),
	TextOnPrimary:  rgb(0, 0, 0),
	AccentColors:   []color.RGBA{rgb(0, 255, 0), rgb(255, 180, 0)},
	CornerRadius:   0,
	BorderWidth:    1,
	BorderStyle:    BorderOutline,
	LayoutPadding:  10,
	WidgetPadding:  8,
	Gap:            8,
	ValueBold:      true,
	Scanlines:      true,
	InvertBars:     true,
	BarBackground:  rgb(0, 40, 0),
}

// Soft is rounded, muted and cozy.
var Soft = Theme{
	Name:           "soft",
	Primary:        rgb(120, 180, 220),
	Secondary:      rgb(180, 140, 200),
	Success:        rgb(140, 200, 160),
	Warning:        rgb(220, 180, 140),
	Error:          rgb(220, 140, 140),
	Muted:          rgb(100, 100, 115),
	Background:     rgb(15, 15, 20),
	Surface:        rgb(30, 30, 40),
	SurfaceVariant: rgb(40, 40, 55),
	Border:         rgb(50, 50, 65),
	TextPrimary:    rgb(240, 240, 245),
	TextSecondary:  rgb(140, 140, 155),
	TextOnPrimary:  rgb(20, 20, 30),
	AccentColors: []color.RGBA{
		rgb(120, 180, 220),
		rgb(180, 140, 200),
		rgb(140, 200, 160),
		rgb(220, 180, 140),
		rgb(200, 150, 180),
		rgb(180, 200, 140),
	},
	CornerRadius:  16,
	BorderWidth:   1,
	BorderStyle:   BorderSolid,
	LayoutPadding: 10,
	WidgetPadding: 8,
	Gap:           8,
	ValueBold:     false,
	BarBackground: rgb(45, 45, 60),
}

// Light is a clean light theme with white surfaces.
var Light = Theme{
	Name:           "light",
	Primary:        rgb(0, 122, 204),
	Secondary:      rgb(102, 45, 145),
	Success:        rgb(40, 167, 69),
	Warning:        rgb(255, 193, 7),
	Error:          rgb(220, 53, 69),
	Muted:          rgb(180, 180, 180),
	Background:     rgb(255, 255, 255),
	Surface:        rgb(255, 255, 255),
	SurfaceVariant: rgb(250, 250, 252),
	Border:         rgb(230, 230, 235),
	TextPrimary:    rgb(30, 30, 35),
	TextSecondary:  rgb(100, 100, 110),
	TextOnPrimary:  rgb(255, 255, 255),
	AccentColors: []color.RGBA{
		rgb(0, 122, 204),
		rgb(102, 45, 145),
		rgb(40, 167, 69),
		rgb(255, 140, 0),
		rgb(220, 53, 69),
		rgb(23, 162, 184),
	},
	CornerRadius:  12,
	BorderWidth:   0,
	BorderStyle:   BorderNone,
	LayoutPadding: 8,
	WidgetPadding: 6,
	Gap:           6,
	ValueBold:     true,
	BarBackground: rgb(235, 235, 240),
}

// Ocean is a deep blue nautical theme.
var Ocean = Theme{
	Name:           "ocean",
	Primary:        rgb(0, 180, 216),
	Secondary:      rgb(72, 202, 228),
	Success:        rgb(0, 200, 150),
	Warning:        rgb(255, 200, 87),
	Error:          rgb(255, 107, 107),
	Muted:          rgb(70, 100, 120),
	Background:     rgb(3, 37, 65),
	Surface:        rgb(10, 50, 80),
	SurfaceVariant: rgb(15, 60, 95),
	Border:         rgb(30, 90, 130),
	TextPrimary:    rgb(240, 248, 255),
	TextSecondary:  rgb(150, 190, 210),
	TextOnPrimary:  rgb(0, 30, 50),
	AccentColors: []color.RGBA{
		rgb(0, 180, 216),
		rgb(72, 202, 228),
		rgb(144, 224, 239),
		rgb(0, 200, 150),
		rgb(255, 200, 87),
		rgb(100, 150, 200),
	},
	CornerRadius:  10,
	BorderWidth:   1,
	BorderStyle:   BorderSolid,
	LayoutPadding: 8,
	WidgetPadding: 6,
	Gap:           6,
	ValueBold:     true,
	BarBackground: rgb(20, 60, 90),
}

// Sunset is a warm, gradient-inspired dark theme.
var Sunset = Theme{
	Name:           "sunset",
	Primary:        rgb(255, 107, 107),
	Secondary:      rgb(255, 159, 67),
	Success:        rgb(106, 176, 76),
	Warning:        rgb(255, 200, 87),
	Error:          rgb(255, 71, 87),
	Muted:          rgb(130, 100, 100),
	Background:     rgb(30, 20, 25),
	Surface:        rgb(45, 30, 35),
	SurfaceVariant: rgb(55, 38, 45),
	Border:         rgb(80, 55, 60),
	TextPrimary:    rgb(255, 245, 238),
	TextSecondary:  rgb(180, 150, 150),
	TextOnPrimary:  rgb(40, 20, 25),
	AccentColors: []color.RGBA{
		rgb(255, 107, 107),
		rgb(255, 159, 67),
		rgb(255, 200, 87),
		rgb(255, 140, 140),
		rgb(200, 120, 180),
		rgb(255, 180, 120),
	},
	CornerRadius:  14,
	BorderWidth:   0,
	BorderStyle:   BorderNone,
	LayoutPadding: 8,
	WidgetPadding: 6,
	Gap:           6,
	ValueBold:     true,
	BarBackground: rgb(60, 45, 50),
}

var builtins = map[string]Theme{
	"classic": Classic,
	"minimal": Minimal,
	"neon":    Neon,
	"retro":   Retro,
	"soft":    Soft,
	"light":   Light,
	"ocean":   Ocean,
	"sunset":  Sunset,
}

// Default is the theme used when a lookup fails.
var Default = Classic

// Get returns the builtin theme with the given name, or Default when the
// name is unknown.
func Get(name string) Theme {
	if t, ok := builtins[name]; ok {
		return t
	}
	return Default
}

// Lookup returns the builtin theme with the given name and whether it
// exists.
func Lookup(name string) (Theme, bool) {
	t, ok := builtins[name]
	return t, ok
}

// Names lists the builtin theme names.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return names
}
