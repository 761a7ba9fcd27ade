package config

import (
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/DennisDane/geekmagic-go/internal/theme"
)

// Defaults applied where the configuration stays silent.
const (
	DefaultUploadPath  = "/image/"
	DefaultFilename    = "dashboard.jpg"
	DefaultInterval    = 30 * time.Second
	DefaultJPEGQuality = 92
	DefaultMaxUpload   = 400 * 1024
	DefaultTimeout     = 10 * time.Second
)

// Model is the unified representation of the entire application
// configuration.
type Model struct {
	Device   Device
	Source   Source
	Settings Settings
	Themes   map[string]theme.Theme
	Screens  []*Screen
}

// Device describes the GeekMagic panel frames are uploaded to.
type Device struct {
	Host       string
	UploadPath string
	Filename   string
	// Brightness is pushed once at startup when set (0-100).
	Brightness *int
	Timeout    time.Duration
}

// Source describes the Home Assistant instance entity state is read from.
type Source struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// Settings carries the global dashboard behavior knobs.
type Settings struct {
	// Interval is how long each screen stays up before the next render.
	Interval    time.Duration
	JPEGQuality int
	// MaxUploadBytes bounds the encoded frame; quality steps down to fit.
	MaxUploadBytes int
	// Theme names the default theme; screens may override it.
	Theme string
}

// Screen is one dashboard page in the cycle.
type Screen struct {
	Name   string
	Layout string
	// Theme overrides the global theme for this screen when non-empty.
	Theme string
	// Ratio skews split layouts; zero means the layout default.
	Ratio float64
	// Duration overrides Settings.Interval for this screen when non-zero.
	Duration time.Duration
	Widgets  []*Widget
}

// Widget is one widget assignment within a screen. Options are split at
// load time: expressions that fold to a constant land in Static, the
// rest stay as expressions and are re-evaluated against each state
// snapshot.
type Widget struct {
	Type    string
	Slot    int
	Static  map[string]cty.Value
	Dynamic map[string]hcl.Expression
}

// ThemeFor resolves the effective theme for a screen.
func (m *Model) ThemeFor(s *Screen) theme.Theme {
	name := s.Theme
	if name == "" {
		name = m.Settings.Theme
	}
	if t, ok := m.Themes[name]; ok {
		return t
	}
	return theme.Get(name)
}

// IntervalFor resolves the effective display duration for a screen.
func (m *Model) IntervalFor(s *Screen) time.Duration {
	if s.Duration > 0 {
		return s.Duration
	}
	return m.Settings.Interval
}
