package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DennisDane/geekmagic-go/internal/theme"
)

func allKnown(string) bool { return true }

func validModel() *Model {
	return &Model{
		Device: Device{Host: "display.lan"},
		Source: Source{URL: "http://ha.lan:8123", Token: "llat"},
		Settings: Settings{
			Interval:    DefaultInterval,
			JPEGQuality: DefaultJPEGQuality,
		},
		Screens: []*Screen{
			{
				Name:   "main",
				Layout: "grid_2x2",
				Widgets: []*Widget{
					{Type: "clock", Slot: 0},
					{Type: "entity", Slot: 3},
				},
			},
		},
	}
}

func TestValidateOK(t *testing.T) {
	t.Parallel()
	require.NoError(t, validModel().Validate(allKnown))

	// Custom themes count as known alongside the builtin presets.
	m := validModel()
	m.Themes = map[string]theme.Theme{"office": {Name: "office"}}
	m.Settings.Theme = "office"
	m.Screens[0].Theme = "office"
	require.NoError(t, m.Validate(allKnown))
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Model)
		known  func(string) bool
		want   string
	}{
		{
			name:   "missing host",
			mutate: func(m *Model) { m.Device.Host = "" },
			want:   "host",
		},
		{
			name:   "missing token",
			mutate: func(m *Model) { m.Source.Token = "" },
			want:   "token",
		},
		{
			name:   "no screens",
			mutate: func(m *Model) { m.Screens = nil },
			want:   "screen",
		},
		{
			name:   "brightness range",
			mutate: func(m *Model) { b := 150; m.Device.Brightness = &b },
			want:   "brightness",
		},
		{
			name:   "quality range",
			mutate: func(m *Model) { m.Settings.JPEGQuality = 0 },
			want:   "quality",
		},
		{
			name: "duplicate screen name",
			mutate: func(m *Model) {
				m.Screens = append(m.Screens, &Screen{Name: "main", Layout: "hero"})
			},
			want: "duplicate screen",
		},
		{
			name:   "unknown default theme",
			mutate: func(m *Model) { m.Settings.Theme = "vaporwave" },
			want:   `unknown theme "vaporwave"`,
		},
		{
			name:   "unknown screen theme",
			mutate: func(m *Model) { m.Screens[0].Theme = "vaporwave" },
			want:   `unknown theme "vaporwave"`,
		},
		{
			name:   "unknown layout",
			mutate: func(m *Model) { m.Screens[0].Layout = "grid_9x9" },
			want:   "unknown layout",
		},
		{
			name:   "ratio range",
			mutate: func(m *Model) { m.Screens[0].Ratio = 0.95 },
			want:   "ratio",
		},
		{
			name:   "unknown widget",
			mutate: func(m *Model) {},
			known:  func(string) bool { return false },
			want:   "unknown widget",
		},
		{
			name:   "slot out of range",
			mutate: func(m *Model) { m.Screens[0].Widgets[1].Slot = 4 },
			want:   "out of range",
		},
		{
			name:   "duplicate slot",
			mutate: func(m *Model) { m.Screens[0].Widgets[1].Slot = 0 },
			want:   "slot 0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := validModel()
			tc.mutate(m)
			known := tc.known
			if known == nil {
				known = allKnown
			}
			err := m.Validate(known)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestThemeFor(t *testing.T) {
	t.Parallel()

	m := validModel()
	m.Settings.Theme = "neon"

	got := m.ThemeFor(m.Screens[0])
	require.Equal(t, "neon", got.Name)

	m.Screens[0].Theme = "ocean"
	got = m.ThemeFor(m.Screens[0])
	require.Equal(t, "ocean", got.Name)
}

func TestIntervalFor(t *testing.T) {
	t.Parallel()

	m := validModel()
	require.Equal(t, DefaultInterval, m.IntervalFor(m.Screens[0]))

	m.Screens[0].Duration = DefaultInterval * 2
	require.Equal(t, DefaultInterval*2, m.IntervalFor(m.Screens[0]))
}
