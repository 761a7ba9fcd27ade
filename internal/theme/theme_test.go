package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		lookup   string
		expected string
	}{
		{name: "known theme", lookup: "retro", expected: "retro"},
		{name: "unknown falls back to classic", lookup: "does-not-exist", expected: "classic"},
		{name: "empty falls back to classic", lookup: "", expected: "classic"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, Get(tc.lookup).Name)
		})
	}
}

func TestAccentCycles(t *testing.T) {
	t.Parallel()

	th := Classic
	n := len(th.AccentColors)
	require.Greater(t, n, 1)

	require.Equal(t, th.AccentColors[0], th.Accent(0))
	require.Equal(t, th.AccentColors[1], th.Accent(1))
	require.Equal(t, th.AccentColors[0], th.Accent(n))

	single := Theme{Primary: color.RGBA{R: 1, A: 255}}
	require.Equal(t, single.Primary, single.Accent(3), "empty palette falls back to primary")
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{name: "with hash", in: "#1b9e77", want: color.RGBA{R: 0x1b, G: 0x9e, B: 0x77, A: 255}},
		{name: "without hash", in: "ff0000", want: color.RGBA{R: 255, A: 255}},
		{name: "surrounding whitespace", in: "  #000000 ", want: color.RGBA{A: 255}},
		{name: "too short", in: "#fff", wantErr: true},
		{name: "not hex", in: "#zzzzzz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseHex(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
