package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/DennisDane/geekmagic-go/internal/hass"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		max  int
		want string
	}{
		{in: "Living Room", max: 20, want: "Living Room"},
		{in: "Living Room", max: 8, want: "Living.."},
		{in: "Temperature", max: 2, want: "Te"},
		{in: "abc", max: 0, want: ""},
		{in: "héllo wörld", max: 7, want: "héllo.."},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, truncate(tc.in, tc.max), "truncate(%q, %d)", tc.in, tc.max)
	}
}

func TestCalcPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value, min, max float64
		want            float64
	}{
		{value: 50, min: 0, max: 100, want: 50},
		{value: 150, min: 0, max: 100, want: 100},
		{value: -10, min: 0, max: 100, want: 0},
		{value: 15, min: 10, max: 20, want: 50},
		{value: 5, min: 0, max: 0, want: 0},
		{value: 5, min: 10, max: 5, want: 0},
	}

	for _, tc := range cases {
		require.InDelta(t, tc.want, calcPercent(tc.value, tc.min, tc.max), 1e-9,
			"calcPercent(%v, %v, %v)", tc.value, tc.min, tc.max)
	}
}

func TestLabelPrecedence(t *testing.T) {
	t.Parallel()

	ent := hass.Entity{
		EntityID:   "sensor.office_temp",
		Attributes: map[string]any{"friendly_name": "Office"},
	}

	withLabel := NewOptions(map[string]cty.Value{"label": cty.StringVal("Custom")}, nil)
	require.Equal(t, "Custom", label(withLabel, ent, true, "fallback"))

	noLabel := NewOptions(nil, nil)
	require.Equal(t, "Office", label(noLabel, ent, true, "fallback"))
	require.Equal(t, "fallback", label(noLabel, ent, false, "fallback"))
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, "21.5", formatValue("21.5", -1))
	require.Equal(t, "22", formatValue("21.5", 0))
	require.Equal(t, "21.50", formatValue("21.5", 2))
	require.Equal(t, "heating", formatValue("heating", 1))
}

func TestValueWithUnit(t *testing.T) {
	t.Parallel()

	require.Equal(t, "42", valueWithUnit("42", ""))
	require.Equal(t, "42%", valueWithUnit("42", "%"))
	require.Equal(t, "21°C", valueWithUnit("21", "°C"))
	require.Equal(t, "12 kWh", valueWithUnit("12", "kWh"))
}

func TestFitChars(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, fitChars(100, 0))
	require.Greater(t, fitChars(200, 12.0), fitChars(100, 12.0))
	require.Greater(t, fitChars(200, 10.0), fitChars(200, 20.0))
}
