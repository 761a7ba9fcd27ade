package widget

import (
	"fmt"
	"math"
	"strconv"

	"github.com/DennisDane/geekmagic-go/internal/hass"
)

// Placeholders shown when data is missing.
const (
	placeholderValue   = "--"
	placeholderNoData  = "No data"
	placeholderUnknown = "Unknown"
)

// truncate shortens a string to max runes, marking the cut with "..".
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 2 {
		return string(runes[:max])
	}
	return string(runes[:max-2]) + ".."
}

// fitChars estimates how many characters of a given font size fit in a
// pixel width. The average glyph of the embedded face is a bit over half
// an em wide.
func fitChars(widthPx int, fontSize float64) int {
	if fontSize <= 0 {
		return 0
	}
	return int(float64(widthPx) / (fontSize * 0.55))
}

// calcPercent maps a value within [min, max] to [0, 100], clamped.
func calcPercent(value, min, max float64) float64 {
	if max <= min {
		return 0
	}
	p := (value - min) / (max - min) * 100
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// label resolves a widget's display label: an explicit option wins, then
// the entity's friendly name, then the fallback.
func label(opts Options, entity hass.Entity, found bool, fallback string) string {
	if s, ok := opts.String("label"); ok && s != "" {
		return s
	}
	if found {
		return entity.FriendlyName()
	}
	return fallback
}

// entityFor looks up the widget's entity in the snapshot.
func entityFor(info Info, opts Options) (hass.Entity, bool) {
	id, ok := opts.String("entity")
	if !ok || id == "" {
		return hass.Entity{}, false
	}
	return info.Snapshot.Get(id)
}

// formatValue renders a numeric value at the given precision; negative
// precision keeps the raw state string.
func formatValue(raw string, precision float64) string {
	p := int(precision)
	if p < 0 {
		return raw
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return strconv.FormatFloat(f, 'f', p, 64)
}

// valueWithUnit joins a value and its unit the way the panel has room
// for: no space before a percent or degree sign.
func valueWithUnit(value, unit string) string {
	if unit == "" {
		return value
	}
	switch unit[0] {
	case '%', 0xC2: // '%' or the first byte of a degree sign
		return value + unit
	}
	return fmt.Sprintf("%s %s", value, unit)
}
