package widget

import (
	"image/color"
	"strconv"

	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
	"github.com/DennisDane/geekmagic-go/internal/theme"
)

// gaugeWidget shows a value against a range as a bar, ring or arc.
type gaugeWidget struct{}

func (gaugeWidget) Build(info Info, opts Options) component.Component {
	ent, found := entityFor(info, opts)

	value, haveValue := opts.Number("value")
	if !haveValue && found {
		value, haveValue = ent.Numeric()
	}

	min := opts.NumberOr("min", 0)
	max := opts.NumberOr("max", 100)
	percent := 0.0
	if haveValue {
		percent = calcPercent(value, min, max)
	}

	lbl := label(opts, ent, found, placeholderUnknown)
	valueText := placeholderValue
	if haveValue {
		unit := opts.StringOr("unit", "")
		if unit == "" && found {
			unit = ent.Unit()
		}
		precision := int(opts.NumberOr("precision", 0))
		valueText = valueWithUnit(strconv.FormatFloat(value, 'f', precision, 64), unit)
	}

	style := opts.StringOr("style", "bar")
	fill := severityColor(info, opts, percent)

	switch style {
	case "ring":
		return buildRingGauge(info, lbl, valueText, percent, fill)
	case "arc":
		return buildArcGauge(info, lbl, valueText, percent, fill)
	default:
		return buildBarGauge(info, lbl, valueText, percent, fill)
	}
}

// severityColor picks the fill color: explicit option first, then the
// warn/crit thresholds against the theme palette. Nil means the theme
// primary, resolved at render time.
func severityColor(info Info, opts Options, percent float64) color.Color {
	if hex, ok := opts.String("color"); ok {
		if c, err := theme.ParseHex(hex); err == nil {
			return c
		}
	}
	if crit, ok := opts.Number("crit_at"); ok && percent >= crit {
		return info.Theme.Error
	}
	if warn, ok := opts.Number("warn_at"); ok && percent >= warn {
		return info.Theme.Warning
	}
	return nil
}

func buildBarGauge(info Info, lbl, valueText string, percent float64, fill color.Color) component.Component {
	if info.Cat <= render.SizeMicro {
		return component.Bar{Percent: percent, Fill: fill}
	}

	header := component.Row{
		Children: []component.Component{
			component.Text{Content: lbl, Tier: render.TierSmall, Muted: true},
			component.Spacer{Weight: 1},
			component.Text{Content: valueText, Tier: render.TierSmall, Value: true},
		},
		AlignY: component.AlignCenter,
	}
	return component.Column{
		Children: []component.Component{
			header,
			component.Bar{Percent: percent, Fill: fill},
		},
		Gap: 3,
	}
}

func buildRingGauge(info Info, lbl, valueText string, percent float64, fill color.Color) component.Component {
	ring := component.Stack{
		Children: []component.Component{
			component.Ring{Percent: percent, Fill: fill, Weight: 1},
			component.Text{Content: valueText, Tier: render.TierRegular, Value: true, AlignX: component.AlignCenter},
		},
		Weight: 1,
	}
	if info.Cat <= render.SizeTiny {
		return ring
	}
	return component.Column{
		Children: []component.Component{
			ring,
			component.Text{Content: lbl, Tier: render.TierSmall, Muted: true, AlignX: component.AlignCenter},
		},
		Gap:    2,
		AlignX: component.AlignCenter,
	}
}

func buildArcGauge(info Info, lbl, valueText string, percent float64, fill color.Color) component.Component {
	arc := component.Stack{
		Children: []component.Component{
			component.Arc{Percent: percent, Fill: fill, Weight: 1},
			component.Text{Content: valueText, Tier: render.TierRegular, Value: true, AlignX: component.AlignCenter},
		},
		Weight: 1,
	}
	if info.Cat <= render.SizeTiny {
		return arc
	}
	return component.Column{
		Children: []component.Component{
			arc,
			component.Text{Content: lbl, Tier: render.TierSmall, Muted: true, AlignX: component.AlignCenter},
		},
		Gap:    2,
		AlignX: component.AlignCenter,
	}
}
