package widget

import (
	"strconv"

	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
)

// progressWidget shows completion toward a target. It rearranges itself
// by slot size: a bare bar in micro slots, label and bar in compact
// slots, and a full readout with range captions when space allows.
type progressWidget struct{}

func (progressWidget) Build(info Info, opts Options) component.Component {
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
	fill := severityColor(info, opts, percent)
	bar := component.Bar{Percent: percent, Fill: fill}

	valueText := placeholderValue
	if haveValue {
		if opts.BoolOr("show_percent", true) {
			valueText = strconv.FormatFloat(percent, 'f', 0, 64) + "%"
		} else {
			unit := opts.StringOr("unit", "")
			if unit == "" && found {
				unit = ent.Unit()
			}
			precision := int(opts.NumberOr("precision", 0))
			valueText = valueWithUnit(strconv.FormatFloat(value, 'f', precision, 64), unit)
		}
	}

	switch {
	case info.Cat <= render.SizeMicro:
		return bar

	case info.Cat <= render.SizeSmall:
		// Compact: label and value share one line over the bar.
		return component.Column{
			Children: []component.Component{
				component.Row{
					Children: []component.Component{
						component.Text{Content: lbl, Tier: render.TierSmall, Muted: true},
						component.Spacer{Weight: 1},
						component.Text{Content: valueText, Tier: render.TierSmall, Value: true},
					},
					AlignY: component.AlignCenter,
				},
				bar,
			},
			Gap: 3,
		}

	case info.Cat <= render.SizeMedium:
		return component.Column{
			Children: []component.Component{
				component.Text{Content: lbl, Tier: render.TierSmall, Muted: true},
				component.Text{Content: valueText, Tier: render.TierLarge, Value: true},
				bar,
			},
			Gap: 4,
		}

	default:
		// Expanded: range captions under the bar.
		rangeRow := component.Row{
			Children: []component.Component{
				component.Text{Content: strconv.FormatFloat(min, 'f', -1, 64), Tier: render.TierTiny, Muted: true},
				component.Spacer{Weight: 1},
				component.Text{Content: strconv.FormatFloat(max, 'f', -1, 64), Tier: render.TierTiny, Muted: true},
			},
		}
		return component.Column{
			Children: []component.Component{
				component.Text{Content: lbl, Tier: render.TierRegular, Muted: true},
				component.Text{Content: valueText, Tier: render.TierHuge, Value: true},
				bar,
				rangeRow,
			},
			Gap: 5,
		}
	}
}
