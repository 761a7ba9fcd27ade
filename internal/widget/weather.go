package widget

import (
	"strconv"

	"github.com/DennisDane/geekmagic-go/internal/hass"
	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
)

// weatherWidget shows a weather entity: condition glyph, temperature
// and, space permitting, humidity and wind.
type weatherWidget struct{}

func (weatherWidget) Build(info Info, opts Options) component.Component {
	ent, found := entityFor(info, opts)
	if !found {
		return component.Center{Child: component.Text{
			Content: placeholderNoData,
			Tier:    render.TierSmall,
			Muted:   true,
		}}
	}

	condition := ent.State
	tempText := placeholderValue
	if temp, ok := ent.NumberAttr("temperature"); ok {
		unit := ent.StringAttr("temperature_unit")
		if unit == "" {
			unit = "°"
		}
		tempText = valueWithUnit(strconv.FormatFloat(temp, 'f', 0, 64), unit)
	}

	main := component.Row{
		Children: []component.Component{
			component.Icon{Name: condition, Color: info.Theme.Secondary},
			component.Text{Content: tempText, Tier: render.TierHuge, Value: true},
		},
		Gap:    6,
		AlignY: component.AlignCenter,
	}

	children := []component.Component{
		main,
		component.Text{
			Content: displayState(condition),
			Tier:    render.TierSmall,
			Muted:   true,
			AlignX:  component.AlignCenter,
		},
	}

	if info.Cat >= render.SizeMedium {
		if detail := weatherDetail(ent); detail != "" {
			children = append(children, component.Text{
				Content: detail,
				Tier:    render.TierTiny,
				Muted:   true,
				AlignX:  component.AlignCenter,
			})
		}
	}

	return component.Center{Child: component.Column{
		Children: children,
		Gap:      3,
		AlignX:   component.AlignCenter,
	}}
}

func weatherDetail(ent hass.Entity) string {
	parts := ""
	if h, ok := ent.NumberAttr("humidity"); ok {
		parts = strconv.FormatFloat(h, 'f', 0, 64) + "%"
	}
	if w, ok := ent.NumberAttr("wind_speed"); ok {
		if parts != "" {
			parts += "  "
		}
		parts += strconv.FormatFloat(w, 'f', 0, 64) + " km/h"
	}
	return parts
}
