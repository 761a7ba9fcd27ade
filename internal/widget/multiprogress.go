package widget

import (
	"strconv"

	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
)

// multiProgressWidget stacks one labelled bar per entity, cycling
// through the theme's accent palette.
type multiProgressWidget struct{}

func (multiProgressWidget) Build(info Info, opts Options) component.Component {
	ids := opts.Strings("entities")
	if len(ids) == 0 {
		return component.Center{Child: component.Text{
			Content: placeholderNoData,
			Tier:    render.TierSmall,
			Muted:   true,
		}}
	}

	min := opts.NumberOr("min", 0)
	max := opts.NumberOr("max", 100)
	showValues := info.Cat >= render.SizeSmall

	rows := make([]component.Component, 0, len(ids))
	for i, id := range ids {
		ent, found := info.Snapshot.Get(id)

		name := id
		percent := 0.0
		valueText := placeholderValue
		if found {
			name = ent.FriendlyName()
			if v, ok := ent.Numeric(); ok {
				percent = calcPercent(v, min, max)
				valueText = strconv.FormatFloat(percent, 'f', 0, 64) + "%"
			}
		}

		header := []component.Component{
			component.Text{Content: name, Tier: render.TierTiny, Muted: true},
		}
		if showValues {
			header = append(header,
				component.Spacer{Weight: 1},
				component.Text{Content: valueText, Tier: render.TierTiny},
			)
		}

		rows = append(rows, component.Column{
			Children: []component.Component{
				component.Row{Children: header, AlignY: component.AlignCenter},
				component.Bar{Percent: percent, Fill: info.Theme.Accent(i)},
			},
			Gap: 2,
		})
	}

	return component.Column{Children: rows, Gap: 5}
}
