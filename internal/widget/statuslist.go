package widget

import (
	"fmt"
	"image/color"

	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
)

// statusListWidget shows a compact row per entity. Rows beyond what the
// slot can hold are dropped with an overflow count.
type statusListWidget struct{}

func (statusListWidget) Build(info Info, opts Options) component.Component {
	ids := opts.Strings("entities")
	if len(ids) == 0 {
		return component.Center{Child: component.Text{
			Content: placeholderNoData,
			Tier:    render.TierSmall,
			Muted:   true,
		}}
	}

	visible := maxRows(info.Cat)
	overflow := 0
	if len(ids) > visible {
		overflow = len(ids) - (visible - 1)
		ids = ids[:visible-1]
	}

	rows := make([]component.Component, 0, len(ids)+1)
	for _, id := range ids {
		ent, found := info.Snapshot.Get(id)

		name := id
		state := placeholderValue
		var tint color.Color = info.Theme.Muted
		if found {
			name = ent.FriendlyName()
			state = displayState(ent.State)
			if ent.IsOn() {
				tint = info.Theme.Success
			}
		}

		rows = append(rows, component.Row{
			Children: []component.Component{
				component.Icon{Name: iconForEntity(id), Color: tint, Size: 10},
				component.Text{Content: truncate(name, 14), Tier: render.TierTiny},
				component.Spacer{Weight: 1},
				component.Text{Content: state, Tier: render.TierTiny, Color: tint},
			},
			Gap:    4,
			AlignY: component.AlignCenter,
		})
	}

	if overflow > 0 {
		rows = append(rows, component.Text{
			Content: moreLabel(overflow),
			Tier:    render.TierTiny,
			Muted:   true,
			AlignX:  component.AlignCenter,
		})
	}

	return component.Column{Children: rows, Gap: 4}
}

func maxRows(cat render.SizeCategory) int {
	switch cat {
	case render.SizeMicro:
		return 2
	case render.SizeTiny:
		return 3
	case render.SizeSmall:
		return 4
	case render.SizeMedium:
		return 6
	}
	return 8
}

func moreLabel(n int) string {
	return fmt.Sprintf("+%d more", n)
}
