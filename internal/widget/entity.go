package widget

import (
	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
)

// entityWidget shows one entity's state as a labelled value.
type entityWidget struct{}

func (entityWidget) Build(info Info, opts Options) component.Component {
	ent, found := entityFor(info, opts)

	value := placeholderValue
	unit := opts.StringOr("unit", "")
	if v, ok := opts.String("value"); ok {
		value = v
	} else if found {
		value = formatValue(ent.State, opts.NumberOr("precision", -1))
		if unit == "" {
			unit = ent.Unit()
		}
	}

	lbl := label(opts, ent, found, placeholderUnknown)

	valueTier := render.TierLarge
	if info.Cat >= render.SizeMedium {
		valueTier = render.TierHuge
	}

	children := make([]component.Component, 0, 3)
	if icon, ok := opts.String("icon"); ok && icon != "" && info.Cat >= render.SizeTiny {
		children = append(children, component.Icon{Name: icon})
	}
	children = append(children, component.Text{
		Content: valueWithUnit(value, unit),
		Tier:    valueTier,
		Value:   true,
		AlignX:  component.AlignCenter,
	})
	if info.Cat >= render.SizeTiny {
		children = append(children, component.Text{
			Content: lbl,
			Tier:    render.TierSmall,
			Muted:   true,
			AlignX:  component.AlignCenter,
		})
	}

	return component.Center{Child: component.Column{
		Children: children,
		Gap:      2,
		AlignX:   component.AlignCenter,
	}}
}
