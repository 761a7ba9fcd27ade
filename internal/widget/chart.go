package widget

import (
	"strconv"

	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
)

// chartWidget plots an entity's recent numeric history as a sparkline
// with the current value alongside.
type chartWidget struct{}

func (chartWidget) Build(info Info, opts Options) component.Component {
	ent, found := entityFor(info, opts)
	lbl := label(opts, ent, found, placeholderUnknown)

	var values []float64
	if info.History != nil {
		if id, ok := opts.String("entity"); ok {
			values = info.History(id)
		}
	}

	valueText := placeholderValue
	if found {
		if v, ok := ent.Numeric(); ok {
			unit := opts.StringOr("unit", ent.Unit())
			precision := int(opts.NumberOr("precision", 1))
			valueText = valueWithUnit(strconv.FormatFloat(v, 'f', precision, 64), unit)
		}
	}

	spark := component.Component(component.Spark{Values: values})
	if len(values) < 2 {
		spark = component.Center{Child: component.Text{
			Content: "Collecting data..",
			Tier:    render.TierTiny,
			Muted:   true,
		}}
	}

	if info.Cat <= render.SizeMicro {
		return spark
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
			wrapFlex(spark),
		},
		Gap: 3,
	}
}

// TrackedEntities names the entity whose samples the coordinator should
// record.
func (chartWidget) TrackedEntities(opts Options) []string {
	if id, ok := opts.String("entity"); ok && id != "" {
		return []string{id}
	}
	return nil
}

// wrapFlex makes any component absorb leftover column space.
func wrapFlex(c component.Component) component.Component {
	return flexWrapper{Component: c}
}

type flexWrapper struct {
	component.Component
}

func (flexWrapper) Flex() int { return 1 }
