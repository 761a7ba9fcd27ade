package widget

import (
	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
)

// textWidget shows a free-form line of text, usually fed by a template
// expression.
type textWidget struct{}

func (textWidget) Build(info Info, opts Options) component.Component {
	text := opts.StringOr("text", placeholderNoData)

	children := make([]component.Component, 0, 2)
	if lbl, ok := opts.String("label"); ok && lbl != "" {
		children = append(children, component.Text{
			Content: lbl,
			Tier:    render.TierSmall,
			Muted:   true,
			AlignX:  component.AlignCenter,
		})
	}
	children = append(children, component.Text{
		Content: text,
		Tier:    render.TierRegular,
		Bold:    opts.BoolOr("bold", false),
		AlignX:  component.AlignCenter,
	})

	return component.Center{Child: component.Column{
		Children: children,
		Gap:      2,
		AlignX:   component.AlignCenter,
	}}
}
