package widget

import (
	"time"

	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
)

// clockWidget shows the current time, optionally with a date line.
type clockWidget struct{}

func (clockWidget) Build(info Info, opts Options) component.Component {
	timeFormat := opts.StringOr("format", "15:04")
	showDate := opts.BoolOr("show_date", info.Cat >= render.SizeSmall)

	now := info.Now
	if tz, ok := opts.String("timezone"); ok && tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			now = now.In(loc)
		}
	}

	children := []component.Component{
		component.Text{
			Content: now.Format(timeFormat),
			Tier:    render.TierHuge,
			Value:   true,
			AlignX:  component.AlignCenter,
		},
	}
	if showDate {
		dateFormat := opts.StringOr("date_format", "Mon Jan 2")
		children = append(children, component.Text{
			Content: now.Format(dateFormat),
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
