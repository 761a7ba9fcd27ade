package widget

import (
	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
)

// mediaWidget shows what a media player is doing: title, artist and a
// state glyph.
type mediaWidget struct{}

func (mediaWidget) Build(info Info, opts Options) component.Component {
	ent, found := entityFor(info, opts)
	lbl := label(opts, ent, found, placeholderUnknown)

	if !found || ent.State == "off" || ent.State == "idle" || ent.State == "unavailable" {
		return component.Center{Child: component.Column{
			Children: []component.Component{
				component.Icon{Name: "music", Color: info.Theme.Muted},
				component.Text{Content: "Nothing playing", Tier: render.TierSmall, Muted: true, AlignX: component.AlignCenter},
			},
			Gap:    4,
			AlignX: component.AlignCenter,
		}}
	}

	title := ent.StringAttr("media_title")
	if title == "" {
		title = displayState(ent.State)
	}
	artist := ent.StringAttr("media_artist")
	if artist == "" {
		artist = ent.StringAttr("media_series_title")
	}

	maxChars := fitChars(200, render.FontSize(render.TierRegular, info.Cat))

	tint := info.Theme.Primary
	if ent.State == "paused" {
		tint = info.Theme.Muted
	}

	children := []component.Component{
		component.Icon{Name: "music", Color: tint},
		component.Text{
			Content: truncate(title, maxChars),
			Tier:    render.TierRegular,
			Value:   true,
			AlignX:  component.AlignCenter,
		},
	}
	if artist != "" && info.Cat >= render.SizeTiny {
		children = append(children, component.Text{
			Content: truncate(artist, maxChars),
			Tier:    render.TierSmall,
			Muted:   true,
			AlignX:  component.AlignCenter,
		})
	}
	if ent.State == "playing" && info.Cat >= render.SizeSmall {
		if pos, okP := ent.NumberAttr("media_position"); okP {
			if dur, okD := ent.NumberAttr("media_duration"); okD && dur > 0 {
				children = append(children, component.Bar{
					Percent: calcPercent(pos, 0, dur),
					Fill:    tint,
				})
			}
		}
	}
	if info.Cat >= render.SizeMedium {
		children = append(children, component.Text{
			Content: lbl,
			Tier:    render.TierTiny,
			Muted:   true,
			AlignX:  component.AlignCenter,
		})
	}

	return component.Center{Child: component.Column{
		Children: children,
		Gap:      3,
		AlignX:   component.AlignCenter,
	}}
}
