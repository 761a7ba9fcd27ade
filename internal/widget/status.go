package widget

import (
	"image/color"
	"strings"

	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
)

// statusWidget shows one entity as an icon, label and state word, tinted
// by whether the entity counts as active.
type statusWidget struct{}

func (statusWidget) Build(info Info, opts Options) component.Component {
	ent, found := entityFor(info, opts)
	lbl := label(opts, ent, found, placeholderUnknown)

	state := placeholderValue
	var tint color.Color = info.Theme.Muted
	if found {
		state = displayState(ent.State)
		if ent.IsOn() {
			tint = info.Theme.Success
		}
	}

	icon := opts.StringOr("icon", iconForEntity(opts.StringOr("entity", "")))

	if info.Cat <= render.SizeMicro {
		return component.Row{
			Children: []component.Component{
				component.Icon{Name: icon, Color: tint},
				component.Text{Content: lbl, Tier: render.TierTiny, Muted: true},
				component.Spacer{Weight: 1},
				component.Text{Content: state, Tier: render.TierTiny, Color: tint},
			},
			Gap:    4,
			AlignY: component.AlignCenter,
		}
	}

	return component.Center{Child: component.Column{
		Children: []component.Component{
			component.Icon{Name: icon, Color: tint},
			component.Text{Content: state, Tier: render.TierRegular, Value: true, Color: tint, AlignX: component.AlignCenter},
			component.Text{Content: lbl, Tier: render.TierSmall, Muted: true, AlignX: component.AlignCenter},
		},
		Gap:    3,
		AlignX: component.AlignCenter,
	}}
}

// displayState tidies a raw state word for the panel.
func displayState(s string) string {
	if s == "" || s == "unknown" || s == "unavailable" {
		return placeholderValue
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// iconForEntity guesses a glyph from the entity domain.
func iconForEntity(entityID string) string {
	domain, _, ok := strings.Cut(entityID, ".")
	if !ok {
		return ""
	}
	switch domain {
	case "light", "switch":
		return "power"
	case "climate":
		return "thermometer"
	case "media_player":
		return "music"
	case "person", "device_tracker":
		return "home"
	case "lock":
		return "home"
	case "sensor":
		return ""
	}
	return ""
}
