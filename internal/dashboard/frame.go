package dashboard

import (
	"fmt"
	"image"
	"time"

	"github.com/DennisDane/geekmagic-go/internal/config"
	"github.com/DennisDane/geekmagic-go/internal/hass"
	"github.com/DennisDane/geekmagic-go/internal/layout"
	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/render/component"
	"github.com/DennisDane/geekmagic-go/internal/template"
	"github.com/DennisDane/geekmagic-go/internal/theme"
	"github.com/DennisDane/geekmagic-go/internal/widget"
)

// frame wraps one rendered canvas.
type frame struct {
	r *render.Renderer
}

func (f *frame) jpeg(quality, maxBytes int) ([]byte, error) {
	return f.r.EncodeJPEG(quality, maxBytes)
}

func (f *frame) png() ([]byte, error) {
	return f.r.EncodePNG()
}

// renderScreen composes one screen into a display-sized frame.
func (c *Coordinator) renderScreen(screen *config.Screen, snap *hass.Snapshot, now time.Time) (*frame, error) {
	th := c.cfg.ThemeFor(screen)
	build, err := layout.FromType(screen.Layout)
	if err != nil {
		return nil, err
	}

	r := render.New(th)
	slots := build(layout.Params{
		Width:   render.DisplayWidth,
		Height:  render.DisplayHeight,
		Padding: th.LayoutPadding,
		Gap:     th.Gap,
		Ratio:   screen.Ratio,
	})

	ectx := template.Context(snap, now)
	for _, wc := range screen.Widgets {
		if wc.Slot >= len(slots) {
			return nil, fmt.Errorf("dashboard: screen %q: widget %q slot %d has no rectangle",
				screen.Name, wc.Type, wc.Slot)
		}
		rect := slots[wc.Slot].Rect
		drawPanel(r, th, rect)

		inner := rect.Inset(th.WidgetPadding)
		if inner.Empty() {
			continue
		}

		w, ok := widget.New(wc.Type)
		if !ok {
			return nil, fmt.Errorf("dashboard: unknown widget type %q", wc.Type)
		}

		cat := render.Categorize(inner.Dy())
		info := widget.Info{
			Snapshot: snap,
			Now:      now,
			Cat:      cat,
			Theme:    th,
			History:  c.historyFor,
		}
		opts := widget.NewOptions(wc.Static, c.resolver.ResolveAll(wc.Dynamic, ectx))

		tree := w.Build(info, opts)
		tree.Render(component.Env{R: r, Cat: cat}, inner)
	}

	if th.Scanlines {
		r.ApplyScanlines()
	}
	return &frame{r: r}, nil
}

// renderNotification composes the overlay frame: a dominant message area
// over a footer with the current time.
func (c *Coordinator) renderNotification(n *Notification, now time.Time) (*frame, error) {
	c.mu.Lock()
	th := c.cfg.ThemeFor(c.screenLocked())
	c.mu.Unlock()

	build, err := layout.FromType(string(layout.HeroSimple))
	if err != nil {
		return nil, err
	}

	r := render.New(th)
	slots := build(layout.Params{
		Width:   render.DisplayWidth,
		Height:  render.DisplayHeight,
		Padding: th.LayoutPadding,
		Gap:     th.Gap,
	})

	hero := slots[0].Rect
	footer := slots[1].Rect
	drawPanel(r, th, hero)
	drawPanel(r, th, footer)

	heroInner := hero.Inset(th.WidgetPadding)
	cat := render.Categorize(heroInner.Dy())
	icon := n.Icon
	if icon == "" {
		icon = "home"
	}

	body := component.Center{Child: component.Column{
		Children: []component.Component{
			component.Icon{Name: icon, Color: th.Primary, Size: 28},
			component.Text{Content: n.Title, Tier: render.TierLarge, Bold: true, AlignX: component.AlignCenter},
			component.Text{Content: n.Message, Tier: render.TierRegular, Muted: true, AlignX: component.AlignCenter},
		},
		Gap:    6,
		AlignX: component.AlignCenter,
	}}
	body.Render(component.Env{R: r, Cat: cat}, heroInner)

	clock := component.Text{
		Content: now.Format("15:04"),
		Tier:    render.TierSmall,
		Muted:   true,
		AlignX:  component.AlignCenter,
	}
	clock.Render(component.Env{R: r, Cat: render.SizeMicro}, footer.Inset(th.WidgetPadding))

	if th.Scanlines {
		r.ApplyScanlines()
	}
	return &frame{r: r}, nil
}

// drawPanel paints a slot's backing surface per the theme's border
// style.
func drawPanel(r *render.Renderer, th theme.Theme, rect image.Rectangle) {
	switch th.BorderStyle {
	case theme.BorderOutline:
		r.StrokePanel(rect, th.Border, th.CornerRadius, th.BorderWidth)
	case theme.BorderSolid:
		r.DrawPanel(rect, th.Surface, th.CornerRadius)
		r.StrokePanel(rect, th.Border, th.CornerRadius, th.BorderWidth)
	default:
		r.DrawPanel(rect, th.Surface, th.CornerRadius)
	}
}
