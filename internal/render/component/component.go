// Package component provides the small layout primitives widgets compose
// their content from. A component measures itself within an available box
// and then renders into the rectangle its container assigned.
package component

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/DennisDane/geekmagic-go/internal/render"
)

// Env carries everything a component needs to measure and draw itself.
type Env struct {
	R   *render.Renderer
	Cat render.SizeCategory
}

// Component is a node in a widget's content tree.
type Component interface {
	// Measure returns the size the component wants within the available
	// box. Flexible components report their minimum here; containers hand
	// them the leftover space at render time.
	Measure(env Env, avail image.Point) image.Point
	// Render draws the component into rect.
	Render(env Env, rect image.Rectangle)
}

// Flexer is implemented by components that stretch along their container's
// main axis. The weight splits leftover space between flexers.
type Flexer interface {
	Flex() int
}

// Align positions a child inside a larger box on the cross axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

func alignOffset(a Align, avail, size int) int {
	switch a {
	case AlignCenter:
		return (avail - size) / 2
	case AlignEnd:
		return avail - size
	}
	return 0
}

// Text draws a single line of text. Lines never wrap; callers truncate
// before building the tree.
type Text struct {
	Content string
	Tier    render.FontTier
	Bold    bool
	// Value marks this as a primary value readout; the theme decides
	// whether those render bold.
	Value bool
	Color color.Color
	// Muted draws with the theme's secondary text color when no explicit
	// Color is set.
	Muted bool
	// AlignX positions the text inside a wider rect at render time.
	AlignX Align
}

func (t Text) face(env Env) (font.Face, error) {
	bold := t.Bold || (t.Value && env.R.Theme().ValueBold)
	return env.R.Face(t.Tier, env.Cat, bold)
}

func (t Text) Measure(env Env, avail image.Point) image.Point {
	if t.Content == "" {
		return image.Point{}
	}
	face, err := t.face(env)
	if err != nil {
		return image.Point{}
	}
	w, h := env.R.TextSize(t.Content, face)
	return image.Pt(min(int(w)+1, avail.X), int(h)+1)
}

func (t Text) Render(env Env, rect image.Rectangle) {
	if t.Content == "" {
		return
	}
	face, err := t.face(env)
	if err != nil {
		return
	}
	col := t.Color
	if col == nil {
		if t.Muted {
			col = env.R.Theme().TextSecondary
		} else {
			col = env.R.Theme().TextPrimary
		}
	}
	cy := float64(rect.Min.Y+rect.Max.Y) / 2
	switch t.AlignX {
	case AlignCenter:
		env.R.DrawText(t.Content, float64(rect.Min.X+rect.Max.X)/2, cy, face, col, 0.5, 0.5)
	case AlignEnd:
		env.R.DrawText(t.Content, float64(rect.Max.X), cy, face, col, 1, 0.5)
	default:
		env.R.DrawText(t.Content, float64(rect.Min.X), cy, face, col, 0, 0.5)
	}
}

// Bar is a horizontal progress bar. It stretches to the width it is given
// and reports a fixed height.
type Bar struct {
	Percent float64
	Height  int
	Fill    color.Color
	Track   color.Color
	Weight  int
}

func (b Bar) Flex() int {
	if b.Weight > 0 {
		return b.Weight
	}
	return 1
}

func (b Bar) Measure(env Env, avail image.Point) image.Point {
	h := b.Height
	if h <= 0 {
		h = barHeight(env.Cat)
	}
	return image.Pt(avail.X, h)
}

func (b Bar) Render(env Env, rect image.Rectangle) {
	fill := b.Fill
	if fill == nil {
		fill = env.R.Theme().Primary
	}
	track := b.Track
	if track == nil {
		track = env.R.Theme().BarBackground
	}
	h := b.Height
	if h <= 0 {
		h = barHeight(env.Cat)
	}
	if rect.Dy() > h {
		top := rect.Min.Y + (rect.Dy()-h)/2
		rect = image.Rect(rect.Min.X, top, rect.Max.X, top+h)
	}
	env.R.DrawBar(rect, b.Percent, fill, track)
}

func barHeight(cat render.SizeCategory) int {
	switch cat {
	case render.SizeMicro:
		return 4
	case render.SizeTiny:
		return 6
	case render.SizeSmall:
		return 8
	case render.SizeMedium:
		return 10
	}
	return 12
}

// Icon draws a named glyph at a square size.
type Icon struct {
	Name  string
	Size  int
	Color color.Color
}

func (i Icon) Measure(env Env, avail image.Point) image.Point {
	s := i.Size
	if s <= 0 {
		s = iconSize(env.Cat)
	}
	return image.Pt(s, s)
}

func (i Icon) Render(env Env, rect image.Rectangle) {
	s := i.Size
	if s <= 0 {
		s = iconSize(env.Cat)
	}
	col := i.Color
	if col == nil {
		col = env.R.Theme().TextSecondary
	}
	env.R.DrawIcon(i.Name, (rect.Min.X+rect.Max.X)/2, (rect.Min.Y+rect.Max.Y)/2, s, col)
}

func iconSize(cat render.SizeCategory) int {
	switch cat {
	case render.SizeMicro:
		return 10
	case render.SizeTiny:
		return 12
	case render.SizeSmall:
		return 16
	case render.SizeMedium:
		return 20
	}
	return 26
}

// Spacer claims fixed space, or stretches when Weight is set.
type Spacer struct {
	Width  int
	Height int
	Weight int
}

func (s Spacer) Flex() int { return s.Weight }

func (s Spacer) Measure(env Env, avail image.Point) image.Point {
	return image.Pt(s.Width, s.Height)
}

func (s Spacer) Render(env Env, rect image.Rectangle) {}
