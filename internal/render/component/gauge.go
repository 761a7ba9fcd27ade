package component

import (
	"image"
	"image/color"
)

// Ring is a circular gauge that fills the square it can claim from the
// available box.
type Ring struct {
	Percent float64
	Fill    color.Color
	Track   color.Color
	Weight  int
}

func (g Ring) Flex() int { return g.Weight }

func (g Ring) Measure(env Env, avail image.Point) image.Point {
	side := min(avail.X, avail.Y)
	return image.Pt(side, side)
}

func (g Ring) Render(env Env, rect image.Rectangle) {
	side := min(rect.Dx(), rect.Dy())
	stroke := max(4, side/10)
	radius := side/2 - stroke/2 - 1
	if radius < 4 {
		return
	}
	fill, track := g.colors(env)
	cx := (rect.Min.X + rect.Max.X) / 2
	cy := (rect.Min.Y + rect.Max.Y) / 2
	env.R.DrawRing(cx, cy, radius, g.Percent, fill, track, stroke)
}

func (g Ring) colors(env Env) (color.Color, color.Color) {
	fill, track := g.Fill, g.Track
	if fill == nil {
		fill = env.R.Theme().Primary
	}
	if track == nil {
		track = env.R.Theme().BarBackground
	}
	return fill, track
}

// Arc is a semicircular gauge sweeping left to right across the top of
// its rect.
type Arc struct {
	Percent float64
	Fill    color.Color
	Track   color.Color
	Weight  int
}

func (g Arc) Flex() int { return g.Weight }

func (g Arc) Measure(env Env, avail image.Point) image.Point {
	side := min(avail.X, avail.Y*2)
	return image.Pt(side, side/2)
}

func (g Arc) Render(env Env, rect image.Rectangle) {
	fill, track := Ring{Fill: g.Fill, Track: g.Track}.colors(env)
	env.R.DrawArcGauge(rect, g.Percent, fill, track)
}

// Stack renders children on top of each other, each centered in the full
// rect. A gauge with a value readout in the middle stacks the two.
type Stack struct {
	Children []Component
	Weight   int
}

func (s Stack) Flex() int { return s.Weight }

func (s Stack) Measure(env Env, avail image.Point) image.Point {
	var w, h int
	for _, c := range s.Children {
		sz := c.Measure(env, avail)
		if sz.X > w {
			w = sz.X
		}
		if sz.Y > h {
			h = sz.Y
		}
	}
	return image.Pt(w, h)
}

func (s Stack) Render(env Env, rect image.Rectangle) {
	for _, c := range s.Children {
		sz := c.Measure(env, rect.Size())
		x := rect.Min.X + alignOffset(AlignCenter, rect.Dx(), sz.X)
		y := rect.Min.Y + alignOffset(AlignCenter, rect.Dy(), sz.Y)
		c.Render(env, image.Rect(x, y, x+sz.X, y+sz.Y))
	}
}

// Spark draws a history sparkline stretched to the rect it is given.
type Spark struct {
	Values []float64
	Color  color.Color
	Weight int
}

func (s Spark) Flex() int {
	if s.Weight > 0 {
		return s.Weight
	}
	return 1
}

func (s Spark) Measure(env Env, avail image.Point) image.Point {
	return avail
}

func (s Spark) Render(env Env, rect image.Rectangle) {
	col := s.Color
	if col == nil {
		col = env.R.Theme().Primary
	}
	pad := 2
	inner := image.Rect(rect.Min.X+pad, rect.Min.Y+pad, rect.Max.X-pad, rect.Max.Y-pad)
	if inner.Empty() {
		return
	}
	env.R.DrawSpark(inner, s.Values, col, 2)
}
