package render

import (
	"image"
	"image/color"
)

// DrawSpark draws a sparkline across rect. Values map linearly between
// the observed min and max; a flat series draws a centered line.
func (r *Renderer) DrawSpark(rect image.Rectangle, values []float64, col color.Color, width float64) {
	if len(values) < 2 {
		return
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	span := hi - lo
	stepX := float64(rect.Dx()) / float64(len(values)-1)

	r.dc.SetColor(col)
	r.dc.SetLineWidth(width)
	for i, v := range values {
		x := float64(rect.Min.X) + float64(i)*stepX
		y := float64(rect.Max.Y)
		if span > 0 {
			y -= (v - lo) / span * float64(rect.Dy())
		} else {
			y -= float64(rect.Dy()) / 2
		}
		if i == 0 {
			r.dc.MoveTo(x, y)
		} else {
			r.dc.LineTo(x, y)
		}
	}
	r.dc.Stroke()
}
