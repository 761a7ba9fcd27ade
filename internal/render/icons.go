package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// DrawIcon draws a named glyph centered at (cx, cy) inside a size*size box.
// The glyph set is intentionally small and drawn from primitives; unknown
// names fall back to a dot marker.
func (r *Renderer) DrawIcon(name string, cx, cy, size int, col color.Color) {
	x, y, s := float64(cx), float64(cy), float64(size)
	half := s / 2
	r.dc.SetColor(col)
	r.dc.SetLineWidth(math.Max(1.5, s/10))
	r.dc.SetLineCap(gg.LineCapRound)
	defer r.dc.SetLineCap(gg.LineCapButt)

	switch name {
	case "power":
		r.dc.NewSubPath()
		r.dc.DrawArc(x, y, half*0.8, -math.Pi/2+0.5, 3*math.Pi/2-0.5)
		r.dc.Stroke()
		r.dc.DrawLine(x, y-half, x, y-half*0.2)
		r.dc.Stroke()
	case "thermometer", "temperature":
		r.dc.DrawLine(x, y-half*0.8, x, y+half*0.2)
		r.dc.Stroke()
		r.dc.DrawCircle(x, y+half*0.5, half*0.35)
		r.dc.Fill()
	case "humidity", "water", "drop":
		r.dc.MoveTo(x, y-half*0.8)
		r.dc.QuadraticTo(x+half*0.75, y+half*0.2, x, y+half*0.7)
		r.dc.QuadraticTo(x-half*0.75, y+half*0.2, x, y-half*0.8)
		r.dc.ClosePath()
		r.dc.Fill()
	case "battery":
		r.dc.DrawRoundedRectangle(x-half*0.7, y-half*0.4, s*0.7*2*0.5+s*0.35, s*0.4*2*0.5+s*0.2, s*0.06)
		r.dc.Stroke()
		r.dc.DrawRectangle(x+half*0.72, y-half*0.15, s*0.08, s*0.15)
		r.dc.Fill()
	case "wifi":
		for i := 1; i <= 3; i++ {
			r.dc.NewSubPath()
			r.dc.DrawArc(x, y+half*0.5, half*0.3*float64(i), -3*math.Pi/4, -math.Pi/4)
			r.dc.Stroke()
		}
		r.dc.DrawCircle(x, y+half*0.5, math.Max(1.5, s/12))
		r.dc.Fill()
	case "clock", "time":
		r.dc.DrawCircle(x, y, half*0.8)
		r.dc.Stroke()
		r.dc.DrawLine(x, y, x, y-half*0.5)
		r.dc.Stroke()
		r.dc.DrawLine(x, y, x+half*0.35, y)
		r.dc.Stroke()
	case "sun", "sunny", "clear":
		r.dc.DrawCircle(x, y, half*0.45)
		r.dc.Fill()
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			r.dc.DrawLine(
				x+math.Cos(a)*half*0.6, y+math.Sin(a)*half*0.6,
				x+math.Cos(a)*half*0.9, y+math.Sin(a)*half*0.9,
			)
			r.dc.Stroke()
		}
	case "cloud", "cloudy", "partlycloudy", "fog":
		r.dc.DrawCircle(x-half*0.35, y+half*0.1, half*0.35)
		r.dc.DrawCircle(x+half*0.1, y-half*0.15, half*0.45)
		r.dc.DrawCircle(x+half*0.45, y+half*0.15, half*0.3)
		r.dc.Fill()
	case "rain", "rainy", "pouring":
		r.dc.DrawCircle(x, y-half*0.25, half*0.5)
		r.dc.Fill()
		for _, dx := range []float64{-0.35, 0, 0.35} {
			r.dc.DrawLine(x+half*dx, y+half*0.3, x+half*dx-half*0.12, y+half*0.75)
			r.dc.Stroke()
		}
	case "snow", "snowy":
		for i := 0; i < 3; i++ {
			a := float64(i) * math.Pi / 3
			r.dc.DrawLine(
				x-math.Cos(a)*half*0.8, y-math.Sin(a)*half*0.8,
				x+math.Cos(a)*half*0.8, y+math.Sin(a)*half*0.8,
			)
			r.dc.Stroke()
		}
	case "lightning", "lightning-rainy":
		r.dc.MoveTo(x+half*0.2, y-half*0.8)
		r.dc.LineTo(x-half*0.35, y+half*0.15)
		r.dc.LineTo(x, y+half*0.15)
		r.dc.LineTo(x-half*0.2, y+half*0.8)
		r.dc.LineTo(x+half*0.4, y-half*0.1)
		r.dc.LineTo(x+half*0.05, y-half*0.1)
		r.dc.ClosePath()
		r.dc.Fill()
	case "music", "media":
		r.dc.DrawLine(x-half*0.2, y+half*0.4, x-half*0.2, y-half*0.6)
		r.dc.Stroke()
		r.dc.DrawLine(x-half*0.2, y-half*0.6, x+half*0.5, y-half*0.45)
		r.dc.Stroke()
		r.dc.DrawCircle(x-half*0.4, y+half*0.4, half*0.22)
		r.dc.Fill()
	case "home":
		r.dc.MoveTo(x-half*0.7, y)
		r.dc.LineTo(x, y-half*0.7)
		r.dc.LineTo(x+half*0.7, y)
		r.dc.Stroke()
		r.dc.DrawRectangle(x-half*0.45, y, s*0.45, s*0.38)
		r.dc.Stroke()
	default:
		r.dc.DrawCircle(x, y, math.Max(2, half*0.3))
		r.dc.Fill()
	}
}
