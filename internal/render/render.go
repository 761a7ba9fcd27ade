package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/DennisDane/geekmagic-go/internal/theme"
)

// Display dimensions of the GeekMagic panel.
const (
	DisplayWidth  = 240
	DisplayHeight = 240
)

// Renderer wraps a drawing context for one frame. It is not safe for
// concurrent use; the poll loop renders one frame at a time.
type Renderer struct {
	dc    *gg.Context
	theme theme.Theme
	fonts *fontSet
}

// New creates a renderer with the display-sized canvas filled with the
// theme background.
func New(th theme.Theme) *Renderer {
	return NewSized(th, DisplayWidth, DisplayHeight)
}

// NewSized creates a renderer with an arbitrary canvas size. Used by tests
// and the preview endpoint.
func NewSized(th theme.Theme, width, height int) *Renderer {
	dc := gg.NewContext(width, height)
	dc.SetColor(th.Background)
	dc.Clear()
	return &Renderer{dc: dc, theme: th, fonts: newFontSet()}
}

// Theme returns the theme this renderer draws with.
func (r *Renderer) Theme() theme.Theme { return r.theme }

// Size returns the canvas dimensions.
func (r *Renderer) Size() (int, int) { return r.dc.Width(), r.dc.Height() }

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image { return r.dc.Image() }

// Face returns the cached font face for a tier within a size category.
// The bold flag is combined with the theme's value typography setting by
// callers; Face itself is mechanical.
func (r *Renderer) Face(tier FontTier, cat SizeCategory, bold bool) (font.Face, error) {
	return r.fonts.face(FontSize(tier, cat), bold)
}

// TextSize measures a string with the given face.
func (r *Renderer) TextSize(s string, face font.Face) (float64, float64) {
	r.dc.SetFontFace(face)
	return r.dc.MeasureString(s)
}

// DrawText draws an anchored string. ax/ay follow gg conventions:
// 0 anchors left/top, 0.5 centers, 1 anchors right/bottom.
func (r *Renderer) DrawText(s string, x, y float64, face font.Face, col color.Color, ax, ay float64) {
	if s == "" {
		return
	}
	r.dc.SetFontFace(face)
	r.dc.SetColor(col)
	r.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// DrawPanel fills a rounded rectangle.
func (r *Renderer) DrawPanel(rect image.Rectangle, fill color.Color, radius int) {
	r.dc.SetColor(fill)
	r.dc.DrawRoundedRectangle(
		float64(rect.Min.X), float64(rect.Min.Y),
		float64(rect.Dx()), float64(rect.Dy()),
		float64(radius),
	)
	r.dc.Fill()
}

// StrokePanel outlines a rounded rectangle.
func (r *Renderer) StrokePanel(rect image.Rectangle, col color.Color, radius, width int) {
	if width <= 0 {
		return
	}
	r.dc.SetColor(col)
	r.dc.SetLineWidth(float64(width))
	r.dc.DrawRoundedRectangle(
		float64(rect.Min.X), float64(rect.Min.Y),
		float64(rect.Dx()), float64(rect.Dy()),
		float64(radius),
	)
	r.dc.Stroke()
}

// DrawBar draws a horizontal progress bar with a track. Percent is clamped
// to [0, 100]. Honors the theme's inverted-bar effect.
func (r *Renderer) DrawBar(rect image.Rectangle, percent float64, fill, track color.Color) {
	percent = clampPercent(percent)
	radius := math.Min(float64(rect.Dy())/2, float64(r.theme.CornerRadius))

	fillCol, trackCol := fill, track
	if r.theme.InvertBars {
		fillCol, trackCol = track, fill
	}

	r.dc.SetColor(trackCol)
	r.dc.DrawRoundedRectangle(
		float64(rect.Min.X), float64(rect.Min.Y),
		float64(rect.Dx()), float64(rect.Dy()), radius,
	)
	r.dc.Fill()

	w := float64(rect.Dx()) * percent / 100
	if w < 1 {
		return
	}
	r.dc.SetColor(fillCol)
	r.dc.DrawRoundedRectangle(
		float64(rect.Min.X), float64(rect.Min.Y),
		w, float64(rect.Dy()), math.Min(radius, w/2),
	)
	r.dc.Fill()
}

// DrawRing draws a circular ring gauge starting at 12 o'clock, clockwise.
func (r *Renderer) DrawRing(cx, cy, radius int, percent float64, fill, track color.Color, width int) {
	percent = clampPercent(percent)
	start := -math.Pi / 2

	r.dc.SetLineWidth(float64(width))
	r.dc.SetLineCap(gg.LineCapRound)

	r.dc.SetColor(track)
	r.dc.NewSubPath()
	r.dc.DrawArc(float64(cx), float64(cy), float64(radius), 0, 2*math.Pi)
	r.dc.Stroke()

	if percent > 0 {
		r.dc.SetColor(fill)
		r.dc.NewSubPath()
		r.dc.DrawArc(float64(cx), float64(cy), float64(radius), start, start+2*math.Pi*percent/100)
		r.dc.Stroke()
	}
	r.dc.SetLineCap(gg.LineCapButt)
}

// DrawArcGauge draws a semicircular gauge across the top half of rect,
// sweeping left to right.
func (r *Renderer) DrawArcGauge(rect image.Rectangle, percent float64, fill, track color.Color) {
	percent = clampPercent(percent)
	cx := float64(rect.Min.X+rect.Max.X) / 2
	cy := float64(rect.Min.Y+rect.Max.Y) / 2
	radius := math.Min(float64(rect.Dx()), float64(rect.Dy())) / 2
	width := math.Max(4, radius/5)

	r.dc.SetLineWidth(width)
	r.dc.SetLineCap(gg.LineCapRound)

	// Upper semicircle runs from angle pi (left) to 2*pi (right) in the
	// y-down coordinate system.
	r.dc.SetColor(track)
	r.dc.NewSubPath()
	r.dc.DrawArc(cx, cy, radius, math.Pi, 2*math.Pi)
	r.dc.Stroke()

	if percent > 0 {
		r.dc.SetColor(fill)
		r.dc.NewSubPath()
		r.dc.DrawArc(cx, cy, radius, math.Pi, math.Pi+math.Pi*percent/100)
		r.dc.Stroke()
	}
	r.dc.SetLineCap(gg.LineCapButt)
}

// ApplyScanlines darkens every other row for the retro CRT effect.
func (r *Renderer) ApplyScanlines() {
	w, h := r.Size()
	r.dc.SetRGBA255(0, 0, 0, 70)
	for y := 0; y < h; y += 2 {
		r.dc.DrawRectangle(0, float64(y), float64(w), 1)
		r.dc.Fill()
	}
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
