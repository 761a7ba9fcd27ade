package component

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DennisDane/geekmagic-go/internal/render"
	"github.com/DennisDane/geekmagic-go/internal/theme"
)

func testEnv(t *testing.T) Env {
	t.Helper()
	return Env{
		R:   render.New(theme.Default),
		Cat: render.SizeSmall,
	}
}

func TestTextMeasure(t *testing.T) {
	t.Parallel()
	env := testEnv(t)

	empty := Text{}.Measure(env, image.Pt(240, 240))
	require.Equal(t, image.Point{}, empty)

	short := Text{Content: "21°"}.Measure(env, image.Pt(240, 240))
	long := Text{Content: "Living Room Temperature"}.Measure(env, image.Pt(240, 240))
	require.Greater(t, long.X, short.X)
	require.Equal(t, short.Y, long.Y)

	clipped := Text{Content: "Living Room Temperature"}.Measure(env, image.Pt(30, 240))
	require.Equal(t, 30, clipped.X)
}

func TestSpacerFlex(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, flexOf(Spacer{Width: 4}))
	require.Equal(t, 3, flexOf(Spacer{Weight: 3}))
	require.Equal(t, 1, flexOf(Bar{}))
	require.Equal(t, 0, flexOf(Text{Content: "x"}))
}

// recorder captures the rect a container assigns to it.
type recorder struct {
	size   image.Point
	weight int
	got    *image.Rectangle
}

func (r recorder) Flex() int { return r.weight }

func (r recorder) Measure(env Env, avail image.Point) image.Point { return r.size }

func (r recorder) Render(env Env, rect image.Rectangle) { *r.got = rect }

func TestRowFlexDistribution(t *testing.T) {
	t.Parallel()
	env := testEnv(t)

	var fixed, flexA, flexB image.Rectangle
	row := Row{
		Gap: 4,
		Children: []Component{
			recorder{size: image.Pt(30, 10), got: &fixed},
			recorder{size: image.Pt(0, 10), weight: 1, got: &flexA},
			recorder{size: image.Pt(0, 10), weight: 2, got: &flexB},
		},
	}
	row.Render(env, image.Rect(0, 0, 128, 20))

	require.Equal(t, 30, fixed.Dx())
	// Leftover is 128 - 30 - 2*4 = 90, split 1:2.
	require.Equal(t, 30, flexA.Dx())
	require.Equal(t, 60, flexB.Dx())
	require.Equal(t, fixed.Max.X+4, flexA.Min.X)
	require.Equal(t, flexA.Max.X+4, flexB.Min.X)
}

func TestColumnStacksChildren(t *testing.T) {
	t.Parallel()
	env := testEnv(t)

	var top, bottom image.Rectangle
	col := Column{
		Gap: 2,
		Children: []Component{
			recorder{size: image.Pt(40, 12), got: &top},
			recorder{size: image.Pt(40, 0), weight: 1, got: &bottom},
		},
	}
	col.Render(env, image.Rect(0, 0, 100, 50))

	require.Equal(t, 12, top.Dy())
	require.Equal(t, 14, bottom.Min.Y)
	// Flexible child absorbs the leftover height and the full width.
	require.Equal(t, 36, bottom.Dy())
	require.Equal(t, 100, bottom.Dx())
}

func TestColumnAlignX(t *testing.T) {
	t.Parallel()
	env := testEnv(t)

	var got image.Rectangle
	col := Column{
		AlignX:   AlignCenter,
		Children: []Component{recorder{size: image.Pt(20, 10), got: &got}},
	}
	col.Render(env, image.Rect(0, 0, 100, 10))

	require.Equal(t, 40, got.Min.X)
	require.Equal(t, 60, got.Max.X)
}

func TestCenter(t *testing.T) {
	t.Parallel()
	env := testEnv(t)

	var got image.Rectangle
	Center{Child: recorder{size: image.Pt(10, 10), got: &got}}.
		Render(env, image.Rect(0, 0, 100, 100))

	require.Equal(t, image.Rect(45, 45, 55, 55), got)
}

func TestBarRendersWithinRect(t *testing.T) {
	t.Parallel()

	th := theme.Theme{
		Background:    color.RGBA{A: 255},
		Primary:       color.RGBA{G: 255, A: 255},
		BarBackground: color.RGBA{R: 30, G: 30, B: 30, A: 255},
	}
	env := Env{R: render.NewSized(th, 100, 20), Cat: render.SizeSmall}

	Bar{Percent: 100, Height: 20}.Render(env, image.Rect(0, 0, 100, 20))

	got := color.RGBAModel.Convert(env.R.Image().At(50, 10)).(color.RGBA)
	require.Equal(t, th.Primary, got)
}
