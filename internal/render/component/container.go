package component

import "image"

// Row lays children out left to right. Fixed children get their measured
// width; flexible children split the leftover space by weight.
type Row struct {
	Children []Component
	Gap      int
	// AlignY positions each child on the vertical axis.
	AlignY Align
	Weight int
}

func (r Row) Flex() int { return r.Weight }

func (r Row) Measure(env Env, avail image.Point) image.Point {
	var w, h int
	for i, c := range r.Children {
		if i > 0 {
			w += r.Gap
		}
		sz := c.Measure(env, image.Pt(avail.X-w, avail.Y))
		w += sz.X
		if sz.Y > h {
			h = sz.Y
		}
	}
	if w > avail.X {
		w = avail.X
	}
	return image.Pt(w, h)
}

func (r Row) Render(env Env, rect image.Rectangle) {
	sizes, flexTotal := measureMain(env, r.Children, rect.Size())

	used := r.Gap * (len(r.Children) - 1)
	for i, c := range r.Children {
		if flexOf(c) == 0 {
			used += sizes[i].X
		}
	}
	leftover := rect.Dx() - used
	if leftover < 0 {
		leftover = 0
	}

	x := rect.Min.X
	for i, c := range r.Children {
		w := sizes[i].X
		if f := flexOf(c); f > 0 && flexTotal > 0 {
			w = leftover * f / flexTotal
		}
		h := sizes[i].Y
		if h == 0 || h > rect.Dy() || flexOf(c) > 0 {
			h = rect.Dy()
		}
		y := rect.Min.Y + alignOffset(r.AlignY, rect.Dy(), h)
		c.Render(env, image.Rect(x, y, x+w, y+h))
		x += w + r.Gap
	}
}

// Column lays children out top to bottom, mirroring Row.
type Column struct {
	Children []Component
	Gap      int
	AlignX   Align
	Weight   int
}

func (col Column) Flex() int { return col.Weight }

func (col Column) Measure(env Env, avail image.Point) image.Point {
	var w, h int
	for i, c := range col.Children {
		if i > 0 {
			h += col.Gap
		}
		sz := c.Measure(env, image.Pt(avail.X, avail.Y-h))
		h += sz.Y
		if sz.X > w {
			w = sz.X
		}
	}
	if h > avail.Y {
		h = avail.Y
	}
	return image.Pt(w, h)
}

func (col Column) Render(env Env, rect image.Rectangle) {
	sizes, flexTotal := measureMain(env, col.Children, rect.Size())

	used := col.Gap * (len(col.Children) - 1)
	for i, c := range col.Children {
		if flexOf(c) == 0 {
			used += sizes[i].Y
		}
	}
	leftover := rect.Dy() - used
	if leftover < 0 {
		leftover = 0
	}

	y := rect.Min.Y
	for i, c := range col.Children {
		h := sizes[i].Y
		if f := flexOf(c); f > 0 && flexTotal > 0 {
			h = leftover * f / flexTotal
		}
		w := sizes[i].X
		if w == 0 || w > rect.Dx() || flexOf(c) > 0 {
			w = rect.Dx()
		}
		x := rect.Min.X + alignOffset(col.AlignX, rect.Dx(), w)
		c.Render(env, image.Rect(x, y, x+w, y+h))
		y += h + col.Gap
	}
}

// Center renders a single child centered in its rect at measured size.
type Center struct {
	Child Component
}

func (ct Center) Measure(env Env, avail image.Point) image.Point {
	return ct.Child.Measure(env, avail)
}

func (ct Center) Render(env Env, rect image.Rectangle) {
	sz := ct.Child.Measure(env, rect.Size())
	x := rect.Min.X + alignOffset(AlignCenter, rect.Dx(), sz.X)
	y := rect.Min.Y + alignOffset(AlignCenter, rect.Dy(), sz.Y)
	ct.Child.Render(env, image.Rect(x, y, x+sz.X, y+sz.Y))
}

func measureMain(env Env, children []Component, avail image.Point) ([]image.Point, int) {
	sizes := make([]image.Point, len(children))
	flexTotal := 0
	for i, c := range children {
		sizes[i] = c.Measure(env, avail)
		flexTotal += flexOf(c)
	}
	return sizes, flexTotal
}

func flexOf(c Component) int {
	if f, ok := c.(Flexer); ok && f.Flex() > 0 {
		return f.Flex()
	}
	return 0
}
