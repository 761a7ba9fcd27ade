// Package layout partitions the display canvas into widget slots. Every
// layout is a pure function from geometry parameters to a fixed, ordered
// slot list; widgets are assigned to slots by index in the screen config.
package layout

import (
	"fmt"
	"image"
	"sort"
)

// Type names a slot arrangement.
type Type string

const (
	Grid2x2         Type = "grid_2x2"
	Grid2x3         Type = "grid_2x3"
	Hero            Type = "hero"
	SplitHorizontal Type = "split_horizontal"
	SplitVertical   Type = "split_vertical"
	ThreeColumn     Type = "three_column"
	HeroSimple      Type = "hero_simple"
)

// Slot is one rectangle a widget renders into. Index is the position a
// screen config refers to.
type Slot struct {
	Index int
	Rect  image.Rectangle
}

// Params carries the geometry inputs a layout needs. Padding insets the
// whole canvas, Gap separates slots, Ratio skews split layouts toward
// their first slot.
type Params struct {
	Width   int
	Height  int
	Padding int
	Gap     int
	Ratio   float64
}

func (p Params) content() image.Rectangle {
	return image.Rect(p.Padding, p.Padding, p.Width-p.Padding, p.Height-p.Padding)
}

func (p Params) ratio() float64 {
	r := p.Ratio
	if r == 0 {
		return 0.5
	}
	if r < 0.2 {
		return 0.2
	}
	if r > 0.8 {
		return 0.8
	}
	return r
}

// Builder produces the slot list for one layout type.
type Builder func(Params) []Slot

var builders = map[Type]Builder{
	Grid2x2:         buildGrid2x2,
	Grid2x3:         buildGrid2x3,
	Hero:            buildHero,
	SplitHorizontal: buildSplitHorizontal,
	SplitVertical:   buildSplitVertical,
	ThreeColumn:     buildThreeColumn,
	HeroSimple:      buildHeroSimple,
}

var slotCounts = map[Type]int{
	Grid2x2:         4,
	Grid2x3:         6,
	Hero:            4,
	SplitHorizontal: 2,
	SplitVertical:   2,
	ThreeColumn:     3,
	HeroSimple:      2,
}

// FromType resolves a layout name from config.
func FromType(name string) (Builder, error) {
	b, ok := builders[Type(name)]
	if !ok {
		return nil, fmt.Errorf("layout: unknown layout %q (known: %v)", name, Names())
	}
	return b, nil
}

// SlotCount returns how many slots a layout produces, or 0 for an unknown
// type. Config validation uses it to range-check slot assignments.
func SlotCount(name string) int {
	return slotCounts[Type(name)]
}

// Names returns the known layout names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for t := range builders {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// grid splits the content box into rows*cols cells, row-major.
func grid(p Params, rows, cols int) []Slot {
	box := p.content()
	cellW := (box.Dx() - p.Gap*(cols-1)) / cols
	cellH := (box.Dy() - p.Gap*(rows-1)) / rows

	slots := make([]Slot, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := box.Min.X + c*(cellW+p.Gap)
			y := box.Min.Y + r*(cellH+p.Gap)
			slots = append(slots, Slot{
				Index: len(slots),
				Rect:  image.Rect(x, y, x+cellW, y+cellH),
			})
		}
	}
	return slots
}

func buildGrid2x2(p Params) []Slot { return grid(p, 2, 2) }

// Grid2x3 stacks three rows of two, giving wide shallow cells that suit
// bar and status widgets.
func buildGrid2x3(p Params) []Slot { return grid(p, 3, 2) }

// Hero gives slot 0 the top 60% of the canvas and splits the remainder
// into three equal columns.
func buildHero(p Params) []Slot {
	box := p.content()
	heroH := (box.Dy() - p.Gap) * 60 / 100
	rowY := box.Min.Y + heroH + p.Gap
	colW := (box.Dx() - 2*p.Gap) / 3

	slots := []Slot{
		{Index: 0, Rect: image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+heroH)},
	}
	for c := 0; c < 3; c++ {
		x := box.Min.X + c*(colW+p.Gap)
		slots = append(slots, Slot{
			Index: c + 1,
			Rect:  image.Rect(x, rowY, x+colW, box.Max.Y),
		})
	}
	return slots
}

// SplitHorizontal stacks two slots, the first taking Ratio of the height.
func buildSplitHorizontal(p Params) []Slot {
	box := p.content()
	firstH := int(float64(box.Dy()-p.Gap) * p.ratio())
	return []Slot{
		{Index: 0, Rect: image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+firstH)},
		{Index: 1, Rect: image.Rect(box.Min.X, box.Min.Y+firstH+p.Gap, box.Max.X, box.Max.Y)},
	}
}

// SplitVertical places two slots side by side, the first taking Ratio of
// the width.
func buildSplitVertical(p Params) []Slot {
	box := p.content()
	firstW := int(float64(box.Dx()-p.Gap) * p.ratio())
	return []Slot{
		{Index: 0, Rect: image.Rect(box.Min.X, box.Min.Y, box.Min.X+firstW, box.Max.Y)},
		{Index: 1, Rect: image.Rect(box.Min.X+firstW+p.Gap, box.Min.Y, box.Max.X, box.Max.Y)},
	}
}

// ThreeColumn places three equal full-height columns.
func buildThreeColumn(p Params) []Slot {
	box := p.content()
	colW := (box.Dx() - 2*p.Gap) / 3

	slots := make([]Slot, 0, 3)
	for c := 0; c < 3; c++ {
		x := box.Min.X + c*(colW+p.Gap)
		slots = append(slots, Slot{
			Index: c,
			Rect:  image.Rect(x, box.Min.Y, x+colW, box.Max.Y),
		})
	}
	return slots
}

// HeroSimple carries one dominant slot over a shallow footer row. The
// notification overlay renders on it.
func buildHeroSimple(p Params) []Slot {
	box := p.content()
	heroH := (box.Dy() - p.Gap) * 75 / 100
	return []Slot{
		{Index: 0, Rect: image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+heroH)},
		{Index: 1, Rect: image.Rect(box.Min.X, box.Min.Y+heroH+p.Gap, box.Max.X, box.Max.Y)},
	}
}
