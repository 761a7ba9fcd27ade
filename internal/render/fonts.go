package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// SizeCategory buckets a slot by its height so widgets can adapt their
// arrangement and typography to the space they were given.
type SizeCategory int

const (
	SizeMicro SizeCategory = iota
	SizeTiny
	SizeSmall
	SizeMedium
	SizeLarge
)

// String implements fmt.Stringer for log output.
func (c SizeCategory) String() string {
	switch c {
	case SizeMicro:
		return "micro"
	case SizeTiny:
		return "tiny"
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return fmt.Sprintf("SizeCategory(%d)", int(c))
}

// Categorize maps a slot height in pixels to a size category. Thresholds
// derive from the slot geometry the layouts produce on a 240px canvas.
func Categorize(height int) SizeCategory {
	switch {
	case height < 64:
		return SizeMicro
	case height < 88:
		return SizeTiny
	case height < 120:
		return SizeSmall
	case height < 168:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// FontTier names a role a piece of text plays; the pixel size also depends
// on the slot's size category.
type FontTier string

const (
	TierTiny    FontTier = "tiny"
	TierSmall   FontTier = "small"
	TierRegular FontTier = "regular"
	TierLarge   FontTier = "large"
	TierHuge    FontTier = "huge"
)

var tierBase = map[FontTier]float64{
	TierTiny:    10,
	TierSmall:   12,
	TierRegular: 16,
	TierLarge:   22,
	TierHuge:    30,
}

var categoryScale = map[SizeCategory]float64{
	SizeMicro:  0.75,
	SizeTiny:   0.85,
	SizeSmall:  1.0,
	SizeMedium: 1.2,
	SizeLarge:  1.45,
}

// FontSize returns the pixel size for a tier inside a size category.
func FontSize(tier FontTier, cat SizeCategory) float64 {
	base, ok := tierBase[tier]
	if !ok {
		base = tierBase[TierRegular]
	}
	scale, ok := categoryScale[cat]
	if !ok {
		scale = 1.0
	}
	return base * scale
}

var (
	parseOnce   sync.Once
	regularFont *sfnt.Font
	boldFont    *sfnt.Font
	parseErr    error
)

func parseFonts() {
	regularFont, parseErr = opentype.Parse(goregular.TTF)
	if parseErr != nil {
		return
	}
	boldFont, parseErr = opentype.Parse(gobold.TTF)
}

type faceKey struct {
	size float64
	bold bool
}

// fontSet caches opentype faces per renderer. Faces are not safe for
// concurrent use, so the cache is not shared between renderers.
type fontSet struct {
	faces map[faceKey]font.Face
}

func newFontSet() *fontSet {
	return &fontSet{faces: make(map[faceKey]font.Face)}
}

func (fs *fontSet) face(size float64, bold bool) (font.Face, error) {
	parseOnce.Do(parseFonts)
	if parseErr != nil {
		return nil, fmt.Errorf("render: parse embedded fonts: %w", parseErr)
	}

	key := faceKey{size: size, bold: bold}
	if f, ok := fs.faces[key]; ok {
		return f, nil
	}

	src := regularFont
	if bold {
		src = boldFont
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: build font face: %w", err)
	}
	fs.faces[key] = f
	return f, nil
}
