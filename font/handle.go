// Package font implements the ZPL font manager: mapping a ZPL font
// identifier (A..Z, 0..9) to a font handle, and shaping text into glyph
// runs at a requested pixel height. Bitmap fonts use the classic BDF
// glyph storage shape; outline/TrueType fonts are built on
// github.com/golang/freetype.
package font

import (
	"image"
	"image/color"

	"go.labelcraft.dev/labelcraft/imgutil"
)

// GlyphRun is one shaped glyph: its identity, how far the pen advances
// after it, and its rasterized bitmap mask at the requested size.
type GlyphRun struct {
	GlyphID  rune
	XAdvance int
	YAdvance int
	Bitmap   *image.Alpha
}

// Handle is a registered, resolvable font: either a bitmap (BDF) face or
// an outline (TrueType) face, both shaped to the same GlyphRun shape so
// the painter never needs to know which backs a given field.
type Handle interface {
	Shape(text string, heightDots, widthDots int) []GlyphRun
}

// rasterizeGlyph converts a 1-bit glyph bitmap into an *image.Alpha mask
// scaled by an integer factor via imgutil.Scale (bitmap fonts only
// support integer magnification, same as on the physical printer).
func rasterizeGlyph(g glyph, scale int) *image.Alpha {
	if scale < 1 {
		scale = 1
	}
	var src image.Image = &glyphImage{g: g}
	if scale > 1 {
		src = &imgutil.Scale{Image: src, ScaleX: scale, ScaleY: scale}
	}
	b := src.Bounds()
	out := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			out.SetAlpha(x, y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return out
}

// glyphImage adapts a single bdf glyph to image.Image, matching the
// teacher's bdf.glyph.At semantics (opaque mark, transparent elsewhere).
type glyphImage struct{ g glyph }

func (gi *glyphImage) ColorModel() color.Model    { return color.AlphaModel }
func (gi *glyphImage) Bounds() image.Rectangle    { return gi.g.bounds }
func (gi *glyphImage) At(x, y int) color.Color {
	if gi.g.at(x, y) {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{A: 0}
}
