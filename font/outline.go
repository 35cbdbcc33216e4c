package font

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"
)

// outlineHandle adapts a parsed TrueType/OpenType font to the Handle
// interface via github.com/golang/freetype, rendering each glyph into
// its own tightly-cropped alpha mask at the requested pixel height.
type outlineHandle struct {
	face *truetype.Font
}

func (h *outlineHandle) Shape(text string, heightDots, widthDots int) []GlyphRun {
	if heightDots <= 0 {
		heightDots = 1
	}

	runs := make([]GlyphRun, 0, len(text))
	for _, r := range text {
		bmp, advance := h.rasterizeRune(r, heightDots)
		xAdvance := advance
		if widthDots > 0 {
			xAdvance = widthDots
		}
		runs = append(runs, GlyphRun{
			GlyphID:  r,
			XAdvance: xAdvance,
			YAdvance: 0,
			Bitmap:   bmp,
		})
	}
	return runs
}

// rasterizeRune draws a single rune at the requested pixel height into a
// canvas sized generously (2x height square), then crops to the mask's
// opaque bounds so GlyphRun.Bitmap carries no wasted margin.
func (h *outlineHandle) rasterizeRune(r rune, heightDots int) (*image.Alpha, int) {
	canvasSide := heightDots * 2
	if canvasSide < 1 {
		canvasSide = 1
	}
	dst := image.NewGray(image.Rect(0, 0, canvasSide, canvasSide))
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(h.face)
	ctx.SetFontSize(float64(heightDots))
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.White)

	pt := fixed.Point26_6{
		X: fixed.I(0),
		Y: fixed.I(heightDots),
	}
	end, err := ctx.DrawString(string(r), pt)
	advance := heightDots / 2
	if err == nil {
		advance = (end.X - pt.X).Round()
	}

	bounds := opaqueBounds(dst)
	// Translate to baseline-relative coordinates (pen at (0,0) on the
	// baseline, y negative upward) so outline and bitmap glyphs share
	// the same placement convention in package paint.
	baselineY := pt.Y.Round()
	rel := image.Rect(bounds.Min.X, bounds.Min.Y-baselineY, bounds.Max.X, bounds.Max.Y-baselineY)
	out := image.NewAlpha(rel)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetAlpha(x, y-baselineY, color.Alpha{A: dst.GrayAt(x, y).Y})
		}
	}
	return out, advance
}

// opaqueBounds finds the tightest rectangle containing every non-zero
// pixel of g, falling back to a single pixel at the origin if g is blank
// (e.g. a space character).
func opaqueBounds(g *image.Gray) image.Rectangle {
	b := g.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if g.GrayAt(x, y).Y == 0 {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x+1 > maxX {
				maxX = x + 1
			}
			if y+1 > maxY {
				maxY = y + 1
			}
		}
	}
	if !found {
		return image.Rect(0, 0, 1, 1)
	}
	return image.Rect(minX, minY, maxX, maxY)
}
