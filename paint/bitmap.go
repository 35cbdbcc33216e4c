package paint

import (
	"image"
	"image/color"

	"go.labelcraft.dev/labelcraft/imgutil"
	"go.labelcraft.dev/labelcraft/label"
)

// paintBitmap blits a decoded ^GF or ^GIC raster: 1-bit sources treat 1
// as line_color and 0 as transparent; color sources (^GIC) blit their
// RGBA verbatim.
func paintBitmap(c *Canvas, in label.Instruction) image.Rectangle {
	p := in.Payload.(label.BitmapPayload)
	src := bitmapToImage(p)
	rot := &imgutil.Rotate{Image: src, Turns: imgutil.Quarter(in.Rotation.Quarters())}
	b := rot.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := rot.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			c.setClipped(in.X+(x-b.Min.X), in.Y+(y-b.Min.Y),
				color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)})
		}
	}
	return image.Rect(in.X, in.Y, in.X+b.Dx(), in.Y+b.Dy())
}

// bitmapToImage adapts a BitmapPayload to image.Image, whichever of its
// two representations (1-bit Bits or decoded RGBA) is populated.
func bitmapToImage(p label.BitmapPayload) image.Image {
	if p.RGBA != nil {
		return &rgbaSliceImage{w: p.Width, h: p.Height, px: p.RGBA}
	}
	return &bitSliceImage{w: p.Width, h: p.Height, bits: p.Bits, fg: p.LineColor}
}

type rgbaSliceImage struct {
	w, h int
	px   []color.RGBA
}

func (r *rgbaSliceImage) ColorModel() color.Model { return color.RGBAModel }
func (r *rgbaSliceImage) Bounds() image.Rectangle { return image.Rect(0, 0, r.w, r.h) }
func (r *rgbaSliceImage) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return color.RGBA{}
	}
	return r.px[y*r.w+x]
}

type bitSliceImage struct {
	w, h int
	bits []byte
	fg   color.RGBA
}

func (b *bitSliceImage) ColorModel() color.Model { return color.RGBAModel }
func (b *bitSliceImage) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }
func (b *bitSliceImage) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return color.RGBA{}
	}
	stride := (b.w + 7) / 8
	idx := y*stride + x/8
	if idx >= len(b.bits) {
		return color.RGBA{}
	}
	bit := b.bits[idx] & (1 << uint(7-x%8))
	if bit == 0 {
		return color.RGBA{} // transparent
	}
	return b.fg
}
