// Package paint implements the primitive painter: it composites an
// ordered label.Instruction sequence onto a single RGBA pixel buffer,
// consuming package font for text shaping and package barcode's Symbol
// matrices for barcode fields.
package paint

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is the mutable pixel buffer a Paint pass writes into: opaque
// white on construction, exactly like a blank label.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a w×h canvas, initialized to opaque white.
func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image exposes the underlying raster for backend adapters.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// setClipped writes px at (x,y), silently discarding out-of-bounds
// writes.
func (c *Canvas) setClipped(x, y int, px color.Color) {
	if !(image.Point{X: x, Y: y}.In(c.img.Bounds())) {
		return
	}
	c.img.Set(x, y, px)
}

// xorRect XORs every channel of every pixel in r (clipped to the canvas)
// against white, implementing reverse-video.
func (c *Canvas) xorRect(r image.Rectangle) {
	r = r.Intersect(c.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px := c.img.RGBAAt(x, y)
			c.img.SetRGBA(x, y, color.RGBA{
				R: 0xff ^ px.R, G: 0xff ^ px.G, B: 0xff ^ px.B, A: px.A,
			})
		}
	}
}
