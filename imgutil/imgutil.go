// Package imgutil provides small image.Image wrapper types used to scale
// and rotate rasterized label content without making an intermediate copy.
package imgutil

import (
	"image"
	"image/color"
)

// Scale is a nearest-neighbor scaling image.Image wrapper, with
// independent horizontal and vertical factors. It is used to stretch
// 1-module-per-pixel barcode rasters up to the module width/height
// requested by a label, and to scale bitmap font glyphs.
type Scale struct {
	Image          image.Image
	ScaleX, ScaleY int
}

// ColorModel implements image.Image.
func (s *Scale) ColorModel() color.Model {
	return s.Image.ColorModel()
}

// Bounds implements image.Image.
func (s *Scale) Bounds() image.Rectangle {
	r := s.Image.Bounds()
	sx, sy := s.factors()
	return image.Rect(r.Min.X*sx, r.Min.Y*sy, r.Max.X*sx, r.Max.Y*sy)
}

// At implements image.Image.
func (s *Scale) At(x, y int) color.Color {
	sx, sy := s.factors()
	if x < 0 {
		x = x - sx + 1
	}
	if y < 0 {
		y = y - sy + 1
	}
	return s.Image.At(x/sx, y/sy)
}

func (s *Scale) factors() (sx, sy int) {
	sx, sy = s.ScaleX, s.ScaleY
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	return sx, sy
}

// Quarter is a count of 90 degree clockwise turns, matching ZPL field
// orientation: N=0, R=1, I=2, B=3.
type Quarter int

// Rotate wraps an image.Image, rotating it clockwise by a whole number of
// quarter turns. Generalizes the single fixed 90-degree rotator to all four
// ZPL orientations (N, R, I, B) with one type.
type Rotate struct {
	Image image.Image
	Turns Quarter
}

func (r *Rotate) turns() Quarter {
	t := r.Turns % 4
	if t < 0 {
		t += 4
	}
	return t
}

// ColorModel implements image.Image.
func (r *Rotate) ColorModel() color.Model { return r.Image.ColorModel() }

// Bounds implements image.Image.
func (r *Rotate) Bounds() image.Rectangle {
	b := r.Image.Bounds()
	switch r.turns() {
	case 0:
		return b
	case 1: // 90° clockwise
		return image.Rect(-(b.Max.Y - 1), b.Min.X, -(b.Min.Y - 1), b.Max.X)
	case 2: // 180°
		return image.Rect(-(b.Max.X - 1), -(b.Max.Y - 1), -(b.Min.X - 1), -(b.Min.Y - 1))
	default: // 270° clockwise
		return image.Rect(b.Min.Y, -(b.Max.X - 1), b.Max.Y, -(b.Min.X - 1))
	}
}

// At implements image.Image.
func (r *Rotate) At(x, y int) color.Color {
	switch r.turns() {
	case 0:
		return r.Image.At(x, y)
	case 1:
		return r.Image.At(y, -x)
	case 2:
		return r.Image.At(-x, -y)
	default:
		return r.Image.At(-y, x)
	}
}
