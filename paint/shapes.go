package paint

import (
	"image"
	"image/color"

	"go.labelcraft.dev/labelcraft/label"
)

// paintBox renders ^GB (and the one-dimensional ^GC/^GE... no, those are
// circle/ellipse; this handles Box/Line): an axis-aligned rectangle of
// thickness t, with corner radius r∈0..8 giving an actual pixel radius
// of min(w,h)·r/8/2. w<=t or h<=t degenerates to a filled bar.
func paintBox(c *Canvas, in label.Instruction) image.Rectangle {
	p := in.Payload.(label.BoxPayload)
	w, h, t := in.W, in.H, p.Thickness
	if t < 1 {
		t = 1
	}
	radius := 0
	if w < h {
		radius = w * p.CornerLevel / 8 / 2
	} else {
		radius = h * p.CornerLevel / 8 / 2
	}

	filled := w <= t || h <= t
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !insideRoundedRect(x, y, w, h, radius) {
				continue
			}
			if !filled && insideInset(x, y, w, h, t, radius) {
				continue
			}
			c.setClipped(in.X+x, in.Y+y, in.Color)
		}
	}
	return image.Rect(in.X, in.Y, in.X+w, in.Y+h)
}

// insideRoundedRect reports whether (x,y), in a w×h box with top-left at
// the origin, lies within a rectangle whose corners are rounded to the
// given pixel radius.
func insideRoundedRect(x, y, w, h, radius int) bool {
	if radius <= 0 {
		return x >= 0 && x < w && y >= 0 && y < h
	}
	if x < 0 || x >= w || y < 0 || y >= h {
		return false
	}
	cx, cy := x, y
	switch {
	case x < radius:
		cx = radius
	case x >= w-radius:
		cx = w - radius - 1
	}
	switch {
	case y < radius:
		cy = radius
	case y >= h-radius:
		cy = h - radius - 1
	}
	// Only the four corner regions need the circular test; everywhere
	// else cx==x or cy==y keeps the check trivially true.
	if cx == x && cy == y {
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// insideInset reports whether (x,y) lies strictly within the box inset
// by thickness t on every side (the box's unfilled interior).
func insideInset(x, y, w, h, t, radius int) bool {
	innerRadius := radius - t
	if innerRadius < 0 {
		innerRadius = 0
	}
	return x >= t && x < w-t && y >= t && y < h-t &&
		insideRoundedRect(x-t, y-t, w-2*t, h-2*t, innerRadius)
}

// paintCircle renders ^GC: an unfilled ring of thickness t (or filled
// disc when t >= radius), using a midpoint-style distance test.
func paintCircle(c *Canvas, in label.Instruction) image.Rectangle {
	p := in.Payload.(label.CirclePayload)
	return paintEllipseLike(c, in.X, in.Y, in.W, in.H, p.Thickness, in.Color)
}

// paintEllipse renders ^GE with independent x/y radii.
func paintEllipse(c *Canvas, in label.Instruction) image.Rectangle {
	p := in.Payload.(label.EllipsePayload)
	return paintEllipseLike(c, in.X, in.Y, in.W, in.H, p.Thickness, in.Color)
}

// paintEllipseLike rasterizes an axis-aligned ellipse inscribed in the
// w×h box at (x0,y0): filled when t >= min(w,h)/2, else an unfilled ring
// of thickness t.
func paintEllipseLike(c *Canvas, x0, y0, w, h, t int, fg color.RGBA) image.Rectangle {
	if t < 1 {
		t = 1
	}
	rx, ry := float64(w)/2, float64(h)/2
	cx, cy := rx, ry
	minRadius := rx
	if ry < minRadius {
		minRadius = ry
	}
	filled := float64(t) >= minRadius

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			nx, ny := (fx-cx)/rx, (fy-cy)/ry
			d := nx*nx + ny*ny
			if d > 1 {
				continue
			}
			if filled {
				c.setClipped(x0+x, y0+y, fg)
				continue
			}
			// Ring test: distance from the inner ellipse (scaled by
			// (r-t)/r) to the outer ellipse boundary.
			innerRX, innerRY := rx-float64(t), ry-float64(t)
			if innerRX <= 0 || innerRY <= 0 {
				c.setClipped(x0+x, y0+y, fg)
				continue
			}
			inx, iny := (fx-cx)/innerRX, (fy-cy)/innerRY
			if inx*inx+iny*iny >= 1 {
				c.setClipped(x0+x, y0+y, fg)
			}
		}
	}
	return image.Rect(x0, y0, x0+w, y0+h)
}
