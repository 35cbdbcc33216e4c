package paint

import (
	"image"
	"image/color"
	"image/draw"

	"go.labelcraft.dev/labelcraft/font"
	"go.labelcraft.dev/labelcraft/imgutil"
	"go.labelcraft.dev/labelcraft/label"
)

// paintText shapes and blits a Text instruction: each glyph run
// is composed into a local, unrotated line buffer with the pen on the
// baseline, the buffer is then rotated as a whole by the field's
// orientation, and blitted onto the canvas in text_color.
func paintText(c *Canvas, in label.Instruction, fonts *font.Manager) image.Rectangle {
	p := in.Payload.(label.TextPayload)
	runs := fonts.Shape(p.FontID, p.Text, p.Height, p.Width)
	if len(runs) == 0 {
		return image.Rectangle{}
	}

	totalAdvance := 0
	maxAbove, maxBelow := 0, 1
	for _, r := range runs {
		totalAdvance += r.XAdvance
		b := r.Bitmap.Bounds()
		if -b.Min.Y > maxAbove {
			maxAbove = -b.Min.Y
		}
		if b.Max.Y > maxBelow {
			maxBelow = b.Max.Y
		}
	}
	if totalAdvance < 1 {
		totalAdvance = 1
	}

	lineH := maxAbove + maxBelow
	line := image.NewRGBA(image.Rect(0, 0, totalAdvance, lineH))
	baselineRow := maxAbove

	penX := 0
	for _, r := range runs {
		b := r.Bitmap.Bounds()
		dst := image.Rect(penX+b.Min.X, baselineRow+b.Min.Y, penX+b.Max.X, baselineRow+b.Max.Y)
		draw.DrawMask(line, dst, &image.Uniform{C: in.Color}, image.Point{}, r.Bitmap, b.Min, draw.Over)
		penX += r.XAdvance
	}

	rot := &imgutil.Rotate{Image: line, Turns: imgutil.Quarter(in.Rotation.Quarters())}
	rb := rot.Bounds()

	// ^FO anchors the cell's top-left to in.Y; ^FT anchors the baseline
	// row to in.Y instead.
	originY := in.Y
	if p.Baseline {
		originY = in.Y - baselineRow
	}

	for y := rb.Min.Y; y < rb.Max.Y; y++ {
		for x := rb.Min.X; x < rb.Max.X; x++ {
			r, g, b, a := rot.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			c.setClipped(in.X+(x-rb.Min.X), originY+(y-rb.Min.Y),
				color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
		}
	}
	return image.Rect(in.X, originY, in.X+rb.Dx(), originY+rb.Dy())
}
