package paint

import (
	"image"
	"image/color"

	"go.labelcraft.dev/labelcraft/font"
	"go.labelcraft.dev/labelcraft/label"
)

// Paint composites ins onto canvas in order, using fonts to shape Text
// instructions. It never fails: rasterization happens only after
// lowering has already succeeded, and clipping absorbs any remaining
// out-of-range geometry.
func Paint(canvas *Canvas, ins []label.Instruction, fonts *font.Manager) {
	for _, in := range ins {
		bounds := paintOne(canvas, in, fonts)
		if in.Reverse && !bounds.Empty() {
			canvas.xorRect(bounds)
		}
	}
}

func paintOne(c *Canvas, in label.Instruction, fonts *font.Manager) image.Rectangle {
	switch in.Kind {
	case label.KindBox, label.KindLine:
		return paintBox(c, in)
	case label.KindCircle:
		return paintCircle(c, in)
	case label.KindEllipse:
		return paintEllipse(c, in)
	case label.KindBitmap:
		return paintBitmap(c, in)
	case label.KindText:
		return paintText(c, in, fonts)
	case label.KindCode39, label.KindCode128, label.KindQR:
		return paintBarcode(c, in)
	default:
		return image.Rectangle{}
	}
}

// blitMask paints fg at every opaque pixel of mask, anchored so mask's
// origin lands at (x,y), and returns the painted bounding box.
func blitMask(c *Canvas, x, y int, mask *image.Alpha, fg color.RGBA) image.Rectangle {
	b := mask.Bounds()
	for my := b.Min.Y; my < b.Max.Y; my++ {
		for mx := b.Min.X; mx < b.Max.X; mx++ {
			a := mask.AlphaAt(mx, my).A
			if a == 0 {
				continue
			}
			c.setClipped(x+mx-b.Min.X, y+my-b.Min.Y, fg)
		}
	}
	return image.Rect(x, y, x+b.Dx(), y+b.Dy())
}
