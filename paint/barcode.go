package paint

import (
	"image"
	"image/color"

	"go.labelcraft.dev/labelcraft/barcode"
	"go.labelcraft.dev/labelcraft/barcode/code128"
	"go.labelcraft.dev/labelcraft/barcode/code39"
	"go.labelcraft.dev/labelcraft/barcode/qr"
	"go.labelcraft.dev/labelcraft/imgutil"
	"go.labelcraft.dev/labelcraft/label"
)

// paintBarcode generates the module matrix for a Code39/Code128/QR
// instruction, stretches it to dot resolution, rotates by the field's
// orientation, and blits it at the origin in line_color.
func paintBarcode(c *Canvas, in label.Instruction) image.Rectangle {
	sym, scaleX, scaleY := generateSymbol(in)
	if sym == nil {
		return image.Rectangle{}
	}

	src := &barcodeImage{modules: sym.Modules(), fg: in.Color}
	var img image.Image = src
	if scaleX > 1 || scaleY > 1 {
		img = &imgutil.Scale{Image: img, ScaleX: scaleX, ScaleY: scaleY}
	}
	rot := &imgutil.Rotate{Image: img, Turns: imgutil.Quarter(in.Rotation.Quarters())}
	b := rot.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := rot.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			c.setClipped(in.X+(x-b.Min.X), in.Y+(y-b.Min.Y), in.Color)
		}
	}
	return image.Rect(in.X, in.Y, in.X+b.Dx(), in.Y+b.Dy())
}

// generateSymbol dispatches to the matching generator and returns the
// per-axis magnification to apply. Code 39/128 generators already bake
// the requested bar height into the matrix's row count, so only the
// horizontal module width needs stretching (scaleY stays 1, else a
// Height:10 field would render at Height*ModuleWidth dots tall). QR has
// no such asymmetry: its generator emits one matrix cell per module on
// both axes, so ModuleSize scales X and Y alike.
func generateSymbol(in label.Instruction) (sym barcode.Symbol, scaleX, scaleY int) {
	switch p := in.Payload.(type) {
	case label.Code39Payload:
		sym, err := code39.Encode(p.Data, p.Ratio, p.Height)
		if err != nil {
			return nil, 0, 0
		}
		return sym, p.ModuleWidth, 1
	case label.Code128Payload:
		sym, err := code128.Encode(p.Data, p.Height)
		if err != nil {
			return nil, 0, 0
		}
		return sym, p.ModuleWidth, 1
	case label.QRPayload:
		sym, err := qr.Encode(p.Data, p.Level)
		if err != nil {
			return nil, 0, 0
		}
		return sym, p.ModuleSize, p.ModuleSize
	default:
		return nil, 0, 0
	}
}

// barcodeImage adapts a barcode.Symbol's bit matrix to image.Image at one
// pixel per module, for imgutil.Scale to stretch up to dot resolution.
type barcodeImage struct {
	modules [][]bool
	fg      color.RGBA
}

func (b *barcodeImage) ColorModel() color.Model { return color.RGBAModel }

func (b *barcodeImage) Bounds() image.Rectangle {
	h := len(b.modules)
	w := 0
	if h > 0 {
		w = len(b.modules[0])
	}
	return image.Rect(0, 0, w, h)
}

func (b *barcodeImage) At(x, y int) color.Color {
	if y < 0 || y >= len(b.modules) {
		return color.RGBA{}
	}
	row := b.modules[y]
	if x < 0 || x >= len(row) || !row[x] {
		return color.RGBA{}
	}
	return b.fg
}
