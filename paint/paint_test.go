package paint_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.labelcraft.dev/labelcraft/font"
	"go.labelcraft.dev/labelcraft/label"
	"go.labelcraft.dev/labelcraft/paint"
)

func TestPaintFilledBoxBarIsSolid(t *testing.T) {
	c := paint.NewCanvas(10, 10)
	ins := []label.Instruction{{
		Kind:    label.KindBox,
		X:       2, Y: 2, W: 4, H: 3,
		Color:   label.Black,
		Payload: label.BoxPayload{Thickness: 3, CornerLevel: 0},
	}}
	paint.Paint(c, ins, font.NewManager())

	for y := 2; y < 5; y++ {
		for x := 2; x < 6; x++ {
			assert.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(x, y))
		}
	}
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c.Image().At(0, 0))
}

func TestPaintUnfilledBoxHasHollowCenter(t *testing.T) {
	c := paint.NewCanvas(10, 10)
	ins := []label.Instruction{{
		Kind:    label.KindBox,
		X:       0, Y: 0, W: 8, H: 8,
		Color:   label.Black,
		Payload: label.BoxPayload{Thickness: 1, CornerLevel: 0},
	}}
	paint.Paint(c, ins, font.NewManager())

	assert.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c.Image().At(4, 4))
}

func TestPaintFilledCircleIsSolidDisc(t *testing.T) {
	c := paint.NewCanvas(10, 10)
	ins := []label.Instruction{{
		Kind:    label.KindCircle,
		X:       0, Y: 0, W: 8, H: 8,
		Color:   label.Black,
		Payload: label.CirclePayload{Thickness: 4},
	}}
	paint.Paint(c, ins, font.NewManager())
	assert.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(4, 4))
}

func TestPaintReverseXORsBackground(t *testing.T) {
	c := paint.NewCanvas(4, 4)
	ins := []label.Instruction{{
		Kind:    label.KindBox,
		X:       0, Y: 0, W: 4, H: 4,
		Color:   label.Black,
		Reverse: true,
		Payload: label.BoxPayload{Thickness: 1, CornerLevel: 0},
	}}
	paint.Paint(c, ins, font.NewManager())

	// Border was painted black, then reverse flips it to white; the
	// hollow center was left white, then reverse flips it to black.
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c.Image().At(0, 0))
	assert.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(1, 1))
}

func TestPaintBitmapBlitsOneBitSource(t *testing.T) {
	c := paint.NewCanvas(4, 4)
	ins := []label.Instruction{{
		Kind:  label.KindBitmap,
		X:     0, Y: 0, W: 2, H: 2,
		Color: label.Black,
		Payload: label.BitmapPayload{
			Width: 2, Height: 2,
			Bits:      []byte{0xC0, 0xC0}, // two rows: "11" in the high 2 bits
			LineColor: label.Black,
		},
	}}
	paint.Paint(c, ins, font.NewManager())
	assert.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{A: 0xff}, c.Image().RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c.Image().At(2, 0))
}

func TestPaintTextShapesAndBlitsAtOrigin(t *testing.T) {
	c := paint.NewCanvas(40, 40)
	ins := []label.Instruction{{
		Kind:  label.KindText,
		X:     2, Y: 2,
		Color: label.Black,
		Payload: label.TextPayload{
			FontID: 'A',
			Height: 10,
			Text:   "H",
		},
	}}
	paint.Paint(c, ins, font.NewManager())

	found := false
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if c.Image().RGBAAt(x, y) == (color.RGBA{A: 0xff}) {
				found = true
			}
		}
	}
	assert.True(t, found, "expected at least one painted pixel for the glyph")
}

func TestPaintBarcodeCode39ProducesBars(t *testing.T) {
	c := paint.NewCanvas(200, 20)
	ins := []label.Instruction{{
		Kind:  label.KindCode39,
		X:     0, Y: 0,
		Color: label.Black,
		Payload: label.Code39Payload{
			Data:        "A",
			ModuleWidth: 2,
			Ratio:       3,
			Height:      10,
		},
	}}
	paint.Paint(c, ins, font.NewManager())

	painted := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 200; x++ {
			if c.Image().RGBAAt(x, y) != (color.RGBA{A: 0xff}) {
				continue
			}
			painted++
			// ModuleWidth only stretches the horizontal axis: no painted
			// pixel may fall at or beyond row 10 (the requested Height).
			require.Less(t, y, 10, "bar painted at y=%d, want height exactly 10", y)
		}
	}
	require.Greater(t, painted, 0)
}

func TestPaintBarcodeQRProducesModules(t *testing.T) {
	c := paint.NewCanvas(200, 200)
	ins := []label.Instruction{{
		Kind:  label.KindQR,
		X:     0, Y: 0,
		Color: label.Black,
		Payload: label.QRPayload{
			Data:       "HELLO",
			Level:      "M",
			ModuleSize: 2,
		},
	}}
	paint.Paint(c, ins, font.NewManager())

	painted := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if c.Image().RGBAAt(x, y) == (color.RGBA{A: 0xff}) {
				painted++
			}
		}
	}
	require.Greater(t, painted, 0)
}
