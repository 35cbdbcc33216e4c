// Package zplforge is the public engine: it parses ZPL, lowers it to a
// drawing plan, rasterizes that plan, and encodes the result through a
// caller-supplied backend.Adapter. Construction and rendering are split
// so the same parsed geometry can drive multiple renders without
// re-validating canvas size each time.
package zplforge

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"go.labelcraft.dev/labelcraft/backend"
	"go.labelcraft.dev/labelcraft/font"
	"go.labelcraft.dev/labelcraft/imgcodec"
	"go.labelcraft.dev/labelcraft/label"
	"go.labelcraft.dev/labelcraft/paint"
	"go.labelcraft.dev/labelcraft/zpl"
)

// Engine holds one label's resolved geometry and raw ZPL; construction is
// cheap and can only fail on canvas geometry, since parsing is deferred to
// Render.
type Engine struct {
	zplBytes   []byte
	widthDots  int
	heightDots int
	dpi        int
}

// New validates and resolves opts into an Engine, failing with
// CanvasTooLarge if the computed pixel dimensions exceed MaxCanvasDim in
// either axis.
func New(opts Options) (*Engine, error) {
	w, h, tooLarge := opts.canvasDots()
	if tooLarge {
		return nil, newError(KindCanvasTooLarge, fmt.Sprintf(
			"canvas %dx%d exceeds the %dx%d limit", w, h, MaxCanvasDim, MaxCanvasDim), nil)
	}
	return &Engine{zplBytes: opts.ZPL, widthDots: w, heightDots: h, dpi: opts.DPI}, nil
}

// Render runs the full pipeline — parse, lower, rasterize, encode — using
// fonts for text shaping and images to resolve any ^GIC named-image
// substitutions (a bare "@name" data field instead of inline encoded
// bytes; a zplforge-specific extension, see label.BitmapPayload.Name).
func (e *Engine) Render(adapter backend.Adapter, fonts *font.Manager, images map[string][]byte) ([]byte, error) {
	cmds := zpl.All(e.zplBytes)
	instructions, err := label.Lower(cmds)
	if err != nil {
		return nil, wrapLowerError(err)
	}

	instructions, err = resolveImageSubstitutions(instructions, images)
	if err != nil {
		return nil, err
	}

	canvas := paint.NewCanvas(e.widthDots, e.heightDots)
	paint.Paint(canvas, instructions, fonts)

	out, err := adapter.Encode(canvas.Image(), backend.Config{
		WidthDots: e.widthDots, HeightDots: e.heightDots, DPI: e.dpi,
	})
	if err != nil {
		return nil, newError(KindBackendError, "encoding canvas", err)
	}
	return out, nil
}

// wrapLowerError classifies an error returned by label.Lower/imgcodec
// into the matching public ErrorKind.
func wrapLowerError(err error) error {
	switch {
	case errors.Is(err, imgcodec.ErrImageTooLarge):
		return newError(KindImageTooLarge, "decoding ^GF payload", err)
	case errors.Is(err, imgcodec.ErrInvalidImageData):
		return newError(KindInvalidImageData, "decoding ^GIC payload", err)
	default:
		return newError(KindFormat, "lowering label", err)
	}
}

// resolveImageSubstitutions replaces every BitmapPayload.Name reference
// with pixels decoded from images, failing with InvalidImageData if a
// name is missing or its bytes don't decode as a known raster format.
func resolveImageSubstitutions(ins []label.Instruction, images map[string][]byte) ([]label.Instruction, error) {
	for i, in := range ins {
		p, ok := in.Payload.(label.BitmapPayload)
		if !ok || p.Name == "" {
			continue
		}
		raw, ok := images[p.Name]
		if !ok {
			return nil, newError(KindInvalidImageData,
				fmt.Sprintf("no substitution image registered for %q", p.Name), nil)
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, newError(KindInvalidImageData,
				fmt.Sprintf("decoding substitution image %q", p.Name), err)
		}
		b := img.Bounds()
		p.Width, p.Height = b.Dx(), b.Dy()
		p.RGBA = toRGBASlice(img)
		p.Name = ""
		in.Payload = p
		in.W, in.H = p.Width, p.Height
		ins[i] = in
	}
	return ins, nil
}

func toRGBASlice(img image.Image) []color.RGBA {
	b := img.Bounds()
	out := make([]color.RGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			out = append(out, color.RGBA{
				R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8),
			})
		}
	}
	return out
}
