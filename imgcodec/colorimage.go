package imgcodec

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoding with image.Decode
	_ "image/png"  // register PNG decoding with image.Decode

	"golang.org/x/image/draw"
)

// DecodeColorImage decodes a ^GIC payload: Base64-encoded PNG or JPEG
// bytes, resampled with nearest-neighbor to exactly w×h if the embedded
// raster's own dimensions differ.
func DecodeColorImage(base64Payload string, w, h int) ([]color.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, invalidData("^GIC requires positive width and height")
	}
	if int64(w)*int64(h)*4 > MaxDecodedBytes {
		return nil, tooLarge("^GIC target raster exceeds decoded-size cap")
	}

	raw, err := decodeBase64(base64Payload)
	if err != nil {
		return nil, invalidData("malformed base64 payload: " + err.Error())
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, invalidData("unrecognized raster format: " + err.Error())
	}

	dstRect := image.Rect(0, 0, w, h)
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return toRGBASlice(src, dstRect), nil
	}

	dst := image.NewRGBA(dstRect)
	draw.NearestNeighbor.Scale(dst, dstRect, src, src.Bounds(), draw.Over, nil)
	return toRGBASlice(dst, dstRect), nil
}

// decodeBase64 accepts both standard and URL-safe, padded or unpadded
// Base64, since ZPL producers in the wild disagree on which they emit.
func decodeBase64(s string) ([]byte, error) {
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding, base64.RawStdEncoding,
		base64.URLEncoding, base64.RawURLEncoding,
	} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, base64.CorruptInputError(0)
}

func toRGBASlice(img image.Image, rect image.Rectangle) []color.RGBA {
	out := make([]color.RGBA, 0, rect.Dx()*rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			out = append(out, color.RGBA{
				R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8),
			})
		}
	}
	return out
}
