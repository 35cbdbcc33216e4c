// Package qr wraps github.com/boombuler/barcode/qr: rather than
// re-deriving Reed-Solomon encoding and mask scoring, it reuses an
// existing, tested QR implementation.
package qr

import (
	boomqr "github.com/boombuler/barcode/qr"

	"go.labelcraft.dev/labelcraft/barcode"
)

// Encode builds the module matrix for data at the given error-correction
// level (one of L, M, Q, H; anything else defaults to M), auto-selecting
// QR version/mask (qr.Auto).
func Encode(data string, level string) (barcode.Symbol, error) {
	if data == "" {
		return nil, barcode.ErrEmptyData
	}

	ec := errorCorrectionLevel(level)
	img, err := boomqr.Encode(data, ec, boomqr.Auto)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	bits := make([][]bool, h)
	for y := 0; y < h; y++ {
		bits[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			bits[y][x] = r == 0 && g == 0 && b == 0
		}
	}
	return barcode.Matrix{Bits: bits}, nil
}

func errorCorrectionLevel(level string) boomqr.ErrorCorrectionLevel {
	switch level {
	case "L":
		return boomqr.L
	case "Q":
		return boomqr.Q
	case "H":
		return boomqr.H
	default:
		return boomqr.M
	}
}
