// Package barcode defines the shared symbol shape produced by
// barcode/code39, barcode/code128 and barcode/qr: a 2-D bit matrix in
// module units, independent of final dot size so the painter can scale
// each module to whatever width ^BY or ^BQ requested.
package barcode

import "errors"

// ErrEmptyData is returned by all three generators when asked to encode
// an empty field.
var ErrEmptyData = errors.New("barcode: no data to encode")

// ErrInvalidCharacter is returned when the input contains a byte the
// symbology cannot represent (Code 39's restricted alphabet).
var ErrInvalidCharacter = errors.New("barcode: character not representable in this symbology")

// Symbol is a generated barcode/matrix: Modules()[y][x] is true where a
// mark (bar, or dark QR module) should be painted. 1-D symbologies
// (Code 39, Code 128) repeat the same bar row once per dot of the
// requested bar height, so the painter stretches them horizontally only.
type Symbol interface {
	Modules() [][]bool
	Bounds() (w, h int)
}

// Matrix is the straightforward Symbol implementation shared by all
// three generators.
type Matrix struct {
	Bits [][]bool
}

func (m Matrix) Modules() [][]bool { return m.Bits }

func (m Matrix) Bounds() (w, h int) {
	if len(m.Bits) == 0 {
		return 0, 0
	}
	return len(m.Bits[0]), len(m.Bits)
}
