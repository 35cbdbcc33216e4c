// Package code39 encodes field data as a Code 39 barcode module matrix:
// each character maps to 5 bars and 4 spaces, 3 of the 9 elements wide
// and 6 narrow, bracketed by the `*` start/stop character.
package code39

import (
	"go.labelcraft.dev/labelcraft/barcode"
)

// patterns maps each encodable character to its 9-element width pattern:
// '0' is a narrow element, '1' a wide one, alternating bar/space starting
// and ending on a bar.
var patterns = map[byte]string{
	'0': "000110100", '1': "100100001", '2': "001100001", '3': "101100000",
	'4': "000110001", '5': "100110000", '6': "001110000", '7': "000100101",
	'8': "100100100", '9': "001100100",
	'A': "100001001", 'B': "001001001", 'C': "101001000", 'D': "000011001",
	'E': "100011000", 'F': "001011000", 'G': "000001101", 'H': "100001100",
	'I': "001001100", 'J': "000011100", 'K': "100000011", 'L': "001000011",
	'M': "101000010", 'N': "000010011", 'O': "100010010", 'P': "001010010",
	'Q': "000000111", 'R': "100000110", 'S': "001000110", 'T': "000010110",
	'U': "110000001", 'V': "011000001", 'W': "111000000", 'X': "010010001",
	'Y': "110010000", 'Z': "011010000",
	'-': "010000101", '.': "110000100", ' ': "011000100", '$': "010101000",
	'/': "010100010", '+': "010001010", '%': "000101010", '*': "010010100",
}

// Encode builds the module matrix for data, taken byte for byte (lowercase
// letters are not in the alphabet), narrow modules one dot wide and wide
// modules ratio dots wide, at a single bar height of heightDots. Returns
// ErrEmptyData for empty input and ErrInvalidCharacter for any byte
// outside Code 39's alphabet.
func Encode(data string, ratio float64, heightDots int) (barcode.Symbol, error) {
	if data == "" {
		return nil, barcode.ErrEmptyData
	}

	var row []bool
	appendChar := func(c byte) error {
		pat, ok := patterns[c]
		if !ok {
			return barcode.ErrInvalidCharacter
		}
		for i, bit := range []byte(pat) {
			mark := i%2 == 0 // bars are at even indices, spaces at odd
			width := 1
			if bit == '1' {
				width = int(ratio + 0.5)
				if width < 1 {
					width = 1
				}
			}
			for k := 0; k < width; k++ {
				row = append(row, mark)
			}
		}
		// Inter-character gap: one narrow space.
		row = append(row, false)
		return nil
	}

	if err := appendChar('*'); err != nil {
		return nil, err
	}
	for i := 0; i < len(data); i++ {
		if err := appendChar(data[i]); err != nil {
			return nil, err
		}
	}
	if err := appendChar('*'); err != nil {
		return nil, err
	}
	row = row[:len(row)-1] // drop trailing inter-character gap

	if heightDots < 1 {
		heightDots = 1
	}
	bits := make([][]bool, heightDots)
	for y := range bits {
		bits[y] = row
	}
	return barcode.Matrix{Bits: bits}, nil
}
