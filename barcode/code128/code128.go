// Package code128 encodes field data as a Code 128 barcode module matrix,
// auto-selecting subset B (default) or subset C (for runs of four or
// more consecutive digits), with a mod-103 checksum.
package code128

import (
	"go.labelcraft.dev/labelcraft/barcode"
)

const (
	startB  = 104
	startC  = 105
	codeB   = 100
	codeC   = 99
	stopVal = -1 // sentinel; stop uses its own 7-element pattern
)

// patterns gives the 6-element bar/space width pattern for every Code 128
// value 0..105 (subset B/C values plus Start A/B/C); stop uses its own
// 7-element pattern, appended separately in Encode.
var patterns = [106][6]int{
	{2, 1, 2, 2, 2, 2}, {2, 2, 2, 1, 2, 2}, {2, 2, 2, 2, 2, 1}, {1, 2, 1, 2, 2, 3},
	{1, 2, 1, 3, 2, 2}, {1, 3, 1, 2, 2, 2}, {1, 2, 2, 2, 1, 3}, {1, 2, 2, 3, 1, 2},
	{1, 3, 2, 2, 1, 2}, {2, 2, 1, 2, 1, 3}, {2, 2, 1, 3, 1, 2}, {2, 3, 1, 2, 1, 2},
	{1, 1, 2, 2, 3, 2}, {1, 2, 2, 1, 3, 2}, {1, 2, 2, 2, 3, 1}, {1, 1, 3, 2, 2, 2},
	{1, 2, 3, 1, 2, 2}, {1, 2, 3, 2, 2, 1}, {2, 2, 3, 2, 1, 1}, {2, 2, 1, 1, 3, 2},
	{2, 2, 1, 2, 3, 1}, {2, 1, 3, 2, 1, 2}, {2, 2, 3, 1, 1, 2}, {3, 1, 2, 1, 3, 1},
	{3, 1, 1, 2, 2, 2}, {3, 2, 1, 1, 2, 2}, {3, 2, 1, 2, 2, 1}, {3, 1, 2, 2, 1, 2},
	{3, 2, 2, 1, 1, 2}, {3, 2, 2, 2, 1, 1}, {2, 1, 2, 1, 2, 3}, {2, 1, 2, 3, 2, 1},
	{2, 3, 2, 1, 2, 1}, {1, 1, 1, 3, 2, 3}, {1, 3, 1, 1, 2, 3}, {1, 3, 1, 3, 2, 1},
	{1, 1, 2, 3, 1, 3}, {1, 3, 2, 1, 1, 3}, {1, 3, 2, 3, 1, 1}, {2, 1, 1, 3, 1, 3},
	{2, 3, 1, 1, 1, 3}, {2, 3, 1, 3, 1, 1}, {1, 1, 2, 1, 3, 3}, {1, 1, 2, 3, 3, 1},
	{1, 3, 2, 1, 3, 1}, {1, 1, 3, 1, 2, 3}, {1, 1, 3, 3, 2, 1}, {1, 3, 3, 1, 2, 1},
	{3, 1, 3, 1, 2, 1}, {2, 1, 1, 3, 3, 1}, {2, 3, 1, 1, 3, 1}, {2, 1, 3, 1, 1, 3},
	{2, 1, 3, 3, 1, 1}, {2, 1, 3, 1, 3, 1}, {3, 1, 1, 1, 2, 3}, {3, 1, 1, 3, 2, 1},
	{3, 3, 1, 1, 2, 1}, {3, 1, 2, 1, 1, 3}, {3, 1, 2, 3, 1, 1}, {3, 3, 2, 1, 1, 1},
	{3, 1, 4, 1, 1, 1}, {2, 2, 1, 4, 1, 1}, {4, 3, 1, 1, 1, 1}, {1, 1, 1, 2, 2, 4},
	{1, 1, 1, 4, 2, 2}, {1, 2, 1, 1, 2, 4}, {1, 2, 1, 4, 2, 1}, {1, 4, 1, 1, 2, 2},
	{1, 4, 1, 2, 2, 1}, {1, 1, 2, 2, 1, 4}, {1, 1, 2, 4, 1, 2}, {1, 2, 2, 1, 1, 4},
	{1, 2, 2, 4, 1, 1}, {1, 4, 2, 1, 1, 2}, {1, 4, 2, 2, 1, 1}, {2, 4, 1, 2, 1, 1},
	{2, 2, 1, 1, 1, 4}, {4, 1, 3, 1, 1, 1}, {2, 4, 1, 1, 1, 2}, {1, 3, 4, 1, 1, 1},
	{1, 1, 1, 2, 4, 2}, {1, 2, 1, 1, 4, 2}, {1, 2, 1, 2, 4, 1}, {1, 1, 4, 2, 1, 2},
	{1, 2, 4, 1, 1, 2}, {1, 2, 4, 2, 1, 1}, {4, 1, 1, 2, 1, 2}, {4, 2, 1, 1, 1, 2},
	{4, 2, 1, 2, 1, 1}, {2, 1, 2, 1, 4, 1}, {2, 1, 4, 1, 2, 1}, {4, 1, 2, 1, 2, 1},
	{1, 1, 1, 1, 4, 3}, {1, 1, 1, 3, 4, 1}, {1, 3, 1, 1, 4, 1}, {1, 1, 4, 1, 1, 3},
	{1, 1, 4, 3, 1, 1}, {4, 1, 1, 1, 1, 3}, {4, 1, 1, 3, 1, 1}, {1, 1, 3, 1, 4, 1},
	{1, 1, 4, 1, 3, 1}, {3, 1, 1, 1, 4, 1}, {4, 1, 1, 1, 3, 1}, {2, 1, 1, 4, 1, 2},
	{2, 1, 1, 2, 1, 4}, {2, 1, 1, 2, 3, 2},
}

var stopPattern = [7]int{2, 3, 3, 1, 1, 1, 2}

// Encode builds the module matrix for data, choosing subset B or C per
// character run, at a single bar height of heightDots.
func Encode(data string, heightDots int) (barcode.Symbol, error) {
	if data == "" {
		return nil, barcode.ErrEmptyData
	}

	values, err := tokenize(data)
	if err != nil {
		return nil, err
	}

	checksum := values[0]
	for i := 1; i < len(values); i++ {
		checksum += i * values[i]
	}
	checksum %= 103
	values = append(values, checksum)

	var row []bool
	for _, v := range values {
		appendPattern(&row, patterns[v][:])
	}
	appendPattern(&row, stopPattern[:])

	if heightDots < 1 {
		heightDots = 1
	}
	bits := make([][]bool, heightDots)
	for y := range bits {
		bits[y] = row
	}
	return barcode.Matrix{Bits: bits}, nil
}

// tokenize walks data, emitting a Start code followed by subset B/C value
// codes, switching to C whenever four or more consecutive digits remain
// and back to B otherwise.
func tokenize(data string) ([]int, error) {
	inC := runOfDigits(data, 0) >= 4
	start := startB
	if inC {
		start = startC
	}
	values := []int{start}

	i := 0
	for i < len(data) {
		if inC {
			if runOfDigits(data, i) < 2 {
				values = append(values, codeB)
				inC = false
				continue
			}
			hi, lo := data[i]-'0', data[i+1]-'0'
			values = append(values, int(hi)*10+int(lo))
			i += 2
			continue
		}

		if runOfDigits(data, i) >= 4 {
			values = append(values, codeC)
			inC = true
			continue
		}
		c := data[i]
		if c < 32 || c > 127 {
			return nil, barcode.ErrInvalidCharacter
		}
		v := int(c) - 32
		if c == 127 {
			v = 95
		}
		values = append(values, v)
		i++
	}
	return values, nil
}

// runOfDigits counts consecutive ASCII digits in data starting at i.
func runOfDigits(data string, i int) int {
	n := 0
	for i+n < len(data) && data[i+n] >= '0' && data[i+n] <= '9' {
		n++
	}
	return n
}

func appendPattern(row *[]bool, widths []int) {
	for i, w := range widths {
		mark := i%2 == 0 // bars at even indices, spaces at odd
		for k := 0; k < w; k++ {
			*row = append(*row, mark)
		}
	}
}
