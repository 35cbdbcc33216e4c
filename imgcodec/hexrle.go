package imgcodec

import "fmt"

// DecodeHexRLE decodes a ^GF compression-type-A payload into a flat,
// row-major, MSB-first 1-bit-per-pixel bitmap.
//
// totalBytes and bytesPerRow come straight from the command's b and p
// parameters; width is bytesPerRow*8 pixels, height is totalBytes/bytesPerRow
// rows. The decoded buffer is padded with zero bytes if the token stream
// produced fewer than totalBytes, and truncated if it produced more —
// malformed input never errors, only ImageTooLarge does.
func DecodeHexRLE(data string, totalBytes, bytesPerRow int) (bits []byte, width, height int, err error) {
	if bytesPerRow <= 0 || totalBytes <= 0 {
		return nil, 0, 0, nil
	}
	if totalBytes > MaxDecodedBytes {
		return nil, 0, 0, tooLarge(fmt.Sprintf(
			"declared size %d bytes exceeds %d byte cap", totalBytes, MaxDecodedBytes))
	}

	width = bytesPerRow * 8
	height = totalBytes / bytesPerRow

	out := make([]byte, 0, min(totalBytes, MaxDecodedBytes))
	multiplier := 0

	appendByte := func(b byte) error {
		n := multiplier
		if n == 0 {
			n = 1
		}
		multiplier = 0
		if len(out)+n > MaxDecodedBytes {
			return tooLarge(fmt.Sprintf(
				"decoded image exceeds %d byte cap", MaxDecodedBytes))
		}
		for i := 0; i < n; i++ {
			out = append(out, b)
		}
		return nil
	}

	padRow := func(fill byte) error {
		rowPos := len(out) % bytesPerRow
		if rowPos == 0 {
			return nil
		}
		need := bytesPerRow - rowPos
		if len(out)+need > MaxDecodedBytes {
			return tooLarge(fmt.Sprintf(
				"decoded image exceeds %d byte cap", MaxDecodedBytes))
		}
		for i := 0; i < need; i++ {
			out = append(out, fill)
		}
		return nil
	}

	duplicateRow := func() error {
		// A partially filled current row is first completed with zeros,
		// so the copy is always one whole, row-aligned row.
		if err := padRow(0x00); err != nil {
			return err
		}
		if len(out) < bytesPerRow {
			return nil // nothing to duplicate yet; ignore silently
		}
		if len(out)+bytesPerRow > MaxDecodedBytes {
			return tooLarge(fmt.Sprintf(
				"decoded image exceeds %d byte cap", MaxDecodedBytes))
		}
		prev := out[len(out)-bytesPerRow:]
		out = append(out, prev...)
		return nil
	}

	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case isHexDigit(c):
			if i+1 >= len(data) || !isHexDigit(data[i+1]) {
				// A dangling nibble at the end of input: treat it as the
				// high nibble of a zero-padded byte rather than erroring.
				b := hexVal(c) << 4
				if err := appendByte(b); err != nil {
					return nil, 0, 0, err
				}
				i++
				continue
			}
			b := hexVal(c)<<4 | hexVal(data[i+1])
			if err := appendByte(b); err != nil {
				return nil, 0, 0, err
			}
			i += 2
		case c == ',':
			if err := padRow(0x00); err != nil {
				return nil, 0, 0, err
			}
			i++
		case c == '!':
			if err := padRow(0xff); err != nil {
				return nil, 0, 0, err
			}
			i++
		case c == ':':
			if err := duplicateRow(); err != nil {
				return nil, 0, 0, err
			}
			i++
		case c >= 'G' && c <= 'Y':
			multiplier += int(c - 'F')
			i++
		case c >= 'g' && c <= 'z':
			multiplier += 20 * int(c-'f')
			i++
		default:
			// Whitespace or any other stray byte: skip.
			i++
		}
	}

	if len(out) < totalBytes {
		pad := totalBytes - len(out)
		if len(out)+pad > MaxDecodedBytes {
			return nil, 0, 0, tooLarge(fmt.Sprintf(
				"decoded image exceeds %d byte cap", MaxDecodedBytes))
		}
		out = append(out, make([]byte, pad)...)
	} else if len(out) > totalBytes {
		out = out[:totalBytes]
	}

	return out, width, height, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return 0
	}
}
