package font

import "image"

// builtinFont returns the Manager's zero-configuration fallback: a fixed
// 5x9 monospaced cell whose only glyph is a hollow "tofu" box, used for
// every rune until a real font is registered for that id. This mirrors
// how most font stacks render an unmapped codepoint, rather than
// silently drawing nothing.
func builtinFont() *bdfFont {
	const w, h = 5, 9
	bitmap := make([]byte, h) // one byte per row is enough for width<=8
	for y := 0; y < h; y++ {
		switch y {
		case 0, h - 1:
			bitmap[y] = 0b11111000
		default:
			bitmap[y] = 0b10001000
		}
	}

	box := glyph{
		bounds:  image.Rect(0, -(h - 2), w, 2),
		bitmap:  bitmap,
		advance: w + 1,
	}
	return &bdfFont{
		name:     "builtin-tofu",
		glyphs:   map[rune]glyph{},
		fallback: box,
		ascent:   h - 2,
		descent:  2,
	}
}
