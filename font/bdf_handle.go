package font

// bdfHandle adapts a parsed bdfFont to the Handle interface: heightDots
// is matched by the largest whole magnification of the font's natural
// cell height that does not exceed it (at least 1), since bitmap glyphs
// only scale cleanly by whole factors.
type bdfHandle struct {
	f *bdfFont
}

func (h *bdfHandle) Shape(text string, heightDots, widthDots int) []GlyphRun {
	natural := h.f.naturalHeight()
	scale := 1
	if natural > 0 && heightDots > natural {
		scale = heightDots / natural
		if scale < 1 {
			scale = 1
		}
	}

	runs := make([]GlyphRun, 0, len(text))
	for _, r := range text {
		g := h.f.findGlyph(r)
		bmp := rasterizeGlyph(g, scale)
		xAdvance := g.advance * scale
		if widthDots > 0 {
			xAdvance = widthDots
		}
		runs = append(runs, GlyphRun{
			GlyphID:  r,
			XAdvance: xAdvance,
			YAdvance: 0,
			Bitmap:   bmp,
		})
	}
	return runs
}

// naturalHeight is the font's declared ascent+descent, or the fallback
// glyph's bounding-box height if the font carried no FONT_ASCENT/
// FONT_DESCENT properties.
func (f *bdfFont) naturalHeight() int {
	if f.ascent+f.descent > 0 {
		return f.ascent + f.descent
	}
	return f.fallback.bounds.Dy()
}
