package font

import (
	"bytes"

	"github.com/golang/freetype/truetype"
)

// Manager maps ZPL font identifiers (A..Z, 0..9) to Handles. It is
// immutable after the registration phase completes: concurrent
// renderings share one Manager by reference without locking.
type Manager struct {
	handles map[byte]Handle
	names   map[byte]string
}

// NewManager returns a Manager pre-populated with the built-in
// monospaced bitmap font bound to id 'A', matching ZPL's own default.
func NewManager() *Manager {
	m := &Manager{handles: make(map[byte]Handle), names: make(map[byte]string)}
	m.handles['A'] = &bdfHandle{f: builtinFont()}
	m.names['A'] = "builtin"
	return m
}

// idRange expands [first, last] the way ZPL enumerates font ids:
// 'A'..'Z' first, then '0'..'9', rather than a raw byte-value range
// (which would skip the gap between '9' and 'A').
func idRange(first, last byte) []byte {
	seq := make([]byte, 0, 36)
	for c := byte('A'); c <= 'Z'; c++ {
		seq = append(seq, c)
	}
	for c := byte('0'); c <= '9'; c++ {
		seq = append(seq, c)
	}
	startIdx, endIdx := -1, -1
	for i, c := range seq {
		if c == first {
			startIdx = i
		}
		if c == last {
			endIdx = i
		}
	}
	if startIdx < 0 || endIdx < 0 || endIdx < startIdx {
		if first == last {
			return []byte{first}
		}
		return nil
	}
	return seq[startIdx : endIdx+1]
}

// Register parses fontBytes as either a BDF bitmap font or a TrueType/
// OpenType outline font, then binds every id in [firstID, lastID]
// (traversing A..Z then 0..9) to the resulting Handle. name is recorded
// per id and returned by Name, for a font-listing caller; it plays no
// part in shaping or lookup. Returns ErrInvalidFontData if fontBytes is
// neither.
func (m *Manager) Register(name string, fontBytes []byte, firstID, lastID byte) error {
	var handle Handle
	if bdf, err := parseBDF(bytes.NewReader(fontBytes)); err == nil {
		handle = &bdfHandle{f: bdf}
	} else if ttf, err := truetype.Parse(fontBytes); err == nil {
		handle = &outlineHandle{face: ttf}
	} else {
		return ErrInvalidFontData
	}

	for _, id := range idRange(firstID, lastID) {
		m.handles[id] = handle
		m.names[id] = name
	}
	return nil
}

// Name returns the name Register was called with for id, or "" if id
// was never registered.
func (m *Manager) Name(id byte) string {
	return m.names[id]
}

// Resolve returns the Handle bound to id, falling back to the built-in
// font ('A') when id was never registered.
func (m *Manager) Resolve(id byte) Handle {
	if h, ok := m.handles[id]; ok {
		return h
	}
	return m.handles['A']
}

// Shape resolves id and shapes text at the requested pixel metrics.
// Orientation is applied by the painter to the whole rendered field via
// imgutil.Rotate, not here.
func (m *Manager) Shape(id byte, text string, heightDots, widthDots int) []GlyphRun {
	return m.Resolve(id).Shape(text, heightDots, widthDots)
}
