// Package backend defines the shared encoder contract implemented by
// backend/png and backend/pdf: given a rasterized canvas, produce the
// bytes of an encoded artifact, behind an interface so the engine can
// swap encoders without knowing about them.
package backend

import "image"

// Config carries the physical dimensions a backend needs beyond the raw
// pixels themselves; PNG ignores it entirely, PDF uses it to size the
// page to the label's physical width/height at the rendering DPI.
type Config struct {
	WidthDots, HeightDots int
	DPI                   int
}

// Adapter encodes a rasterized canvas into a backend-specific byte
// artifact.
type Adapter interface {
	Encode(img *image.RGBA, cfg Config) ([]byte, error)
}
