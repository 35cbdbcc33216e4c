// Package png implements the PNG backend.Adapter, wrapping the standard
// library's image/png encoder.
package png

import (
	"bytes"
	"image"
	"image/png"

	"go.labelcraft.dev/labelcraft/backend"
)

// Adapter encodes the canvas as a standard PNG; cfg is ignored since PNG
// carries no physical-size metadata.
type Adapter struct{}

func (Adapter) Encode(img *image.RGBA, _ backend.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
