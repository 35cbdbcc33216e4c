package png_test

import (
	"bytes"
	stdpng "image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"go.labelcraft.dev/labelcraft/backend"
	bpng "go.labelcraft.dev/labelcraft/backend/png"
	"go.labelcraft.dev/labelcraft/paint"
)

func TestAdapterEncodeRoundTrips(t *testing.T) {
	c := paint.NewCanvas(5, 5)
	out, err := (bpng.Adapter{}).Encode(c.Image(), backend.Config{})
	require.NoError(t, err)

	decoded, err := stdpng.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 5, decoded.Bounds().Dx())
	require.Equal(t, 5, decoded.Bounds().Dy())
}
