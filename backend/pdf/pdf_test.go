package pdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.labelcraft.dev/labelcraft/backend"
	bpdf "go.labelcraft.dev/labelcraft/backend/pdf"
	"go.labelcraft.dev/labelcraft/paint"
)

func TestAdapterEncodeProducesAPDFDocument(t *testing.T) {
	c := paint.NewCanvas(203, 406)
	out, err := (bpdf.Adapter{}).Encode(c.Image(), backend.Config{
		WidthDots: 203, HeightDots: 406, DPI: 203,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
