package qr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.labelcraft.dev/labelcraft/barcode"
	"go.labelcraft.dev/labelcraft/barcode/qr"
)

func TestEncodeEmptyDataIsAnError(t *testing.T) {
	_, err := qr.Encode("", "M")
	require.Error(t, err)
	assert.ErrorIs(t, err, barcode.ErrEmptyData)
}

func TestEncodeProducesASquareModuleMatrix(t *testing.T) {
	sym, err := qr.Encode("HELLO WORLD", "M")
	require.NoError(t, err)

	w, h := sym.Bounds()
	assert.Equal(t, w, h)
	assert.Greater(t, w, 0)

	modules := sym.Modules()
	require.Len(t, modules, h)
	for _, row := range modules {
		require.Len(t, row, w)
	}
}

func TestEncodeDifferentLevelsBothSucceed(t *testing.T) {
	_, err := qr.Encode("123456", "L")
	require.NoError(t, err)
	_, err = qr.Encode("123456", "H")
	require.NoError(t, err)
}
