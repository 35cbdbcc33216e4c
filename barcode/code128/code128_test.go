package code128_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.labelcraft.dev/labelcraft/barcode/code128"
)

func TestEncodeEmptyDataIsAnError(t *testing.T) {
	_, err := code128.Encode("", 10)
	require.Error(t, err)
}

func TestEncodeShortDigitRunStaysInSubsetB(t *testing.T) {
	sym, err := code128.Encode("AB12", 10)
	require.NoError(t, err)
	w, h := sym.Bounds()
	assert.Equal(t, 10, h)
	assert.Greater(t, w, 0)

	// Symbol 3 (after Start B, 'A', 'B') is subset-B value 17 for '1',
	// widths 1,2,3,2,2,1, rather than a switch to subset C.
	row := sym.Modules()[0]
	assert.Equal(t, []bool{true, false, false, true, true, true, false, false, true, true, false}, row[33:44])
}

func TestEncodeLongDigitRunSwitchesToSubsetC(t *testing.T) {
	sym, err := code128.Encode("ABC123456", 10)
	require.NoError(t, err)
	w, _ := sym.Bounds()
	assert.Greater(t, w, 0)
	// Start B, A, B, C, Code C, 12, 34, 56, checksum: 9 symbols of 11
	// modules plus the 13-module stop (all of subset B would be 134).
	assert.Equal(t, 112, w)
}

func TestEncodeRejectsNonASCII(t *testing.T) {
	_, err := code128.Encode("café", 10)
	require.Error(t, err)
}
