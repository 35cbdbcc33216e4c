package font_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.labelcraft.dev/labelcraft/font"
)

const sampleBDF = `STARTFONT 2.1
FONT -test-sample-medium-r-normal--8-80-75-75-p-50-iso8859-1
SIZE 8 75 75
FONTBOUNDINGBOX 5 8 0 -1
STARTPROPERTIES 2
FONT_ASCENT 7
FONT_DESCENT 1
ENDPROPERTIES
CHARS 1
STARTCHAR A
ENCODING 65
SWIDTH 500 0
DWIDTH 6 0
BBX 5 8 0 -1
BITMAP
20
50
88
88
F8
88
88
00
ENDCHAR
ENDFONT
`

func TestManagerResolveFallsBackToBuiltin(t *testing.T) {
	m := font.NewManager()
	h := m.Resolve('Z')
	require.NotNil(t, h)
	runs := h.Shape("x", 20, 0)
	require.Len(t, runs, 1)
}

func TestManagerNameReportsRegisteredNameOrEmpty(t *testing.T) {
	m := font.NewManager()
	assert.Equal(t, "builtin", m.Name('A'))
	assert.Empty(t, m.Name('Z'))
}

func TestManagerRegisterBDFBindsIDRange(t *testing.T) {
	m := font.NewManager()
	err := m.Register("sample", []byte(sampleBDF), '0', '1')
	require.NoError(t, err)

	h0 := m.Resolve('0')
	h1 := m.Resolve('1')
	assert.Same(t, h0, h1)
	assert.Equal(t, "sample", m.Name('0'))
	assert.Equal(t, "sample", m.Name('1'))

	runs := m.Shape('0', "A", 16, 0)
	require.Len(t, runs, 1)
	assert.NotNil(t, runs[0].Bitmap)
}

func TestManagerRegisterRejectsGarbage(t *testing.T) {
	m := font.NewManager()
	err := m.Register("garbage", []byte("not a font"), 'B', 'B')
	require.Error(t, err)
	assert.ErrorIs(t, err, font.ErrInvalidFontData)
}

func TestManagerShapeUnregisteredIDUsesBuiltin(t *testing.T) {
	m := font.NewManager()
	runs := m.Shape('Q', "hi", 20, 0)
	assert.Len(t, runs, 2)
}
