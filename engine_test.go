package zplforge_test

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	stdpng "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.labelcraft.dev/labelcraft"
	bpng "go.labelcraft.dev/labelcraft/backend/png"
	"go.labelcraft.dev/labelcraft/font"
)

func stdpngSolidImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 0xff, A: 0xff}}, image.Point{}, draw.Src)
	return img
}

func TestRenderSimpleLabelProducesAPNGOfTheRequestedSize(t *testing.T) {
	e, err := zplforge.New(zplforge.Options{
		ZPL:        []byte("^XA^FO10,10^A0N,20,20^FDHELLO^FS^XZ"),
		Width:      2, WidthUnit: zplforge.UnitInch,
		Height:     1, HeightUnit: zplforge.UnitInch,
		DPI:        203,
	})
	require.NoError(t, err)

	out, err := e.Render(bpng.Adapter{}, font.NewManager(), nil)
	require.NoError(t, err)

	img, err := stdpng.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 406, img.Bounds().Dx())
	assert.Equal(t, 203, img.Bounds().Dy())
}

func TestNewRejectsOversizedCanvas(t *testing.T) {
	_, err := zplforge.New(zplforge.Options{
		ZPL:    []byte("^XA^XZ"),
		Width:  1000, WidthUnit: zplforge.UnitInch,
		Height: 1, HeightUnit: zplforge.UnitInch,
		DPI:    600,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, zplforge.ErrCanvasTooLarge)

	var zerr *zplforge.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, zplforge.KindCanvasTooLarge, zerr.Kind)
}

func TestNewClampsZeroDimensionToOneDot(t *testing.T) {
	e, err := zplforge.New(zplforge.Options{
		ZPL:    []byte("^XA^XZ"),
		Width:  0, WidthUnit: zplforge.UnitInch,
		Height: 1, HeightUnit: zplforge.UnitInch,
		DPI:    203,
	})
	require.NoError(t, err)

	out, err := e.Render(bpng.Adapter{}, font.NewManager(), nil)
	require.NoError(t, err)

	img, err := stdpng.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 203, img.Bounds().Dy())
}

func TestRenderWithNoFormatReturnsFormatError(t *testing.T) {
	e, err := zplforge.New(zplforge.Options{
		ZPL:    []byte("^FO10,10^FDx^FS"),
		Width:  1, WidthUnit: zplforge.UnitInch,
		Height: 1, HeightUnit: zplforge.UnitInch,
		DPI:    203,
	})
	require.NoError(t, err)

	_, err = e.Render(bpng.Adapter{}, font.NewManager(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, zplforge.ErrFormat)
}

func TestRenderResolvesNamedImageSubstitution(t *testing.T) {
	var buf bytes.Buffer
	src := stdpngSolidImage(4, 4)
	require.NoError(t, stdpng.Encode(&buf, src))

	e, err := zplforge.New(zplforge.Options{
		ZPL:    []byte("^XA^FO0,0^GIC4,4,@logo^FS^XZ"),
		Width:  1, WidthUnit: zplforge.UnitInch,
		Height: 1, HeightUnit: zplforge.UnitInch,
		DPI:    203,
	})
	require.NoError(t, err)

	_, err = e.Render(bpng.Adapter{}, font.NewManager(), map[string][]byte{
		"logo": buf.Bytes(),
	})
	require.NoError(t, err)
}

func TestRenderMissingNamedImageIsInvalidImageData(t *testing.T) {
	e, err := zplforge.New(zplforge.Options{
		ZPL:    []byte("^XA^FO0,0^GIC4,4,@logo^FS^XZ"),
		Width:  1, WidthUnit: zplforge.UnitInch,
		Height: 1, HeightUnit: zplforge.UnitInch,
		DPI:    203,
	})
	require.NoError(t, err)

	_, err = e.Render(bpng.Adapter{}, font.NewManager(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, zplforge.ErrInvalidImageData)
}
