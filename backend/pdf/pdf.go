// Package pdf implements the PDF backend.Adapter via github.com/go-pdf/fpdf.
// A single page is sized to the label's physical dimensions and the
// rasterized canvas is embedded as a full-page image, matching a label
// printer's own notion of a label as one page, one image.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"

	"go.labelcraft.dev/labelcraft/backend"
)

// Adapter encodes the canvas as a single-page PDF whose page size equals
// cfg's physical width/height at cfg.DPI.
type Adapter struct{}

func (Adapter) Encode(img *image.RGBA, cfg backend.Config) ([]byte, error) {
	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = 203
	}
	wPt := dotsToPoints(cfg.WidthDots, dpi)
	hPt := dotsToPoints(cfg.HeightDots, dpi)
	if wPt <= 0 {
		wPt = dotsToPoints(img.Bounds().Dx(), dpi)
	}
	if hPt <= 0 {
		hPt = dotsToPoints(img.Bounds().Dy(), dpi)
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "",
		Size:           fpdf.SizeType{Wd: wPt, Ht: hPt},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPageFormat("P", fpdf.SizeType{Wd: wPt, Ht: hPt})

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return nil, fmt.Errorf("pdf: encoding canvas as png for embedding: %w", err)
	}
	doc.RegisterImageOptionsReader("canvas", fpdf.ImageOptions{ImageType: "PNG"}, &pngBuf)
	doc.ImageOptions("canvas", 0, 0, wPt, hPt, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("pdf: writing document: %w", err)
	}
	return out.Bytes(), nil
}

// dotsToPoints converts a pixel count at dpi to PDF points (1/72 in).
func dotsToPoints(dots, dpi int) float64 {
	if dots <= 0 || dpi <= 0 {
		return 0
	}
	return float64(dots) * 72 / float64(dpi)
}
