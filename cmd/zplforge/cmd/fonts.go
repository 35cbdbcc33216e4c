package cmd

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"go.labelcraft.dev/labelcraft/font"
)

// NewFontsCmd previews a BDF or TrueType font file by shaping the --text
// sample string as a glyph run and writing it as a PNG, adapted from the
// teacher's cmd/bdf-sample (which did the same for BDF fonts only, via
// bdf.Font.DrawString directly instead of through the font.Manager).
func NewFontsCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fonts <path>",
		Short: "preview a registered font by rendering sample text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := cmd.Flags().GetString("text")
			heightDots, _ := cmd.Flags().GetInt("height")
			outPath, _ := cmd.Flags().GetString("output")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading font file: %w", err)
			}

			m := font.NewManager()
			if err := m.Register(args[0], data, 'A', 'A'); err != nil {
				return fmt.Errorf("parsing font: %w", err)
			}

			runs := m.Shape('A', text, heightDots, 0)
			img := previewImage(runs, heightDots)

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer out.Close()
			return png.Encode(out, img)
		},
	}
	pf := cmd.Flags()
	pf.String("text", "The quick brown fox", "sample text to render")
	pf.Int("height", 24, "glyph height in dots")
	pf.StringP("output", "o", "font-preview.png", "output PNG path")
	return cmd
}

// previewImage composes glyph runs left to right on a fixed baseline,
// mirroring paint/text.go's line-buffer approach at CLI scale.
func previewImage(runs []font.GlyphRun, heightDots int) image.Image {
	totalAdvance, maxAbove, maxBelow := 0, 0, heightDots
	for _, r := range runs {
		totalAdvance += r.XAdvance
		b := r.Bitmap.Bounds()
		if -b.Min.Y > maxAbove {
			maxAbove = -b.Min.Y
		}
		if b.Max.Y > maxBelow {
			maxBelow = b.Max.Y
		}
	}
	if totalAdvance < 1 {
		totalAdvance = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, totalAdvance+4, maxAbove+maxBelow+4))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	penX := 2
	baseline := maxAbove + 2
	for _, r := range runs {
		b := r.Bitmap.Bounds()
		dst := image.Rect(penX+b.Min.X, baseline+b.Min.Y, penX+b.Max.X, baseline+b.Max.Y)
		draw.DrawMask(img, dst, &image.Uniform{C: color.Black}, image.Point{}, r.Bitmap, b.Min, draw.Over)
		penX += r.XAdvance
	}
	return img
}
