package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go.labelcraft.dev/labelcraft"
	"go.labelcraft.dev/labelcraft/backend"
	"go.labelcraft.dev/labelcraft/backend/pdf"
	"go.labelcraft.dev/labelcraft/backend/png"
	"go.labelcraft.dev/labelcraft/font"
)

// NewRenderCmd renders a ZPL file (or stdin) to a PNG or PDF file (or
// stdout), running the same parse→compose→encode sequence a request
// handler would run per request.
func NewRenderCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "render a ZPL label to PNG or PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			widthIn, _ := cmd.Flags().GetFloat64("width")
			heightIn, _ := cmd.Flags().GetFloat64("height")
			unit, _ := cmd.Flags().GetString("unit")
			dpi, _ := cmd.Flags().GetInt("dpi")
			format, _ := cmd.Flags().GetString("format")
			fontPaths, _ := cmd.Flags().GetStringArray("font")
			outPath, _ := cmd.Flags().GetString("output")

			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("reading ZPL input: %w", err)
			}

			u, err := parseUnit(unit)
			if err != nil {
				return err
			}

			fonts := font.NewManager()
			for _, spec := range fontPaths {
				if err := registerFontFlag(fonts, spec); err != nil {
					return err
				}
			}

			e, err := zplforge.New(zplforge.Options{
				ZPL: data, Width: widthIn, WidthUnit: u,
				Height: heightIn, HeightUnit: u, DPI: dpi,
			})
			if err != nil {
				return err
			}

			var adapter backend.Adapter
			switch format {
			case "pdf":
				adapter = pdf.Adapter{}
			default:
				adapter = png.Adapter{}
			}

			out, err := e.Render(adapter, fonts, nil)
			if err != nil {
				return err
			}

			slog.InfoContext(ctx, "rendered label", "bytes", len(out), "format", format)

			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return os.WriteFile(outPath, out, 0o644)
		},
	}
	pf := cmd.Flags()
	pf.Float64("width", 2, "label width")
	pf.Float64("height", 1, "label height")
	pf.String("unit", "in", "physical unit (in, mm, cm)")
	pf.Int("dpi", 203, "rendering resolution (152, 203, 300, 600)")
	pf.String("format", "png", "output format (png, pdf)")
	pf.StringArray("font", nil, "font to register as first:last:path, e.g. A:Z:myfont.ttf")
	pf.StringP("output", "o", "", "output path (default stdout)")
	return cmd
}

func parseUnit(s string) (zplforge.Unit, error) {
	switch s {
	case "in", "":
		return zplforge.UnitInch, nil
	case "mm":
		return zplforge.UnitMM, nil
	case "cm":
		return zplforge.UnitCM, nil
	default:
		return 0, fmt.Errorf("unknown unit %q (want in, mm, or cm)", s)
	}
}

// registerFontFlag parses a "first:last:path" --font flag value and
// registers it with fonts.
func registerFontFlag(fonts *font.Manager, spec string) error {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 || len(parts[0]) != 1 || len(parts[1]) != 1 {
		return fmt.Errorf("invalid --font spec %q (want first:last:path)", spec)
	}
	first, last, path := parts[0][0], parts[1][0], parts[2]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading font %q: %w", path, err)
	}
	return fonts.Register(path, data, first, last)
}
