package label

import (
	"image/color"
	"strconv"
	"strings"

	"go.labelcraft.dev/labelcraft/imgcodec"
	"go.labelcraft.dev/labelcraft/zpl"
)

// Lower folds a command sequence into an ordered Instruction list.
// It returns a *FormatError iff the input contains no ^XA, or a ^XZ appears
// without a matching ^XA; image-codec failures from ^GF/^GIC abort lowering
// with whatever error imgcodec produced. Only the first ^XA…^XZ pair is
// lowered; anything after the first ^XZ is ignored.
func Lower(cmds []zpl.Command) ([]Instruction, error) {
	st := newState()
	var out []Instruction
	seenXA := false
	closed := false

	for _, cmd := range cmds {
		if closed {
			break
		}
		switch cmd.Op {
		case "XA":
			if !st.openFormat {
				st.openFormat = true
				st.resetPending()
			}
			seenXA = true

		case "XZ":
			if !st.openFormat {
				return nil, &FormatError{Err: ErrUnmatchedXZ}
			}
			if in, ok := st.flush(); ok {
				out = append(out, in)
				st.advanceCursor(in)
			}
			st.resetPending()
			st.openFormat = false
			closed = true

		case "CF":
			st.defaultFont = fontSpec{
				ID:     firstByteOr(cmd.Param(0), st.defaultFont.ID),
				Height: zpl.ParseInt(cmd.Param(1), st.defaultFont.Height),
				Width:  zpl.ParseInt(cmd.Param(2), st.defaultFont.Width),
			}

		case "A":
			f := fontSpec{ID: 'A'}
			p0 := cmd.Param(0)
			orient := OrientN
			if len(p0) > 0 {
				f.ID = p0[0]
				if len(p0) > 1 {
					orient = ParseOrientation(p0[1:])
				}
			}
			f.Height = zpl.ParseInt(cmd.Param(1), st.defaultFont.Height)
			f.Width = zpl.ParseInt(cmd.Param(2), st.defaultFont.Width)
			st.currentFont = &f
			st.pendingOrientation = orient

		case "FO", "FT":
			st.pendingOrigin = origin{
				X:        zpl.ParseInt(cmd.Param(0), 0),
				Y:        zpl.ParseInt(cmd.Param(1), 0),
				Baseline: cmd.Op == "FT",
				Set:      true,
			}

		case "FR":
			st.pendingReverse = true

		case "BY":
			st.barcodeDefaults = barcodeDefaults{
				ModuleWidth: zpl.ParseInt(cmd.Param(0), st.barcodeDefaults.ModuleWidth),
				Ratio: zpl.ClampFloat(
					zpl.ParseFloat(cmd.Param(1), st.barcodeDefaults.Ratio), 2.0, 3.0),
				Height: zpl.ParseInt(cmd.Param(2), st.barcodeDefaults.Height),
			}

		case "B3":
			st.pendingBarcode = &pendingBarcode{
				kind:        KindCode39,
				orientation: ParseOrientation(cmd.Param(0)),
				moduleWidth: st.barcodeDefaults.ModuleWidth,
				ratio:       st.barcodeDefaults.Ratio,
				height:      zpl.ParseInt(cmd.Param(2), st.barcodeDefaults.Height),
			}
			st.maybeEmitBarcode(&out)

		case "BC":
			st.pendingBarcode = &pendingBarcode{
				kind:        KindCode128,
				orientation: ParseOrientation(cmd.Param(0)),
				moduleWidth: st.barcodeDefaults.ModuleWidth,
				height:      zpl.ParseInt(cmd.Param(1), st.barcodeDefaults.Height),
			}
			st.maybeEmitBarcode(&out)

		case "BQ":
			level := strings.ToUpper(cmd.Param(3))
			if level == "" {
				level = "H"
			}
			st.pendingBarcode = &pendingBarcode{
				kind:        KindQR,
				orientation: ParseOrientation(cmd.Param(0)),
				qrModule:    zpl.Clamp(zpl.ParseInt(cmd.Param(2), 4), 1, 10),
				qrLevel:     level,
			}
			st.maybeEmitBarcode(&out)

		case "FD":
			st.pendingData = cmd.Data
			st.hasPendingData = true

		case "FS":
			if in, ok := st.flush(); ok {
				out = append(out, in)
				st.advanceCursor(in)
			}
			st.resetPending()

		case "GB":
			x, y, _ := st.resolveOrigin()
			w := zpl.ParseInt(cmd.Param(0), 1)
			h := zpl.ParseInt(cmd.Param(1), 1)
			t := zpl.ParseInt(cmd.Param(2), 1)
			c := ParseBW(cmd.Param(3))
			r := zpl.Clamp(zpl.ParseInt(cmd.Param(4), 0), 0, 8)
			in := Instruction{
				Kind: KindBox, X: x, Y: y, W: w, H: h, Color: c,
				Reverse: st.pendingReverse,
				Payload: BoxPayload{Thickness: t, CornerLevel: r},
			}
			out = append(out, in)
			st.advanceCursor(in)

		case "GC":
			x, y, _ := st.resolveOrigin()
			d := zpl.ParseInt(cmd.Param(0), 3)
			t := zpl.ParseInt(cmd.Param(1), 1)
			c := ParseBW(cmd.Param(2))
			in := Instruction{
				Kind: KindCircle, X: x, Y: y, W: d, H: d, Color: c,
				Reverse: st.pendingReverse,
				Payload: CirclePayload{Thickness: t},
			}
			out = append(out, in)
			st.advanceCursor(in)

		case "GE":
			x, y, _ := st.resolveOrigin()
			w := zpl.ParseInt(cmd.Param(0), 3)
			h := zpl.ParseInt(cmd.Param(1), 3)
			t := zpl.ParseInt(cmd.Param(2), 1)
			c := ParseBW(cmd.Param(3))
			in := Instruction{
				Kind: KindEllipse, X: x, Y: y, W: w, H: h, Color: c,
				Reverse: st.pendingReverse,
				Payload: EllipsePayload{Thickness: t},
			}
			out = append(out, in)
			st.advanceCursor(in)

		case "GF":
			x, y, _ := st.resolveOrigin()
			totalBytes := zpl.ParseInt(cmd.Param(1), 0)
			bytesPerRow := zpl.ParseInt(cmd.Param(3), 0)
			bits, w, h, err := imgcodec.DecodeHexRLE(cmd.Data, totalBytes, bytesPerRow)
			if err != nil {
				return nil, err
			}
			in := Instruction{
				Kind: KindBitmap, X: x, Y: y, W: w, H: h, Color: st.lineColor,
				Reverse: st.pendingReverse,
				Payload: BitmapPayload{Width: w, Height: h, Bits: bits, LineColor: st.lineColor},
			}
			out = append(out, in)
			st.advanceCursor(in)

		case "GIC":
			x, y, _ := st.resolveOrigin()
			w := zpl.ParseInt(cmd.Param(0), 0)
			h := zpl.ParseInt(cmd.Param(1), 0)
			var payload BitmapPayload
			if name, ok := strings.CutPrefix(cmd.Data, "@"); ok {
				payload = BitmapPayload{Width: w, Height: h, Name: name}
			} else {
				rgba, err := imgcodec.DecodeColorImage(cmd.Data, w, h)
				if err != nil {
					return nil, err
				}
				payload = BitmapPayload{Width: w, Height: h, RGBA: rgba}
			}
			in := Instruction{
				Kind: KindBitmap, X: x, Y: y, W: w, H: h,
				Reverse: st.pendingReverse,
				Payload: payload,
			}
			out = append(out, in)
			st.advanceCursor(in)

		case "GLC":
			if c, ok := parseHexColor(strings.TrimPrefix(cmd.Param(0), "#")); ok {
				st.lineColor = c
			}

		case "GTC":
			if c, ok := parseHexColor(strings.TrimPrefix(cmd.Param(0), "#")); ok {
				st.textColor = c
			}

		default:
			// CC/CT (already applied by the lexer), and any other
			// recognized-but-out-of-scope or unknown opcode: ignored.
		}
	}

	if !seenXA {
		return nil, &FormatError{Err: ErrNoFormat}
	}
	return out, nil
}

// flush builds the pending Text or Barcode instruction (Barcode when a
// ^B3/^BC/^BQ kind is pending), but only if ^FD field data is pending; a
// barcode kind without field data emits nothing. It is called by both ^FS
// and the implicit flush on ^XZ.
func (s *state) flush() (Instruction, bool) {
	if !s.hasPendingData {
		return Instruction{}, false
	}
	x, y, baseline := s.resolveOrigin()

	if s.pendingBarcode != nil {
		return s.flushBarcode(x, y), true
	}

	f := s.activeFont()
	in := Instruction{
		Kind: KindText, X: x, Y: y, Rotation: s.pendingOrientation, Color: s.textColor,
		Reverse: s.pendingReverse,
		Payload: TextPayload{
			FontID: f.ID, Height: f.Height, Width: f.Width,
			Text: s.pendingData, Baseline: baseline,
		},
	}
	return in, true
}

func (s *state) flushBarcode(x, y int) Instruction {
	pb := s.pendingBarcode
	switch pb.kind {
	case KindCode39:
		return Instruction{
			Kind: KindCode39, X: x, Y: y, Rotation: pb.orientation, Color: s.lineColor,
			Reverse: s.pendingReverse,
			Payload: Code39Payload{
				Data: s.pendingData, ModuleWidth: pb.moduleWidth,
				Ratio: pb.ratio, Height: pb.height,
			},
		}
	case KindCode128:
		return Instruction{
			Kind: KindCode128, X: x, Y: y, Rotation: pb.orientation, Color: s.lineColor,
			Reverse: s.pendingReverse,
			Payload: Code128Payload{
				Data: s.pendingData, ModuleWidth: pb.moduleWidth, Height: pb.height,
			},
		}
	default: // KindQR
		return Instruction{
			Kind: KindQR, X: x, Y: y, Rotation: pb.orientation, Color: s.lineColor,
			Reverse: s.pendingReverse,
			Payload: QRPayload{
				Data: s.pendingData, Level: pb.qrLevel, ModuleSize: pb.qrModule,
			},
		}
	}
}

// maybeEmitBarcode flushes a barcode field the moment ^B3/^BC/^BQ arrives
// if a ^FD is already buffered, rather than waiting for a ^FS that might
// never separately appear.
func (s *state) maybeEmitBarcode(out *[]Instruction) {
	if !s.hasPendingData {
		return
	}
	x, y, _ := s.resolveOrigin()
	in := s.flushBarcode(x, y)
	*out = append(*out, in)
	s.advanceCursor(in)
	s.hasPendingData = false
	s.pendingData = ""
	s.pendingBarcode = nil
}

func firstByteOr(s string, def byte) byte {
	if len(s) == 0 {
		return def
	}
	return s[0]
}

// parseHexColor parses a #RRGGBB (without the leading '#') string,
// case-insensitively; invalid input is rejected so the caller can leave
// the previous color unchanged.
func parseHexColor(s string) (color.RGBA, bool) {
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff,
	}, true
}
