// Package label implements the ZPL state engine: it folds a sequence
// of zpl.Command values into a flat, ordered list of Instructions by
// simulating the label-wide state a real ZPL interpreter would carry
// (active font, cursor, pending field, barcode defaults, colors, reverse
// video). Label composition is driven from a parsed command stream
// rather than direct Go calls, so every field reaches the same
// Instruction shape regardless of how it was declared.
package label

import "image/color"

// Kind discriminates the payload carried by an Instruction.
type Kind int

const (
	KindText Kind = iota
	KindBitmap
	KindLine
	KindBox
	KindCircle
	KindEllipse
	KindCode39
	KindCode128
	KindQR
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindBitmap:
		return "Bitmap"
	case KindLine:
		return "Line"
	case KindBox:
		return "Box"
	case KindCircle:
		return "Circle"
	case KindEllipse:
		return "Ellipse"
	case KindCode39:
		return "Code39"
	case KindCode128:
		return "Code128"
	case KindQR:
		return "QR"
	default:
		return "Unknown"
	}
}

// Orientation is a field rotation: N (none), R (right 90°), I (inverted
// 180°), B (bottom-up 270°).
type Orientation int

const (
	OrientN Orientation = iota
	OrientR
	OrientI
	OrientB
)

// ParseOrientation maps a single ZPL orientation letter to an Orientation,
// defaulting to OrientN for anything unrecognized.
func ParseOrientation(s string) Orientation {
	if len(s) == 0 {
		return OrientN
	}
	switch s[0] {
	case 'R', 'r':
		return OrientR
	case 'I', 'i':
		return OrientI
	case 'B', 'b':
		return OrientB
	default:
		return OrientN
	}
}

// Quarters returns the number of clockwise quarter turns an Orientation
// represents, for consumption by imgutil.Rotate.
func (o Orientation) Quarters() int {
	switch o {
	case OrientR:
		return 1
	case OrientI:
		return 2
	case OrientB:
		return 3
	default:
		return 0
	}
}

// Black and White are the only two colors ^GB/^GC/^GE accept for their
// c parameter; ^GLC/^GTC can set arbitrary 24-bit colors for lines/text.
var (
	Black = color.RGBA{A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ParseBW parses ZPL's "B"/"W" color shorthand, defaulting to Black.
func ParseBW(s string) color.RGBA {
	if len(s) > 0 && (s[0] == 'W' || s[0] == 'w') {
		return White
	}
	return Black
}

// TextPayload carries the data needed to shape and paint a Text
// instruction; the actual glyph shaping is deferred to package font/paint
// so that Instructions stay free of any font-manager reference.
type TextPayload struct {
	FontID   byte
	Height   int
	Width    int // 0 means natural aspect ratio
	Text     string
	Baseline bool // true if positioned via ^FT (painter offsets Y by ascent)
}

// BitmapPayload carries a decoded 1-bit or RGBA raster plus the line color
// to use when painting 1-bit sources (0 = transparent, 1 = LineColor,
// unless Reverse is set).
type BitmapPayload struct {
	Width, Height int
	// Bits holds a 1-bit-per-pixel, MSB-first, row-major bitmap when RGBA
	// is nil; RGBA holds a decoded color image (from ^GIC) otherwise.
	Bits      []byte
	RGBA      []color.RGBA
	LineColor color.RGBA
	// Name is set instead of RGBA when ^GIC's data field names a
	// caller-supplied substitution image (a bare "@name" token) rather
	// than carrying inline encoded bytes; the engine resolves it against
	// the name→bytes map passed to Render before painting.
	Name string
}

// BoxPayload carries ^GB's thickness and corner-radius level (0..8).
type BoxPayload struct {
	Thickness   int
	CornerLevel int
}

// CirclePayload carries ^GC's thickness; diameter is Instruction.W==H.
type CirclePayload struct {
	Thickness int
}

// EllipsePayload carries ^GE's thickness.
type EllipsePayload struct {
	Thickness int
}

// Code39Payload carries the parameters needed by barcode/code39.
type Code39Payload struct {
	Data        string
	ModuleWidth int
	Ratio       float64
	Height      int
}

// Code128Payload carries the parameters needed by barcode/code128.
type Code128Payload struct {
	Data        string
	ModuleWidth int
	Height      int
}

// QRPayload carries the parameters needed by barcode/qr.
type QRPayload struct {
	Data       string
	Level      string // one of L, M, Q, H
	ModuleSize int
}

// Instruction is a fully-resolved, stateless drawing primitive: it carries
// absolute pixel coordinates and never references the label state that
// produced it.
type Instruction struct {
	Kind     Kind
	X, Y     int
	W, H     int
	Rotation Orientation
	Color    color.RGBA
	Reverse  bool
	Payload  any
}

// Bounds returns the instruction's unrotated bounding box, X,Y to
// X+W,Y+H. The painter does not use it: reverse video and clipping work
// from the rectangle each primitive reports as painted.
func (in Instruction) Bounds() (x0, y0, x1, y1 int) {
	return in.X, in.Y, in.X + in.W, in.Y + in.H
}
