package label

import "image/color"

// fontSpec names a font by ZPL id plus requested pixel metrics.
type fontSpec struct {
	ID     byte
	Height int
	Width  int
}

// origin is the pending field position set by ^FO/^FT.
type origin struct {
	X, Y     int
	Baseline bool
	Set      bool
}

// barcodeDefaults is ^BY's module width/ratio/height, carried across
// fields until overridden.
type barcodeDefaults struct {
	ModuleWidth int
	Ratio       float64
	Height      int
}

// pendingBarcode remembers that ^B3/^BC/^BQ selected a barcode kind for the
// field currently being built, along with that command's own parameters
// (orientation, height/magnification/level), until the matching ^FD/^FS.
type pendingBarcode struct {
	kind        Kind
	orientation Orientation
	moduleWidth int
	height      int
	ratio       float64
	qrLevel     string
	qrModule    int
}

// state is the mutable simulation threaded across a command sequence.
// It is reset by newState per label and never escapes into an
// Instruction.
type state struct {
	openFormat bool

	defaultFont fontSpec
	currentFont *fontSpec // overrides defaultFont for the next field only

	pendingOrigin      origin
	pendingData        string
	hasPendingData     bool
	pendingReverse     bool
	pendingOrientation Orientation
	pendingBarcode     *pendingBarcode
	barcodeDefaults    barcodeDefaults

	lineColor color.RGBA
	textColor color.RGBA

	// cursor tracks the bottom-left corner of the last emitted
	// instruction, used as the origin when a field omits ^FO/^FT.
	cursor struct{ X, Y int }
}

func newState() *state {
	return &state{
		defaultFont:     fontSpec{ID: 'A', Height: 10, Width: 10},
		barcodeDefaults: barcodeDefaults{ModuleWidth: 2, Ratio: 3.0, Height: 10},
		lineColor:       Black,
		textColor:       Black,
	}
}

// resetPending clears every pending_* field, as ^FS does.
func (s *state) resetPending() {
	s.pendingOrigin = origin{}
	s.pendingData = ""
	s.hasPendingData = false
	s.pendingReverse = false
	s.pendingOrientation = OrientN
	s.pendingBarcode = nil
	s.currentFont = nil
}

// activeFont resolves the font to use for the field about to be emitted:
// ^A wins over ^CF, but only for that one field.
func (s *state) activeFont() fontSpec {
	if s.currentFont != nil {
		return *s.currentFont
	}
	return s.defaultFont
}

// resolveOrigin applies the missing-^FO fallback to the cursor position.
func (s *state) resolveOrigin() (x, y int, baseline bool) {
	if s.pendingOrigin.Set {
		return s.pendingOrigin.X, s.pendingOrigin.Y, s.pendingOrigin.Baseline
	}
	return s.cursor.X, s.cursor.Y, false
}

// advanceCursor updates the cursor to the bottom-left of the just-emitted
// instruction, which also consumes the pending ^FO/^FT origin: a later
// field without its own ^FO starts at the cursor.
func (s *state) advanceCursor(in Instruction) {
	s.cursor.X = in.X
	s.cursor.Y = in.Y + in.H
	s.pendingOrigin = origin{}
}
