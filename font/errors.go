package font

import "errors"

// ErrInvalidFontData is the sentinel Register returns when font data
// parses as neither BDF nor TrueType/OpenType.
var ErrInvalidFontData = errors.New("font: invalid font data")
