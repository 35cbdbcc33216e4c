package label

import "errors"

// ErrNoFormat is the sentinel wrapped by a FormatError reporting that the
// input contains no ^XA at all.
var ErrNoFormat = errors.New("label: no ^XA found")

// ErrUnmatchedXZ is the sentinel wrapped by a FormatError reporting a ^XZ
// encountered while no format was open.
var ErrUnmatchedXZ = errors.New("label: ^XZ without matching ^XA")

// FormatError reports a structural error in the command sequence:
// either no ^XA was found, or a ^XZ appeared without a matching ^XA.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string { return e.Err.Error() }
func (e *FormatError) Unwrap() error { return e.Err }
