// Package zpl implements the command-level lexer for the ZPL label
// description language: it turns a raw byte stream into a lazy sequence of
// Command values, without interpreting what any of them mean. That is the
// job of package label's state engine.
package zpl

import "fmt"

// Command is a discriminated value identifying one parsed opcode and its
// parameters. Params holds comma-separated parameter strings for ordinary
// commands; Data holds the raw, un-split tail for commands whose trailing
// field carries literal bytes (^FD's text, ^GF's and ^GIC's payloads) or the
// unrecognized tail of an Unknown command.
type Command struct {
	Op     string   // opcode without the control character, e.g. "FO", "A"
	Tilde  bool     // true if introduced by the tilde control char (~XX)
	Params []string // comma-split parameters, excluding any raw Data field
	Data   string   // raw trailing payload, when the opcode has one
}

// String renders the command approximately as it appeared in the input,
// useful for logging and test failure messages.
func (c Command) String() string {
	ctl := "^"
	if c.Tilde {
		ctl = "~"
	}
	if c.Op == "" {
		return fmt.Sprintf("%sUNKNOWN%s %q", ctl, c.Op, c.Data)
	}
	if c.Data != "" {
		return fmt.Sprintf("%s%s %v %q", ctl, c.Op, c.Params, c.Data)
	}
	return fmt.Sprintf("%s%s %v", ctl, c.Op, c.Params)
}

// Param returns the i'th parameter, or "" if there are fewer than i+1.
// An empty parameter means "use default".
func (c Command) Param(i int) string {
	if i < 0 || i >= len(c.Params) {
		return ""
	}
	return c.Params[i]
}

// opcodes lists every opcode this lexer recognizes, with its byte length
// after the control character. Longer opcodes are tried first so that e.g.
// "GIC" is not mistaken for "GI" (not itself a real opcode, but the
// principle generalizes: ^GF must not eat the "G" of a longer match).
var opcodes = map[string]int{
	"A": 1,

	"B3": 2, "BC": 2, "BQ": 2, "BY": 2,
	"CF": 2, "CC": 2, "CT": 2,
	"FD": 2, "FO": 2, "FR": 2, "FS": 2, "FT": 2,
	"GB": 2, "GC": 2, "GE": 2, "GF": 2,
	"XA": 2, "XZ": 2,

	"GIC": 3, "GLC": 3, "GTC": 3,
}

// rawFieldCount gives, for opcodes whose last field may itself contain
// commas, the total number of comma-delimited fields (the last one being
// the raw, unsplit remainder). Opcodes absent here are split on every comma.
var rawFieldCount = map[string]int{
	"FD":  1, // the entire tail is raw field data
	"GF":  5, // c,b,f,p,<raw hex/RLE data>
	"GIC": 3, // w,h,<raw base64 data>
}
