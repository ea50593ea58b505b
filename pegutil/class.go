package pegutil

import (
	"github.com/hucsmn/pegrt"
)

// Digits.
var (
	OctDigit = pegrt.NewCharClass("", "07")
	DecDigit = pegrt.NewCharClass("", "09")
	HexDigit = pegrt.NewCharClass("", "09afAF")
)

// ASCII bytes.
var (
	ASCIIWhitespace  = pegrt.NewCharClass(" \t\n\r\v\f", "")
	ASCIILetter      = pegrt.NewCharClass("", "azAZ")
	ASCIILower       = pegrt.NewCharClass("", "az")
	ASCIIUpper       = pegrt.NewCharClass("", "AZ")
	ASCIILetterDigit = pegrt.NewCharClass("", "azAZ09")
	ASCIIControl     = pegrt.NewCharClass("\x7f", "\x00\x1f")
	ASCIIBlank       = pegrt.NewCharClass(" \t", "")
	IdentStart       = pegrt.NewCharClass("_", "azAZ")
	IdentPart        = pegrt.NewCharClass("_", "azAZ09")
)

// Expected descriptors of the classes above.
var (
	ExpectOctDigit    = pegrt.ExpectClass("[0-7]")
	ExpectDecDigit    = pegrt.ExpectClass("[0-9]")
	ExpectHexDigit    = pegrt.ExpectClass("[0-9a-fA-F]")
	ExpectWhitespace  = pegrt.ExpectClass(`[ \t\n\r\v\f]`)
	ExpectBlank       = pegrt.ExpectClass(`[ \t]`)
	ExpectIdentStart  = pegrt.ExpectClass("[a-zA-Z_]")
	ExpectIdentPart   = pegrt.ExpectClass("[a-zA-Z0-9_]")
	ExpectLetter      = pegrt.ExpectClass("[a-zA-Z]")
	ExpectLetterDigit = pegrt.ExpectClass("[a-zA-Z0-9]")
)
