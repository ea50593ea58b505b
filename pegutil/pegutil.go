// Package pegutil provides ready-made grammar pieces for the pegrt runtime.
//
// Following categories of utils are provided by this package:
//     Byte classes (ASCII*, *Digit) with their expected descriptors
//     Bare integers (DecInteger, HexInteger, Integer)
//     Simple literals (Identifier, Spaces, AnySpaces, Newline)
// Ths package API is currently volatile.
package pegutil // import "github.com/hucsmn/pegrt/pegutil"

import (
	"github.com/hucsmn/pegrt"
)

// Rules registers every rule defined in this package by name.
var Rules = pegrt.MustTable(
	pegrt.Rule{Name: "Integer", Func: Integer},
	pegrt.Rule{Name: "DecInteger", Func: DecInteger},
	pegrt.Rule{Name: "HexInteger", Func: HexInteger},
	pegrt.Rule{Name: "OctInteger", Func: OctInteger},
	pegrt.Rule{Name: "Identifier", Func: Identifier},
	pegrt.Rule{Name: "Spaces", Func: Spaces},
	pegrt.Rule{Name: "AnySpaces", Func: AnySpaces},
	pegrt.Rule{Name: "Newline", Func: Newline},
)
