package pegutil

import (
	"github.com/hucsmn/pegrt"
)

var (
	hexPrefix      = pegrt.NewLiteral("0x")
	hexPrefixUpper = pegrt.NewLiteral("0X")
	zero           = pegrt.NewLiteral("0")
	crlf           = pegrt.NewLiteral("\r\n")
	newlines       = pegrt.NewCharClass("\r\n", "")

	expectHexPrefix      = pegrt.ExpectLiteral("0x")
	expectHexPrefixUpper = pegrt.ExpectLiteral("0X")
	expectZero           = pegrt.ExpectLiteral("0")
	expectCRLF           = pegrt.ExpectLiteral("\r\n")
	expectNewline        = pegrt.ExpectClass(`[\r\n]`)
)

// Literals
var (
	// Bare integers.
	DecInteger = pegrt.Text(pegrt.OneOrMore(pegrt.Class(DecDigit, ExpectDecDigit, false)))
	HexInteger = pegrt.Text(pegrt.OneOrMore(pegrt.Class(HexDigit, ExpectHexDigit, false)))
	OctInteger = pegrt.Text(pegrt.OneOrMore(pegrt.Class(OctDigit, ExpectOctDigit, false)))

	// Integer accepts 0x-prefixed hexadecimal, 0-prefixed octal and decimal
	// integers, reported as "integer" when none matches.
	Integer = pegrt.Named(pegrt.ExpectUser("integer"), pegrt.Text(pegrt.Choice(
		pegrt.Seq(pegrt.Choice(
			pegrt.Lit(hexPrefix, expectHexPrefix),
			pegrt.Lit(hexPrefixUpper, expectHexPrefixUpper)), HexInteger),
		pegrt.Seq(pegrt.Lit(zero, expectZero), OctInteger),
		DecInteger)))

	// Identifer.
	Identifier = pegrt.Named(pegrt.ExpectUser("identifier"), pegrt.Text(pegrt.Seq(
		pegrt.Class(IdentStart, ExpectIdentStart, false),
		pegrt.ZeroOrMore(pegrt.Class(IdentPart, ExpectIdentPart, false)))))

	// Spaces and newlines.
	Spaces    = pegrt.Text(pegrt.OneOrMore(pegrt.Class(ASCIIWhitespace, ExpectWhitespace, false)))
	AnySpaces = pegrt.Text(pegrt.ZeroOrMore(pegrt.Class(ASCIIWhitespace, ExpectWhitespace, false)))
	Newline   = pegrt.Choice(
		pegrt.Lit(crlf, expectCRLF),
		pegrt.Class(newlines, expectNewline, false))
)
