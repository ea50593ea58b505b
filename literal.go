package pegrt

import (
	"bytes"
	"strconv"
)

// Literal is a byte sequence matched exactly, or ignoring ASCII case when
// built by NewLiteralFold.
type Literal struct {
	data []byte
	fold bool
}

// NewLiteral returns the literal for the bytes of s.
func NewLiteral(s string) *Literal {
	return &Literal{data: []byte(s)}
}

// Len returns the number of bytes in the literal.
func (lit *Literal) Len() int {
	return len(lit.data)
}

func (lit *Literal) String() string {
	if lit.fold {
		return quote(string(lit.data)) + "i"
	}
	return quote(string(lit.data))
}

// MatchLiteral tells if the bytes at the cursor equal lit.
// The cursor is never moved.
func MatchLiteral(ctx *Context, lit *Literal) bool {
	if ctx.Remaining() < len(lit.data) {
		return false
	}
	at := ctx.current.Offset
	if lit.fold {
		return equalFoldASCII(ctx.input[at:at+len(lit.data)], lit.data)
	}
	return bytes.Equal(ctx.input[at:at+len(lit.data)], lit.data)
}

// ParseLiteral matches lit at the cursor. On success it returns a leaf
// over the matched bytes and moves the cursor past them; otherwise it
// records exp and returns Failed.
func ParseLiteral(ctx *Context, lit *Literal, exp *Expected) *Result {
	if MatchLiteral(ctx, lit) {
		return ctx.consume(len(lit.data))
	}
	return ctx.Fail(exp)
}

// ParseEOF returns Nil at the end of the input, otherwise it records
// ExpectedEOF and returns Failed.
func ParseEOF(ctx *Context) *Result {
	if ctx.AtEOF() {
		return Nil
	}
	return ctx.Fail(ExpectedEOF)
}

func quote(s string) string {
	return strconv.Quote(s)
}
