package pegrt

import (
	"bytes"
	"fmt"
	"strings"
)

const countsHalfBits = 16

// CharClass is a set of bytes made of single bytes and closed ranges.
//
// Ranges are stored as flat (low, high) pairs with low < high; a range of
// one byte belongs in the singles.
type CharClass struct {
	singles []byte
	ranges  []byte
}

// NewCharClass builds a class from its single bytes and its range pairs,
// e.g. NewCharClass("_", "azAZ") for [a-zA-Z_].
// Panics if ranges has an odd length or a pair is not strictly increasing.
func NewCharClass(singles, ranges string) *CharClass {
	if len(ranges)%2 != 0 {
		panic(errorOddClassRanges(len(ranges)))
	}
	for i := 0; i < len(ranges); i += 2 {
		if ranges[i] >= ranges[i+1] {
			panic(errorInvalidClassRange(ranges[i], ranges[i+1]))
		}
	}
	return &CharClass{singles: []byte(singles), ranges: []byte(ranges)}
}

// CharClassFromPacked builds a class from the constant layout emitted by
// grammar compilers: a count word whose high half holds the number of single
// bytes and low half the number of range pairs.
func CharClassFromPacked(counts uint32, singles, ranges string) *CharClass {
	nsingles, npairs := UnpackCounts(counts)
	return NewCharClass(singles[:nsingles], ranges[:npairs*2])
}

// PackCounts packs the number of single bytes and range pairs into one word.
func PackCounts(singles, pairs int) uint32 {
	return uint32(singles)<<countsHalfBits | uint32(pairs)&(1<<countsHalfBits-1)
}

// UnpackCounts is the inverse of PackCounts.
func UnpackCounts(counts uint32) (singles, pairs int) {
	return int(counts >> countsHalfBits), int(counts & (1<<countsHalfBits - 1))
}

// Counts returns the packed count word of the class.
func (cls *CharClass) Counts() uint32 {
	return PackCounts(len(cls.singles), len(cls.ranges)/2)
}

// Contains tells if ch is a member of the class.
func (cls *CharClass) Contains(ch byte) bool {
	for i := 0; i < len(cls.ranges); i += 2 {
		if cls.ranges[i] <= ch && ch <= cls.ranges[i+1] {
			return true
		}
	}
	return bytes.IndexByte(cls.singles, ch) >= 0
}

func (cls *CharClass) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < len(cls.ranges); i += 2 {
		fmt.Fprintf(&sb, "%s-%s", escapeClassByte(cls.ranges[i]), escapeClassByte(cls.ranges[i+1]))
	}
	for _, ch := range cls.singles {
		sb.WriteString(escapeClassByte(ch))
	}
	sb.WriteByte(']')
	return sb.String()
}

func escapeClassByte(ch byte) string {
	switch {
	case ch == '\\' || ch == ']' || ch == '-' || ch == '^':
		return `\` + string(ch)
	case ch < 0x20 || ch >= 0x7f:
		return fmt.Sprintf(`\x%02X`, ch)
	default:
		return string(ch)
	}
}

// MatchCharClass tells if the byte at the cursor is a member of cls, or
// not a member when inverted. The end of the input never matches.
// The cursor is never moved.
func MatchCharClass(ctx *Context, cls *CharClass, inverted bool) bool {
	if ctx.AtEOF() {
		return false
	}
	return cls.Contains(ctx.input[ctx.current.Offset]) != inverted
}

// ParseCharClass matches one byte against cls. On success it returns a
// one byte leaf and moves the cursor; otherwise it records exp and returns
// Failed.
func ParseCharClass(ctx *Context, cls *CharClass, exp *Expected, inverted bool) *Result {
	if MatchCharClass(ctx, cls, inverted) {
		return ctx.consume(1)
	}
	return ctx.Fail(exp)
}

// ParseAny matches any single byte, recording ExpectedAny at the end of
// the input.
func ParseAny(ctx *Context) *Result {
	if !ctx.AtEOF() {
		return ctx.consume(1)
	}
	return ctx.Fail(ExpectedAny)
}
