package pegrt

// ExpectedKind tells what sort of input was expected at a failure.
type ExpectedKind uint8

// Kinds of expected input.
const (
	ExpectedKindAny ExpectedKind = iota
	ExpectedKindClass
	ExpectedKindLiteral
	ExpectedKindEOF
	ExpectedKindUser
)

var expectedKindNames = [...]string{
	ExpectedKindAny:     "any",
	ExpectedKindClass:   "class",
	ExpectedKindLiteral: "literal",
	ExpectedKindEOF:     "eof",
	ExpectedKindUser:    "user",
}

func (kind ExpectedKind) String() string {
	if int(kind) < len(expectedKindNames) {
		return expectedKindNames[kind]
	}
	return "unknown"
}

// Expected describes an input element that would have let a match succeed.
// Descriptors are supplied by the grammar (or by a primitive itself) and live
// as long as it; the failure tracker only keeps pointers to them.
type Expected struct {
	Kind    ExpectedKind
	Message string
}

func (exp *Expected) String() string {
	return exp.Message
}

// Built-in descriptors used by the primitives.
var (
	ExpectedAny = &Expected{Kind: ExpectedKindAny, Message: "any character"}
	ExpectedEOF = &Expected{Kind: ExpectedKindEOF, Message: "end of input"}
)

// ExpectLiteral returns a descriptor for the literal text s.
func ExpectLiteral(s string) *Expected {
	return &Expected{Kind: ExpectedKindLiteral, Message: quote(s)}
}

// ExpectClass returns a descriptor for a class spelled as in the grammar,
// e.g. "[a-z_]".
func ExpectClass(raw string) *Expected {
	return &Expected{Kind: ExpectedKindClass, Message: raw}
}

// ExpectUser returns a descriptor with a grammar defined message, such as
// the display name of a rule.
func ExpectUser(msg string) *Expected {
	return &Expected{Kind: ExpectedKindUser, Message: msg}
}

// FailInfo is the furthest failure seen during a parse: the position and
// every descriptor recorded at exactly that position, in call order.
type FailInfo struct {
	Pos      Position
	Expected []*Expected

	silent int // nesting depth of silenced regions
}

// Silent tells if failures are currently discarded.
func (info *FailInfo) Silent() bool {
	return info.silent > 0
}

// Reset forgets every recorded failure.
func (info *FailInfo) Reset() {
	info.reset(startPosition)
}

func (info *FailInfo) reset(start Position) {
	info.Pos = start
	info.Expected = nil
	info.silent = 0
}

func (info *FailInfo) record(pos Position, exp *Expected) {
	if info.silent > 0 {
		return
	}
	if pos.Offset < info.Pos.Offset {
		return
	}
	if pos.Offset > info.Pos.Offset {
		info.Pos = pos
		info.Expected = info.Expected[:0]
	}
	info.Expected = append(info.Expected, exp)
}

// Fail records exp as expected at the current position and returns Failed.
//
// Failures before the furthest recorded position are dropped, failures past
// it replace the recorded set, and failures at it are appended. Nothing is
// recorded while the context is silenced.
func (ctx *Context) Fail(exp *Expected) *Result {
	ctx.Failures.record(ctx.current, exp)
	return Failed
}

// PushSilent silences failure recording until the matching PopSilent.
// Calls nest, so lookaheads inside lookaheads restore the outer state.
func (ctx *Context) PushSilent() {
	ctx.Failures.silent++
}

// PopSilent ends the innermost silenced region.
func (ctx *Context) PopSilent() {
	if ctx.Failures.silent <= 0 {
		panic(errorSilenceUnderrun)
	}
	ctx.Failures.silent--
}
