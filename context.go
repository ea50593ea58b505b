package pegrt

// Context is the running state of one parse attempt: the input window, the
// cursor, the furthest failure and an opaque slot for the driving code.
//
// A Context is owned by a single caller and is not safe for concurrent use.
// Grammar constants (literals, classes, expected descriptors, rule tables)
// may be shared freely between contexts.
type Context struct {
	// Opaque data for rule functions, never touched by the runtime.
	Options interface{}

	// Furthest failure bookkeeping.
	Failures FailInfo

	input   []byte
	current Position
	pcalc   positionCalculator
	nolines bool

	nodes allocator
	err   error // first fatal error raised inside a combinator
}

// NewContext prepares a parse of input using the default configuration.
// The input must not be modified while the context is in use.
func NewContext(input []byte, options interface{}) *Context {
	return defaultConfig.NewContext(input, options)
}

// NewContext prepares a parse of input using cfg.
func (cfg Config) NewContext(input []byte, options interface{}) *Context {
	ctx := &Context{}
	ctx.reset(input, options, cfg)
	return ctx
}

func (ctx *Context) reset(input []byte, options interface{}, cfg Config) {
	start := startPosition
	if cfg.DisableLineColumnCounting {
		start = Position{}
	}

	ctx.Options = options
	ctx.Failures.reset(start)

	ctx.input = input
	ctx.current = start
	ctx.pcalc = positionCalculator{input: input}
	ctx.nolines = cfg.DisableLineColumnCounting

	ctx.nodes = allocator{limit: cfg.NodeLimit}
	ctx.err = nil
}

// Input returns the whole input window.
func (ctx *Context) Input() []byte {
	return ctx.input
}

// Offset returns the cursor as a byte offset.
func (ctx *Context) Offset() int {
	return ctx.current.Offset
}

// Pos returns the cursor position.
func (ctx *Context) Pos() Position {
	return ctx.current
}

// Remaining returns the number of bytes after the cursor.
func (ctx *Context) Remaining() int {
	return len(ctx.input) - ctx.current.Offset
}

// AtEOF tells if the cursor reached the end of the input.
func (ctx *Context) AtEOF() bool {
	return ctx.current.Offset >= len(ctx.input)
}

// Advance moves the cursor n bytes forward.
// Primitives call it only after a match is confirmed.
func (ctx *Context) Advance(n int) {
	if ctx.nolines {
		ctx.current.Offset += n
		return
	}
	ctx.current = ctx.current.advance(ctx.input, n)
}

// Mark saves the cursor so an abandoned alternative can be undone.
func (ctx *Context) Mark() Position {
	return ctx.current
}

// Restore moves the cursor back to a position saved by Mark.
func (ctx *Context) Restore(pos Position) {
	ctx.current = pos
}

// PositionAt computes the position of any offset in the input.
func (ctx *Context) PositionAt(offset int) Position {
	if ctx.nolines {
		return Position{Offset: offset}
	}
	return ctx.pcalc.calculate(offset)
}

// AllocResult allocates a node covering [begin, end) with exactly
// childCount child slots to be filled by the caller.
func (ctx *Context) AllocResult(begin, end, childCount int) (*Result, error) {
	if begin < 0 || begin > end || end > len(ctx.input) {
		return nil, errorInvalidRange
	}
	if childCount < 0 {
		return nil, errorNegativeCount
	}
	return ctx.nodes.alloc(begin, end, childCount)
}

// LiveNodes returns the number of nodes allocated and not yet released.
func (ctx *Context) LiveNodes() int {
	return ctx.nodes.live
}

// Err returns the first fatal error raised while matching, if any.
// Once set, the parse cannot continue meaningfully.
func (ctx *Context) Err() error {
	return ctx.err
}

// Abort records a fatal error, such as a failed allocation, and returns
// Failed. Only the first error is kept.
func (ctx *Context) Abort(err error) *Result {
	if ctx.err == nil {
		ctx.err = err
	}
	return Failed
}

// consume allocates a childless node over the next n bytes, then moves the
// cursor past them. The cursor stays put if the allocation fails.
func (ctx *Context) consume(n int) *Result {
	begin := ctx.current.Offset
	r, err := ctx.AllocResult(begin, begin+n, 0)
	if err != nil {
		return ctx.Abort(err)
	}
	ctx.Advance(n)
	return r
}
