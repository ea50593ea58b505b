package pegrt

// Combinators building rule functions out of other rule functions, in the
// same shapes a grammar compiler emits: sequences wrap their parts, choices
// try alternatives in order, repetitions collect matches into one node and
// predicates probe ahead silently.
//
// Every combinator leaves the cursor where it found it when it fails, and
// releases whatever its parts produced before the failure.

// Lit returns a rule matching lit.
func Lit(lit *Literal, exp *Expected) RuleFunc {
	return func(ctx *Context) *Result {
		return ParseLiteral(ctx, lit, exp)
	}
}

// Class returns a rule matching one byte of cls, or not of cls if inverted.
func Class(cls *CharClass, exp *Expected, inverted bool) RuleFunc {
	return func(ctx *Context) *Result {
		return ParseCharClass(ctx, cls, exp, inverted)
	}
}

// Any is a rule matching any single byte.
var Any RuleFunc = ParseAny

// EOF is a rule matching the end of the input.
var EOF RuleFunc = ParseEOF

// Seq matches elems in order. Its node spans all of them and adopts their
// results as children. It fails at the first element that fails.
func Seq(elems ...RuleFunc) RuleFunc {
	return func(ctx *Context) *Result {
		mark := ctx.Mark()
		parts := make([]*Result, 0, len(elems))
		for _, elem := range elems {
			r := elem(ctx)
			if r == Failed || ctx.err != nil {
				parts = append(parts, r)
				freeAll(parts)
				ctx.Restore(mark)
				return Failed
			}
			parts = append(parts, r)
		}
		r, err := Wrap(ctx, mark.Offset, parts)
		if err != nil {
			ctx.Restore(mark)
			return ctx.Abort(err)
		}
		return r
	}
}

// Choice returns the result of the first alternative that matches.
func Choice(alts ...RuleFunc) RuleFunc {
	return func(ctx *Context) *Result {
		for _, alt := range alts {
			r := alt(ctx)
			if r != Failed {
				return r
			}
			if ctx.err != nil {
				break
			}
		}
		return Failed
	}
}

// Optional matches elem or nothing, in which case the result is Nil.
func Optional(elem RuleFunc) RuleFunc {
	return func(ctx *Context) *Result {
		r := elem(ctx)
		if r == Failed && ctx.err == nil {
			return Nil
		}
		return r
	}
}

// ZeroOrMore matches elem as many times as possible.
func ZeroOrMore(elem RuleFunc) RuleFunc {
	return Repeat(0, 0, elem)
}

// OneOrMore matches elem at least once and as many times as possible.
func OneOrMore(elem RuleFunc) RuleFunc {
	return Repeat(1, 0, elem)
}

// Repeat matches elem at least min and at most max times, zero or negative
// max meaning unlimited. The results are collected as children of one node
// spanning all of them.
//
// Repetition stops after a match that consumed nothing, since it would
// repeat forever.
func Repeat(min, max int, elem RuleFunc) RuleFunc {
	return func(ctx *Context) *Result {
		mark := ctx.Mark()
		arr, err := ctx.AllocResult(mark.Offset, mark.Offset, 0)
		if err != nil {
			return ctx.Abort(err)
		}
		for max <= 0 || len(arr.children) < max {
			at := ctx.Offset()
			r := elem(ctx)
			if r == Failed {
				break
			}
			arr.children = append(arr.children, r)
			if ctx.err != nil || ctx.Offset() == at {
				break
			}
		}
		if ctx.err != nil || len(arr.children) < min {
			arr.Free()
			ctx.Restore(mark)
			return Failed
		}
		arr.end = ctx.Offset()
		return arr
	}
}

// And matches if elem matches, without consuming input or recording
// failures. The result is Nil.
func And(elem RuleFunc) RuleFunc {
	return func(ctx *Context) *Result {
		r := lookahead(ctx, elem)
		if r == Failed {
			return Failed
		}
		r.Free()
		return Nil
	}
}

// Not matches if elem does not match, without consuming input or
// recording failures. The result is Nil.
func Not(elem RuleFunc) RuleFunc {
	return func(ctx *Context) *Result {
		r := lookahead(ctx, elem)
		if r == Failed {
			if ctx.err != nil {
				return Failed
			}
			return Nil
		}
		r.Free()
		return Failed
	}
}

func lookahead(ctx *Context, elem RuleFunc) *Result {
	mark := ctx.Mark()
	ctx.PushSilent()
	r := elem(ctx)
	ctx.PopSilent()
	ctx.Restore(mark)
	return r
}

// Text matches elem and replaces its tree by a single leaf over the same
// bytes.
func Text(elem RuleFunc) RuleFunc {
	return func(ctx *Context) *Result {
		mark := ctx.Mark()
		r := elem(ctx)
		if r == Failed {
			return Failed
		}
		r.Free()
		leaf, err := ctx.AllocResult(mark.Offset, ctx.Offset(), 0)
		if err != nil {
			ctx.Restore(mark)
			return ctx.Abort(err)
		}
		return leaf
	}
}

// Named matches elem silently and, if it fails, records exp instead of the
// failures of its parts. Grammars use it to report "number" rather than
// the digits a number is made of.
func Named(exp *Expected, elem RuleFunc) RuleFunc {
	return func(ctx *Context) *Result {
		ctx.PushSilent()
		r := elem(ctx)
		ctx.PopSilent()
		if r == Failed && ctx.err == nil {
			return ctx.Fail(exp)
		}
		return r
	}
}
