package rpn

import (
	"github.com/hucsmn/pegrt"
	"github.com/hucsmn/pegrt/pegutil"
)

// Grammar of rpn programs, written the way a grammar compiler emits rules:
//
//     Program <- Gap (Word Gap)* !.
//     Word    <- Number / Verb
//     Number  <- [+-]? Integer !Char
//     Verb    <- Char+
//     Gap     <- (Spaces / Comment)*
//     Comment <- "#" (!Newline .)* / "(" (!")" .)* ")"
//     Char    <- [!-~]
var Grammar = pegrt.MustTable(
	pegrt.Rule{Name: "Program", Func: program},
	pegrt.Rule{Name: "Word", Func: word},
	pegrt.Rule{Name: "Number", Func: number},
	pegrt.Rule{Name: "Verb", Func: verb},
	pegrt.Rule{Name: "Gap", Func: gap},
	pegrt.Rule{Name: "Comment", Func: comment},
	pegrt.Rule{Name: "Char", Func: char},
)

var (
	signClass = pegrt.NewCharClass("+-", "")
	charClass = pegrt.NewCharClass("", "!~")

	lineComment  = pegrt.NewLiteral("#")
	blockComment = pegrt.NewLiteral("(")
	blockEnd     = pegrt.NewLiteral(")")

	expectSign         = pegrt.ExpectClass("[+-]")
	expectChar         = pegrt.ExpectClass("[!-~]")
	expectLineComment  = pegrt.ExpectLiteral("#")
	expectBlockComment = pegrt.ExpectLiteral("(")
	expectBlockEnd     = pegrt.ExpectLiteral(")")
	expectNumber       = pegrt.ExpectUser("number")
	expectWord         = pegrt.ExpectUser("word")
)

var (
	words = pegrt.ZeroOrMore(pegrt.Seq(word, gap))

	gapRule = pegrt.ZeroOrMore(pegrt.Choice(pegutil.Spaces, comment))

	commentRule = pegrt.Choice(
		pegrt.Seq(
			pegrt.Lit(lineComment, expectLineComment),
			pegrt.ZeroOrMore(pegrt.Seq(pegrt.Not(pegutil.Newline), pegrt.Any))),
		pegrt.Seq(
			pegrt.Lit(blockComment, expectBlockComment),
			pegrt.ZeroOrMore(pegrt.Seq(pegrt.Not(pegrt.Lit(blockEnd, expectBlockEnd)), pegrt.Any)),
			pegrt.Lit(blockEnd, expectBlockEnd)))

	verbRule = pegrt.Text(pegrt.OneOrMore(char))
)

// Program <- Gap (Word Gap)* !.
func program(ctx *pegrt.Context) *pegrt.Result {
	p0 := ctx.Mark()
	r0 := gap(ctx)
	if r0 == pegrt.Failed {
		return pegrt.Failed
	}
	r1 := words(ctx)
	if r1 == pegrt.Failed {
		pegrt.FreeResult(r0)
		ctx.Restore(p0)
		return pegrt.Failed
	}
	r2 := pegrt.ParseEOF(ctx)
	if r2 == pegrt.Failed {
		pegrt.FreeResult(r1)
		pegrt.FreeResult(r0)
		ctx.Restore(p0)
		return pegrt.Failed
	}
	r, err := pegrt.Wrap(ctx, p0.Offset, []*pegrt.Result{r0, r1, r2})
	if err != nil {
		ctx.Restore(p0)
		return ctx.Abort(err)
	}
	return r
}

// Word <- Number / Verb
func word(ctx *pegrt.Context) *pegrt.Result {
	ctx.PushSilent()
	r := number(ctx)
	if r == pegrt.Failed {
		r = verb(ctx)
	}
	ctx.PopSilent()
	if r == pegrt.Failed {
		return ctx.Fail(expectWord)
	}
	return r
}

// Number <- [+-]? Integer !Char
func number(ctx *pegrt.Context) *pegrt.Result {
	ctx.PushSilent()
	r := numberBody(ctx)
	ctx.PopSilent()
	if r == pegrt.Failed && ctx.Err() == nil {
		return ctx.Fail(expectNumber)
	}
	return r
}

func numberBody(ctx *pegrt.Context) *pegrt.Result {
	p0 := ctx.Mark()
	r0 := pegrt.ParseCharClass(ctx, signClass, expectSign, false)
	if r0 == pegrt.Failed {
		r0 = pegrt.Nil
	}
	r1 := pegutil.Integer(ctx)
	if r1 == pegrt.Failed {
		pegrt.FreeResult(r0)
		ctx.Restore(p0)
		return pegrt.Failed
	}
	if pegrt.MatchCharClass(ctx, charClass, false) {
		pegrt.FreeResult(r1)
		pegrt.FreeResult(r0)
		ctx.Restore(p0)
		return pegrt.Failed
	}
	r, err := pegrt.Wrap(ctx, p0.Offset, []*pegrt.Result{r0, r1})
	if err != nil {
		ctx.Restore(p0)
		return ctx.Abort(err)
	}
	return r
}

// Verb <- Char+
func verb(ctx *pegrt.Context) *pegrt.Result {
	return verbRule(ctx)
}

// Gap <- (Spaces / Comment)*
func gap(ctx *pegrt.Context) *pegrt.Result {
	return gapRule(ctx)
}

// Comment <- "#" (!Newline .)* / "(" (!")" .)* ")"
func comment(ctx *pegrt.Context) *pegrt.Result {
	return commentRule(ctx)
}

// Char <- [!-~]
func char(ctx *pegrt.Context) *pegrt.Result {
	return pegrt.ParseCharClass(ctx, charClass, expectChar, false)
}
