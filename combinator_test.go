package pegrt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	digitClass = NewCharClass("", "09")
	expDigit   = ExpectClass("[0-9]")
	digit      = Class(digitClass, expDigit, false)
	expA       = ExpectLiteral("a")
	expB       = ExpectLiteral("b")
	litA       = Lit(NewLiteral("a"), expA)
	litB       = Lit(NewLiteral("b"), expB)
)

type combinatorTestData struct {
	text string
	ok   bool
	n    int    // cursor after the match
	tree string // String() of the result
	rule RuleFunc
}

func runCombinatorTestData(t *testing.T, i int, data combinatorTestData) {
	ctx := NewContext([]byte(data.text), nil)
	r := data.rule(ctx)
	if ctx.Err() != nil {
		t.Errorf("#%d %q: unexpected error %v", i, data.text, ctx.Err())
		return
	}
	if r.IsFailed() == data.ok {
		t.Errorf("#%d %q: matched => %t != %t (%s)", i, data.text, !r.IsFailed(), data.ok, r)
		return
	}
	if !data.ok {
		if ctx.Offset() != 0 {
			t.Errorf("#%d %q: failed rule left the cursor at %d", i, data.text, ctx.Offset())
		}
	} else {
		if ctx.Offset() != data.n {
			t.Errorf("#%d %q: cursor at %d != %d", i, data.text, ctx.Offset(), data.n)
		}
		if r.String() != data.tree {
			t.Errorf("#%d %q: tree %s != %s", i, data.text, r, data.tree)
		}
	}
	r.Free()
	if ctx.LiveNodes() != 0 {
		t.Errorf("#%d %q: %d nodes leaked", i, data.text, ctx.LiveNodes())
	}
}

func TestCombinators(t *testing.T) {
	data := []combinatorTestData{
		{"ab", true, 2, "[0,2)([0,1) [1,2))", Seq(litA, litB)},
		{"aa", false, 0, "", Seq(litA, litB)},
		{"", true, 0, "[0,0)", Seq()},
		{"b", true, 1, "[0,1)", Choice(litA, litB)},
		{"c", false, 0, "", Choice(litA, litB)},
		{"b", true, 0, "NIL", Optional(litA)},
		{"a", true, 1, "[0,1)", Optional(litA)},
		{"123x", true, 3, "[0,3)([0,1) [1,2) [2,3))", ZeroOrMore(digit)},
		{"x", true, 0, "[0,0)", ZeroOrMore(digit)},
		{"x", false, 0, "", OneOrMore(digit)},
		{"12345", true, 3, "[0,3)([0,1) [1,2) [2,3))", Repeat(2, 3, digit)},
		{"1x", false, 0, "", Repeat(2, 3, digit)},
		{"aab", true, 3, "[0,3)([0,2)([0,1) [1,2)) [2,3))", Seq(OneOrMore(litA), litB)},
		{"aac", false, 0, "", Seq(OneOrMore(litA), litB)},
		{"a", true, 0, "NIL", And(litA)},
		{"b", false, 0, "", And(litA)},
		{"b", true, 0, "NIL", Not(litA)},
		{"a", false, 0, "", Not(litA)},
		{"ab", true, 2, "[0,2)", Text(Seq(litA, litB))},
		{"ax", false, 0, "", Text(Seq(litA, litB))},
		{"ab", true, 2, "[0,2)([0,1) NIL [1,2))", Seq(litA, Optional(litA), litB)},
		{"aaa", true, 3, "[0,3)([0,1) [1,2) [2,3) NIL)", ZeroOrMore(Choice(litA, Not(litB)))},
		{"", true, 0, "NIL", EOF},
		{"z", true, 1, "[0,1)", Any},
	}

	for i, d := range data {
		runCombinatorTestData(t, i, d)
	}
}

func TestZeroOrMoreStopsOnEmptyMatch(t *testing.T) {
	ctx := NewContext([]byte("b"), nil)
	r := ZeroOrMore(Optional(litA))(ctx)
	if r.IsFailed() || len(r.Children()) != 1 || r.Child(0) != Nil {
		t.Errorf("ZeroOrMore(Optional) => %s", r)
	}
	r.Free()
}

func TestSeqBacktrackingKeepsFurthestFailure(t *testing.T) {
	// "ab" / "ac" on "ad": both alternatives fail at offset 1
	rule := Choice(
		Seq(litA, litB),
		Seq(litA, Lit(NewLiteral("c"), ExpectLiteral("c"))))
	ctx := NewContext([]byte("ad"), nil)
	if r := rule(ctx); r != Failed {
		t.Fatalf("rule matched %s", r)
	}
	if ctx.Offset() != 0 {
		t.Errorf("cursor left at %d", ctx.Offset())
	}
	if ctx.Failures.Pos.Offset != 1 {
		t.Errorf("furthest failure at %d", ctx.Failures.Pos.Offset)
	}
	var msgs []string
	for _, exp := range ctx.Failures.Expected {
		msgs = append(msgs, exp.Message)
	}
	if diff := cmp.Diff([]string{`"b"`, `"c"`}, msgs); diff != "" {
		t.Errorf("expected (-want +got):\n%s", diff)
	}
}

func TestPredicatesAreSilent(t *testing.T) {
	ctx := NewContext([]byte("ab"), nil)
	ctx.Advance(1)
	if r := Not(litB)(ctx); r != Failed {
		t.Fatalf("Not(b) matched %s", r)
	}
	if r := And(litA)(ctx); r != Failed {
		t.Fatalf("And(a) matched %s", r)
	}
	if len(ctx.Failures.Expected) != 0 || ctx.Failures.Silent() {
		t.Errorf("predicates recorded %v", ctx.Failures.Expected)
	}
}

func TestNamedReplacesInnerFailures(t *testing.T) {
	expNumber := ExpectUser("number")
	number := Named(expNumber, OneOrMore(digit))

	ctx := NewContext([]byte("x"), nil)
	if r := number(ctx); r != Failed {
		t.Fatalf("number matched %s", r)
	}
	if diff := cmp.Diff([]*Expected{expNumber}, ctx.Failures.Expected); diff != "" {
		t.Errorf("expected (-want +got):\n%s", diff)
	}

	ctx = NewContext([]byte("42"), nil)
	r := number(ctx)
	if r.IsFailed() || r.End() != 2 {
		t.Errorf("number => %s", r)
	}
	r.Free()
}

func TestCombinatorsStopOnNodeLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NodeLimit = 3
	ctx := cfg.NewContext([]byte("12345"), nil)
	r := Seq(OneOrMore(digit), EOF)(ctx)
	if r != Failed || ctx.Err() != ErrNodeLimit {
		t.Errorf("rule => %s, %v", r, ctx.Err())
	}
	if ctx.Offset() != 0 {
		t.Errorf("cursor left at %d", ctx.Offset())
	}
	if ctx.LiveNodes() != 0 {
		t.Errorf("%d nodes leaked", ctx.LiveNodes())
	}
}
