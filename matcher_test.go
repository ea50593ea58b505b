package pegrt

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type literalTestData struct {
	text   string
	offset int
	lit    string
	ok     bool
}

// Tests MatchLiteral and ParseLiteral over every literal/input pair.
func TestLiteral(t *testing.T) {
	data := []literalTestData{
		{"foobar", 0, "foo", true},
		{"foobar", 3, "bar", true},
		{"foobar", 3, "baz", false},
		{"foobar", 4, "bar", false},
		{"foobar", 6, "", true},
		{"foobar", 0, "", true},
		{"foo", 0, "foobar", false},
		{"", 0, "a", false},
		{"\x00\xff", 0, "\x00\xff", true},
		{"\x00\xff", 0, "\x00\xfe", false},
	}

	for _, d := range data {
		input := []byte(d.text)
		ctx := NewContext(input, nil)
		ctx.Advance(d.offset)
		lit := NewLiteral(d.lit)

		want := len(input)-d.offset >= len(d.lit) && bytes.Equal(input[d.offset:d.offset+len(d.lit)], []byte(d.lit))
		if want != d.ok {
			t.Fatalf("bad test data %+v", d)
		}
		if ok := MatchLiteral(ctx, lit); ok != d.ok {
			t.Errorf("MatchLiteral(%q@%d, %s) => %t != %t", d.text, d.offset, lit, ok, d.ok)
		}
		if ctx.Offset() != d.offset {
			t.Errorf("MatchLiteral(%q@%d, %s) moved cursor to %d", d.text, d.offset, lit, ctx.Offset())
		}

		exp := ExpectLiteral(d.lit)
		r := ParseLiteral(ctx, lit, exp)
		if !d.ok {
			if r != Failed {
				t.Errorf("ParseLiteral(%q@%d, %s) => %s != FAILED", d.text, d.offset, lit, r)
			}
			if ctx.Offset() != d.offset {
				t.Errorf("failed ParseLiteral(%q@%d, %s) moved cursor to %d", d.text, d.offset, lit, ctx.Offset())
			}
			continue
		}
		if r.Begin() != d.offset || r.End() != d.offset+len(d.lit) || !r.IsLeaf() {
			t.Errorf("ParseLiteral(%q@%d, %s) => %s", d.text, d.offset, lit, r)
		}
		if ctx.Offset() != d.offset+len(d.lit) {
			t.Errorf("ParseLiteral(%q@%d, %s) left cursor at %d", d.text, d.offset, lit, ctx.Offset())
		}
		r.Free()
	}
}

// Tests class membership with ranges [a-z] and single "_".
func TestCharClass(t *testing.T) {
	cls := NewCharClass("_", "az")
	exp := ExpectClass("[a-z_]")
	data := []struct {
		text     string
		inverted bool
		ok       bool
	}{
		{"m", false, true},
		{"_", false, true},
		{"-", false, false},
		{"a", false, true},
		{"z", false, true},
		{"{", false, false},
		{"`", false, false},
		{"m", true, false},
		{"_", true, false},
		{"-", true, true},
		{"", false, false},
		{"", true, false},
	}

	for _, d := range data {
		ctx := NewContext([]byte(d.text), nil)
		if ok := MatchCharClass(ctx, cls, d.inverted); ok != d.ok {
			t.Errorf("MatchCharClass(%q, %s, %t) => %t != %t", d.text, cls, d.inverted, ok, d.ok)
		}
		r := ParseCharClass(ctx, cls, exp, d.inverted)
		if d.ok {
			if r.IsFailed() || r.Begin() != 0 || r.End() != 1 || ctx.Offset() != 1 {
				t.Errorf("ParseCharClass(%q, %s, %t) => %s @%d", d.text, cls, d.inverted, r, ctx.Offset())
			}
			r.Free()
		} else if !r.IsFailed() || ctx.Offset() != 0 {
			t.Errorf("ParseCharClass(%q, %s, %t) => %s @%d", d.text, cls, d.inverted, r, ctx.Offset())
		}
	}
}

func TestCharClassLayout(t *testing.T) {
	counts := PackCounts(3, 2)
	singles, pairs := UnpackCounts(counts)
	if singles != 3 || pairs != 2 {
		t.Errorf("UnpackCounts(PackCounts(3, 2)) => %d, %d", singles, pairs)
	}

	cls := CharClassFromPacked(counts, "_$@", "azAZ")
	if cls.Counts() != counts {
		t.Errorf("Counts() => %#x != %#x", cls.Counts(), counts)
	}
	for _, ch := range []byte("_$@aqzAQZ") {
		if !cls.Contains(ch) {
			t.Errorf("%s does not contain %q", cls, ch)
		}
	}
	for _, ch := range []byte("09-{[") {
		if cls.Contains(ch) {
			t.Errorf("%s contains %q", cls, ch)
		}
	}
	if s := cls.String(); s != "[a-zA-Z_$@]" {
		t.Errorf("String() => %s", s)
	}
}

func TestCharClassInvalidRanges(t *testing.T) {
	for _, ranges := range []string{"aa", "za", "abc"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewCharClass(\"\", %q) did not panic", ranges)
				}
			}()
			NewCharClass("", ranges)
		}()
	}
}

func TestParseAnyAndEOF(t *testing.T) {
	ctx := NewContext([]byte("x"), nil)
	if r := ParseEOF(ctx); r != Failed {
		t.Errorf("ParseEOF before end => %s", r)
	}
	r := ParseAny(ctx)
	if r.IsFailed() || r.Len() != 1 {
		t.Fatalf("ParseAny => %s", r)
	}
	r.Free()
	if r := ParseAny(ctx); r != Failed {
		t.Errorf("ParseAny at end => %s", r)
	}
	if r := ParseEOF(ctx); r != Nil {
		t.Errorf("ParseEOF at end => %s", r)
	}

	want := []*Expected{ExpectedAny}
	if diff := cmp.Diff(want, ctx.Failures.Expected); diff != "" {
		t.Errorf("expected at end (-want +got):\n%s", diff)
	}
	if ctx.Failures.Pos.Offset != 1 {
		t.Errorf("furthest failure at %v", ctx.Failures.Pos)
	}
}

func TestLiteralFold(t *testing.T) {
	lit := NewLiteralFold("Select")
	if lit.String() != `"select"i` || lit.Len() != 6 {
		t.Errorf("NewLiteralFold => %s", lit)
	}
	data := []struct {
		text string
		ok   bool
	}{
		{"select", true},
		{"SELECT", true},
		{"sElEcT x", true},
		{"selec", false},
		{"se1ect", false},
		{"s\xc5lect", false},
	}
	for _, d := range data {
		ctx := NewContext([]byte(d.text), nil)
		r := ParseLiteral(ctx, lit, ExpectLiteral("select"))
		if r.IsFailed() == d.ok {
			t.Errorf("ParseLiteral(%q, %s) => %s", d.text, lit, r)
		}
		if d.ok && r.End() != 6 {
			t.Errorf("ParseLiteral(%q, %s) => %s", d.text, lit, r)
		}
		r.Free()
	}

	// non-letters are matched exactly
	ctx := NewContext([]byte("[A]"), nil)
	if !MatchLiteral(ctx, NewLiteralFold("[a]")) || MatchLiteral(ctx, NewLiteralFold("{a}")) {
		t.Errorf("folding touched non-letters")
	}
}
