package pegrt

import (
	"fmt"
	"strings"
)

type resultKind uint8

const (
	kindNode resultKind = iota
	kindFailed
	kindNil
	kindReleased
)

var (
	// Failed is returned by every primitive and rule that did not match.
	// It is shared, immutable and never released.
	Failed = &Result{kind: kindFailed}

	// Nil is returned by successful matches that produce no node, such as
	// lookahead predicates and absent optional elements.
	// It is shared, immutable and never released.
	Nil = &Result{kind: kindNil}
)

// Result is a node of the parse tree: the byte range [Begin, End) of the
// input plus the ordered child nodes it owns.
//
// Nodes are allocated by a Context and must be released with Free once the
// owner is done with them, unless they were adopted as children of another
// node. Releasing a node releases its whole subtree.
type Result struct {
	kind     resultKind
	begin    int
	end      int
	children []*Result
	owner    *allocator
}

// Per-context node accounting and recycling.
type allocator struct {
	limit int // zero or negative for unlimited
	live  int
	free  []*Result
}

func (a *allocator) alloc(begin, end, count int) (*Result, error) {
	if a.limit > 0 && a.live >= a.limit {
		return nil, ErrNodeLimit
	}

	var r *Result
	if n := len(a.free); n > 0 {
		r = a.free[n-1]
		a.free[n-1] = nil
		a.free = a.free[:n-1]
	} else {
		r = &Result{owner: a}
	}

	r.kind = kindNode
	r.begin = begin
	r.end = end
	switch {
	case count == 0:
		r.children = r.children[:0]
	case cap(r.children) >= count:
		r.children = r.children[:count]
		for i := range r.children {
			r.children[i] = nil
		}
	default:
		r.children = make([]*Result, count)
	}
	a.live++
	return r, nil
}

func (a *allocator) release(r *Result) {
	for i := range r.children {
		r.children[i] = nil
	}
	r.children = r.children[:0]
	r.kind = kindReleased
	a.live--
	a.free = append(a.free, r)
}

// FreeResult releases r and all of its descendants.
// It is a no-op for nil, Failed and Nil.
func FreeResult(r *Result) {
	r.Free()
}

// Free releases the node and all of its descendants.
// It is a no-op for nil, Failed and Nil, and panics on a node that was
// already released.
func (r *Result) Free() {
	if r == nil || r.kind == kindFailed || r.kind == kindNil {
		return
	}
	if r.kind == kindReleased {
		panic(errorDoubleFree)
	}
	for _, child := range r.children {
		child.Free()
	}
	r.owner.release(r)
}

// IsFailed tells if r is the Failed sentinel.
func (r *Result) IsFailed() bool {
	return r == Failed
}

// IsNil tells if r is the Nil sentinel.
func (r *Result) IsNil() bool {
	return r == Nil
}

// IsLeaf tells if r is an allocated node without children.
func (r *Result) IsLeaf() bool {
	return r.kind == kindNode && len(r.children) == 0
}

// Begin returns the offset of the first byte covered by the node.
func (r *Result) Begin() int { return r.begin }

// End returns the offset just past the last byte covered by the node.
func (r *Result) End() int { return r.end }

// Len returns the number of bytes covered by the node.
func (r *Result) Len() int { return r.end - r.begin }

// Children returns the owned child nodes in grammar order.
// The slice must not be modified.
func (r *Result) Children() []*Result { return r.children }

// Child returns the i-th child node.
func (r *Result) Child(i int) *Result { return r.children[i] }

// Text returns the bytes of input covered by the node.
func (r *Result) Text(input []byte) []byte {
	return input[r.begin:r.end]
}

// set stores an adopted child, checking ownership rules.
func (r *Result) set(i int, child *Result) error {
	switch {
	case child == nil:
		return errorNilChild
	case child == Failed:
		return errorFailedChild
	}
	r.children[i] = child
	return nil
}

func (r *Result) String() string {
	switch r.kind {
	case kindFailed:
		return "FAILED"
	case kindNil:
		return "NIL"
	case kindReleased:
		return "RELEASED"
	}
	if len(r.children) == 0 {
		return fmt.Sprintf("[%d,%d)", r.begin, r.end)
	}
	strs := make([]string, len(r.children))
	for i := range r.children {
		strs[i] = fmt.Sprint(r.children[i])
	}
	return fmt.Sprintf("[%d,%d)(%s)", r.begin, r.end, strings.Join(strs, " "))
}
