package pegrt

// Wrap builds the node of a sequence or group whose parts all matched: it
// covers [begin, ctx.Offset()) and adopts children in order.
//
// Ownership of every child passes to the new node. Children must not be
// nil or Failed; Nil stands for an absent optional part. On error the
// children are released.
func Wrap(ctx *Context, begin int, children []*Result) (*Result, error) {
	r, err := ctx.AllocResult(begin, ctx.current.Offset, len(children))
	if err != nil {
		freeAll(children)
		return nil, err
	}
	for i, child := range children {
		if err := r.set(i, child); err != nil {
			r.Free()
			freeAll(children[i+1:])
			return nil, err
		}
	}
	return r, nil
}

func freeAll(results []*Result) {
	for _, r := range results {
		if r != nil && r != Failed {
			r.Free()
		}
	}
}
