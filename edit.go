package ped

// Edit is one entry in the document's undo/redo journal: it replaces a
// run of pieces (the "excluded run", bounded by before/after which are
// never themselves touched) with up to three new pieces — a left
// remainder (pre), new content (ins), and a right remainder (post).
//
// The journal is a doubly-linked list, not an array: prev/next chain
// Edits together, and undo/redo simply swap which run (the new pieces
// or the original excluded run) sits live between before and after.
type Edit struct {
	before, after Piece
	pre, post     *Secondary
	ins           *Primary

	prev, next *Edit
	applied    bool

	// altNext/altPrev record, at all times, what before.Next()/after.Prev()
	// would be in the *other* state (applied vs. undone). swap() toggles
	// between them.
	altNext, altPrev Piece
}

// createEdit builds and immediately applies a new Edit representing a
// deletion of `del` bytes (negative deletes backward from pt, positive
// deletes forward) together with an insertion of `insert` at pt, then
// links it onto the journal after prevEdit.
func createEdit(prevEdit *Edit, pt Location, del int, insert string) *Edit {
	var before, after Piece
	var pre, post *Secondary

	if del == 0 {
		if pt.Offset != 0 {
			pre = lsplit(pt.Piece, pt.Offset)
			post = rsplit(pt.Piece, pt.Offset)
			before, after = pt.Piece.Prev(), pt.Piece.Next()
		} else {
			before, after = pt.Piece.Prev(), pt.Piece
		}
	} else {
		loc := pt.Move(del)
		left, right := pt, loc
		if del < 0 {
			left, right = loc, pt
		}
		if left.Offset != 0 {
			pre = lsplit(left.Piece, left.Offset)
		}
		if right.Offset != 0 {
			post = rsplit(right.Piece, right.Offset)
			after = right.Piece.Next()
		} else {
			after = right.Piece
		}
		before = left.Piece.Prev()
	}

	var ins *Primary
	if insert != "" {
		ins = newPrimary(insert, false)
	}

	e := newEdit(prevEdit, before, after, pre, ins, post)
	if prevEdit != nil {
		prevEdit.next = e
	}
	return e
}

func newEdit(prevEdit *Edit, before, after Piece, pre *Secondary, ins *Primary, post *Secondary) *Edit {
	if before == nil || after == nil {
		panic("ped: edit requires both boundary pieces")
	}
	newRunLen := 0
	if pre != nil {
		newRunLen += pre.Len()
	}
	if post != nil {
		newRunLen += post.Len()
	}

	e := &Edit{before: before, after: after, pre: pre, ins: ins, post: post, prev: prevEdit}

	// Record the run this edit replaces, before we relink anything.
	e.altNext = before.Next()
	e.altPrev = after.Prev()

	if d, ok := (Location{after, 0}).DistanceAfter(Location{e.altNext, 0}); !ok || d < newRunLen {
		panic("ped: edit excludes a run shorter than its replacement")
	}

	chain := make([]Piece, 0, 5)
	chain = append(chain, before)
	if pre != nil {
		chain = append(chain, pre)
	}
	if ins != nil {
		chain = append(chain, ins)
	}
	if post != nil {
		chain = append(chain, post)
	}
	chain = append(chain, after)
	for i := 0; i+1 < len(chain); i++ {
		Link(chain[i], chain[i+1])
	}
	e.applied = true
	return e
}

// swap toggles the edit between applied (new pieces live) and undone
// (original excluded run live) by exchanging the two link pairs that
// bound it.
func (e *Edit) swap() {
	newNext, newPrev := e.altNext, e.altPrev
	e.altNext, e.altPrev = e.before.Next(), e.after.Prev()
	e.before.SetNext(newNext)
	newNext.SetPrev(e.before)
	e.after.SetPrev(newPrev)
	newPrev.SetNext(e.after)
	e.applied = !e.applied
}

// Undo reverts the edit and returns the location the point should move
// to: the equivalent offset the edit's end-of-change now maps onto in
// the restored run.
func (e *Edit) Undo() Location {
	if !e.applied {
		panic("ped: undo of an edit that is not applied")
	}
	e.swap()
	return e.End()
}

// Redo reapplies the edit and returns its end-of-change location.
func (e *Edit) Redo() Location {
	if e.applied {
		panic("ped: redo of an edit that is already applied")
	}
	e.swap()
	return e.End()
}

// Start returns the location right after pre where this edit's changed
// content begins, computed by walking backward from `after` across
// whichever of post/ins exist — which works identically whether the
// edit is currently applied or undone, since Move follows whatever
// chain is live right now. pre itself is untouched context, not part
// of what changed, so it is not backed out.
func (e *Edit) Start() Location {
	loc := Location{e.after, 0}
	if e.post != nil {
		loc = loc.Move(-e.post.Len())
	}
	if e.ins != nil {
		loc = loc.Move(-e.ins.Len())
	}
	return loc
}

// End returns the location where the point should land after applying
// (or undoing) the edit: the start of post if it exists, else the
// start of after.
func (e *Edit) End() Location {
	loc := Location{e.after, 0}
	if e.post != nil {
		loc = loc.Move(-e.post.Len())
	}
	return loc
}

func (e *Edit) chainLength() int {
	n := 0
	for ; e != nil; e = e.prev {
		n++
	}
	return n
}

// MergeOrAppend is the coalescing entry point: if pt is exactly where
// this edit (the journal tip) left the point, and the new mutation is
// compatible with the tip's current shape, it trims/extends the tip's
// own pieces in place. Otherwise it appends a fresh Edit.
func (e *Edit) MergeOrAppend(pt Location, del int, insert string) *Edit {
	if e.prev == nil || pt != e.End() {
		return createEdit(e, pt, del, insert)
	}

	if del != 0 {
		if del > 0 {
			if e.post == nil || e.post.Len() <= del {
				return createEdit(e, pt, del, insert)
			}
			e.post.trim(del, 0)
		} else {
			n := -del
			switch {
			case e.ins != nil && e.ins.Len() > n:
				e.ins.trim(-n)
			case e.ins == nil && e.pre != nil && e.pre.Len() > n:
				e.pre.trim(0, n)
			default:
				return createEdit(e, pt, del, insert)
			}
		}
	}

	if insert != "" {
		if e.ins != nil {
			e.ins.extend(insert)
		} else {
			e.ins = newPrimary(insert, false)
			var left Piece = e.before
			if e.pre != nil {
				left = e.pre
			}
			var right Piece = e.after
			if e.post != nil {
				right = e.post
			}
			Link(left, e.ins)
			Link(e.ins, right)
		}
	}

	return e
}
