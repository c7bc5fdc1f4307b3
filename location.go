package ped

// Location is a stable handle into the chain: a piece together with a
// byte offset inside it. Locations stay valid across edits to other
// parts of the chain because they track piece identity rather than a
// raw document offset; only edits that touch the piece a Location
// points into can invalidate it.
type Location struct {
	Piece  Piece
	Offset int
}

// Position walks the chain back to the start sentinel and returns the
// absolute byte offset of the location. O(chain length); callers that
// need it often (status lines, ladder bootstrapping) are expected to
// pay for it rarely.
func (loc Location) Position() int {
	n := loc.Offset
	for p := loc.Piece.Prev(); p != nil; p = p.Prev() {
		n += p.Len()
	}
	return n
}

// ChainLength walks back to the start of the chain and counts pieces
// visited, including loc's own. Used for piece/edit-count diagnostics.
func (loc Location) ChainLength() int {
	n := 0
	for p := loc.Piece; p != nil; p = p.Prev() {
		n++
	}
	return n
}

// Move returns the location delta bytes forward (or, if delta is
// negative, backward) from loc, stepping across piece boundaries as
// needed. Running off either end of the chain clamps to that end
// rather than panicking.
// A backward overrun stops at offset 0 of the first piece; if that
// piece is a zero-length leading sentinel (as Document's always is),
// the result steps forward onto the first real piece.
func (loc Location) Move(delta int) Location {
	if delta == 0 {
		return loc
	}
	p := loc.Piece
	offset := loc.Offset + delta
	if offset > 0 {
		for p.Len() <= offset && p.Next() != nil {
			offset -= p.Len()
			p = p.Next()
		}
		if p.Next() == nil {
			offset = 0
		}
	} else {
		for offset < 0 && p.Prev() != nil {
			p = p.Prev()
			offset += p.Len()
		}
		if offset < 0 {
			offset = 0
			if p.Len() == 0 && p.Next() != nil {
				p = p.Next()
			}
		}
	}
	return Location{p, offset}
}

// DistanceAfter reports how many bytes loc sits after other, provided
// loc can reach other by walking backward (Prev) through the chain.
// The second return is false when no such backward path exists — the
// two locations may belong to unrelated, currently-detached pieces.
func (loc Location) DistanceAfter(other Location) (int, bool) {
	n := loc.Offset - other.Offset
	p := loc.Piece
	for p != other.Piece {
		pr := p.Prev()
		if pr == nil {
			return 0, false
		}
		n += pr.Len()
		p = pr
	}
	if n < 0 {
		return 0, false
	}
	return n, true
}

// DistanceBefore reports how many bytes loc sits before other,
// provided loc can reach other by walking forward (Next). The second
// return is false when no such forward path exists.
func (loc Location) DistanceBefore(other Location) (int, bool) {
	n := other.Offset - loc.Offset
	p := loc.Piece
	for p != other.Piece {
		n += p.Len()
		nx := p.Next()
		if nx == nil {
			return 0, false
		}
		p = nx
	}
	if n < 0 {
		return 0, false
	}
	return n, true
}

// Within reports whether loc lies in the half-open span [a, b): a must
// reach loc by walking forward, and loc must reach b by walking
// forward, with loc != b.
func (loc Location) Within(a, b Location) bool {
	if loc == b {
		return false
	}
	if _, ok := a.DistanceBefore(loc); !ok {
		return false
	}
	_, ok := loc.DistanceBefore(b)
	return ok
}

// SpanLength returns the byte length of the half-open span [start, end).
func SpanLength(start, end Location) int {
	n, ok := start.DistanceBefore(end)
	if !ok {
		panic("ped: span endpoints are not ordered on the same chain")
	}
	return n
}

// SpanContains reports whether loc lies within [start, end).
func SpanContains(loc, start, end Location) bool {
	return loc.Within(start, end)
}

// SpanData concatenates the bytes of every piece in [start, end).
func SpanData(start, end Location) string {
	data := make([]byte, 0, 64)
	p, offset := start.Piece, start.Offset
	for p != end.Piece {
		data = append(data, p.Data()[offset:]...)
		offset = 0
		nx := p.Next()
		if nx == nil {
			panic("ped: span endpoints are not ordered on the same chain")
		}
		p = nx
	}
	data = append(data, p.Data()[offset:end.Offset]...)
	return string(data)
}
