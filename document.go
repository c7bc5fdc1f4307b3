package ped

import "strings"

// Watcher is notified after every mutation with the half-open byte
// range [start, end) that changed.
type Watcher func(start, end Location)

// Document is a piece-table buffer: a chain bracketed by two permanently
// empty sentinel pieces, a point, and a linked journal of Edits that
// supports undo/redo and coalesces adjacent mutations.
type Document struct {
	start, end Piece
	point      Location
	edit       *Edit
	dirty      bool
	watchers   []Watcher
}

// NewDocument returns a Document whose initial contents are s.
func NewDocument(s string) *Document {
	d := &Document{}
	d.start = newPrimary("", true)
	d.end = newPrimary("", true)
	d.reset(s)
	return d
}

func (d *Document) reset(s string) {
	Link(d.start, d.end)
	var ins *Primary
	if s != "" {
		ins = newPrimary(s, false)
	}
	d.edit = newEdit(nil, d.start, d.end, nil, ins, nil)
	d.SetPointStart()
}

// SetPointStart moves the point to the first byte of the document.
func (d *Document) SetPointStart() *Document {
	d.point = Location{d.start.Next(), 0}
	return d
}

// SetPointEnd moves the point to the end of the document.
func (d *Document) SetPointEnd() *Document {
	d.point = Location{d.end, 0}
	return d
}

// GetStart returns the location of the first byte of the document.
func (d *Document) GetStart() Location { return Location{d.start.Next(), 0} }

// GetEnd returns the location just past the last byte of the document.
func (d *Document) GetEnd() Location { return Location{d.end, 0} }

// AtStart reports whether the point is at the start of the document.
func (d *Document) AtStart() bool {
	return d.point.Piece == d.start.Next() && d.point.Offset == 0
}

// AtEnd reports whether the point is at the end of the document.
func (d *Document) AtEnd() bool {
	return d.point.Piece == d.end
}

func (d *Document) isEnd(loc Location) bool   { return loc.Piece == d.end }
func (d *Document) isStart(loc Location) bool { return loc.Piece == d.start.Next() && loc.Offset == 0 }

// GetPoint returns the current point.
func (d *Document) GetPoint() Location { return d.point }

// SetPoint moves the point to an arbitrary location (the caller is
// responsible for it having come from this document's chain).
func (d *Document) SetPoint(loc Location) *Document {
	d.point = loc
	return d
}

// MovePoint shifts the point by delta bytes, clamping at either end.
func (d *Document) MovePoint(delta int) *Document {
	d.point = d.point.Move(delta)
	return d
}

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool { return d.dirty }

// ClearDirty resets the dirty flag, typically after a successful save.
func (d *Document) ClearDirty() { d.dirty = false }

// HasUndo reports whether Undo would do anything.
func (d *Document) HasUndo() bool { return d.edit.prev != nil }

// HasRedo reports whether Redo would do anything.
func (d *Document) HasRedo() bool { return d.edit.next != nil }

// Watch registers fn to be called after every mutation.
func (d *Document) Watch(fn Watcher) {
	d.watchers = append(d.watchers, fn)
}

func (d *Document) notify(start, end Location) {
	d.dirty = true
	for _, w := range d.watchers {
		w(start, end)
	}
}

// GetData returns the entire document contents.
func (d *Document) GetData() string {
	return SpanData(d.GetStart(), d.GetEnd())
}

// Len returns the length of the document in bytes.
func (d *Document) Len() int { return len(d.GetData()) }

// GetChar returns the byte at the point, or 0 at end of document.
func (d *Document) GetChar() byte {
	data := d.point.Piece.Data()
	if d.point.Offset < len(data) {
		return data[d.point.Offset]
	}
	return 0
}

// NextChar returns the byte at the point and advances the point by one.
func (d *Document) NextChar() byte {
	c := d.GetChar()
	d.MovePoint(1)
	return c
}

// PrevChar moves the point back by one and returns the byte there.
func (d *Document) PrevChar() byte {
	d.MovePoint(-1)
	return d.GetChar()
}

// FindCharForward advances the point to the next byte in set, stopping
// at end of document. Reports whether a match was found.
func (d *Document) FindCharForward(set string) bool {
	match := false
	for !match && !d.AtEnd() {
		match = strings.IndexByte(set, d.NextChar()) >= 0
	}
	if match {
		d.MovePoint(-1)
	}
	return match
}

// FindNotCharForward advances the point to the next byte not in set.
func (d *Document) FindNotCharForward(set string) bool {
	match := false
	for !match && !d.AtEnd() {
		match = strings.IndexByte(set, d.NextChar()) < 0
	}
	if match {
		d.MovePoint(-1)
	}
	return match
}

// FindCharBackward retreats the point to the previous byte in set,
// stopping at start of document.
func (d *Document) FindCharBackward(set string) bool {
	match := false
	for !match && !d.AtStart() {
		match = strings.IndexByte(set, d.PrevChar()) >= 0
	}
	if match {
		d.MovePoint(1)
	}
	return match
}

// FindNotCharBackward retreats the point to the previous byte not in set.
func (d *Document) FindNotCharBackward(set string) bool {
	match := false
	for !match && !d.AtStart() {
		match = strings.IndexByte(set, d.PrevChar()) < 0
	}
	if match {
		d.MovePoint(1)
	}
	return match
}

// FindForward searches forward from just after the point for pattern,
// leaving the point at the start of the match on success, or at end of
// document on failure. Starting past the point keeps repeated calls
// (isearch's find-next) advancing instead of re-finding the match the
// point already sits on.
func (d *Document) FindForward(pattern string, mode MatchMode) bool {
	if pattern == "" {
		panic("ped: FindForward requires a non-empty pattern")
	}
	candidate := d.GetPoint().Move(1)
	for !d.isEnd(candidate) {
		d.SetPoint(candidate)
		if d.tryMatch(pattern, mode) {
			d.SetPoint(candidate)
			return true
		}
		candidate = candidate.Move(1)
	}
	d.SetPoint(candidate)
	return false
}

// FindBackward searches backward from the point for pattern, leaving
// the point at the start of the match on success, or at start of
// document on failure.
func (d *Document) FindBackward(pattern string, mode MatchMode) bool {
	if pattern == "" {
		panic("ped: FindBackward requires a non-empty pattern")
	}
	if d.GetPoint().Position() <= len(pattern) {
		d.SetPointStart()
		return false
	}
	candidate := d.GetPoint().Move(-len(pattern))
	for {
		d.SetPoint(candidate)
		if d.tryMatch(pattern, mode) {
			d.SetPoint(candidate)
			return true
		}
		if d.isStart(candidate) {
			d.SetPoint(candidate)
			return false
		}
		candidate = candidate.Move(-1)
	}
}

// tryMatch compares pattern against the bytes starting at the point,
// consuming them via NextChar. The point is left mid-comparison on
// failure; callers always reset it afterward.
func (d *Document) tryMatch(pattern string, mode MatchMode) bool {
	for i := 0; i < len(pattern); i++ {
		if !isCharMatch(pattern[i], d.NextChar(), mode) {
			return false
		}
	}
	return true
}

// Insert splices s into the document at the point.
func (d *Document) Insert(s string) *Document {
	if s == "" {
		return d
	}
	d.edit = d.edit.MergeOrAppend(d.point, 0, s)
	d.SetPoint(d.edit.End())
	d.notify(d.edit.Start(), d.edit.End())
	return d
}

// Delete removes n bytes from the document: forward if n > 0, backward
// if n < 0, relative to the point.
func (d *Document) Delete(n int) *Document {
	if n == 0 {
		return d
	}
	d.edit = d.edit.MergeOrAppend(d.point, n, "")
	d.SetPoint(d.edit.End())
	d.notify(d.edit.Start(), d.edit.End())
	return d
}

// Replace deletes len(s) bytes forward from the point and inserts s in
// their place, as a single coalescable edit.
func (d *Document) Replace(s string) *Document {
	if s == "" {
		return d
	}
	d.edit = d.edit.MergeOrAppend(d.point, len(s), s)
	d.SetPoint(d.edit.End())
	d.notify(d.edit.Start(), d.edit.End())
	return d
}

// Undo reverts the most recent edit, if any, and moves the point to
// where it lands.
func (d *Document) Undo() *Document {
	if d.edit.prev != nil {
		undone := d.edit
		d.SetPoint(undone.Undo())
		d.edit = undone.prev
		d.notify(undone.Start(), undone.End())
	}
	return d
}

// Redo reapplies the most recently undone edit, if any.
func (d *Document) Redo() *Document {
	if d.edit.next != nil {
		d.edit = d.edit.next
		d.SetPoint(d.edit.Redo())
		d.notify(d.edit.Start(), d.edit.End())
	}
	return d
}

// Squash collapses the entire undo/redo journal into a single fresh
// edit holding the document's current contents, preserving the point's
// absolute byte offset. Used to bound memory after a long editing
// session once undo history is no longer needed.
func (d *Document) Squash() *Document {
	data := d.GetData()
	offset := d.GetPoint().Position()
	d.reset(data)
	d.SetPointStart().MovePoint(offset)
	d.dirty = true
	d.notify(d.GetStart(), d.GetEnd())
	return d
}

// PieceCounts returns (chain length up to the point, chain length up
// to the end of the document) — a cheap proxy for fragmentation used
// in status lines and tests.
func (d *Document) PieceCounts() (int, int) {
	return d.point.ChainLength(), d.GetEnd().ChainLength()
}

// EditCounts returns the length of the journal from its origin up to
// and including the current tip; redo-able edits past the tip are not
// counted.
func (d *Document) EditCounts() int {
	return d.edit.chainLength()
}

// String renders the document with a '^' marking the point and '|'
// separating pieces, for debugging and test assertions.
func (d *Document) String() string {
	var b strings.Builder
	for p := d.start.Next(); p != nil; p = p.Next() {
		b.WriteByte('|')
		if d.point.Piece == p {
			b.WriteString(p.Data()[:d.point.Offset])
			b.WriteByte('^')
			b.WriteString(p.Data()[d.point.Offset:])
		} else {
			b.WriteString(p.Data())
		}
	}
	return b.String()
}
