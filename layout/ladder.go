package layout

import "github.com/gridtext/ped"

// ladderCapacity bounds the BoL cache so a rescue after an edit costs at
// most this many rung reconstructions, not the whole document.
const ladderCapacity = 48

// Formatter wraps a Document with line-wrapping parameters (cols, tab,
// rungs) and a bounded cache — the "ladder" — of Locations known to
// begin a wrapped display row.
type Formatter struct {
	Doc   *ped.Document
	Cols  int
	Tab   int
	Rungs int

	ladder []ped.Location
}

// NewFormatter returns a Formatter and registers its cache-rescue
// watcher on doc.
func NewFormatter(doc *ped.Document, cols, tab, rungs int) *Formatter {
	f := &Formatter{Doc: doc, Cols: cols, Tab: tab, Rungs: rungs}
	doc.Watch(f.ChangeHandler)
	return f
}

// FormatLine formats the row starting at the document's current point.
func (f *Formatter) FormatLine() ([]byte, []int) {
	return FormatLine(f.Doc, f.Cols, f.Tab)
}

func (f *Formatter) pushRung(loc ped.Location) {
	f.ladder = append(f.ladder, loc)
	if len(f.ladder) > ladderCapacity {
		f.ladder = f.ladder[1:]
	}
}

func (f *Formatter) bracketed(pt ped.Location) bool {
	if len(f.ladder) == 0 {
		return false
	}
	first, last := f.ladder[0], f.ladder[len(f.ladder)-1]
	return first.Position() <= pt.Position() && pt.Position() <= last.Position()
}

func (f *Formatter) rungIndex(loc ped.Location) int {
	for i, r := range f.ladder {
		if r == loc {
			return i
		}
	}
	return -1
}

// LadderPoint ensures the ladder strictly brackets the point with
// approximately Rungs rungs preceding it. If the cache doesn't already
// bracket the point, it seeks backward Rungs*Cols bytes, then to the
// preceding newline, and rebuilds forward from there.
func (f *Formatter) LadderPoint() {
	pt := f.Doc.GetPoint()
	if f.bracketed(pt) {
		return
	}

	f.Doc.SetPoint(pt)
	f.Doc.MovePoint(-f.Rungs * f.Cols)
	f.Doc.FindCharBackward("\n")

	f.ladder = f.ladder[:0]
	f.pushRung(f.Doc.GetPoint())
	for !f.bracketed(pt) && !f.Doc.AtEnd() {
		f.BoLToNextBoL()
	}
	f.Doc.SetPoint(pt)
}

// ClampToBoL moves the point back to the start of its current display
// row. A no-op if the point already is a rung, or sits at the very
// start or end of the document.
func (f *Formatter) ClampToBoL() {
	pt := f.Doc.GetPoint()
	if f.Doc.AtStart() || f.Doc.AtEnd() || f.rungIndex(pt) >= 0 {
		return
	}
	f.LadderPoint()
	best := -1
	for i, r := range f.ladder {
		if r.Position() <= pt.Position() {
			best = i
		} else {
			break
		}
	}
	if best >= 0 {
		f.Doc.SetPoint(f.ladder[best])
	}
}

// BoLToNextBoL moves the point to the start of the next display row. If
// the point is a known rung with a successor already cached, it jumps
// directly; otherwise it formats (and discards) the current row, which
// leaves the point at the next row's start, and caches that as a rung.
func (f *Formatter) BoLToNextBoL() {
	pt := f.Doc.GetPoint()
	if i := f.rungIndex(pt); i >= 0 && i+1 < len(f.ladder) {
		f.Doc.SetPoint(f.ladder[i+1])
		return
	}
	f.FormatLine()
	f.pushRung(f.Doc.GetPoint())
}

// BoLToPrevBoL moves the point to the start of the previous display
// row. A no-op at start of document.
func (f *Formatter) BoLToPrevBoL() {
	if f.Doc.AtStart() {
		return
	}
	pt := f.Doc.GetPoint()
	if i := f.rungIndex(pt); i > 0 {
		f.Doc.SetPoint(f.ladder[i-1])
		return
	}
	f.ClampToBoL()
	pt = f.Doc.GetPoint()
	if i := f.rungIndex(pt); i > 0 {
		f.Doc.SetPoint(f.ladder[i-1])
	}
}

// ChangeHandler is the Document watcher that keeps the ladder usable
// after an edit. Detached pieces may no longer be reachable from the
// live chain, so rungs are not reused directly; instead the cache is
// rebuilt using byte distances relative to changeStart, which is always
// a location on the live chain.
func (f *Formatter) ChangeHandler(changeStart, _ ped.Location) {
	if len(f.ladder) == 0 {
		return
	}
	first := f.ladder[0]
	last := f.ladder[len(f.ladder)-1]

	if d := changeStart.Position() - first.Position(); d < f.Cols {
		f.ladder = nil
		return
	}
	if d, ok := changeStart.DistanceBefore(last); ok && d > f.Rungs*f.Cols {
		f.ladder = nil
		return
	}

	old := f.ladder
	f.ladder = nil
	anchorDist := changeStart.Position() - first.Position()
	anchor := changeStart.Move(-anchorDist)
	f.pushRung(anchor)

	prev := first
	cur := anchor
	for _, r := range old[1:] {
		dist, ok := prev.DistanceBefore(r)
		if !ok {
			break
		}
		next := cur.Move(dist)
		if d, ok2 := next.DistanceBefore(changeStart); ok2 && d < f.Cols {
			break
		}
		if d, ok2 := changeStart.DistanceBefore(next); ok2 && d < f.Cols {
			break
		}
		f.pushRung(next)
		prev, cur = r, next
	}
}
