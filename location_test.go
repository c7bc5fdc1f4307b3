package ped

import "testing"

// chain3 builds a simple A-B-C primary chain (no sentinels) for location
// arithmetic tests that don't need a full Document.
func chain3(t *testing.T) (a, b, c *Primary) {
	t.Helper()
	a = newPrimary("aaaaa", false) // len 5
	b = newPrimary("bbbbb", false) // len 5
	c = newPrimary("ccccc", false) // len 5
	Link(a, b)
	Link(b, c)
	return
}

func TestLocationPosition(t *testing.T) {
	a, b, c := chain3(t)
	_ = a
	loc := Location{c, 2}
	if got := loc.Position(); got != 12 {
		t.Fatalf("Position() = %d, want 12", got)
	}
	loc = Location{b, 0}
	if got := loc.Position(); got != 5 {
		t.Fatalf("Position() = %d, want 5", got)
	}
}

func TestLocationMoveClampsAtEnds(t *testing.T) {
	a, _, c := chain3(t)
	start := Location{a, 0}
	if got := start.Move(-100); got != (Location{a, 0}) {
		t.Fatalf("Move(-100) = %+v, want clamp to start", got)
	}
	// With an explicit zero-length end sentinel (as Document always has),
	// overrunning the chain lands cleanly on it at offset 0.
	sentinel := newPrimary("", true)
	Link(c, sentinel)
	end := Location{c, 4}
	if got := end.Move(100); got.Piece != Piece(sentinel) || got.Offset != 0 {
		t.Fatalf("Move(+100) = %+v, want sentinel at offset 0", got)
	}
}

func TestLocationMoveCrossesPieces(t *testing.T) {
	a, b, c := chain3(t)
	loc := Location{a, 3}
	got := loc.Move(4) // 2 left in a, then 2 into b
	if got.Piece != Piece(b) || got.Offset != 2 {
		t.Fatalf("Move across boundary = %+v, want (b,2)", got)
	}
	got = Location{c, 1}.Move(-3) // 1 back into b at offset 3
	if got.Piece != Piece(b) || got.Offset != 3 {
		t.Fatalf("Move back across boundary = %+v, want (b,3)", got)
	}
}

func TestDistanceAfterAndBefore(t *testing.T) {
	_, b, c := chain3(t)
	self := Location{c, 2}
	other := Location{b, 1}
	d, ok := self.DistanceAfter(other)
	if !ok || d != 6 {
		t.Fatalf("DistanceAfter = (%d,%v), want (6,true)", d, ok)
	}
	d, ok = other.DistanceBefore(self)
	if !ok || d != 6 {
		t.Fatalf("DistanceBefore = (%d,%v), want (6,true)", d, ok)
	}
	// Reversed relation: other is not after self.
	if _, ok := other.DistanceAfter(self); ok {
		t.Fatal("DistanceAfter should fail when self precedes other")
	}
}

func TestDistanceUnrelatedPieces(t *testing.T) {
	_, _, c := chain3(t)
	orphan := newPrimary("z", false)
	if _, ok := (Location{c, 0}).DistanceAfter(Location{orphan, 0}); ok {
		t.Fatal("DistanceAfter across unrelated pieces should fail")
	}
	if _, ok := (Location{c, 0}).DistanceBefore(Location{orphan, 0}); ok {
		t.Fatal("DistanceBefore across unrelated pieces should fail")
	}
}

func TestWithinHalfOpen(t *testing.T) {
	a, b, c := chain3(t)
	lo := Location{a, 1}
	hi := Location{c, 1}
	if !(Location{b, 0}).Within(lo, hi) {
		t.Fatal("midpoint should be within [lo,hi)")
	}
	if (Location{c, 1}).Within(lo, hi) {
		t.Fatal("hi itself must not be within [lo,hi) — half open")
	}
	if !(Location{a, 1}).Within(lo, hi) {
		t.Fatal("lo itself must be within [lo,hi) — inclusive start")
	}
}

func TestSpanDataAndLength(t *testing.T) {
	a, b, c := chain3(t)
	_ = c
	start := Location{a, 2}
	end := Location{b, 3}
	if got := SpanData(start, end); got != "aaabbb" {
		t.Fatalf("SpanData = %q, want %q", got, "aaabbb")
	}
	if got := SpanLength(start, end); got != 6 {
		t.Fatalf("SpanLength = %d, want 6", got)
	}
}
