package ped

import (
	"math/rand"
	"strings"
	"testing"
)

func TestDocumentRoundTripGetData(t *testing.T) {
	const text = "the quick brown fox jumps over the lazy dog"
	doc := NewDocument(text)
	doc.SetPointStart().MovePoint(10)
	doc.Insert("red ")
	doc.SetPointStart().MovePoint(30)
	doc.Delete(5)
	if got, want := doc.GetData(), "the quick red brown fox jumps the lazy dog"; got != want {
		t.Fatalf("GetData() = %q, want %q", got, want)
	}
}

func TestUndoRedoSequenceScenario(t *testing.T) {
	doc := NewDocument("the quick brown fox")
	doc.SetPointStart().MovePoint(4)
	doc.Insert("fastest ")
	doc.MovePoint(-4)
	doc.Delete(9)
	if got, want := doc.GetData(), "the fast brown fox"; got != want {
		t.Fatalf("after insert+move+delete: got %q want %q", got, want)
	}

	doc.Undo()
	if got, want := doc.GetData(), "the fastest quick brown fox"; got != want {
		t.Fatalf("after first undo: got %q want %q", got, want)
	}
	if got, want := len(doc.GetData()), 27; got != want {
		t.Fatalf("after first undo length = %d, want %d", got, want)
	}

	doc.Undo()
	if got, want := doc.GetData(), "the quick brown fox"; got != want {
		t.Fatalf("after second undo: got %q want %q", got, want)
	}
	if got, want := len(doc.GetData()), 19; got != want {
		t.Fatalf("after second undo length = %d, want %d", got, want)
	}

	doc.Redo()
	doc.Redo()
	if got, want := doc.GetData(), "the fast brown fox"; got != want {
		t.Fatalf("after redo;redo: got %q want %q", got, want)
	}
	if got, want := len(doc.GetData()), 18; got != want {
		t.Fatalf("after redo;redo length = %d, want %d", got, want)
	}
}

func TestFindForwardScenario(t *testing.T) {
	// Build a fixture where "Alice" starts at bytes 5, 265 and 656,
	// mirroring the public-domain fixture's known offsets without
	// depending on its exact bytes.
	gap := func(n int) string { return strings.Repeat("x", n) }
	text := gap(5) + "Alice" + gap(265-10) + "Alice" + gap(656-270) + "Alice" + gap(40)
	doc := NewDocument(text)

	if !doc.FindForward("Alice", ExactCase) || doc.GetPoint().Position() != 5 {
		t.Fatalf("first match at %d, want 5", doc.GetPoint().Position())
	}
	if !doc.FindForward("Alice", ExactCase) || doc.GetPoint().Position() != 265 {
		t.Fatalf("second match at %d, want 265", doc.GetPoint().Position())
	}
	if !doc.FindForward("Alice", ExactCase) || doc.GetPoint().Position() != 656 {
		t.Fatalf("third match at %d, want 656", doc.GetPoint().Position())
	}
	if doc.FindForward("Alice", ExactCase) {
		t.Fatal("expected no fourth match")
	}
	if !doc.AtEnd() {
		t.Fatal("failed search should leave point at end")
	}
}

func TestMoveClampsAtDocumentEnds(t *testing.T) {
	doc := NewDocument("short")
	doc.SetPointStart().MovePoint(-1000)
	if !doc.AtStart() {
		t.Fatal("large negative move should clamp to start")
	}
	doc.MovePoint(1000)
	if !doc.AtEnd() {
		t.Fatal("large positive move should clamp to end")
	}
}

func TestFindCharForwardAtEnd(t *testing.T) {
	doc := NewDocument("abc")
	doc.SetPointEnd()
	if doc.FindCharForward("xyz") {
		t.Fatal("expected no match at end of document")
	}
	if !doc.AtEnd() {
		t.Fatal("find_char_forward at end must leave point at end")
	}
}

func TestFindBackwardPatternLongerThanPosition(t *testing.T) {
	doc := NewDocument("hi")
	doc.SetPointEnd()
	if doc.FindBackward("much too long", ExactCase) {
		t.Fatal("expected no match")
	}
	if !doc.AtStart() {
		t.Fatal("find_backward with |pattern| >= position() must leave point at start")
	}
}

func TestSquashPreservesPointByByteOffset(t *testing.T) {
	doc := NewDocument("the quick brown fox")
	doc.SetPointStart().MovePoint(6)
	doc.Insert("very ")
	if got := doc.GetPoint().Position(); got != 11 {
		t.Fatalf("point before squash = %d, want 11", got)
	}
	doc.Squash()
	if got := doc.GetPoint().Position(); got != 11 {
		t.Fatalf("point after squash = %d, want 11", got)
	}
	if doc.HasUndo() {
		t.Fatal("squash should reset the undo journal")
	}
}

func randomASCII(rng *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz ,."
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

// TestRandomSoak mirrors the reference fuzz test: thousands of small
// mutations clustered near either end of the document, then a full
// undo, with two properties checked: the journal coalesces (far fewer
// edits than mutations) and the full undo round-trips exactly.
func TestRandomSoak(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	initial := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 23)[:1024]
	doc := NewDocument(initial)

	const n = 8192
	for i := 0; i < n; i++ {
		length := doc.Len()
		window := 64
		if window > length+1 {
			window = length + 1
		}
		var pos int
		if rng.Intn(2) == 0 {
			pos = rng.Intn(window)
		} else {
			pos = length - rng.Intn(window)
		}
		if pos < 0 {
			pos = 0
		}
		if pos > length {
			pos = length
		}
		doc.SetPointStart().MovePoint(pos)

		switch rng.Intn(3) {
		case 0:
			doc.Insert(randomASCII(rng, 1+rng.Intn(8)))
		case 1:
			maxDel := pos
			if length-pos < maxDel {
				maxDel = length - pos
			}
			if maxDel > 8 {
				maxDel = 8
			}
			if maxDel == 0 {
				continue
			}
			delta := 1 + rng.Intn(maxDel)
			if rng.Intn(2) == 0 {
				delta = -delta
			}
			doc.Delete(delta)
		case 2:
			doc.Replace(randomASCII(rng, 1+rng.Intn(8)))
		}
	}

	if edits := doc.EditCounts(); edits >= n {
		t.Fatalf("journal length %d did not coalesce below %d mutations", edits, n)
	}

	for doc.HasUndo() {
		doc.Undo()
	}
	if got := doc.GetData(); got != initial {
		t.Fatalf("soak round trip mismatch: got %d bytes, want %d", len(got), len(initial))
	}
}
