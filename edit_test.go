package ped

import "testing"

func TestEditApplyAndUndoRestoresChain(t *testing.T) {
	doc := NewDocument("the quick brown fox")
	doc.SetPointStart().MovePoint(4)
	before := doc.String()
	doc.Insert("very ")
	if got := doc.GetData(); got != "the very quick brown fox" {
		t.Fatalf("after insert: %q", got)
	}
	doc.Undo()
	if got := doc.GetData(); got != "the quick brown fox" {
		t.Fatalf("after undo: %q", got)
	}
	if got := doc.String(); got != before {
		t.Fatalf("undo did not restore point: got %q want %q", got, before)
	}
}

func TestEditUndoRedoRoundTrip(t *testing.T) {
	doc := NewDocument("the quick brown fox")
	doc.SetPointStart().MovePoint(4)
	doc.Insert("very ")
	afterInsert := doc.String()

	doc.Undo()
	doc.Redo()
	if got := doc.String(); got != afterInsert {
		t.Fatalf("undo;redo changed state: got %q want %q", got, afterInsert)
	}

	doc.Redo() // no-op, nothing to redo
	beforeUndo := doc.String()
	doc.Undo()
	doc.Redo()
	if got := doc.String(); got != beforeUndo {
		t.Fatalf("redo;undo round trip mismatch: got %q want %q", got, beforeUndo)
	}
}

func TestEditOfAlreadyUndoneEditPanics(t *testing.T) {
	doc := NewDocument("abc")
	doc.Insert("x")
	e := doc.edit
	e.Undo()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic undoing an already-undone edit")
		}
	}()
	e.Undo()
}

func TestCoalescedInsert(t *testing.T) {
	doc := NewDocument("the quick brown fox")
	doc.SetPointStart().MovePoint(9)
	doc.Insert(" white")
	doc.Insert(" sly")
	if got := doc.GetData(); got != "the quick white sly brown fox" {
		t.Fatalf("coalesced insert: got %q", got)
	}
	if got := doc.EditCounts(); got != 2 {
		t.Fatalf("journal tip length = %d, want 2 (sentinel + one)", got)
	}
}

func TestCoalescedDeletes(t *testing.T) {
	doc := NewDocument("the quick brown fox")
	doc.SetPointStart().MovePoint(9)
	doc.Delete(-1)
	doc.Delete(-1)
	if got := doc.GetData(); got != "the qui brown fox" {
		t.Fatalf("coalesced deletes: got %q", got)
	}
	if got := doc.EditCounts(); got != 2 {
		t.Fatalf("journal tip length = %d, want 2", got)
	}
}
