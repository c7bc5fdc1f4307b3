package layout

import (
	"strings"
	"testing"

	"github.com/gridtext/ped"
)

func lines(n, width int) string {
	row := strings.Repeat("x", width-1) + "\n"
	return strings.Repeat(row, n)
}

func TestLadderPointBracketsPoint(t *testing.T) {
	doc := ped.NewDocument(lines(20, 10))
	f := NewFormatter(doc, 10, 4, 5)

	doc.SetPointStart().MovePoint(105) // somewhere in the 11th row
	f.LadderPoint()

	if len(f.ladder) == 0 {
		t.Fatal("expected ladder to be populated")
	}
	pt := doc.GetPoint()
	if pt.Position() != 105 {
		t.Fatalf("LadderPoint moved the point: got %d, want 105", pt.Position())
	}
	if !f.bracketed(pt) {
		t.Fatal("point not bracketed by ladder after LadderPoint")
	}
}

func TestBoLToNextBoLAdvancesOneRow(t *testing.T) {
	doc := ped.NewDocument(lines(5, 10))
	f := NewFormatter(doc, 10, 4, 5)

	doc.SetPointStart()
	f.BoLToNextBoL()
	if got := doc.GetPoint().Position(); got != 10 {
		t.Fatalf("after one BoLToNextBoL = %d, want 10", got)
	}
	f.BoLToNextBoL()
	if got := doc.GetPoint().Position(); got != 20 {
		t.Fatalf("after two BoLToNextBoL = %d, want 20", got)
	}

	// Jumping back to a cached rung and forward again should reuse the
	// cache rather than reformat.
	doc.SetPointStart().MovePoint(10)
	f.BoLToNextBoL()
	if got := doc.GetPoint().Position(); got != 20 {
		t.Fatalf("cached BoLToNextBoL = %d, want 20", got)
	}
}

func TestBoLToPrevBoLAtStartIsNoop(t *testing.T) {
	doc := ped.NewDocument(lines(5, 10))
	f := NewFormatter(doc, 10, 4, 5)

	doc.SetPointStart()
	f.BoLToPrevBoL()
	if !doc.AtStart() {
		t.Fatal("BoLToPrevBoL at document start should be a no-op")
	}
}

func TestBoLToPrevBoLReturnsToRowStart(t *testing.T) {
	doc := ped.NewDocument(lines(5, 10))
	f := NewFormatter(doc, 10, 4, 5)

	doc.SetPointStart()
	f.BoLToNextBoL() // rung at 10
	f.BoLToNextBoL() // rung at 20
	f.BoLToPrevBoL()
	if got := doc.GetPoint().Position(); got != 10 {
		t.Fatalf("BoLToPrevBoL landed at %d, want 10", got)
	}
}

func TestClampToBoLMidRow(t *testing.T) {
	doc := ped.NewDocument(lines(5, 10))
	f := NewFormatter(doc, 10, 4, 5)

	doc.SetPointStart().MovePoint(24) // middle of the third row (starts at 20)
	f.ClampToBoL()
	if got := doc.GetPoint().Position(); got != 20 {
		t.Fatalf("ClampToBoL landed at %d, want 20", got)
	}
}

func TestChangeHandlerDiscardsLadderOnNearbyEdit(t *testing.T) {
	doc := ped.NewDocument(lines(10, 10))
	f := NewFormatter(doc, 10, 4, 5)

	doc.SetPointStart()
	f.BoLToNextBoL()
	f.BoLToNextBoL()
	if len(f.ladder) == 0 {
		t.Fatal("expected a populated ladder before the edit")
	}

	doc.SetPointStart().MovePoint(1)
	doc.Insert("Q")

	if len(f.ladder) != 0 {
		t.Fatal("expected ladder to be discarded by an edit inside its window")
	}
}

func TestChangeHandlerSurvivesDistantEdit(t *testing.T) {
	doc := ped.NewDocument(lines(40, 10))
	f := NewFormatter(doc, 10, 4, 5)

	doc.SetPointStart().MovePoint(200)
	f.LadderPoint()
	before := len(f.ladder)
	if before == 0 {
		t.Fatal("expected a populated ladder")
	}

	// Edit well past the ladder's last rung — too far away to touch any
	// cached rung, so the ladder should survive the rescue untouched.
	doc.SetPointStart().MovePoint(300)
	doc.Insert("z")

	if len(f.ladder) != before {
		t.Fatalf("ladder length after distant edit = %d, want %d unchanged", len(f.ladder), before)
	}
}

func TestPushRungBoundsCapacity(t *testing.T) {
	doc := ped.NewDocument(lines(200, 5))
	f := NewFormatter(doc, 5, 4, 5)

	doc.SetPointStart()
	for i := 0; i < ladderCapacity+10; i++ {
		f.BoLToNextBoL()
	}
	if len(f.ladder) > ladderCapacity {
		t.Fatalf("ladder length = %d, want <= %d", len(f.ladder), ladderCapacity)
	}
}
