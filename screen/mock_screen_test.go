package screen

import "testing"

func TestMockScreenPutsAndRow(t *testing.T) {
	m := NewMockScreen(10, 3)
	m.Puts(2, 1, "hi", StyleStatus)
	row := m.Row(1)
	if row[2] != 'h' || row[3] != 'i' {
		t.Fatalf("row = %q, want h/i at cols 2/3", row)
	}
	if m.StyleAt(2, 1) != StyleStatus {
		t.Fatal("expected StyleStatus at the written cell")
	}
}

func TestMockScreenPutsTruncatesAtEdge(t *testing.T) {
	m := NewMockScreen(5, 1)
	m.Puts(3, 0, "abcdef", StyleDefault)
	row := m.Row(0)
	if row != "   ab" {
		t.Fatalf("row = %q, want truncated %q", row, "   ab")
	}
}

func TestMockScreenMoveAndAlert(t *testing.T) {
	m := NewMockScreen(5, 5)
	m.Move(2, 3)
	if m.CursorX != 2 || m.CursorY != 3 {
		t.Fatalf("cursor = (%d,%d), want (2,3)", m.CursorX, m.CursorY)
	}
	m.Alert()
	m.Alert()
	if m.Alerts != 2 {
		t.Fatalf("Alerts = %d, want 2", m.Alerts)
	}
}

func TestMockScreenPollKeyExhaustion(t *testing.T) {
	m := NewMockScreen(5, 5, KeyEvent{Rune: 'a'}, KeyEvent{Rune: 'b'})
	for _, want := range []rune{'a', 'b'} {
		ev, err := m.PollKey()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Rune != want {
			t.Fatalf("PollKey rune = %q, want %q", ev.Rune, want)
		}
	}
	if _, err := m.PollKey(); err == nil {
		t.Fatal("expected error once keys are exhausted")
	}
}
