package screen

import (
	"github.com/nsf/termbox-go"

	"github.com/gridtext/ped/internal/logging"
)

// TermboxScreen implements Screen on top of termbox-go.
type TermboxScreen struct {
	styles map[Style][2]termbox.Attribute
}

// NewTermboxScreen initializes termbox and returns a ready Screen. The
// caller must call Close when done.
func NewTermboxScreen() (*TermboxScreen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	s := &TermboxScreen{
		styles: map[Style][2]termbox.Attribute{
			StyleDefault: {termbox.ColorDefault, termbox.ColorDefault},
			StyleStatus:  {termbox.ColorBlack, termbox.ColorWhite},
			StyleMark:    {termbox.ColorBlack, termbox.ColorYellow},
			StyleISearch: {termbox.ColorBlack, termbox.ColorCyan},
		},
	}
	return s, nil
}

func (s *TermboxScreen) Width() int  { w, _ := termbox.Size(); return w }
func (s *TermboxScreen) Height() int { _, h := termbox.Size(); return h }

func (s *TermboxScreen) Clear() {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		logging.Error("screen: clear failed: %s", err)
	}
}

func (s *TermboxScreen) Put(col, row int, r rune, style Style) {
	fg, bg := s.attrs(style)
	termbox.SetCell(col, row, r, fg, bg)
}

func (s *TermboxScreen) Puts(col, row int, str string, style Style) {
	width := s.Width()
	for _, r := range str {
		if col >= width {
			return
		}
		s.Put(col, row, r, style)
		col++
	}
}

func (s *TermboxScreen) Move(col, row int) {
	termbox.SetCursor(col, row)
}

func (s *TermboxScreen) Refresh() error {
	return termbox.Flush()
}

func (s *TermboxScreen) Alert() {
	// termbox has no bell primitive, so Alert draws nothing; the status
	// message the editor shows alongside it is the only visible signal.
}

func (s *TermboxScreen) Close() {
	termbox.Close()
}

func (s *TermboxScreen) PollKey() (KeyEvent, error) {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			return decodeKey(ev), nil
		case termbox.EventResize:
			return KeyEvent{Resize: true}, nil
		case termbox.EventError:
			return KeyEvent{}, ev.Err
		}
	}
}

func (s *TermboxScreen) attrs(style Style) (termbox.Attribute, termbox.Attribute) {
	pair, ok := s.styles[style]
	if !ok {
		pair = s.styles[StyleDefault]
	}
	return pair[0], pair[1]
}

func decodeKey(ev termbox.Event) KeyEvent {
	out := KeyEvent{
		Alt: ev.Mod&termbox.ModAlt != 0,
	}
	if ev.Ch != 0 {
		out.Rune = ev.Ch
		return out
	}
	switch {
	case ev.Key >= termbox.KeyCtrlA && ev.Key <= termbox.KeyCtrlZ &&
		ev.Key != termbox.KeyEnter && ev.Key != termbox.KeyTab && ev.Key != termbox.KeyBackspace:
		out.Ctrl = true
		out.Rune = rune('a' + int(ev.Key) - int(termbox.KeyCtrlA))
	case ev.Key == termbox.KeySpace:
		out.Rune = ' '
	default:
		out.Key = int(ev.Key)
	}
	return out
}
