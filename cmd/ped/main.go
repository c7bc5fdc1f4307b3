// Command ped is a small terminal text editor driving the ped engine,
// its layout formatter, a termbox screen, and the keys/commands
// dispatch machinery.
package main

import (
	"os"

	termbox "github.com/nsf/termbox-go"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/gridtext/ped/clip"
	"github.com/gridtext/ped/commands"
	"github.com/gridtext/ped/editor"
	"github.com/gridtext/ped/internal/logging"
	"github.com/gridtext/ped/keys"
	"github.com/gridtext/ped/screen"
	"github.com/gridtext/ped/watch"
)

var (
	filePath  = kingpin.Arg("file", "file to edit").Required().String()
	tab       = kingpin.Flag("tab", "tab stop width").Default("8").Int()
	guardRows = kingpin.Flag("guard-rows", "rows kept clear at the top and bottom of the viewport").Default("3").Int()
)

// Sentinel runes in the Unicode private-use area stand in for the
// non-character keys termbox reports as raw codes, so they can share
// keys.KeyPress's single rune field with ordinary characters.
const (
	keyUp rune = 0xE000 + iota
	keyDown
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyPgUp
	keyPgDn
	keyEnter
	keyBackspace
	keyEsc
	keyTab
)

func translateSpecial(code int) (rune, bool) {
	switch termbox.Key(code) {
	case termbox.KeyArrowUp:
		return keyUp, true
	case termbox.KeyArrowDown:
		return keyDown, true
	case termbox.KeyArrowLeft:
		return keyLeft, true
	case termbox.KeyArrowRight:
		return keyRight, true
	case termbox.KeyHome:
		return keyHome, true
	case termbox.KeyEnd:
		return keyEnd, true
	case termbox.KeyPgup:
		return keyPgUp, true
	case termbox.KeyPgdn:
		return keyPgDn, true
	case termbox.KeyEnter:
		return keyEnter, true
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return keyBackspace, true
	case termbox.KeyEsc:
		return keyEsc, true
	case termbox.KeyTab:
		return keyTab, true
	default:
		return 0, false
	}
}

func toKeyPress(ev screen.KeyEvent) (keys.KeyPress, bool) {
	r := ev.Rune
	if r == 0 {
		special, ok := translateSpecial(ev.Key)
		if !ok {
			return keys.KeyPress{}, false
		}
		r = special
	}
	return keys.New(r, ev.Shift, false, ev.Alt, ev.Ctrl), true
}

func run(name string, ed *editor.Editor) {
	if cmd, ok := commands.Lookup(name); ok {
		cmd.Run(ed)
	}
}

func buildDispatcher(ed *editor.Editor) *keys.Dispatcher {
	d := keys.NewDispatcher()

	bind := func(m keys.Mode, kp keys.KeyPress, name string) {
		d.Bind(m, kp, keys.Action{Name: name, Run: func() { run(name, ed) }})
	}

	bind(keys.NORMAL, keys.KeyPress{Key: keyRight}, "move_forward_char")
	bind(keys.NORMAL, keys.KeyPress{Key: keyLeft}, "move_backward_char")
	bind(keys.NORMAL, keys.KeyPress{Key: keyDown}, "move_forward_line")
	bind(keys.NORMAL, keys.KeyPress{Key: keyUp}, "move_backward_line")
	bind(keys.NORMAL, keys.KeyPress{Key: keyHome}, "move_start_line")
	bind(keys.NORMAL, keys.KeyPress{Key: keyEnd}, "move_end_line")
	bind(keys.NORMAL, keys.KeyPress{Key: keyPgDn}, "move_forward_page")
	bind(keys.NORMAL, keys.KeyPress{Key: keyPgUp}, "move_backward_page")
	bind(keys.NORMAL, keys.KeyPress{Key: keyBackspace}, "delete_backward_char")
	bind(keys.NORMAL, keys.KeyPress{Key: keyRight, Alt: true}, "move_forward_word")
	bind(keys.NORMAL, keys.KeyPress{Key: keyLeft, Alt: true}, "move_backward_word")
	bind(keys.NORMAL, keys.KeyPress{Key: keyDown, Alt: true}, "move_forward_para")
	bind(keys.NORMAL, keys.KeyPress{Key: keyUp, Alt: true}, "move_backward_para")

	bind(keys.NORMAL, keys.KeyPress{Key: 'd', Ctrl: true}, "delete_forward_char")
	bind(keys.NORMAL, keys.KeyPress{Key: ' ', Ctrl: true}, "set_mark")
	bind(keys.NORMAL, keys.KeyPress{Key: 'g', Ctrl: true}, "clear_mark")
	bind(keys.NORMAL, keys.KeyPress{Key: 'w', Ctrl: true}, "cut")
	bind(keys.NORMAL, keys.KeyPress{Key: 'y', Ctrl: true}, "copy")
	bind(keys.NORMAL, keys.KeyPress{Key: 'k', Ctrl: true}, "paste")
	bind(keys.NORMAL, keys.KeyPress{Key: 'u', Ctrl: true}, "undo")
	bind(keys.NORMAL, keys.KeyPress{Key: 'r', Ctrl: true}, "redo")
	bind(keys.NORMAL, keys.KeyPress{Key: 's', Ctrl: true}, "save")
	bind(keys.NORMAL, keys.KeyPress{Key: 'q', Ctrl: true}, "quit")
	bind(keys.NORMAL, keys.KeyPress{Key: 'o', Ctrl: true}, "toggle_overwrite")
	bind(keys.NORMAL, keys.KeyPress{Key: keyEnter}, "move_forward_char")

	d.Bind(keys.NORMAL, keys.KeyPress{Key: 's', Alt: true}, keys.Action{Name: "isearch_forward", Run: func() {
		d.SetMode(keys.ISEARCH)
		ed.IsearchForward()
	}})
	d.Bind(keys.NORMAL, keys.KeyPress{Key: 'r', Alt: true}, keys.Action{Name: "isearch_backward", Run: func() {
		d.SetMode(keys.ISEARCH)
		ed.IsearchBackward()
	}})
	d.Bind(keys.NORMAL, keys.KeyPress{Key: 'k', Alt: true}, keys.Action{Name: "cut_line", Run: func() { run("cut_line", ed) }})
	d.Bind(keys.NORMAL, keys.KeyPress{Key: 'w', Alt: true}, keys.Action{Name: "copy_line", Run: func() { run("copy_line", ed) }})

	d.Bind(keys.ISEARCH, keys.KeyPress{Key: keyEsc}, keys.Action{Name: "isearch_cancel", Run: func() {
		ed.IsearchCancel()
		d.SetMode(keys.NORMAL)
	}})
	d.Bind(keys.ISEARCH, keys.KeyPress{Key: keyEnter}, keys.Action{Name: "isearch_exit", Run: func() {
		ed.IsearchExit()
		d.SetMode(keys.NORMAL)
	}})
	d.Bind(keys.ISEARCH, keys.KeyPress{Key: keyBackspace}, keys.Action{Name: "isearch_delete", Run: ed.DeleteBackwardChar})
	d.Bind(keys.ISEARCH, keys.KeyPress{Key: 's', Alt: true}, keys.Action{Name: "isearch_forward", Run: ed.IsearchForward})
	d.Bind(keys.ISEARCH, keys.KeyPress{Key: 'r', Alt: true}, keys.Action{Name: "isearch_backward", Run: ed.IsearchBackward})

	return d
}

// dispatchKey runs a key press through d, handling plain-character
// insertion itself since InsertChar needs the byte the dispatcher
// tables don't carry.
func dispatchKey(d *keys.Dispatcher, ed *editor.Editor, kp keys.KeyPress) {
	matched := d.Dispatch(kp)
	if matched {
		return
	}
	if kp.IsCharacter() && kp.Key < 0xE000 {
		ed.InsertChar(byte(kp.Key))
	}
}

func main() {
	kingpin.Parse()

	if _, err := os.Stat(*filePath); os.IsNotExist(err) {
		f, cerr := os.Create(*filePath)
		if cerr != nil {
			logging.Errorf("ped: could not create %s: %s", *filePath, cerr)
			os.Exit(1)
		}
		f.Close()
	}

	if err := logging.SetLogFile("ped.log"); err != nil {
		logging.Errorf("ped: logging disabled: %s", err)
	}

	doc, err := editor.Load(*filePath)
	if err != nil {
		logging.Errorf("ped: could not read %s: %s", *filePath, err)
		os.Exit(1)
	}

	scr, err := screen.NewTermboxScreen()
	if err != nil {
		logging.Errorf("ped: could not open terminal: %s", err)
		os.Exit(1)
	}
	defer scr.Close()

	cfg := editor.DefaultConfig(scr.Width(), scr.Height())
	cfg.Tab = *tab
	cfg.GuardRows = *guardRows

	ed := editor.NewWithConfig(doc, scr, clip.New(), *filePath, cfg)

	w := watch.NewWatcher()
	w.Watch(*filePath, func() { ed.ShowStatus("file changed on disk", true) })
	go w.Observe()

	d := buildDispatcher(ed)

	for !ed.ShouldQuit() {
		ed.Paint()
		ev, err := scr.PollKey()
		if err != nil {
			logging.Errorf("ped: input error: %s", err)
			break
		}
		if ev.Resize {
			continue
		}
		kp, ok := toKeyPress(ev)
		if !ok {
			continue
		}
		dispatchKey(d, ed, kp)
	}
}
