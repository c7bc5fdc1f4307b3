// Package editor composes the document engine, the wrapping layout, a
// terminal screen, and a clipboard into the interactive behavior of a
// text editor: cursor motions, selection, isearch, framing, and paint.
package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridtext/ped"
	"github.com/gridtext/ped/clip"
	"github.com/gridtext/ped/layout"
	"github.com/gridtext/ped/screen"
)

const whitespace = " \t\n"

// Editor ties a Document, its Formatter, a Screen, and a clipboard
// together with the state a terminal editor needs beyond what those
// collaborators track themselves: the mark, overwrite mode, isearch
// progress, and the viewport's anchor.
type Editor struct {
	Doc  *ped.Document
	Fmt  *layout.Formatter
	Scr  screen.Screen
	Clip *clip.Board
	Path string

	GuardRows    int
	PreferredRow int

	mark *ped.Location

	overwrite bool

	isearchDir    int
	isearchText   string
	isearchOrigin ped.Location

	preferredTop ped.Location
	preferredCol int
	columnSticky bool

	status string
	quit   bool
}

// Config carries the parameters original_source/renderer.py's
// constructor takes: the layout's column width and tab stop, the BoL
// ladder's rung count, and the framing guard band and preferred
// cursor row. Zero GuardRows and PreferredRow fall back to the same
// defaults New does; Cols, Tab and Rungs are used as given.
type Config struct {
	Cols, Tab, Rungs int
	GuardRows        int
	PreferredRow     int
}

// DefaultConfig returns the Config original_source/renderer.py derives
// from a terminal of the given size: tab stops of 8, a guard band of
// 3 rows, rungs covering half the viewport, and the point preferring
// to sit 40% of the way down the screen.
func DefaultConfig(cols, rows int) Config {
	return Config{
		Cols: cols, Tab: 8, Rungs: rows / 2,
		GuardRows:    3,
		PreferredRow: int(0.4 * float64(rows)),
	}
}

// NewWithConfig builds the Formatter from cfg and returns an Editor
// wrapping it.
func NewWithConfig(doc *ped.Document, scr screen.Screen, clipboard *clip.Board, path string, cfg Config) *Editor {
	fmt := layout.NewFormatter(doc, cfg.Cols, cfg.Tab, cfg.Rungs)
	e := New(doc, fmt, scr, clipboard, path, cfg.GuardRows, cfg.PreferredRow)
	doc.Watch(fmt.ChangeHandler)
	return e
}

// New returns an Editor. guardRows and preferredRow of 0 fall back to
// reasonable defaults (3, and 40% of the viewport height).
func New(doc *ped.Document, fmt *layout.Formatter, scr screen.Screen, clipboard *clip.Board, path string, guardRows, preferredRow int) *Editor {
	if guardRows == 0 {
		guardRows = 3
	}
	e := &Editor{
		Doc: doc, Fmt: fmt, Scr: scr, Clip: clipboard, Path: path,
		GuardRows: guardRows, PreferredRow: preferredRow,
		columnSticky: true,
		preferredTop: doc.GetPoint(),
	}
	doc.Watch(e.mutating)
	return e
}

// Load reads path into a new Document, or returns an empty one if the
// file doesn't exist yet.
func Load(path string) (*ped.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ped.NewDocument(""), nil
		}
		return nil, err
	}
	return ped.NewDocument(string(data)), nil
}

// Save writes the document's contents to Path via write-temp-then-rename.
func (e *Editor) Save() error {
	dir := filepath.Dir(e.Path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, ".ped-*.tmp")
	if err != nil {
		e.ShowStatus(fmt.Sprintf("save failed: %s", err), true)
		return err
	}
	name := tmp.Name()
	defer os.Remove(name)

	if _, err := tmp.WriteString(e.Doc.GetData()); err != nil {
		tmp.Close()
		e.ShowStatus(fmt.Sprintf("save failed: %s", err), true)
		return err
	}
	if err := tmp.Close(); err != nil {
		e.ShowStatus(fmt.Sprintf("save failed: %s", err), true)
		return err
	}
	if err := os.Rename(name, e.Path); err != nil {
		e.ShowStatus(fmt.Sprintf("save failed: %s", err), true)
		return err
	}
	e.Doc.ClearDirty()
	e.ShowStatus("saved", false)
	return nil
}

// Quit marks the editor for exit; the main loop checks ShouldQuit.
func (e *Editor) Quit()        { e.quit = true }
func (e *Editor) ShouldQuit() bool { return e.quit }

func (e *Editor) Squash() { e.Doc.Squash() }
func (e *Editor) Undo()   { e.Doc.Undo() }
func (e *Editor) Redo()   { e.Doc.Redo() }

func (e *Editor) mutating(start, end ped.Location) {
	e.mark = nil
}

// ShowStatus queues msg for the next status line paint, alerting the
// screen if warn is set.
func (e *Editor) ShowStatus(msg string, warn bool) {
	e.status = msg
	if warn {
		e.Scr.Alert()
	}
}

// ClearTop forces the next Frame to re-anchor the viewport around the
// point instead of trying to keep the previous top-left line on screen.
func (e *Editor) ClearTop() { e.preferredTop = e.Doc.GetEnd() }

// Recenter scrolls so the point lands near PreferredRow on the next
// paint.
func (e *Editor) Recenter() { e.ClearTop() }

// --- Navigation ---

func (e *Editor) MoveForwardChar()  { e.Doc.MovePoint(1) }
func (e *Editor) MoveBackwardChar() { e.Doc.MovePoint(-1) }

func (e *Editor) MoveForwardWord() {
	e.Doc.FindCharForward(whitespace)
	e.Doc.FindNotCharForward(whitespace)
}

func (e *Editor) MoveBackwardWord() {
	e.Doc.FindNotCharBackward(whitespace)
	e.Doc.FindCharBackward(whitespace)
}

func (e *Editor) MoveForwardPara() {
	for e.Doc.GetPoint() != e.Doc.GetEnd() {
		e.Doc.FindCharForward("\n")
		e.Doc.MovePoint(1)
		if strings.IndexByte(whitespace, e.Doc.GetChar()) >= 0 {
			break
		}
	}
	e.Doc.FindNotCharForward(whitespace)
}

func (e *Editor) MoveBackwardPara() {
	e.Doc.FindNotCharBackward(whitespace)
	for e.Doc.GetPoint() != e.Doc.GetStart() {
		e.Doc.FindCharBackward("\n")
		if strings.IndexByte(whitespace, e.Doc.GetChar()) >= 0 {
			break
		}
		e.Doc.MovePoint(-1)
	}
	e.Doc.FindNotCharForward(whitespace)
}

func (e *Editor) MoveStartLine() {
	e.Fmt.ClampToBoL()
	e.columnSticky = false
}

func (e *Editor) MoveEndLine() {
	e.Fmt.ClampToBoL()
	e.Fmt.BoLToNextBoL()
	e.MoveBackwardChar()
	e.columnSticky = false
}

func (e *Editor) MoveForwardLine() {
	e.Fmt.ClampToBoL()
	e.Fmt.BoLToNextBoL()
	e.bolToPreferredCol()
}

func (e *Editor) MoveBackwardLine() {
	e.Fmt.ClampToBoL()
	e.Fmt.BoLToPrevBoL()
	e.bolToPreferredCol()
}

func (e *Editor) MoveForwardPage() {
	e.Fmt.ClampToBoL()
	for i := 0; i < e.rows(); i++ {
		e.Fmt.BoLToNextBoL()
	}
	e.bolToPreferredCol()
}

func (e *Editor) MoveBackwardPage() {
	e.Fmt.ClampToBoL()
	for i := 0; i < e.rows(); i++ {
		e.Fmt.BoLToPrevBoL()
	}
	e.bolToPreferredCol()
}

func (e *Editor) MoveStart() { e.Doc.SetPoint(e.Doc.GetStart()) }
func (e *Editor) MoveEnd()   { e.Doc.SetPoint(e.Doc.GetEnd()) }

// bolToPreferredCol advances from a row start toward preferredCol,
// landing at the closest reachable column without crossing a row
// boundary. A row-at-a-time rendition of the glyph-by-glyph lookahead
// the layout package already performs inside FormatLine.
func (e *Editor) bolToPreferredCol() {
	start := e.Doc.GetPoint()
	line, colMap := e.Fmt.FormatLine()
	off := layout.OffsetForColumn(e.preferredCol, colMap)
	if off > len(line) {
		off = len(line)
	}
	e.Doc.SetPoint(start.Move(off))
	e.columnSticky = false
}

func (e *Editor) rows() int {
	r := e.Scr.Height() - 1
	if r < 1 {
		r = 1
	}
	return r
}

// --- Mark and clipboard ---

func (e *Editor) SetMark() {
	loc := e.Doc.GetPoint()
	e.mark = &loc
}

func (e *Editor) ClearMark() { e.mark = nil }

// clip returns the text spanning the mark and point (ordering them by
// position), optionally deleting it, and clears the mark.
func (e *Editor) clip(cut bool) string {
	if e.mark == nil {
		e.ShowStatus("no mark", true)
		return ""
	}
	a, b := *e.mark, e.Doc.GetPoint()
	sign := -1
	if a.Position() > b.Position() {
		a, b = b, a
		sign = 1
	}
	s := ped.SpanData(a, b)
	if cut {
		e.Doc.Delete(sign * ped.SpanLength(a, b))
	}
	e.mark = nil
	return s
}

func (e *Editor) Copy() { e.Clip.Set(e.clip(false)) }
func (e *Editor) Cut()  { e.Clip.Set(e.clip(true)) }

func (e *Editor) Paste() {
	text := e.Clip.Get()
	if text == "" {
		e.ShowStatus("empty clipboard", true)
		return
	}
	if e.mark != nil {
		e.clip(true)
	}
	e.Doc.Insert(text)
}

// lineSpan returns [start-of-current-line, start-of-next-line) without
// moving the point.
func (e *Editor) lineSpan() (ped.Location, ped.Location) {
	pt := e.Doc.GetPoint()
	e.Fmt.ClampToBoL()
	start := e.Doc.GetPoint()
	e.Fmt.BoLToNextBoL()
	end := e.Doc.GetPoint()
	e.Doc.SetPoint(pt)
	return start, end
}

func (e *Editor) CopyLine() {
	start, end := e.lineSpan()
	e.Clip.Set(ped.SpanData(start, end))
}

func (e *Editor) CutLine() {
	start, end := e.lineSpan()
	e.Clip.Set(ped.SpanData(start, end))
	e.Doc.SetPoint(start)
	e.Doc.Delete(ped.SpanLength(start, end))
}

// --- Editing ---

func (e *Editor) ToggleOverwrite() { e.overwrite = !e.overwrite }

// InsertChar routes a typed character to the isearch buffer, overwrite
// replace, or a plain insert, exactly as original_source/editor.py's
// insert() dispatches.
func (e *Editor) InsertChar(c byte) {
	switch {
	case e.isearchDir != 0:
		e.isearchInsert(c)
	case e.overwrite:
		e.Doc.Replace(string(c))
	default:
		e.Doc.Insert(string(c))
	}
}

func (e *Editor) DeleteForwardChar() { e.Doc.Delete(1) }

func (e *Editor) DeleteBackwardChar() {
	if e.isearchDir != 0 {
		e.isearchDelete()
		return
	}
	e.Doc.Delete(-1)
}

// --- Incremental search ---

func (e *Editor) IsearchForward()  { e.isearchTrigger(1, false) }
func (e *Editor) IsearchBackward() { e.isearchTrigger(-1, false) }

func (e *Editor) IsearchExit() {
	e.isearchDir = 0
	e.ClearMark()
}

func (e *Editor) IsearchCancel() {
	e.IsearchExit()
	e.Doc.SetPoint(e.isearchOrigin)
}

func (e *Editor) isearchInsert(c byte) {
	e.isearchText += string(c)
	e.isearchTrigger(0, true)
}

func (e *Editor) isearchDelete() {
	if len(e.isearchText) > 0 {
		e.isearchText = e.isearchText[:len(e.isearchText)-1]
	}
	e.isearchTrigger(0, true)
}

func (e *Editor) isearchTrigger(direction int, reset bool) {
	if reset {
		e.Doc.SetPoint(e.isearchOrigin)
	}

	first := e.isearchDir == 0
	if direction != 0 {
		e.isearchDir = direction
	}

	if first {
		e.isearchOrigin = e.Doc.GetPoint()
		e.isearchText = ""
		return
	}
	if e.isearchText == "" {
		e.ShowStatus("empty search", true)
		return
	}

	var match bool
	if e.isearchDir == 1 {
		match = e.Doc.FindForward(e.isearchText, ped.SmartCase)
	} else {
		match = e.Doc.FindBackward(e.isearchText, ped.SmartCase)
	}
	if match {
		// The point lands at the match's start (see DESIGN.md); marking
		// the opposite edge highlights the whole matched span.
		loc := e.Doc.GetPoint().Move(len(e.isearchText))
		e.mark = &loc
	}
}
