package editor

import (
	"fmt"
	"strings"

	"github.com/gridtext/ped"
	"github.com/gridtext/ped/layout"
	"github.com/gridtext/ped/screen"
)

// Frame moves the point to the top-left location the next Paint should
// start drawing from, trying to keep the previously-shown top line on
// screen (anchored at preferredTop) and otherwise falling back to a
// view centered PreferredRow rows above the point.
func (e *Editor) Frame() {
	rows := e.rows()
	guard := e.GuardRows
	if guard > rows/2 {
		guard = rows / 2
	}
	preferredRow := e.PreferredRow
	if preferredRow == 0 {
		preferredRow = int(0.4 * float64(rows))
	}

	e.Fmt.LadderPoint()
	e.Fmt.ClampToBoL()

	var fallback ped.Location
	k := 0
	for k = 1; k <= rows; k++ {
		e.Fmt.BoLToPrevBoL()
		if k == preferredRow {
			fallback = e.Doc.GetPoint()
		}
		if e.Doc.GetPoint() == e.preferredTop {
			break
		}
	}

	if k < rows {
		for k < guard {
			e.Fmt.BoLToPrevBoL()
			k++
		}
		for k >= rows-guard {
			e.Fmt.BoLToNextBoL()
			k--
		}
	} else {
		e.Doc.SetPoint(fallback)
	}

	e.preferredTop = e.Doc.GetPoint()
}

// renderGlyphs expands FormatLine's encoded byte stream into display
// runes one-for-one, so column indices (and therefore colMap) remain
// valid after translation: ^X control escapes and \HH hex escapes each
// keep the same byte width they were encoded with, and 0x00 padding
// (including the tab byte's own padding) renders as a blank.
func renderGlyphs(line []byte) []rune {
	out := make([]rune, 0, len(line))
	for i := 0; i < len(line); {
		switch b := line[i]; {
		case b == 0x01 && i+1 < len(line):
			out = append(out, '^', rune(line[i+1]))
			i += 2
		case b == 0x02 && i+2 < len(line):
			out = append(out, '\\', rune(line[i+1]), rune(line[i+2]))
			i += 3
		case b == 0 || b == '\t':
			out = append(out, ' ')
			i++
		default:
			out = append(out, rune(b))
			i++
		}
	}
	return out
}

// Paint draws the viewport, status line, and cursor to Scr, leaving the
// point unchanged.
func (e *Editor) Paint() {
	pt := e.Doc.GetPoint()
	ptPos := pt.Position()

	e.Frame()
	e.Scr.Clear()

	hStart, hEnd, hasMark := e.highlightRange()
	rows := e.rows()

	cursorRow, cursorCol := 0, 0
	foundCursor := false

	row := 0
	for {
		rowStart := e.Doc.GetPoint()
		line, colMap := e.Fmt.FormatLine()
		rowEnd := e.Doc.GetPoint()

		rsp, rep := rowStart.Position(), rowEnd.Position()
		emptyRow := rowStart == rowEnd

		if !foundCursor && rsp <= ptPos && (ptPos < rep || emptyRow) {
			off := ptPos - rsp
			col := len(line)
			if off >= 0 && off < len(colMap) {
				col = colMap[off]
			}
			cursorRow, cursorCol = row, col
			foundCursor = true
		}

		for col, r := range renderGlyphs(line) {
			style := screen.StyleDefault
			if hasMark {
				srcOff := layout.OffsetForColumn(col, colMap)
				abs := rsp + srcOff
				if abs >= hStart.Position() && abs < hEnd.Position() {
					style = screen.StyleMark
				}
			}
			e.Scr.Put(col, row, r, style)
		}

		row++
		if emptyRow || row >= rows {
			break
		}
	}

	e.Doc.SetPoint(pt)

	if e.columnSticky {
		if e.Doc.AtEnd() {
			e.preferredCol = 0
		} else {
			e.preferredCol = cursorCol
		}
	} else {
		e.columnSticky = true
	}

	e.Scr.Puts(0, rows, e.statusLine(cursorCol, cursorRow), screen.StyleStatus)
	e.Scr.Move(cursorCol, cursorRow)
	if err := e.Scr.Refresh(); err != nil {
		e.ShowStatus(fmt.Sprintf("refresh failed: %s", err), true)
	}
}

// highlightRange orders the mark and point into an ascending [start,
// end) pair for highlight purposes. The second result is false when
// there's no mark.
func (e *Editor) highlightRange() (ped.Location, ped.Location, bool) {
	if e.mark == nil {
		return ped.Location{}, ped.Location{}, false
	}
	a, b := *e.mark, e.Doc.GetPoint()
	if a.Position() > b.Position() {
		a, b = b, a
	}
	return a, b, true
}

func (e *Editor) statusLine(cursorCol, cursorRow int) string {
	msg := e.status
	e.status = ""
	width := e.Scr.Width()
	if msg != "" {
		return padRow(" "+msg, width)
	}

	pt := e.Doc.GetPoint()
	data := e.Doc.GetData()
	docNL := strings.Count(data, "\n")
	ptNL := strings.Count(data[:pt.Position()], "\n")
	dirty := ""
	if e.Doc.Dirty() {
		dirty = "*"
	}

	fields := []string{
		dirty + e.Path,
		fmt.Sprintf("xy %d,%d", cursorCol, cursorRow),
		fmt.Sprintf("ch $%02x", e.Doc.GetChar()),
		fmt.Sprintf("pos %d/%d", pt.Position(), e.Doc.Len()),
		fmt.Sprintf("lns %d/%d", ptNL, docNL),
		fmt.Sprintf("pcs %d/%d", pt.ChainLength(), e.Doc.GetEnd().ChainLength()),
		fmt.Sprintf("eds %d", e.Doc.EditCounts()),
	}
	return padRow(" "+strings.Join(fields, "  "), width)
}

func padRow(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
