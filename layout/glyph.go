// Package layout turns a ped.Document into wrapped, tab-expanded display
// rows and maintains a bounded cache of row-start locations so the
// display layer doesn't have to re-scan the whole document to paint or
// move the cursor vertically.
package layout

import "github.com/gridtext/ped"

const hexDigits = "0123456789ABCDEF"

// FormatLine reads forward from doc's point and returns exactly cols
// bytes of encoded row content, advancing the point to the start of the
// next row, plus a column map: colMap[i] is the buffer column at which
// the i-th consumed document byte's encoding begins. A row ended by a
// newline or by end of document carries one final entry for the column
// just past its content (the newline's own column, or the hypothetical
// column of end-of-data); a wrapped row has one entry per consumed byte.
//
// Encoding: printable ASCII (0x20-0x7E) passes through unchanged. Tabs
// expand to a literal tab byte followed by 0x00 padding up to the next
// multiple of tab. A newline pads the remainder of the row with 0x00
// and is itself consumed. Other control bytes (<0x20) encode as two
// bytes (0x01, c|0x40) — rendered by the display layer as "^X". Bytes
// >=0x7F encode as three bytes (0x02, hi, lo) — rendered as "\HH". End
// of document emits a single 0x00 and terminates the line.
//
// When a glyph wouldn't fit in the remaining columns, the row breaks at
// the most recent whitespace/hyphen seen on this row if there was one
// (soft wrap, retreating the point to just after that break), otherwise
// it breaks hard at cols without consuming the oversized glyph.
func FormatLine(doc *ped.Document, cols, tab int) ([]byte, []int) {
	line := make([]byte, 0, cols)
	colMap := make([]int, 0, cols)

	var breakLine []byte
	var breakMap []int
	var breakPoint ped.Location
	haveBreak := false

	pad := func(b []byte) []byte {
		for len(b) < cols {
			b = append(b, 0)
		}
		return b
	}

	for {
		if doc.AtEnd() {
			colMap = append(colMap, len(line))
			line = append(line, 0)
			return pad(line), colMap
		}

		c := doc.GetChar()

		if c == '\n' {
			colMap = append(colMap, len(line))
			doc.NextChar()
			return pad(line), colMap
		}

		var enc []byte
		switch {
		case c == '\t':
			width := tab - len(line)%tab
			enc = make([]byte, width)
			enc[0] = '\t'
		case c >= 0x20 && c < 0x7F:
			enc = []byte{c}
		case c < 0x20:
			enc = []byte{0x01, c | 0x40}
		default:
			enc = []byte{0x02, hexDigits[c>>4], hexDigits[c&0xF]}
		}

		if len(line)+len(enc) > cols {
			if haveBreak {
				doc.SetPoint(breakPoint)
				return pad(breakLine), breakMap
			}
			return pad(line), colMap
		}

		colMap = append(colMap, len(line))
		line = append(line, enc...)
		doc.NextChar()

		if c == ' ' || c == '\t' || c == '-' {
			haveBreak = true
			breakLine = append([]byte(nil), line...)
			breakMap = append([]int(nil), colMap...)
			breakPoint = doc.GetPoint()
		}

		if len(line) == cols {
			if haveBreak && c != ' ' && c != '\t' && c != '-' && !doc.AtEnd() {
				next := doc.GetChar()
				if next != ' ' && next != '\t' && next != '\n' && next != '-' {
					doc.SetPoint(breakPoint)
					return pad(breakLine), breakMap
				}
			}
			return line, colMap
		}
	}
}
