package ped

import "fmt"

var pieceSeq int

// link is the embeddable state shared by every Piece: its position in the
// doubly-linked chain and a byte length kept in sync by the owner.
type link struct {
	prev, next Piece
	length     int
	id         int
}

func newLink() link {
	pieceSeq++
	return link{id: pieceSeq}
}

func (l *link) Prev() Piece     { return l.prev }
func (l *link) Next() Piece     { return l.next }
func (l *link) SetPrev(p Piece) { l.prev = p }
func (l *link) SetNext(p Piece) { l.next = p }
func (l *link) Len() int        { return l.length }
func (l *link) ID() int         { return l.id }

// Piece is one span in the document's chain: either a Primary that owns
// its bytes, or a Secondary that is a read-only window into a Primary.
// The chain is bracketed by two permanently-empty Primary sentinels.
type Piece interface {
	Prev() Piece
	Next() Piece
	SetPrev(Piece)
	SetNext(Piece)
	Len() int
	ID() int
	Data() string

	// ref reports the Primary backing this piece's bytes and the offset
	// within it where this piece's own data begins. Unexported: only
	// lsplit/rsplit/Primary/Secondary in this package need it.
	ref() (*Primary, int)
}

// Link sets a.Next() = b and b.Prev() = a, the only mutation either end
// of a splice ever needs.
func Link(a, b Piece) {
	a.SetNext(b)
	b.SetPrev(a)
}

// Primary owns a mutable run of bytes. The two chain sentinels are
// Primary pieces of permanent length zero.
type Primary struct {
	link
	data string
}

func newPrimary(data string, allowEmpty bool) *Primary {
	if data == "" && !allowEmpty {
		panic("ped: primary piece must not be empty")
	}
	p := &Primary{link: newLink()}
	p.data = data
	p.length = len(data)
	return p
}

func (p *Primary) Data() string          { return p.data }
func (p *Primary) ref() (*Primary, int)  { return p, 0 }

// extend appends s to the piece's own data, used when an insert
// immediately follows the point where the previous insert ended.
func (p *Primary) extend(s string) {
	p.data += s
	p.length += len(s)
}

// trim drops n bytes from the left of the piece if n > 0, or |n| bytes
// from the right if n < 0. A no-op for n == 0.
func (p *Primary) trim(n int) {
	switch {
	case n > 0:
		p.data = p.data[n:]
		p.length -= n
	case n < 0:
		p.data = p.data[:len(p.data)+n]
		p.length += n
	}
}

// Secondary is a read-only window into a Primary's bytes: [start, start+length).
type Secondary struct {
	link
	src   *Primary
	start int
}

func newSecondary(src *Primary, start, length int) *Secondary {
	if length <= 0 || start < 0 || start+length > src.Len() {
		panic(fmt.Sprintf("ped: secondary piece span [%d,%d) outside primary of length %d", start, start+length, src.Len()))
	}
	s := &Secondary{link: newLink(), src: src, start: start}
	s.length = length
	return s
}

func (s *Secondary) Data() string         { return s.src.Data()[s.start : s.start+s.length] }
func (s *Secondary) ref() (*Primary, int) { return s.src, s.start }

// trim shrinks the window by `left` bytes from its start and `right`
// bytes from its end. Both must be non-negative.
func (s *Secondary) trim(left, right int) {
	s.start += left
	s.length -= left + right
	if s.length <= 0 || s.start+s.length > s.src.Len() {
		panic("ped: secondary piece trimmed to an invalid span")
	}
}

// lsplit manufactures the [0, offset) window of p as a new Secondary,
// leaving p itself untouched. offset must fall strictly inside p.
func lsplit(p Piece, offset int) *Secondary {
	if offset <= 0 || offset >= p.Len() {
		panic("ped: lsplit offset out of range")
	}
	src, base := p.ref()
	return newSecondary(src, base, offset)
}

// rsplit manufactures the [offset, len(p)) window of p as a new
// Secondary, leaving p itself untouched.
func rsplit(p Piece, offset int) *Secondary {
	if offset <= 0 || offset >= p.Len() {
		panic("ped: rsplit offset out of range")
	}
	src, base := p.ref()
	return newSecondary(src, base+offset, p.Len()-offset)
}
