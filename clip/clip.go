// Package clip mirrors the editor's in-process clipboard string onto
// the OS clipboard when one is available, so cut/copy/paste interact
// with other applications instead of being editor-local only.
package clip

import (
	"github.com/atotto/clipboard"

	"github.com/gridtext/ped/internal/logging"
)

// Board is a clipboard that always keeps an in-process copy of the last
// value, and best-effort mirrors it to the OS clipboard.
type Board struct {
	local     string
	useSystem bool
	checkedOS bool
}

// New returns a Board. OS clipboard support is probed lazily on first
// use, since clipboard.Unsupported isn't reliable until an attempt has
// actually been made on some platforms.
func New() *Board {
	return &Board{}
}

func (b *Board) probe() {
	if b.checkedOS {
		return
	}
	b.checkedOS = true
	b.useSystem = !clipboard.Unsupported
}

// Set stores s as the current clipboard contents, and pushes it to the
// OS clipboard when supported.
func (b *Board) Set(s string) {
	b.local = s
	b.probe()
	if !b.useSystem {
		return
	}
	if err := clipboard.WriteAll(s); err != nil {
		logging.Warn("clip: write to system clipboard failed: %s", err)
		b.useSystem = false
	}
}

// Get returns the current clipboard contents, preferring the OS
// clipboard when it's available and readable so pasting picks up text
// copied from other applications.
func (b *Board) Get() string {
	b.probe()
	if !b.useSystem {
		return b.local
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		logging.Warn("clip: read from system clipboard failed: %s", err)
		return b.local
	}
	return s
}
