// Package ped implements the document engine of a terminal text editor:
// a piece-table chain with stable Location handles, an undo/redo journal
// of coalescing Edits, and the Document that ties them together with
// cursor navigation, search, and change notification.
//
// The wrapping layout formatter lives in the sibling package `layout`;
// the terminal, clipboard, and keymap collaborators live in their own
// packages so this one stays free of any I/O.
package ped
