package commands

import "github.com/gridtext/ped/editor"

func init() {
	register([]Command{
		{"delete_forward_char", func(e *editor.Editor) { e.DeleteForwardChar() }},
		{"delete_backward_char", func(e *editor.Editor) { e.DeleteBackwardChar() }},
		{"toggle_overwrite", func(e *editor.Editor) { e.ToggleOverwrite() }},
		{"undo", func(e *editor.Editor) { e.Undo() }},
		{"redo", func(e *editor.Editor) { e.Redo() }},
		{"squash", func(e *editor.Editor) { e.Squash() }},
	})
}
