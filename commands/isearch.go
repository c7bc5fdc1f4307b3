package commands

import "github.com/gridtext/ped/editor"

func init() {
	register([]Command{
		{"isearch_forward", func(e *editor.Editor) { e.IsearchForward() }},
		{"isearch_backward", func(e *editor.Editor) { e.IsearchBackward() }},
		{"isearch_exit", func(e *editor.Editor) { e.IsearchExit() }},
		{"isearch_cancel", func(e *editor.Editor) { e.IsearchCancel() }},
	})
}
