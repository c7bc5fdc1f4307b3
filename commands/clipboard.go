package commands

import "github.com/gridtext/ped/editor"

func init() {
	register([]Command{
		{"set_mark", func(e *editor.Editor) { e.SetMark() }},
		{"clear_mark", func(e *editor.Editor) { e.ClearMark() }},
		{"copy", func(e *editor.Editor) { e.Copy() }},
		{"cut", func(e *editor.Editor) { e.Cut() }},
		{"paste", func(e *editor.Editor) { e.Paste() }},
		{"copy_line", func(e *editor.Editor) { e.CopyLine() }},
		{"cut_line", func(e *editor.Editor) { e.CutLine() }},
	})
}
