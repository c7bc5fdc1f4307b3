package commands

import "github.com/gridtext/ped/editor"

func init() {
	register([]Command{
		{"save", func(e *editor.Editor) { e.Save() }},
		{"quit", func(e *editor.Editor) { e.Quit() }},
	})
}
