package commands

import "github.com/gridtext/ped/editor"

func init() {
	register([]Command{
		{"move_forward_char", func(e *editor.Editor) { e.MoveForwardChar() }},
		{"move_backward_char", func(e *editor.Editor) { e.MoveBackwardChar() }},
		{"move_forward_word", func(e *editor.Editor) { e.MoveForwardWord() }},
		{"move_backward_word", func(e *editor.Editor) { e.MoveBackwardWord() }},
		{"move_forward_para", func(e *editor.Editor) { e.MoveForwardPara() }},
		{"move_backward_para", func(e *editor.Editor) { e.MoveBackwardPara() }},
		{"move_start_line", func(e *editor.Editor) { e.MoveStartLine() }},
		{"move_end_line", func(e *editor.Editor) { e.MoveEndLine() }},
		{"move_forward_line", func(e *editor.Editor) { e.MoveForwardLine() }},
		{"move_backward_line", func(e *editor.Editor) { e.MoveBackwardLine() }},
		{"move_forward_page", func(e *editor.Editor) { e.MoveForwardPage() }},
		{"move_backward_page", func(e *editor.Editor) { e.MoveBackwardPage() }},
		{"move_start", func(e *editor.Editor) { e.MoveStart() }},
		{"move_end", func(e *editor.Editor) { e.MoveEnd() }},
		{"recenter", func(e *editor.Editor) { e.Recenter() }},
	})
}
