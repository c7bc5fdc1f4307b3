// Package commands names every entry point spec'd for the editor layer
// and maps it to a Run function, decoupling the keymap (package keys)
// from what a key press actually does.
package commands

import "github.com/gridtext/ped/editor"

// Command is a named operation on an *editor.Editor.
type Command struct {
	Name string
	Run  func(e *editor.Editor)
}

var registry = map[string]Command{}

// register adds cmds to the registry, keyed by Name. Later
// registrations with the same name win, matching the teacher's
// init()-time register() calls running in file-declaration order.
func register(cmds []Command) {
	for _, c := range cmds {
		registry[c.Name] = c
	}
}

// Lookup returns the command named name, if any.
func Lookup(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns every registered command name, for help text or
// keymap validation.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
