// Package keys turns raw terminal key events into named KeyPress
// values and dispatches them to mode-specific action tables.
package keys

import "fmt"

const (
	shift = 1 << 8
	super = 1 << 9
	alt   = 1 << 10
	ctrl  = 1 << 11
)

// KeyPress is a single decoded key combination.
type KeyPress struct {
	Key   rune
	Shift bool
	Super bool
	Alt   bool
	Ctrl  bool
}

// Index returns a stable integer encoding Key plus its modifiers,
// suitable for use as a map key in a Dispatcher's action tables.
func (k KeyPress) Index() int {
	i := int(k.Key)
	if k.Shift {
		i += shift
	}
	if k.Super {
		i += super
	}
	if k.Alt {
		i += alt
	}
	if k.Ctrl {
		i += ctrl
	}
	return i
}

// IsCharacter reports whether this key press represents a plain
// character (with or without shift) rather than a control chord.
func (k KeyPress) IsCharacter() bool {
	return !k.Super && !k.Alt && !k.Ctrl
}

// fix normalizes an uppercase letter into its lowercase form plus an
// explicit shift modifier, so "A" and "shift+a" hash to the same Index.
func (k *KeyPress) fix() {
	if k.Key >= 'A' && k.Key <= 'Z' {
		k.Key += 'a' - 'A'
		k.Shift = true
	}
}

// New returns a normalized KeyPress.
func New(key rune, shift, super, alt, ctrl bool) KeyPress {
	kp := KeyPress{Key: key, Shift: shift, Super: super, Alt: alt, Ctrl: ctrl}
	kp.fix()
	return kp
}

func (k KeyPress) String() string {
	s := ""
	if k.Super {
		s += "super+"
	}
	if k.Ctrl {
		s += "ctrl+"
	}
	if k.Alt {
		s += "alt+"
	}
	if k.Shift {
		s += "shift+"
	}
	return fmt.Sprintf("%s%c", s, k.Key)
}
