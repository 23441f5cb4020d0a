package input

import (
	"fmt"
	"maps"
	"strings"
)

// Bindings maps key names to actions. Single characters name themselves, other keys use
// lower-case names such as "space", "left" or "up".
type Bindings map[string]Action

// DefaultBindings returns the standard layout: a/d move, s soft drops, space hard drops, q/w
// rotate, x holds, plus the arrow keys.
func DefaultBindings() Bindings {
	return Bindings{
		"a":     MoveLeft,
		"d":     MoveRight,
		"s":     SoftDrop,
		"space": HardDrop,
		"q":     RotateCounterclockwise,
		"w":     RotateClockwise,
		"x":     Hold,
		"left":  MoveLeft,
		"right": MoveRight,
		"down":  SoftDrop,
		"up":    RotateClockwise,
		"c":     Hold,
	}
}

// Clone returns a copy of b.
func (b Bindings) Clone() Bindings {
	return maps.Clone(b)
}

// Lookup returns the action bound to key, ignoring case.
func (b Bindings) Lookup(key string) Action {
	return b[KeyName(key)]
}

// Set parses a "key=action" pair and binds it. Binding to "none" removes the key.
func (b Bindings) Set(pair string) error {
	key, name, ok := strings.Cut(pair, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("binding %q: want key=action", pair)
	}
	key = KeyName(key)
	if strings.EqualFold(strings.TrimSpace(name), None.String()) {
		delete(b, key)
		return nil
	}
	a, err := ParseAction(name)
	if err != nil {
		return fmt.Errorf("binding %q: %w", pair, err)
	}
	b[key] = a
	return nil
}

// KeyName normalises a key name: lower case, and a literal space becomes "space".
func KeyName(key string) string {
	if key == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(key))
}
