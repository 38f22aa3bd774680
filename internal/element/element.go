package element

import (
	"fmt"
	"strings"
)

// Type is the elemental category of a creature or a skill.
type Type uint8

const (
	Normal Type = iota
	Fire
	Water
	Leaf
)

var names = [...]string{
	Normal: "normal",
	Fire:   "fire",
	Water:  "water",
	Leaf:   "leaf",
}

// All lists every known element in declaration order.
func All() []Type { return []Type{Normal, Fire, Water, Leaf} }

func (t Type) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("element(%d)", uint8(t))
}

// Known reports whether t is one of the declared elements.
func (t Type) Known() bool { return int(t) < len(names) }

// Parse maps a case-insensitive element name to its Type.
func Parse(s string) (Type, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return Type(i), true
		}
	}
	return Normal, false
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Type) UnmarshalText(b []byte) error {
	v, ok := Parse(string(b))
	if !ok {
		return fmt.Errorf("unknown element %q", string(b))
	}
	*t = v
	return nil
}
