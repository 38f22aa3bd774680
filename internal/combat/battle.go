package combat

import (
	"errors"
	"fmt"
)

var ErrInvalidBattle = errors.New("invalid battle")

// Side identifies one of the two combatants of a Battle.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "a"
	}
	return "b"
}

// Outcome is the result reported by CheckOutcome.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeSideAWins
	OutcomeSideBWins
)

var outcomeNames = [...]string{"ongoing", "side_a_wins", "side_b_wins"}

func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Outcome) UnmarshalText(b []byte) error {
	for i, n := range outcomeNames {
		if n == string(b) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", string(b))
}

// Terminal reports whether the battle is over.
func (o Outcome) Terminal() bool { return o == OutcomeSideAWins || o == OutcomeSideBWins }

// Winner returns the winning side. ok is false while the battle is ongoing.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case OutcomeSideAWins:
		return SideA, true
	case OutcomeSideBWins:
		return SideB, true
	}
	return SideA, false
}

// Battle pairs two opposing creatures. The caller owns the creatures; the
// battle only tracks round progress and the order in which sides fainted.
type Battle struct {
	A, B  *Creature
	Round int

	faintOrder []Side
}

func NewBattle(a, b *Creature) (*Battle, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: both creatures are required", ErrInvalidBattle)
	}
	if a == b {
		return nil, fmt.Errorf("%w: a creature cannot fight itself", ErrInvalidBattle)
	}
	if a.Fainted() || b.Fainted() {
		return nil, fmt.Errorf("%w: creatures must start with hp above zero", ErrInvalidBattle)
	}
	return &Battle{A: a, B: b}, nil
}

// Creature returns the combatant on side s.
func (b *Battle) Creature(s Side) *Creature {
	if s == SideA {
		return b.A
	}
	return b.B
}

// SideOf returns the side c fights on. It panics if c is not in the battle.
func (b *Battle) SideOf(c *Creature) Side {
	switch c {
	case b.A:
		return SideA
	case b.B:
		return SideB
	}
	panic(fmt.Sprintf("combat: creature %q is not part of this battle", c.ID))
}

// Opponent returns the creature facing c.
func (b *Battle) Opponent(c *Creature) *Creature {
	if b.SideOf(c) == SideA {
		return b.B
	}
	return b.A
}

func (b *Battle) recordFaint(c *Creature) {
	s := b.SideOf(c)
	for _, f := range b.faintOrder {
		if f == s {
			return
		}
	}
	b.faintOrder = append(b.faintOrder, s)
}

// CheckOutcome reports the battle state. A side wins exactly when the
// opposing creature has zero HP. Should both be at zero, the side whose
// opponent fainted first wins; with no recorded order side A takes
// precedence.
func CheckOutcome(b *Battle) Outcome {
	aDown, bDown := b.A.Fainted(), b.B.Fainted()
	switch {
	case aDown && bDown:
		if len(b.faintOrder) > 0 && b.faintOrder[0] == SideA {
			return OutcomeSideBWins
		}
		return OutcomeSideAWins
	case bDown:
		return OutcomeSideAWins
	case aDown:
		return OutcomeSideBWins
	}
	return OutcomeOngoing
}
