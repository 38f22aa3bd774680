package combat

import (
	"testing"

	"battler/internal/element"
)

var ember = StatSkill{Name: "Ember", BaseDamage: 5, Elem: element.Fire, Physical: true}

func mustCreature(t *testing.T, id string, elem element.Type, st Stats, skills ...Skill) *Creature {
	t.Helper()
	c, err := NewCreature(id, "", elem, st, skills)
	if err != nil {
		t.Fatalf("NewCreature(%s): %v", id, err)
	}
	return c
}

// emberPair builds the fire attacker and leaf defender used across tests.
func emberPair(t *testing.T) (*Creature, *Creature) {
	t.Helper()
	tackle := StatSkill{Name: "Tackle", BaseDamage: 3, Elem: element.Normal, Physical: true}
	a := mustCreature(t, "a", element.Fire, Stats{MaxHP: 30, Attack: 10, Defense: 5, SpAttack: 5, SpDefense: 5, Speed: 10}, ember)
	b := mustCreature(t, "b", element.Leaf, Stats{MaxHP: 15, Attack: 5, Defense: 1, SpAttack: 2, SpDefense: 2, Speed: 5}, tackle)
	return a, b
}

// fixedCoin returns the queued results in order, then repeats the last one.
type fixedCoin struct {
	results []bool
	flips   int
}

func (c *fixedCoin) Flip() bool {
	i := c.flips
	c.flips++
	if i >= len(c.results) {
		i = len(c.results) - 1
	}
	return c.results[i]
}

func always(v bool) *fixedCoin { return &fixedCoin{results: []bool{v}} }

func skillSource(s Skill) ChoiceSource {
	return ChoiceFunc(func(*Battle, *Creature, *Creature) (Skill, error) { return s, nil })
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
