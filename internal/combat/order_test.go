package combat

import (
	"math"
	"math/rand"
	"testing"

	"battler/internal/element"
)

func TestOrder_FasterFirst(t *testing.T) {
	a, b := emberPair(t)
	x := Action{Actor: a, Skill: ember, Target: b}
	y := Action{Actor: b, Skill: b.Skills[0], Target: a}

	coin := always(false)
	first, second, tie := Order(y, x, coin)
	if tie || first.Actor != a || second.Actor != b {
		t.Fatalf("expected faster creature a first without a tie")
	}
	if coin.flips != 0 {
		t.Fatalf("coin must not be flipped when speeds differ, flipped %d times", coin.flips)
	}
}

func TestOrder_TieUsesCoin(t *testing.T) {
	st := Stats{MaxHP: 10, Attack: 1, Speed: 7}
	a := mustCreature(t, "a", element.Normal, st, FlatSkill{Name: "Hit", Damage: 1})
	b := mustCreature(t, "b", element.Normal, st, FlatSkill{Name: "Hit", Damage: 1})
	x := Action{Actor: a, Skill: a.Skills[0], Target: b}
	y := Action{Actor: b, Skill: b.Skills[0], Target: a}

	first, _, tie := Order(x, y, always(true))
	if !tie || first.Actor != a {
		t.Fatalf("heads should keep argument order")
	}
	first, _, tie = Order(x, y, always(false))
	if !tie || first.Actor != b {
		t.Fatalf("tails should swap argument order")
	}
}

func TestOrder_TieFairness(t *testing.T) {
	st := Stats{MaxHP: 10, Speed: 3}
	a := mustCreature(t, "a", element.Normal, st, FlatSkill{Name: "Hit", Damage: 1})
	b := mustCreature(t, "b", element.Normal, st, FlatSkill{Name: "Hit", Damage: 1})
	x := Action{Actor: a, Skill: a.Skills[0], Target: b}
	y := Action{Actor: b, Skill: b.Skills[0], Target: a}

	r := rand.New(rand.NewSource(2024))
	e := NewEngine(CoinFunc(func() bool { return r.Intn(2) == 0 }), nil)

	const trials = 10000
	aFirst := 0
	for i := 0; i < trials; i++ {
		first, _ := e.ResolveOrder(x, y)
		if first.Actor == a {
			aFirst++
		}
	}
	sigma := math.Sqrt(trials * 0.25)
	if diff := math.Abs(float64(aFirst) - trials/2); diff > 3*sigma {
		t.Fatalf("tie split %d/%d deviates %.0f from even (3 sigma = %.0f)", aFirst, trials, diff, 3*sigma)
	}
}

func TestOrder_DoesNotReadHP(t *testing.T) {
	a, b := emberPair(t)
	a.HP, b.HP = 1, 1
	first, _, _ := Order(Action{Actor: b}, Action{Actor: a}, always(true))
	if first.Actor != a || a.HP != 1 || b.HP != 1 {
		t.Fatalf("order must depend on speed only and leave hp untouched")
	}
}
