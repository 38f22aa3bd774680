package combat

import (
	"fmt"
	"math"

	"battler/internal/element"
)

// Hit is the breakdown of a damage calculation.
type Hit struct {
	Raw        float64 `json:"raw"`
	Multiplier float64 `json:"multiplier"`
	Damage     int     `json:"damage"`
}

// Calculate works out the damage skill would deal from attacker to defender.
// It does not modify either creature.
//
// Stat skills:
//
//	physical: attack + base - defense
//	special:  spAttack / max(spDefense, 1) * base
//
// scaled by the element multiplier and truncated toward zero. Flat skills
// deal their fixed damage. The result is never below zero.
func Calculate(attacker, defender *Creature, skill Skill) Hit {
	switch s := skill.(type) {
	case StatSkill:
		return statHit(attacker, defender, s)
	case *StatSkill:
		return statHit(attacker, defender, *s)
	case FlatSkill:
		return Hit{Raw: float64(s.Damage), Multiplier: element.Neutral, Damage: floorDamage(s.Damage)}
	case *FlatSkill:
		return Hit{Raw: float64(s.Damage), Multiplier: element.Neutral, Damage: floorDamage(s.Damage)}
	case nil:
		panic("combat: damage requested for nil skill")
	default:
		panic(fmt.Sprintf("combat: unsupported skill type %T", skill))
	}
}

// ComputeDamage returns the final, non-negative damage of one strike.
func ComputeDamage(attacker, defender *Creature, skill Skill) int {
	return Calculate(attacker, defender, skill).Damage
}

func statHit(attacker, defender *Creature, s StatSkill) Hit {
	var raw float64
	if s.Physical {
		raw = float64(attacker.Stats.Attack + s.BaseDamage - defender.Stats.Defense)
	} else {
		spDef := defender.Stats.SpDefense
		if spDef < 1 {
			spDef = 1
		}
		raw = float64(attacker.Stats.SpAttack) / float64(spDef) * float64(s.BaseDamage)
	}
	mult := element.Effectiveness(s.Elem, defender.Elem)
	return Hit{Raw: raw, Multiplier: mult, Damage: floorDamage(int(math.Trunc(raw * mult)))}
}

// floorDamage clamps damage at zero so a weak strike never heals.
func floorDamage(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
