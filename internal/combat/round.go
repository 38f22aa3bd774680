package combat

import (
	"fmt"

	"battler/internal/element"
)

// Engine resolves rounds. Coin settles speed ties; Emit, when set, receives
// the battle log.
type Engine struct {
	Coin Coin
	Emit func(ev Event)
}

func NewEngine(coin Coin, emit func(Event)) *Engine {
	if coin == nil {
		panic("combat: engine requires a coin")
	}
	return &Engine{Coin: coin, Emit: emit}
}

func (e *Engine) emit(ev Event) {
	if e.Emit != nil {
		e.Emit(ev)
	}
}

// Strike is the record of one executed action.
type Strike struct {
	Actor    *Creature
	Target   *Creature
	Skill    Skill
	Hit      Hit
	Applied  int
	TargetHP int
	KO       bool
}

// RoundOutcome describes one resolved round. Strikes holds one entry when
// the first strike knocked its target out, two otherwise.
type RoundOutcome struct {
	Round   int
	Tie     bool
	Strikes []Strike
	Fainted *Creature
	Outcome Outcome
}

// ResolveOrder is Order using the engine's coin.
func (e *Engine) ResolveOrder(a, b Action) (first, second Action) {
	first, second, _ = Order(a, b, e.Coin)
	return first, second
}

// ExecuteRound resolves one round of b: order by speed, first strike, stop
// if its target fainted, otherwise second strike.
//
// Both actors must be alive, know their skill and belong to b. Violations
// are programming errors and panic.
func (e *Engine) ExecuteRound(b *Battle, x, y Action) RoundOutcome {
	mustLegal(b, x)
	mustLegal(b, y)

	b.Round++
	out := RoundOutcome{Round: b.Round, Strikes: make([]Strike, 0, 2)}
	e.emit(Event{Round: b.Round, Type: EventRoundStart, Payload: map[string]any{
		"a_hp": b.A.HP, "b_hp": b.B.HP,
	}})

	first, second, tie := Order(x, y, e.Coin)
	out.Tie = tie
	e.emit(Event{Round: b.Round, Type: EventOrder, Payload: map[string]any{
		"first": first.Actor.ID, "second": second.Actor.ID, "tie": tie,
	}})

	for _, act := range [2]Action{first, second} {
		st := e.strike(b, act)
		out.Strikes = append(out.Strikes, st)
		if st.KO {
			out.Fainted = st.Target
			break
		}
	}
	out.Outcome = CheckOutcome(b)
	return out
}

func (e *Engine) strike(b *Battle, act Action) Strike {
	hit := Calculate(act.Actor, act.Target, act.Skill)
	applied := act.Target.takeDamage(hit.Damage)
	st := Strike{
		Actor:    act.Actor,
		Target:   act.Target,
		Skill:    act.Skill,
		Hit:      hit,
		Applied:  applied,
		TargetHP: act.Target.HP,
		KO:       act.Target.Fainted(),
	}
	e.emit(Event{Round: b.Round, Type: EventStrike, Payload: map[string]any{
		"actor":      act.Actor.ID,
		"skill":      SkillName(act.Skill),
		"target":     act.Target.ID,
		"damage":     applied,
		"multiplier": hit.Multiplier,
		"label":      element.Describe(hit.Multiplier),
		"hp":         act.Target.HP,
	}})
	if st.KO {
		b.recordFaint(act.Target)
		e.emit(Event{Round: b.Round, Type: EventFaint, Payload: map[string]any{
			"id": act.Target.ID, "side": b.SideOf(act.Target).String(),
		}})
	}
	return st
}

func mustLegal(b *Battle, a Action) {
	switch {
	case a.Actor == nil || a.Target == nil:
		panic("combat: action without actor or target")
	case a.Actor == a.Target:
		panic(fmt.Sprintf("combat: %q cannot target itself", a.Actor.ID))
	case a.Skill == nil:
		panic(fmt.Sprintf("combat: %q acts without a skill", a.Actor.ID))
	case a.Actor.Fainted():
		panic(fmt.Sprintf("combat: fainted creature %q cannot act", a.Actor.ID))
	case !a.Actor.Knows(a.Skill):
		panic(fmt.Sprintf("combat: %q does not know %q", a.Actor.ID, SkillName(a.Skill)))
	}
	// SideOf panics for creatures outside the battle.
	b.SideOf(a.Actor)
	b.SideOf(a.Target)
}
