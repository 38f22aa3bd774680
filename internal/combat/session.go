package combat

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrRoundLimit   = errors.New("round limit reached without a winner")
	ErrNoChoice     = errors.New("choice source returned no skill")
	ErrForeignSkill = errors.New("choice source returned a skill the creature does not know")
)

// ChoiceSource picks the skill self uses this round. A human-input source
// may return an error to abandon the battle.
type ChoiceSource interface {
	Choose(b *Battle, self, opponent *Creature) (Skill, error)
}

// ChoiceFunc adapts a function to ChoiceSource.
type ChoiceFunc func(b *Battle, self, opponent *Creature) (Skill, error)

func (f ChoiceFunc) Choose(b *Battle, self, opponent *Creature) (Skill, error) {
	return f(b, self, opponent)
}

// Session drives rounds until the battle has a winner. MaxRounds of zero
// means no limit.
type Session struct {
	Engine    *Engine
	MaxRounds int
}

// Run asks both sources for a skill each round, executes the round and stops
// once CheckOutcome is terminal. ctx is checked between rounds only.
func (s *Session) Run(ctx context.Context, b *Battle, srcA, srcB ChoiceSource) (Outcome, error) {
	e := s.Engine
	e.emit(Event{Round: b.Round, Type: EventBattleStart, Payload: map[string]any{
		"a": b.A.ID, "b": b.B.ID, "a_hp": b.A.HP, "b_hp": b.B.HP,
	}})
	for {
		if out := CheckOutcome(b); out.Terminal() {
			s.end(b, out)
			return out, nil
		}
		if s.MaxRounds > 0 && b.Round >= s.MaxRounds {
			s.end(b, OutcomeOngoing)
			return OutcomeOngoing, fmt.Errorf("%w (%d rounds)", ErrRoundLimit, b.Round)
		}
		if err := ctx.Err(); err != nil {
			return OutcomeOngoing, err
		}
		actA, err := choose(b, srcA, b.A, b.B)
		if err != nil {
			return OutcomeOngoing, fmt.Errorf("side a: %w", err)
		}
		actB, err := choose(b, srcB, b.B, b.A)
		if err != nil {
			return OutcomeOngoing, fmt.Errorf("side b: %w", err)
		}
		e.ExecuteRound(b, actA, actB)
	}
}

func (s *Session) end(b *Battle, out Outcome) {
	payload := map[string]any{"outcome": out.String(), "rounds": b.Round}
	if side, ok := out.Winner(); ok {
		payload["winner"] = b.Creature(side).ID
	}
	s.Engine.emit(Event{Round: b.Round, Type: EventBattleEnd, Payload: payload})
}

func choose(b *Battle, src ChoiceSource, self, opp *Creature) (Action, error) {
	sk, err := src.Choose(b, self, opp)
	if err != nil {
		return Action{}, err
	}
	if sk == nil {
		return Action{}, fmt.Errorf("%s: %w", self.ID, ErrNoChoice)
	}
	if !self.Knows(sk) {
		return Action{}, fmt.Errorf("%s used %q: %w", self.ID, SkillName(sk), ErrForeignSkill)
	}
	return Action{Actor: self, Skill: sk, Target: opp}, nil
}

// RunBattle runs b to completion with no round limit.
func RunBattle(ctx context.Context, e *Engine, b *Battle, srcA, srcB ChoiceSource) (Outcome, error) {
	s := &Session{Engine: e}
	return s.Run(ctx, b, srcA, srcB)
}
