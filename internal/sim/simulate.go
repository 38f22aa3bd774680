package sim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"battler/internal/bot"
	"battler/internal/combat"
	"battler/internal/roster"
	"battler/internal/util"
)

// Matchup describes a bot-versus-bot battle between two roster creatures.
type Matchup struct {
	A         string `json:"a"`
	B         string `json:"b"`
	PolicyA   string `json:"policy_a,omitempty"`
	PolicyB   string `json:"policy_b,omitempty"`
	Seed      int64  `json:"seed"`
	MaxRounds int    `json:"max_rounds,omitempty"`
}

type Result struct {
	A             string         `json:"a"`
	B             string         `json:"b"`
	Seed          int64          `json:"seed"`
	Outcome       combat.Outcome `json:"outcome"`
	Winner        string         `json:"winner,omitempty"`
	Stalled       bool           `json:"stalled,omitempty"`
	Rounds        int            `json:"rounds"`
	HPA           int            `json:"hp_a"`
	HPB           int            `json:"hp_b"`
	TieRounds     int            `json:"tie_rounds"`
	TiesWonByA    int            `json:"ties_won_by_a"`
	DamageBySkill map[string]int `json:"damage_by_skill,omitempty"`
	Events        []combat.Event `json:"events,omitempty"`
}

// RunSingle plays one battle. The coin and both bots draw from separate
// generators derived from m.Seed, so equal matchups replay identically.
// Hitting the round limit is reported through Result.Stalled, not an error.
func RunSingle(ctx context.Context, book *roster.Book, m Matchup, record bool) (Result, error) {
	a, err := book.Spawn(m.A)
	if err != nil {
		return Result{}, err
	}
	b, err := book.Spawn(m.B)
	if err != nil {
		return Result{}, err
	}
	srcA, err := bot.New(m.PolicyA, util.New(m.Seed+1))
	if err != nil {
		return Result{}, fmt.Errorf("side a: %w", err)
	}
	srcB, err := bot.New(m.PolicyB, util.New(m.Seed+2))
	if err != nil {
		return Result{}, fmt.Errorf("side b: %w", err)
	}
	battle, err := combat.NewBattle(a, b)
	if err != nil {
		return Result{}, err
	}

	res := Result{A: a.ID, B: b.ID, Seed: m.Seed, DamageBySkill: map[string]int{}}
	emit := func(ev combat.Event) {
		if ev.Type == combat.EventStrike {
			name, _ := ev.Payload["skill"].(string)
			dmg, _ := ev.Payload["damage"].(int)
			res.DamageBySkill[name] += dmg
		}
		if record {
			res.Events = append(res.Events, ev)
		}
	}
	coin := util.NewCoin(m.Seed)
	session := &combat.Session{Engine: combat.NewEngine(coin, emit), MaxRounds: m.MaxRounds}

	out, err := session.Run(ctx, battle, srcA, srcB)
	switch {
	case errors.Is(err, combat.ErrRoundLimit):
		res.Stalled = true
	case err != nil:
		return Result{}, err
	}
	res.Outcome = out
	if side, ok := out.Winner(); ok {
		res.Winner = battle.Creature(side).ID
	}
	res.Rounds = battle.Round
	res.HPA, res.HPB = a.HP, b.HP
	// Session passes side a's action first, so heads means a moved first.
	res.TieRounds, res.TiesWonByA = coin.Flips, coin.Heads
	return res, nil
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
