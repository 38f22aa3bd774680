package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"battler/internal/combat"
	"battler/internal/sim"
)

// BattleRecord is one finished (or stalled) battle.
// Events are only present when the battle was run with recording on.
type BattleRecord struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
	CreatureA string         `json:"a" gorm:"size:64;index"`
	CreatureB string         `json:"b" gorm:"size:64;index"`
	PolicyA   string         `json:"policy_a" gorm:"size:32"`
	PolicyB   string         `json:"policy_b" gorm:"size:32"`
	Seed      int64          `json:"seed"`
	Outcome   string         `json:"outcome" gorm:"size:16"`
	Winner    string         `json:"winner,omitempty" gorm:"size:64;index"`
	Stalled   bool           `json:"stalled"`
	Rounds    int            `json:"rounds"`
	HPA       int            `json:"hp_a"`
	HPB       int            `json:"hp_b"`
	TieRounds int            `json:"tie_rounds"`
	Events    []combat.Event `json:"events,omitempty" gorm:"serializer:json;type:text"`
}

func (r *BattleRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// FromResult builds a record for a battle played from m.
func FromResult(m sim.Matchup, res sim.Result) *BattleRecord {
	return &BattleRecord{
		CreatureA: res.A,
		CreatureB: res.B,
		PolicyA:   m.PolicyA,
		PolicyB:   m.PolicyB,
		Seed:      res.Seed,
		Outcome:   res.Outcome.String(),
		Winner:    res.Winner,
		Stalled:   res.Stalled,
		Rounds:    res.Rounds,
		HPA:       res.HPA,
		HPB:       res.HPB,
		TieRounds: res.TieRounds,
		Events:    res.Events,
	}
}

// CreatureStats aggregates every stored battle a creature took part in.
// A mirror match counts once, as a win.
type CreatureStats struct {
	Creature string  `json:"creature"`
	Battles  int     `json:"battles"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Stalled  int     `json:"stalled"`
	WinRate  float64 `json:"win_rate"`
}
