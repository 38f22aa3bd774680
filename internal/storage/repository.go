package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("battle not found")

// DefaultListLimit caps ListBattles when the caller passes no limit.
const DefaultListLimit = 50

type Repository interface {
	SaveBattle(ctx context.Context, r *BattleRecord) error
	// GetBattle returns ErrNotFound for unknown ids.
	GetBattle(ctx context.Context, id string) (*BattleRecord, error)
	// ListBattles returns the newest battles first, without their events.
	ListBattles(ctx context.Context, limit int) ([]BattleRecord, error)
	StatsFor(ctx context.Context, creature string) (*CreatureStats, error)
}
