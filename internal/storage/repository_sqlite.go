package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveBattle(ctx context.Context, rec *BattleRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *sqliteRepository) GetBattle(ctx context.Context, id string) (*BattleRecord, error) {
	var rec BattleRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) ListBattles(ctx context.Context, limit int) ([]BattleRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var recs []BattleRecord
	err := r.db.WithContext(ctx).
		Omit("events").
		Order("created_at desc").Order("id").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

func (r *sqliteRepository) StatsFor(ctx context.Context, creature string) (*CreatureStats, error) {
	st := &CreatureStats{Creature: creature}
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&BattleRecord{}).
			Where("(creature_a = ? OR creature_b = ?)", creature, creature)
	}
	var battles, wins, stalled int64
	if err := base().Count(&battles).Error; err != nil {
		return nil, err
	}
	if err := base().Where("winner = ?", creature).Count(&wins).Error; err != nil {
		return nil, err
	}
	if err := base().Where("stalled = ?", true).Count(&stalled).Error; err != nil {
		return nil, err
	}
	st.Battles, st.Wins, st.Stalled = int(battles), int(wins), int(stalled)
	st.Losses = st.Battles - st.Wins - st.Stalled
	if st.Battles > 0 {
		st.WinRate = float64(st.Wins) / float64(st.Battles)
	}
	return st, nil
}
