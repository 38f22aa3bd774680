package sim

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"battler/internal/combat"
	"battler/internal/roster"
)

// Share is a total together with its fraction of all damage dealt.
type Share struct {
	Total int     `json:"total"`
	Ratio float64 `json:"ratio"`
}

type Summary struct {
	A           string           `json:"a"`
	B           string           `json:"b"`
	Runs        int              `json:"runs"`
	WinsA       int              `json:"wins_a"`
	WinsB       int              `json:"wins_b"`
	Stalled     int              `json:"stalled"`
	WinRateA    float64          `json:"win_rate_a"`
	AvgRounds   float64          `json:"avg_rounds"`
	TieRounds   int              `json:"tie_rounds"`
	TiesWonByA  int              `json:"ties_won_by_a"`
	TotalDamage int              `json:"total_damage"`
	BySkill     map[string]Share `json:"by_skill"`
}

// RunBatch plays n independent battles of m across workers goroutines.
// Battle i uses seed m.Seed+i, so the summary does not depend on scheduling.
func RunBatch(ctx context.Context, book *roster.Book, m Matchup, n, workers int) (*Summary, error) {
	if n < 1 {
		n = 1
	}
	if workers < 1 {
		workers = 1
	}
	type stat struct {
		winsA, winsB, stalled int
		rounds                int
		ties, tiesA           int
		bySkill               map[string]int
	}
	st := stat{bySkill: map[string]int{}}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				mm := m
				mm.Seed = m.Seed + int64(i)
				res, err := RunSingle(ctx, book, mm, false)
				if err != nil {
					return err
				}
				mu.Lock()
				switch {
				case res.Stalled:
					st.stalled++
				case res.Outcome == combat.OutcomeSideAWins:
					st.winsA++
				default:
					st.winsB++
				}
				st.rounds += res.Rounds
				st.ties += res.TieRounds
				st.tiesA += res.TiesWonByA
				for k, v := range res.DamageBySkill {
					st.bySkill[k] += v
				}
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, v := range st.bySkill {
		total += v
	}
	bySkill := make(map[string]Share, len(st.bySkill))
	for k, v := range st.bySkill {
		share := 0.0
		if total > 0 {
			share = float64(v) / float64(total)
		}
		bySkill[k] = Share{Total: v, Ratio: share}
	}
	return &Summary{
		A:           m.A,
		B:           m.B,
		Runs:        n,
		WinsA:       st.winsA,
		WinsB:       st.winsB,
		Stalled:     st.stalled,
		WinRateA:    float64(st.winsA) / float64(n),
		AvgRounds:   float64(st.rounds) / float64(n),
		TieRounds:   st.ties,
		TiesWonByA:  st.tiesA,
		TotalDamage: total,
		BySkill:     bySkill,
	}, nil
}
