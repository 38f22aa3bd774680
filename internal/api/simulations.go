package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"battler/internal/sim"
)

type SimulationPayload struct {
	BattlePayload
	Runs int `json:"runs"`
}

// RunSimulation plays a batch of bot battles and returns the summary.
// Identical concurrent requests share one run; results are not stored.
func (h *Handler) RunSimulation(c *gin.Context) {
	var req SimulationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	if req.Runs <= 0 {
		req.Runs = 1
	}
	if req.Runs > MaxRuns {
		fail(c, fmt.Errorf("%w: runs must be at most %d", ErrInvalidRequest, MaxRuns))
		return
	}
	m := req.matchup(h.maxRounds)
	key := fmt.Sprintf("%s|%s|%s|%s|%d|%d|%d", m.A, m.B, m.PolicyA, m.PolicyB, m.Seed, m.MaxRounds, req.Runs)
	// The shared run must not die with whichever caller started it.
	ctx := context.WithoutCancel(c.Request.Context())
	v, err, _ := h.sims.Do(key, func() (interface{}, error) {
		return sim.RunBatch(ctx, h.book, m, req.Runs, h.workers)
	})
	if err != nil {
		_ = c.Error(err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v.(*sim.Summary))
}
