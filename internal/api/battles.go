package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"battler/internal/sim"
	"battler/internal/storage"
)

type BattlePayload struct {
	A         string `json:"a" binding:"required"`
	B         string `json:"b" binding:"required"`
	PolicyA   string `json:"policy_a"`
	PolicyB   string `json:"policy_b"`
	Seed      int64  `json:"seed"`
	MaxRounds int    `json:"max_rounds"`
}

func (p BattlePayload) matchup(limit int) sim.Matchup {
	rounds := p.MaxRounds
	if rounds <= 0 || (limit > 0 && rounds > limit) {
		rounds = limit
	}
	return sim.Matchup{A: p.A, B: p.B, PolicyA: p.PolicyA, PolicyB: p.PolicyB, Seed: p.Seed, MaxRounds: rounds}
}

// CreateBattle plays one recorded battle and stores it.
func (h *Handler) CreateBattle(c *gin.Context) {
	var req BattlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	m := req.matchup(h.maxRounds)
	res, err := sim.RunSingle(c.Request.Context(), h.book, m, true)
	if err != nil {
		_ = c.Error(err)
		fail(c, err)
		return
	}
	rec := storage.FromResult(m, res)
	if err := h.repo.SaveBattle(c.Request.Context(), rec); err != nil {
		_ = c.Error(err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// ListBattles returns stored battles, newest first. ?limit=N bounds the
// result.
func (h *Handler) ListBattles(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			fail(c, fmt.Errorf("%w: limit %q", ErrInvalidRequest, v))
			return
		}
		limit = n
	}
	recs, err := h.repo.ListBattles(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) GetBattle(c *gin.Context) {
	rec, err := h.repo.GetBattle(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
