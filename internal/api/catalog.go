package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"battler/internal/config"
	"battler/internal/roster"
)

// ListCreatures returns every creature definition in roster order.
func (h *Handler) ListCreatures(c *gin.Context) {
	ids := h.book.IDs()
	out := make([]config.CreatureDef, 0, len(ids))
	for _, id := range ids {
		if def, ok := h.book.Def(id); ok {
			out = append(out, def)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListSkills(c *gin.Context) {
	c.JSON(http.StatusOK, h.book.Skills())
}

// CreatureStats reports stored wins and losses for one creature.
func (h *Handler) CreatureStats(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.book.Def(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{JSONKeyError: roster.ErrUnknownCreature.Error()})
		return
	}
	st, err := h.repo.StatsFor(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
