package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"battler/internal/bot"
	"battler/internal/roster"
	"battler/internal/storage"
)

const (
	RouteAPIPrefix     = "/api"
	RouteCreatures     = "/creatures"
	RouteCreatureStats = "/creatures/:id/stats"
	RouteSkills        = "/skills"
	RouteBattles       = "/battles"
	RouteBattleByID    = "/battles/:id"
	RouteSimulations   = "/simulations"
	RouteVersion       = "/version"

	JSONKeyError = "error"

	// MaxRuns caps a single simulation request.
	MaxRuns = 10000
)

var ErrInvalidRequest = errors.New("invalid request")

// Handler groups the battle HTTP handlers.
type Handler struct {
	book      *roster.Book
	repo      storage.Repository
	maxRounds int
	workers   int
	sims      singleflight.Group
}

// NewHandler creates a Handler. maxRounds bounds every battle it runs and
// workers sizes the batch pool used by simulations.
func NewHandler(book *roster.Book, repo storage.Repository, maxRounds, workers int) *Handler {
	return &Handler{book: book, repo: repo, maxRounds: maxRounds, workers: workers}
}

// Register mounts every route under RouteAPIPrefix.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group(RouteAPIPrefix)
	g.GET(RouteCreatures, h.ListCreatures)
	g.GET(RouteCreatureStats, h.CreatureStats)
	g.GET(RouteSkills, h.ListSkills)
	g.POST(RouteBattles, h.CreateBattle)
	g.GET(RouteBattles, h.ListBattles)
	g.GET(RouteBattleByID, h.GetBattle)
	g.POST(RouteSimulations, h.RunSimulation)
	g.GET(RouteVersion, Version)
}

// NewRouter returns a gin engine with recovery and every route registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	h.Register(r)
	return r
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, roster.ErrUnknownCreature),
		errors.Is(err, bot.ErrUnknownPolicy):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{JSONKeyError: err.Error()})
}
