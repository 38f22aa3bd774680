package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"battler/internal/config"
	"battler/internal/logging"
	"battler/internal/roster"
	"battler/internal/sim"
	"battler/internal/storage"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	var cfgDir, out, a, b, policyA, policyB, dbPath string
	var seed int64
	var n, workers, maxRounds int
	var saveLog bool
	flag.StringVar(&cfgDir, "config", envOr("BATTLER_CONFIG", "assets"), "config dir")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&a, "a", "cindercub", "side a creature id")
	flag.StringVar(&b, "b", "sproutling", "side b creature id")
	flag.StringVar(&policyA, "policy-a", "strongest", "side a bot policy")
	flag.StringVar(&policyB, "policy-b", "random", "side b bot policy")
	flag.StringVar(&dbPath, "db", os.Getenv("BATTLER_DB"), "sqlite path to store single battles in (empty: don't store)")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.IntVar(&workers, "workers", config.DefaultWorkers, "batch workers")
	flag.IntVar(&maxRounds, "max-rounds", config.DefaultMaxRounds, "round limit per battle (0: none)")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.Parse()

	sc, cc, err := config.LoadAll(cfgDir)
	if err != nil {
		logging.Fatal("failed to load config", err, logging.Fields{"config_dir": cfgDir})
	}
	book, err := roster.NewBook(sc, cc)
	if err != nil {
		logging.Fatal("invalid roster", err, logging.Fields{"config_dir": cfgDir})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := sim.Matchup{A: a, B: b, PolicyA: policyA, PolicyB: policyB, Seed: seed, MaxRounds: maxRounds}
	if n <= 1 {
		res, err := sim.RunSingle(ctx, book, m, saveLog)
		if err != nil {
			logging.Fatal("battle failed", err, logging.Fields{"a": a, "b": b, "seed": seed})
		}
		if dbPath != "" {
			store(ctx, dbPath, m, res)
		}
		if err := os.WriteFile(out, sim.MarshalPretty(res), 0644); err != nil {
			logging.Fatal("failed to write result", err, logging.Fields{"out": out})
		}
		fmt.Printf("Single battle finished. Outcome=%s, winner=%q, rounds=%d -> %s\n", res.Outcome, res.Winner, res.Rounds, out)
		return
	}

	summary, err := sim.RunBatch(ctx, book, m, n, workers)
	if err != nil {
		logging.Fatal("batch failed", err, logging.Fields{"a": a, "b": b, "runs": n})
	}
	if err := os.WriteFile(out, sim.MarshalPretty(summary), 0644); err != nil {
		logging.Fatal("failed to write summary", err, logging.Fields{"out": out})
	}
	fmt.Printf("Batch %d done. WinRateA=%.3f, ties=%d -> %s\n", n, summary.WinRateA, summary.TieRounds, filepath.Base(out))
}

func store(ctx context.Context, dbPath string, m sim.Matchup, res sim.Result) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logging.Fatal("failed to create db dir", err, logging.Fields{"db": dbPath})
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("failed to open database", err, logging.Fields{"db": dbPath})
	}
	rec := storage.FromResult(m, res)
	if err := storage.NewSQLiteRepository(db).SaveBattle(ctx, rec); err != nil {
		logging.Fatal("failed to store battle", err, logging.Fields{"db": dbPath})
	}
	logging.Info("battle stored", logging.Fields{"id": rec.ID, "db": dbPath})
}
