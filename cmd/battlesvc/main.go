package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"battler/internal/api"
	"battler/internal/config"
	"battler/internal/logging"
	"battler/internal/roster"
	"battler/internal/storage"
	"battler/internal/version"
)

func main() {
	cfgDir := os.Getenv("BATTLER_CONFIG")
	if cfgDir == "" {
		cfgDir = "./assets"
	}
	sc, cc, err := config.LoadAll(cfgDir)
	if err != nil {
		logging.Fatal("missing or invalid battle configuration", err, logging.Fields{"config_dir": cfgDir, "hint": "expected skills.yaml and creatures.yaml"})
	}
	book, err := roster.NewBook(sc, cc)
	if err != nil {
		logging.Fatal("invalid roster", err, logging.Fields{"config_dir": cfgDir})
	}
	srv, err := config.LoadServer(cfgDir)
	if err != nil {
		logging.Fatal("invalid server configuration", err, logging.Fields{"config_dir": cfgDir})
	}

	dbPath := os.Getenv("BATTLER_DB")
	if dbPath == "" {
		dbPath = srv.Server.DB
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logging.Fatal("failed to create db dir", err, logging.Fields{"db": dbPath})
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("failed to initialize database", err, logging.Fields{"db": dbPath})
	}
	repo := storage.NewSQLiteRepository(db)

	addr := os.Getenv("BATTLER_ADDR")
	if addr == "" {
		addr = srv.Server.Address
	}
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.NewHandler(book, repo, srv.Battle.MaxRounds, srv.Sim.Workers))
	httpSrv := &http.Server{Addr: addr, Handler: router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		logging.Info("server starting", logging.Fields{"address": addr, "db": dbPath, "version": version.Version, "creatures": len(book.IDs())})
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server failed", err, logging.Fields{"address": addr})
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logging.Error("graceful shutdown failed", err, nil)
	}
	logging.Info("server stopped", nil)
}
