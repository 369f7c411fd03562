package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/squad-builder/internal/config"
	"github.com/bagdasarian/squad-builder/internal/db"
	"github.com/bagdasarian/squad-builder/internal/handler"
	"github.com/bagdasarian/squad-builder/internal/handler/server"
	"github.com/bagdasarian/squad-builder/internal/logger"
	"github.com/bagdasarian/squad-builder/internal/optimizer"
	"github.com/bagdasarian/squad-builder/internal/repository/postgres"
	"github.com/bagdasarian/squad-builder/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	database := db.MustLoad(connectCtx, cfg)
	cancelConnect()
	log.Info("connected to database", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))
	defer database.Close()

	squadRepo := postgres.NewSquadRepository(database)
	playerRepo := postgres.NewPlayerRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	optimizerClient := optimizer.NewClient(cfg.Optimizer.URL, cfg.Optimizer.Timeout,
		optimizer.WithRetries(cfg.Optimizer.Retries),
		optimizer.WithLogger(log.Named("optimizer")),
	)

	squadService := service.NewSquadService(squadRepo, playerRepo, optimizerClient, service.Defaults{
		Season:    cfg.Defaults.Season,
		Budget:    cfg.Defaults.Budget,
		Formation: cfg.Defaults.Formation,
	}, log.Named("squad"))
	playerService := service.NewPlayerService(playerRepo, cfg.Defaults.Season)
	statsService := service.NewStatsService(statsRepo, cfg.Defaults.Season)

	h := handler.NewHandler(squadService, playerService, statsService, log.Named("http"))
	srv := server.NewServer(h, cfg.HTTP.Addr, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
}
