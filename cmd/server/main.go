// Package main provides the Two Dice Roll Telnet server. It accepts
// client connections and runs the interactive dice game for each one.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/twodice/internal/config"
	"github.com/cory-johannsen/twodice/internal/frontend/handlers"
	"github.com/cory-johannsen/twodice/internal/frontend/telnet"
	"github.com/cory-johannsen/twodice/internal/frontend/theme"
	"github.com/cory-johannsen/twodice/internal/game/dice"
	"github.com/cory-johannsen/twodice/internal/game/session"
	"github.com/cory-johannsen/twodice/internal/observability"
	"github.com/cory-johannsen/twodice/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (empty for built-in defaults)")
	flag.Parse()

	var cfg config.Config
	if *configPath == "" {
		cfg = config.Default()
	} else {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting two dice roll server",
		zap.String("telnet_addr", cfg.Telnet.Addr()),
		zap.String("default_distribution", cfg.Game.DefaultDistribution),
	)

	th := theme.Default()
	if cfg.Game.Theme != "" {
		th, err = theme.Load(cfg.Game.Theme)
		if err != nil {
			logger.Fatal("loading theme", zap.Error(err))
		}
		logger.Info("theme loaded", zap.String("path", cfg.Game.Theme))
	}

	// Build services
	roller := dice.NewLoggedRoller(dice.NewCryptoSource(), logger)
	sessions := session.NewManager()
	gameHandler := handlers.NewGameHandler(sessions, roller, cfg.Game, th, logger)
	telnetAcceptor := telnet.NewAcceptor(cfg.Telnet, gameHandler, logger)

	// Wire lifecycle
	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("telnet", &server.FuncService{
		StartFn: func() error {
			return telnetAcceptor.ListenAndServe()
		},
		StopFn: func() {
			telnetAcceptor.Stop()
		},
	})

	logger.Info("server initialized", zap.Duration("startup", time.Since(start)))

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
