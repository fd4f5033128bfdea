package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/eliseohh/suggestbot/internal/bot"
	"github.com/eliseohh/suggestbot/internal/config"
	sentryutil "github.com/eliseohh/suggestbot/internal/sentry"
	"github.com/eliseohh/suggestbot/internal/store"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "💥 Fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration & Logger
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	// 2. Error tracking
	sentryutil.Init(cfg.SentryDSN, cfg.SentryEnvironment, log)
	defer sentryutil.Flush()

	// 3. Delivery stats (optional)
	var stats bot.Recorder
	if cfg.StatsDB != "" {
		db, err := store.NewDB(cfg.StatsDB)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.InitSchema(); err != nil {
			return err
		}
		stats = db
	}

	// 4. Bot
	b, err := bot.New(cfg, log, stats, sentryutil.CaptureError)
	if err != nil {
		return fmt.Errorf("bot init failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("Shutting down...")
		b.Stop()
	}()

	log.Info("🤖 Bot online. Waiting for suggestions...")
	b.Start()
	return nil
}
