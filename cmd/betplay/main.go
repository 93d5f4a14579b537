package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/betplay/config"
	"github.com/alejandrodnm/betplay/internal/adapters/notify"
	"github.com/alejandrodnm/betplay/internal/adapters/random"
	"github.com/alejandrodnm/betplay/internal/adapters/storage"
	"github.com/alejandrodnm/betplay/internal/ports"
	"github.com/alejandrodnm/betplay/internal/profile"
	"github.com/alejandrodnm/betplay/internal/settlement"
	"github.com/alejandrodnm/betplay/internal/simulator"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	once := flag.Bool("once", false, "run one tick and exit")
	ephemeral := flag.Bool("ephemeral", false, "keep state in memory instead of SQLite")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	table := flag.Bool("table", false, "print the full event board (default: compact 1-line)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	slog.Info("betplay starting",
		"config", *configPath,
		"interval", cfg.TickInterval(),
		"ephemeral", *ephemeral,
		"once", *once,
	)

	var store ports.SnapshotStore
	if *ephemeral {
		store = storage.NewMemoryStore()
	} else {
		sqlite, err := storage.NewSQLiteStore(cfg.Storage.DSN)
		if err != nil {
			slog.Error("failed to open storage", "err", err, "dsn", cfg.Storage.DSN)
			os.Exit(1)
		}
		store = sqlite
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	profiles := profile.New(ctx, store, profile.Config{
		DailyQuota:  cfg.Profile.DailyQuota,
		ResetWindow: cfg.ResetWindow(),
	})
	settler := settlement.New(profiles)
	notifier := notify.NewConsole(*table)

	simCfg := simulator.DefaultConfig()
	simCfg.TickInterval = cfg.TickInterval()

	manager := simulator.New(ctx, simCfg, store, random.NewUniform(), settler, profiles, notifier)

	if *once {
		manager.RunOnce(ctx)
		return
	}

	if err := manager.Run(ctx); err != nil {
		slog.Error("simulator exited with error", "err", err)
		os.Exit(1)
	}

	slog.Info("betplay stopped cleanly")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
