package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/zeusync/moco/internal/app"
	"github.com/zeusync/moco/internal/config"
	"github.com/zeusync/moco/internal/core/observability/log"
	"github.com/zeusync/moco/internal/injector"
)

func main() {
	fs := config.Flags("moco")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: moco [flags] scene.yaml...\n\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	logger := injector.ProvideLogger(log.LevelInfo)
	defer func() { _ = logger.Sync() }()

	cfgPath, _ := fs.GetString("config")
	cfg, err := config.Load(cfgPath, fs)
	if err != nil {
		logger.Fatal("load config", log.String("path", cfgPath), log.Error(err))
	}
	logger.SetLevel(cfg.LogLevel())
	logger.Debug("config loaded", log.String("level", logger.GetLevel().String()), log.Int("workers", cfg.Workers))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := app.Run(ctx, cfg, fs.Args(), logger)
	if err != nil {
		logger.Error("export failed", log.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	for _, r := range results {
		fmt.Println(r.Path)
	}
}
