package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"procwatch/internal/collector"
	"procwatch/internal/config"
	"procwatch/internal/logger"
	"procwatch/internal/monitor"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := ParseFlags()

	cfg, err := config.LoadConfig(flags.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "procwatch: %v\n", err)
		return 1
	}
	flags.Apply(cfg)

	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "procwatch: invalid configuration: %v\n", err)
		return 1
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "procwatch: could not initialize logger: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		zLogger.Info().Msgf("Received signal %s, stopping process monitoring...", sig)
		cancel()
	}()

	mon := monitor.New(cfg, collector.NewGopsutilCollector(), zLogger)

	// A cycle-level failure is already logged inside the loop at error
	// level; the run stops cleanly either way.
	_ = mon.Run(ctx)

	return 0
}
