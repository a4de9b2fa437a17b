package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/cannon-defense/config"
	"github.com/lixenwraith/cannon-defense/constants"
	"github.com/lixenwraith/cannon-defense/core"
	"github.com/lixenwraith/cannon-defense/input"
	"github.com/lixenwraith/cannon-defense/session"
)

func main() {
	flags := pflag.NewFlagSet("cannon-defense", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.Bool("debug", false, "write logs to the log directory")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.String("log-dir", "./logs", "directory for the log file")
	_ = flags.Parse(os.Args[1:])

	if err := run(*configPath, flags); err != nil {
		fmt.Fprintf(os.Stderr, "cannon-defense: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, flags *pflag.FlagSet) error {
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return err
	}

	logger, logFile, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	// Goroutines started through core.Go restore the terminal before exiting on panic
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	w, h := screen.Size()
	needH := cfg.Grid.Height + constants.StatusLineOffset + 4
	if w < cfg.Grid.Width || h < needH {
		logger.Warn().Int("width", w).Int("height", h).Int("needWidth", cfg.Grid.Width).Int("needHeight", needH).
			Msg("terminal smaller than playfield, output will be clipped")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller := input.NewPoller(screen, input.DefaultKeyTable())
	s := session.New(cfg, screen, poller, session.WithLogger(logger))

	logger.Info().Str("config", configPath).Int("tiers", len(cfg.Tiers)).Msg("cannon-defense started")
	err = s.Run(ctx)
	logger.Info().Err(err).Msg("cannon-defense stopped")

	if errors.Is(err, session.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
