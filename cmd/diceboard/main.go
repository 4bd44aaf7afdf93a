// Package main is the entry point for diceboard.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/samdwyer/diceboard/internal/config"
	"github.com/samdwyer/diceboard/internal/game"
	"github.com/samdwyer/diceboard/internal/telemetry"
	"github.com/samdwyer/diceboard/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry().Enabled() {
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry())
		if err != nil {
			logger.Warn().Err(err).Msg("telemetry setup failed, running without traces")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("telemetry shutdown")
				}
			}()
		}
	}

	stdin := bufio.NewReader(os.Stdin)
	palette := ui.NewPalette(cfg.Color && ui.IsTerminal(os.Stdout))
	prompter := ui.NewPrompter(stdin, os.Stdout, palette)

	gameCfg := game.DefaultConfig()
	gameCfg.StartCoins = cfg.StartCoins
	gameCfg.TurnDelay = cfg.TurnDelay

	gameCfg.Interactive, err = prompter.AskMode()
	if err != nil {
		return err
	}

	// The prompter has already warned about an invalid seed.
	gameCfg.Seed, err = prompter.AskSeed()
	if err != nil && !errors.Is(err, ui.ErrInvalidSeed) {
		return err
	}

	if gameCfg.Interactive {
		gameCfg.Player1, gameCfg.Player2, err = prompter.AskNames(game.DefaultPlayer1, game.DefaultPlayer2)
		if err != nil {
			return err
		}
	}

	var display game.Display = ui.NewConsoleWithPalette(os.Stdout, stdin, palette)
	var screen *ui.ScreenDisplay
	if gameCfg.Interactive && cfg.Screen {
		s, err := ui.NewScreen()
		if err != nil {
			logger.Warn().Err(err).Msg("full-screen mode unavailable, using the console")
		} else {
			screen = ui.NewScreenDisplay(s)
			defer screen.Close()
			display = screen
		}
	}

	g, err := game.New(ctx, gameCfg, display, game.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	outcome, err := g.Run(ctx)
	if errors.Is(err, ui.ErrQuit) || errors.Is(err, context.Canceled) {
		logger.Info().Int64("seed", g.Seed()).Msg("game abandoned")
		return nil
	}
	if err != nil {
		return err
	}

	if screen != nil {
		screen.WaitForExit()
	}
	logger.Debug().Str("winner", outcome.Winner).Int64("seed", g.Seed()).Msg("done")
	return nil
}
