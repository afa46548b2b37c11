package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"the-snake/audio"
	"the-snake/config"
	"the-snake/game"
	"the-snake/game/types"
	"the-snake/logging"
	"the-snake/ui"
	"the-snake/ui/terminal"
	"the-snake/ui/window"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(logging.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		Quiet: cfg.Backend == config.BackendTerminal,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Str("backend", cfg.Backend).Msg("config loaded")

	grid := types.DefaultGrid()
	g := game.NewGame(grid, rand.New(rand.NewSource(seed)), log)

	surface, err := openSurface(cfg.Backend, grid, g.Caption())
	if err != nil {
		log.Error().Err(err).Msg("could not open display")
		return err
	}
	defer surface.Close()

	cues := audio.Disabled()
	if cfg.Sound {
		if cues, err = audio.New(); err != nil {
			log.Warn().Err(err).Msg("sound disabled")
		}
	}
	defer cues.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := &game.Session{
		Game:    g,
		Surface: surface,
		Sounds:  cues,
		Log:     log,
		FPS:     types.Speed,
	}
	return session.Run(ctx)
}

func openSurface(backend string, grid types.Grid, caption string) (ui.Surface, error) {
	switch backend {
	case config.BackendTerminal:
		screen, err := terminal.New(grid)
		if err != nil {
			return nil, err
		}
		return screen, nil
	case config.BackendRaylib:
		return window.New(grid, caption), nil
	default:
		return nil, errors.Errorf("unknown backend %q", backend)
	}
}
