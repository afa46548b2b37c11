// Package config reads the runtime settings. Values come from the
// environment (optionally a .env file) and can be overridden by flags.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	BackendRaylib   = "raylib"
	BackendTerminal = "terminal"
)

type Config struct {
	Backend  string
	Seed     uint64 // 0 picks a time based seed
	LogLevel string
	LogFile  string
	Sound    bool
}

// Load reads .env (if present), the SNAKE_* variables and then args.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()
	return parse(args, os.Getenv)
}

func parse(args []string, getenv func(string) string) (Config, error) {
	env := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}

	seed, err := strconv.ParseUint(env("SNAKE_SEED", "0"), 10, 64)
	if err != nil {
		return Config{}, errors.Wrap(err, "SNAKE_SEED")
	}
	sound, err := strconv.ParseBool(env("SNAKE_SOUND", "false"))
	if err != nil {
		return Config{}, errors.Wrap(err, "SNAKE_SOUND")
	}

	cfg := Config{}
	fs := flag.NewFlagSet("the-snake", flag.ContinueOnError)
	fs.StringVar(&cfg.Backend, "backend", env("SNAKE_BACKEND", BackendRaylib), "Display backend: raylib or terminal")
	fs.Uint64Var(&cfg.Seed, "seed", seed, "Random seed (0 = time based)")
	fs.StringVar(&cfg.LogLevel, "log-level", env("SNAKE_LOG_LEVEL", "info"), "Log level")
	fs.StringVar(&cfg.LogFile, "log-file", env("SNAKE_LOG_FILE", ""), "Write logs to this file instead of stderr")
	fs.BoolVar(&cfg.Sound, "sound", sound, "Play sound cues")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}

	cfg.Backend = strings.ToLower(cfg.Backend)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendRaylib, BackendTerminal:
		return nil
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
}
