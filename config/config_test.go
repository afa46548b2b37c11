package config

import (
	"testing"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(nil, envFrom(nil))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Config{Backend: BackendRaylib, Seed: 0, LogLevel: "info", LogFile: "", Sound: false}
	if cfg != want {
		t.Errorf("defaults = %+v, want %+v", cfg, want)
	}
}

func TestParseEnvironment(t *testing.T) {
	cfg, err := parse(nil, envFrom(map[string]string{
		"SNAKE_BACKEND":   "Terminal",
		"SNAKE_SEED":      "42",
		"SNAKE_LOG_LEVEL": "debug",
		"SNAKE_LOG_FILE":  "snake.log",
		"SNAKE_SOUND":     "true",
	}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Config{Backend: BackendTerminal, Seed: 42, LogLevel: "debug", LogFile: "snake.log", Sound: true}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := parse(
		[]string{"-backend", "raylib", "-seed", "7", "-sound=false"},
		envFrom(map[string]string{"SNAKE_BACKEND": "terminal", "SNAKE_SEED": "42", "SNAKE_SOUND": "1"}),
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Backend != BackendRaylib || cfg.Seed != 7 || cfg.Sound {
		t.Errorf("flags did not win: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad seed", nil, map[string]string{"SNAKE_SEED": "abc"}},
		{"bad sound", nil, map[string]string{"SNAKE_SOUND": "loud"}},
		{"unknown backend", []string{"-backend", "opengl"}, nil},
		{"unknown flag", []string{"-speed", "5"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse(tt.args, envFrom(tt.env)); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}
