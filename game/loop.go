package game

import (
	"context"

	"the-snake/game/types"
	"the-snake/ui"

	"github.com/rs/zerolog"
)

// Sounds receives the audible side of game outcomes.
type Sounds interface {
	Eat()
	Reset()
}

// Session bundles everything the frame loop needs. It is built once in main,
// which also owns releasing the surface and sounds.
type Session struct {
	Game    *Game
	Surface ui.Surface
	Sounds  Sounds
	Log     zerolog.Logger
	FPS     int
}

// Run drives the game until a quit event arrives or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	fps := s.FPS
	if fps <= 0 {
		fps = types.Speed
	}

	s.Surface.Fill(types.BackgroundColor)
	s.Log.Info().Int("fps", fps).Msg("game started")

	frames := 0
	for {
		if ctx.Err() != nil {
			s.finish(frames, "interrupted")
			return nil
		}

		s.Surface.Tick(fps)
		if s.handleInput() {
			s.finish(frames, "quit")
			return nil
		}

		switch s.Game.Step() {
		case Ate:
			s.Sounds.Eat()
		case Reset:
			s.Surface.Fill(types.BackgroundColor)
			s.Sounds.Reset()
		}

		s.Game.Draw(s.Surface)
		s.Surface.SetCaption(s.Game.Caption())
		s.Surface.Present()
		frames++
	}
}

// handleInput applies every queued key and reports whether quit was
// requested. Events after a quit are dropped.
func (s *Session) handleInput() bool {
	for _, ev := range s.Surface.PollInput() {
		if ev == ui.Quit {
			return true
		}
		if dir, ok := ev.Direction(); ok {
			s.Game.Steer(dir)
		}
	}
	return false
}

func (s *Session) finish(frames int, reason string) {
	s.Game.endRun()
	stats := s.Game.Stats
	s.Log.Info().
		Str("reason", reason).
		Int("frames", frames).
		Int("runs", stats.GetRunsPlayed()).
		Int("best_length", stats.GetMaxLength()).
		Float64("avg_length", stats.GetAverageLength()).
		Float64("median_length", stats.GetMedianLength()).
		Int("eaten", stats.GetTotalEaten()).
		Dur("avg_run", stats.GetAverageDuration()).
		Msg("game over")
}
