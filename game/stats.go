package game

import (
	"sort"
	"time"
)

// GameStats keeps every finished run of the session in memory and answers
// the aggregate questions shown in the caption and the quit summary.
type GameStats struct {
	Runs []RunRecord
}

// RunRecord is one life of the snake, from (re)spawn to reset or quit.
type RunRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Length    int
	Eaten     int
}

func (r RunRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func NewGameStats() *GameStats {
	return &GameStats{
		Runs: make([]RunRecord, 0),
	}
}

// AddRun records a finished run.
func (s *GameStats) AddRun(length, eaten int, startTime, endTime time.Time) {
	s.Runs = append(s.Runs, RunRecord{
		StartTime: startTime,
		EndTime:   endTime,
		Length:    length,
		Eaten:     eaten,
	})
}

func (s *GameStats) GetRunsPlayed() int {
	return len(s.Runs)
}

// GetMaxLength returns the longest snake of the session.
func (s *GameStats) GetMaxLength() int {
	maxLength := 0
	for _, run := range s.Runs {
		if run.Length > maxLength {
			maxLength = run.Length
		}
	}
	return maxLength
}

func (s *GameStats) GetAverageLength() float64 {
	if len(s.Runs) == 0 {
		return 0
	}

	total := 0
	for _, run := range s.Runs {
		total += run.Length
	}
	return float64(total) / float64(len(s.Runs))
}

func (s *GameStats) GetMedianLength() float64 {
	if len(s.Runs) == 0 {
		return 0
	}

	lengths := make([]int, len(s.Runs))
	for i, run := range s.Runs {
		lengths[i] = run.Length
	}
	sort.Ints(lengths)

	mid := len(lengths) / 2
	if len(lengths)%2 == 0 {
		return float64(lengths[mid-1]+lengths[mid]) / 2
	}
	return float64(lengths[mid])
}

func (s *GameStats) GetTotalEaten() int {
	total := 0
	for _, run := range s.Runs {
		total += run.Eaten
	}
	return total
}

func (s *GameStats) GetAverageDuration() time.Duration {
	if len(s.Runs) == 0 {
		return 0
	}

	var total time.Duration
	for _, run := range s.Runs {
		total += run.Duration()
	}
	return total / time.Duration(len(s.Runs))
}
