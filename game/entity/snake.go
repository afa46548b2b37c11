package entity

import (
	"the-snake/game/types"
)

// Snake is the player's segment chain. Positions are stored head first.
type Snake struct {
	Positions []types.Point
	Length    int
	Direction types.Direction

	// Last is the tail cell dropped by the most recent move, nil when the
	// tail was kept. The renderer paints it with the background.
	Last *types.Point

	next types.Direction
}

func NewSnake(start types.Point) *Snake {
	return &Snake{
		Positions: []types.Point{start},
		Length:    1,
		Direction: types.Right, // Start moving right
	}
}

func (s *Snake) Kind() Kind {
	return KindSnake
}

func (s *Snake) Cells() []types.Point {
	return s.Positions
}

func (s *Snake) GetHead() types.Point {
	return s.Positions[0]
}

// Steer buffers a turn for the next move. A turn straight back into the
// current heading is ignored; otherwise the latest request replaces any
// earlier one that has not been consumed yet.
func (s *Snake) Steer(dir types.Direction) {
	if dir == types.None || dir == s.Direction.Opposite() {
		return
	}
	s.next = dir
}

// Pending returns the buffered turn, or types.None.
func (s *Snake) Pending() types.Direction {
	return s.next
}

// UpdateDirection commits the buffered turn and empties the slot.
func (s *Snake) UpdateDirection() {
	if s.next != types.None {
		s.Direction = s.next
		s.next = types.None
	}
}

// Move prepends newHead and drops the tail once the body is longer than
// the target length.
func (s *Snake) Move(newHead types.Point) {
	s.Positions = append(s.Positions, types.Point{})
	copy(s.Positions[1:], s.Positions)
	s.Positions[0] = newHead

	s.Last = nil
	if len(s.Positions) > s.Length {
		tail := s.Positions[len(s.Positions)-1]
		s.Last = &tail
		s.Positions = s.Positions[:len(s.Positions)-1]
	}
}

// Grow raises the target length; the body catches up on later moves.
func (s *Snake) Grow() {
	s.Length++
}

// Reset shrinks the snake back to a single segment at start.
func (s *Snake) Reset(start types.Point, dir types.Direction) {
	s.Positions = []types.Point{start}
	s.Length = 1
	s.Direction = dir
	s.Last = nil
	s.next = types.None
}

// Occupies reports whether p is one of the snake's cells.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Positions {
		if part == p {
			return true
		}
	}
	return false
}
