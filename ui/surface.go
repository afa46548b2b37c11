package ui

import "the-snake/game/types"

// Event is a discrete input event delivered by a Surface.
type Event int

const (
	KeyUp Event = iota + 1
	KeyDown
	KeyLeft
	KeyRight
	Quit
)

// Direction maps a directional key to its heading.
func (e Event) Direction() (types.Direction, bool) {
	switch e {
	case KeyUp:
		return types.Up, true
	case KeyDown:
		return types.Down, true
	case KeyLeft:
		return types.Left, true
	case KeyRight:
		return types.Right, true
	default:
		return types.None, false
	}
}

func (e Event) String() string {
	switch e {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Surface is a cell-addressed drawing target plus its input queue and
// frame pacing. Positions are grid-aligned pixel coordinates.
type Surface interface {
	// PollInput drains every pending event without blocking.
	PollInput() []Event
	// DrawCell paints one board cell.
	DrawCell(p types.Point, c types.Color)
	// Fill clears the whole board to c.
	Fill(c types.Color)
	SetCaption(text string)
	// Present makes everything drawn since the last call visible.
	Present()
	// Tick waits until the next frame is due at the given rate.
	Tick(fps int)
	Close() error
}
