// Package terminal draws the board in a terminal through tcell. Every board
// cell takes two columns so cells come out roughly square.
package terminal

import (
	"the-snake/game/types"
	"the-snake/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const cellWidth = 2

type Screen struct {
	screen     tcell.Screen
	grid       types.Grid
	clock      *ui.Clock
	background types.Color
}

// New initialises the terminal. Close restores it.
func New(grid types.Grid) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	return NewWithScreen(screen, grid), nil
}

// NewWithScreen wraps an already initialised tcell screen.
func NewWithScreen(screen tcell.Screen, grid types.Grid) *Screen {
	screen.HideCursor()
	return &Screen{
		screen:     screen,
		grid:       grid,
		clock:      ui.NewClock(),
		background: types.BackgroundColor,
	}
}

func (s *Screen) PollInput() []ui.Event {
	var events []ui.Event
	for s.screen.HasPendingEvent() {
		if ev, ok := translate(s.screen.PollEvent()); ok {
			events = append(events, ev)
		}
	}
	return events
}

func translate(ev tcell.Event) (ui.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return 0, false
	}
	switch key.Key() {
	case tcell.KeyUp:
		return ui.KeyUp, true
	case tcell.KeyDown:
		return ui.KeyDown, true
	case tcell.KeyLeft:
		return ui.KeyLeft, true
	case tcell.KeyRight:
		return ui.KeyRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ui.Quit, true
	case tcell.KeyRune:
		if key.Rune() == 'q' {
			return ui.Quit, true
		}
	}
	return 0, false
}

func (s *Screen) DrawCell(p types.Point, c types.Color) {
	col, row := p.X/s.grid.CellSize, p.Y/s.grid.CellSize
	style := tcell.StyleDefault.Background(toColor(c)).Foreground(toColor(types.BorderColor))
	for i := 0; i < cellWidth; i++ {
		s.screen.SetContent(col*cellWidth+i, row, ' ', nil, style)
	}
}

func (s *Screen) Fill(c types.Color) {
	s.background = c
	s.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c)))
}

// SetCaption writes text on the row under the board.
func (s *Screen) SetCaption(text string) {
	row := s.grid.Rows()
	width := s.grid.Cols() * cellWidth
	style := tcell.StyleDefault.Foreground(toColor(types.BorderColor)).Background(toColor(s.background))

	runes := []rune(text)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		s.screen.SetContent(x, row, r, nil, style)
	}
}

func (s *Screen) Present() {
	s.screen.Show()
}

func (s *Screen) Tick(fps int) {
	s.clock.Tick(fps)
}

func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}

func toColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var _ ui.Surface = (*Screen)(nil)
