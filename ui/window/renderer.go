// Package window draws the board in a raylib window.
package window

import (
	"the-snake/game/types"
	"the-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer keeps every painted cell and redraws all of them on Present,
// since raylib swaps buffers at the end of each frame.
type Renderer struct {
	grid       types.Grid
	background types.Color
	cells      map[types.Point]types.Color
	fps        int
}

// New opens the window. Close must be called to release it.
func New(grid types.Grid, title string) *Renderer {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(grid.Width), int32(grid.Height), title)
	rl.SetExitKey(rl.KeyEscape)

	return &Renderer{
		grid:       grid,
		background: types.BackgroundColor,
		cells:      make(map[types.Point]types.Color),
	}
}

func (r *Renderer) PollInput() []ui.Event {
	var events []ui.Event
	if rl.WindowShouldClose() {
		events = append(events, ui.Quit)
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev, ok := keyEvent(key); ok {
			events = append(events, ev)
		}
	}
	return events
}

func keyEvent(key int32) (ui.Event, bool) {
	switch key {
	case rl.KeyUp:
		return ui.KeyUp, true
	case rl.KeyDown:
		return ui.KeyDown, true
	case rl.KeyLeft:
		return ui.KeyLeft, true
	case rl.KeyRight:
		return ui.KeyRight, true
	case rl.KeyQ:
		return ui.Quit, true
	default:
		return 0, false
	}
}

func (r *Renderer) DrawCell(p types.Point, c types.Color) {
	if c == r.background {
		delete(r.cells, p)
		return
	}
	r.cells[p] = c
}

func (r *Renderer) Fill(c types.Color) {
	r.background = c
	clear(r.cells)
}

func (r *Renderer) SetCaption(text string) {
	rl.SetWindowTitle(text)
}

func (r *Renderer) Present() {
	size := int32(r.grid.CellSize)

	rl.BeginDrawing()
	rl.ClearBackground(toColor(r.background))
	for p, c := range r.cells {
		x, y := int32(p.X), int32(p.Y)
		rl.DrawRectangle(x, y, size, size, toColor(c))
		rl.DrawRectangleLines(x, y, size, size, toColor(types.BorderColor))
	}
	rl.EndDrawing()
}

// Tick only sets the target rate; raylib waits inside EndDrawing.
func (r *Renderer) Tick(fps int) {
	if fps != r.fps {
		rl.SetTargetFPS(int32(fps))
		r.fps = fps
	}
}

func (r *Renderer) Close() error {
	rl.CloseWindow()
	return nil
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

var _ ui.Surface = (*Renderer)(nil)
