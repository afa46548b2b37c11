package types

// Board geometry in pixels. The board is a 32x24 torus of 20px cells.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	CellSize     = 20

	// Speed is the frame rate of the game loop.
	Speed = 10
)

// Point is a grid-aligned pixel coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both components multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Grid represents the board dimensions
type Grid struct {
	Width    int // pixels
	Height   int // pixels
	CellSize int
}

// DefaultGrid returns the 640x480 board with 20px cells.
func DefaultGrid() Grid {
	return Grid{Width: ScreenWidth, Height: ScreenHeight, CellSize: CellSize}
}

// Cols is the number of cells along the x axis.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows is the number of cells along the y axis.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells is the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Cols() * g.Rows()
}

// Center returns the pixel position of the board center.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cell converts a column/row pair to its pixel position.
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Wrap folds p back onto the board, so leaving one edge re-enters from the
// opposite one.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: mod(p.X, g.Width),
		Y: mod(p.Y, g.Height),
	}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

type Color struct {
	R, G, B uint8
}

// Palette
var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	FoodColor       = Color{R: 255, G: 215, B: 0}
	SnakeColor      = Color{R: 202, G: 164, B: 235}
)
