package entity

import "the-snake/game/types"

// Kind tags the things that can be drawn on the board.
type Kind int

const (
	KindSnake Kind = iota
	KindFood
)

// Color returns the fill color for cells of this kind.
func (k Kind) Color() types.Color {
	switch k {
	case KindFood:
		return types.FoodColor
	default:
		return types.SnakeColor
	}
}

func (k Kind) String() string {
	switch k {
	case KindFood:
		return "food"
	default:
		return "snake"
	}
}

// Drawable is implemented by Snake and Food.
type Drawable interface {
	Kind() Kind
	Cells() []types.Point
}

var (
	_ Drawable = (*Snake)(nil)
	_ Drawable = (*Food)(nil)
)
