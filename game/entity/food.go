package entity

import "the-snake/game/types"

// Food is the single item the snake eats to grow.
type Food struct {
	Position types.Point
}

func NewFood(pos types.Point) *Food {
	return &Food{Position: pos}
}

func (f *Food) Kind() Kind {
	return KindFood
}

func (f *Food) Cells() []types.Point {
	return []types.Point{f.Position}
}
