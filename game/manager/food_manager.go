package manager

import (
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Relocate samples random cells until one is not occupied. ok is false only
// when occupied already covers the whole board.
func (fm *FoodManager) Relocate(occupied []types.Point) (pos types.Point, ok bool) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}
	if len(taken) >= fm.grid.Cells() {
		return types.Point{}, false
	}

	for {
		food := fm.grid.Cell(
			fm.rng.Intn(fm.grid.Cols()),
			fm.rng.Intn(fm.grid.Rows()),
		)
		if _, hit := taken[food]; !hit {
			return food, true
		}
	}
}
