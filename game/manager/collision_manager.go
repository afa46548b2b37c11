package manager

import (
	"the-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead returns the cell one step from head in dir, wrapped around the
// board edges.
func (cm *CollisionManager) NextHead(head types.Point, dir types.Direction) types.Point {
	step := dir.Vector().Scale(cm.grid.CellSize)
	return cm.grid.Wrap(head.Add(step))
}

// IsSelfCollision checks the head of a freshly moved body against the rest
// of it. The cell right behind the head is the previous head and can never
// be entered again without a reversal, so the scan starts at index 2.
func (cm *CollisionManager) IsSelfCollision(body []types.Point) bool {
	if len(body) < 3 {
		return false
	}
	head := body[0]
	for _, part := range body[2:] {
		if part == head {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
