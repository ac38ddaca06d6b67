package manager

import (
	"snake-world/game/entity"
	"snake-world/game/types"
)

// CollisionManager answers the few overlap questions the world asks. Edges
// wrap, so there are no wall collisions, and running into the snake's own
// body is allowed.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsReversal reports whether moving the head onto next would turn the snake
// straight back into the segment behind its head.
func (cm *CollisionManager) IsReversal(next types.Cell, snake *entity.Snake) bool {
	neck, ok := snake.Neck()
	return ok && next == neck
}

// IsRewardCollision checks if a position collides with the reward
func (cm *CollisionManager) IsRewardCollision(pos, reward types.Cell) bool {
	return pos == reward
}

// ValidateSpawnPosition checks if pos is on the grid and free of the body
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, body []types.Cell) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	for _, part := range body {
		if pos == part {
			return false
		}
	}
	return true
}
