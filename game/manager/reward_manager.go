package manager

import (
	"snake-world/game/types"
)

// RandomSource returns a uniformly distributed value in [0, n).
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type RandomSource interface {
	Intn(n int) int
}

type RewardManager struct {
	random       RandomSource
	collisionMgr *CollisionManager
	maxAttempts  int
}

func NewRewardManager(random RandomSource, collisionMgr *CollisionManager) *RewardManager {
	return &RewardManager{
		random:       random,
		collisionMgr: collisionMgr,
		maxAttempts:  types.MaxRewardAttempts,
	}
}

// Place draws cells in [0, bound) until one is not occupied by body.
// After maxAttempts misses it picks uniformly among the free cells instead;
// ok is false only when body covers every cell.
func (rm *RewardManager) Place(bound int, body []types.Cell) (types.Cell, bool) {
	for attempt := 0; attempt < rm.maxAttempts; attempt++ {
		reward := types.Cell(rm.random.Intn(bound))
		if rm.collisionMgr.ValidateSpawnPosition(reward, body) {
			return reward, true
		}
	}
	return rm.placeFromFree(bound, body)
}

func (rm *RewardManager) placeFromFree(bound int, body []types.Cell) (types.Cell, bool) {
	occupied := make(map[types.Cell]bool, len(body))
	for _, part := range body {
		occupied[part] = true
	}

	free := make([]types.Cell, 0, bound)
	for c := types.Cell(0); int(c) < bound; c++ {
		if !occupied[c] {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return types.NoReward, false
	}
	return free[rm.random.Intn(len(free))], true
}
