package game

import "snake-world/game/types"

// Snapshot is a copy of everything a renderer needs for one frame. It shares
// no memory with the World it came from.
type Snapshot struct {
	Tick      uint64
	Width     int
	Head      types.Cell
	Length    int
	Cells     []types.Cell
	Reward    types.Cell
	Direction types.Direction
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:      w.tick,
		Width:     w.grid.Width,
		Head:      w.snake.Head(),
		Length:    w.snake.Len(),
		Cells:     w.snake.Cells(),
		Reward:    w.reward,
		Direction: w.snake.Direction,
	}
}

// Row returns the grid row of c.
func (s Snapshot) Row(c types.Cell) int {
	return types.Grid{Width: s.Width}.Row(c)
}

func (s Snapshot) Col(c types.Cell) int {
	return types.Grid{Width: s.Width}.Col(c)
}
