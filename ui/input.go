package ui

import (
	"snake-world/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
}

// DirectionForKey maps an arrow key to a direction. Other keys report false.
func DirectionForKey(key int32) (types.Direction, bool) {
	for _, kd := range keyDirections {
		if kd.key == key {
			return kd.dir, true
		}
	}
	return 0, false
}

// ReadDirection returns the direction of the arrow key pressed this frame, if any.
func ReadDirection() (types.Direction, bool) {
	for _, kd := range keyDirections {
		if rl.IsKeyPressed(kd.key) {
			return kd.dir, true
		}
	}
	return 0, false
}
