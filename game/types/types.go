package types

import "fmt"

// Cell is a row-major index into a square grid.
type Cell int

// NoReward marks a world whose snake covers every cell, so no reward can be placed.
const NoReward Cell = -1

// Game constants
const (
	InitialSnakeLength = 3    // Segments a snake spawns with
	MaxRewardAttempts  = 1024 // Random draws before reward placement falls back to a scan
)

// Direction represents a cardinal direction
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}
