package entity

import (
	"errors"
	"fmt"

	"snake-world/game/types"
)

// ErrInvalidSpawn is returned when a snake's body would start below cell 0.
var ErrInvalidSpawn = errors.New("invalid spawn index")

// Snake is an ordered body of cells, head first, plus the heading it travels in.
type Snake struct {
	Body      []types.Cell
	Direction types.Direction
}

// NewSnake builds a snake of length cells trailing left from spawn, heading right.
// The body is not required to fit in a single row.
func NewSnake(spawn, length int) (*Snake, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSpawn, length)
	}
	if spawn < length-1 {
		return nil, fmt.Errorf("%w: %d cannot hold %d segments", ErrInvalidSpawn, spawn, length)
	}

	body := make([]types.Cell, length)
	for i := range body {
		body[i] = types.Cell(spawn - i)
	}
	return &Snake{
		Body:      body,
		Direction: types.Right,
	}, nil
}

func (s *Snake) Head() types.Cell {
	return s.Body[0]
}

// Neck returns the cell right behind the head, or false for a single-cell snake.
func (s *Snake) Neck() (types.Cell, bool) {
	if len(s.Body) < 2 {
		return 0, false
	}
	return s.Body[1], true
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Cell {
	cells := make([]types.Cell, len(s.Body))
	copy(cells, s.Body)
	return cells
}

// Contains reports whether any segment occupies c.
func (s *Snake) Contains(c types.Cell) bool {
	for _, part := range s.Body {
		if part == c {
			return true
		}
	}
	return false
}

// Advance moves the head to newHead and pulls every other segment into the
// spot its predecessor held. It returns the cell the tail vacated.
func (s *Snake) Advance(newHead types.Cell) types.Cell {
	prev := s.Cells()
	s.Body[0] = newHead
	for i := 1; i < len(s.Body); i++ {
		s.Body[i] = prev[i-1]
	}
	return prev[len(prev)-1]
}

// Grow appends tail as a new last segment.
func (s *Snake) Grow(tail types.Cell) {
	s.Body = append(s.Body, tail)
}
