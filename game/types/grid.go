package types

// Grid represents a square grid whose edges wrap around
type Grid struct {
	Width int
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.Width * g.Width
}

func (g Grid) Row(c Cell) int {
	return int(c) / g.Width
}

func (g Grid) Col(c Cell) int {
	return int(c) % g.Width
}

// Contains reports whether c is a valid index of the grid.
func (g Grid) Contains(c Cell) bool {
	return c >= 0 && int(c) < g.Size()
}

// Step returns the cell one move away from head in direction d. Stepping off
// an edge re-enters the grid on the opposite edge of the same row or column.
func (g Grid) Step(head Cell, d Direction) Cell {
	w := Cell(g.Width)
	row := Cell(g.Row(head))
	col := Cell(g.Col(head))

	switch d {
	case Up:
		if row == 0 {
			return Cell(g.Size()) - w + col
		}
		return head - w
	case Down:
		if row == w-1 {
			return col
		}
		return head + w
	case Left:
		if head == row*w {
			return row*w + w - 1
		}
		return head - 1
	case Right:
		if head+1 == (row+1)*w {
			return row * w
		}
		return head + 1
	default:
		return head
	}
}

// Wraps reports whether stepping from head in direction d crosses an edge.
func (g Grid) Wraps(head Cell, d Direction) bool {
	switch d {
	case Up:
		return g.Row(head) == 0
	case Down:
		return g.Row(head) == g.Width-1
	case Left:
		return g.Col(head) == 0
	case Right:
		return g.Col(head) == g.Width-1
	default:
		return false
	}
}
