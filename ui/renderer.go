package ui

import (
	"fmt"

	"snake-world/game"
	"snake-world/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around the grid
	statusHeight  = 24 // Strip under the grid for the tick counter
)

var (
	background = rl.NewColor(245, 245, 245, 255)
	gridLine   = rl.NewColor(200, 200, 200, 255)
	headColor  = rl.NewColor(0x78, 0x78, 0x78, 255)
	bodyColor  = rl.Black
	rewardFill = rl.Red
)

type Renderer struct {
	cellSize int32
	width    int32 // cells per side
}

func NewRenderer(cellSize, width int) *Renderer {
	return &Renderer{
		cellSize: int32(cellSize),
		width:    int32(width),
	}
}

// WindowSize returns the window dimensions that fit the grid and status strip.
func (r *Renderer) WindowSize() (int32, int32) {
	side := r.cellSize*r.width + borderPadding*2
	return side, side + statusHeight
}

// cellOrigin returns the top-left pixel of cell c.
func (r *Renderer) cellOrigin(snap game.Snapshot, c types.Cell) (int32, int32) {
	x := borderPadding + int32(snap.Col(c))*r.cellSize
	y := borderPadding + int32(snap.Row(c))*r.cellSize
	return x, y
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(background)

	r.drawGrid()
	r.drawSnake(snap)
	r.drawReward(snap)
	r.drawStatus(snap)

	rl.EndDrawing()
}

func (r *Renderer) drawGrid() {
	side := r.cellSize * r.width
	for i := int32(0); i <= r.width; i++ {
		offset := borderPadding + i*r.cellSize
		rl.DrawLine(offset, borderPadding, offset, borderPadding+side, gridLine)
		rl.DrawLine(borderPadding, offset, borderPadding+side, offset, gridLine)
	}
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	// Paint tail first so the head stays visible when the body overlaps it.
	for i := len(snap.Cells) - 1; i >= 0; i-- {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		x, y := r.cellOrigin(snap, snap.Cells[i])
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	}
}

func (r *Renderer) drawReward(snap game.Snapshot) {
	if snap.Reward == types.NoReward {
		return
	}
	x, y := r.cellOrigin(snap, snap.Reward)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rewardFill)
}

func (r *Renderer) drawStatus(snap game.Snapshot) {
	_, height := r.WindowSize()
	text := fmt.Sprintf("tick %d  length %d  heading %s", snap.Tick, snap.Length, snap.Direction)
	rl.DrawText(text, borderPadding, height-statusHeight, 16, rl.DarkGray)
}
