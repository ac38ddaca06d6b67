package game

import (
	"errors"
	"fmt"
	"io"
	"log"

	"snake-world/game/entity"
	"snake-world/game/manager"
	"snake-world/game/types"

	"github.com/google/uuid"
)

var (
	// ErrInvalidSpawn is returned when the snake cannot be placed at the requested cell.
	ErrInvalidSpawn = entity.ErrInvalidSpawn
	// ErrInvalidWidth is returned when the grid cannot hold a snake and a reward.
	ErrInvalidWidth = errors.New("invalid grid width")
	// ErrNilRandom is returned when no random source is supplied.
	ErrNilRandom = errors.New("nil random source")
)

// Logger receives step diagnostics. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// World owns the grid, the snake and the reward. It is not safe for
// concurrent use: the host must serialize every call.
type World struct {
	uuid    string
	grid    types.Grid
	snake   *entity.Snake
	reward  types.Cell
	pending *types.Cell
	tick    uint64

	collisionMgr *manager.CollisionManager
	rewardMgr    *manager.RewardManager
	logger       Logger
}

// New creates a world of width*width cells with a three-cell snake whose
// head sits on spawn, and places the first reward using random.
func New(width, spawn int, random manager.RandomSource) (*World, error) {
	if random == nil {
		return nil, ErrNilRandom
	}
	grid := types.Grid{Width: width}
	if width < 1 || grid.Size() <= types.InitialSnakeLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if spawn >= grid.Size() {
		return nil, fmt.Errorf("%w: %d is outside a grid of %d cells", ErrInvalidSpawn, spawn, grid.Size())
	}

	snake, err := entity.NewSnake(spawn, types.InitialSnakeLength)
	if err != nil {
		return nil, fmt.Errorf("new snake: %w", err)
	}

	collisionMgr := manager.NewCollisionManager(grid)
	w := &World{
		uuid:         uuid.New().String(),
		grid:         grid,
		snake:        snake,
		collisionMgr: collisionMgr,
		rewardMgr:    manager.NewRewardManager(random, collisionMgr),
		logger:       log.New(io.Discard, "", 0),
	}
	w.placeReward()
	return w, nil
}

// RandomSpawn draws a spawn cell that always leaves room for the initial body.
func RandomSpawn(random manager.RandomSource, width int) int {
	low := types.InitialSnakeLength - 1
	return low + random.Intn(width*width-low)
}

// SetLogger routes step diagnostics to l. A nil l silences them.
func (w *World) SetLogger(l Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	w.logger = l
}

func (w *World) ID() string {
	return w.uuid
}

func (w *World) Width() int {
	return w.grid.Width
}

func (w *World) Tick() uint64 {
	return w.tick
}

func (w *World) SnakeHeadIndex() types.Cell {
	return w.snake.Head()
}

func (w *World) SnakeLength() int {
	return w.snake.Len()
}

func (w *World) SnakeDirection() types.Direction {
	return w.snake.Direction
}

// SnakeCells returns a copy of the body, head first.
func (w *World) SnakeCells() []types.Cell {
	return w.snake.Cells()
}

func (w *World) RewardCell() types.Cell {
	return w.reward
}

// ChangeSnakeDirection buffers the head the snake will move to on the next
// tick. A request that would turn the head back onto its neck is ignored.
func (w *World) ChangeSnakeDirection(dir types.Direction) {
	next := w.nextHead(dir)
	if w.collisionMgr.IsReversal(next, w.snake) {
		w.logger.Printf("world %s: ignoring %s, reverses into %d", w.uuid, dir, next)
		return
	}
	w.pending = &next
	w.snake.Direction = dir
}

// Update advances the snake by one cell. When the new head lands on the
// reward the snake keeps its old tail and a new reward is placed.
func (w *World) Update() {
	var head types.Cell
	if w.pending != nil {
		head = *w.pending
		w.pending = nil
	} else {
		head = w.nextHead(w.snake.Direction)
	}

	tail := w.snake.Advance(head)
	if w.collisionMgr.IsRewardCollision(head, w.reward) {
		w.snake.Grow(tail)
		w.placeReward()
	}
	w.tick++
}

func (w *World) nextHead(dir types.Direction) types.Cell {
	head := w.snake.Head()
	if w.grid.Wraps(head, dir) {
		w.logger.Printf("world %s: %s from %d wraps around", w.uuid, dir, head)
	}
	return w.grid.Step(head, dir)
}

func (w *World) placeReward() {
	reward, ok := w.rewardMgr.Place(w.grid.Size(), w.snake.Body)
	if !ok {
		w.logger.Printf("world %s: snake covers all %d cells, no reward placed", w.uuid, w.grid.Size())
	} else {
		w.logger.Printf("world %s: reward placed at %d", w.uuid, reward)
	}
	w.reward = reward
}
