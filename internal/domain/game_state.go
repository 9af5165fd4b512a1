package domain

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/exp/rand"
)

// spawnAttemptsPerCell bounds rejection sampling before SpawnFood falls back
// to scanning the free cells.
const spawnAttemptsPerCell = 4

// GameState is the whole single-player round. It is not safe for concurrent
// use; surfaces read it between updates on the loop goroutine.
type GameState struct {
	Config *GameConfig

	field    *Field
	body     *Body
	food     Coord
	dir      Direction
	next     Direction
	score    int
	speed    time.Duration
	running  bool
	lastMove time.Time

	rng *rand.Rand
}

func NewGameState(config *GameConfig, now time.Time, seed uint64) (*GameState, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	field := NewField(config.GridSize, config.GridSize)
	gs := &GameState{
		Config: config.Copy(),
		field:  field,
		body:   NewBody(config.InitialCapacity, field.Cells()),
		rng:    rand.New(rand.NewSource(seed)),
	}

	if err := gs.Reset(now); err != nil {
		return nil, err
	}
	return gs, nil
}

// Reset starts a fresh round: one segment at the centre, no direction,
// initial score and speed, new food. Body storage is reused.
func (gs *GameState) Reset(now time.Time) error {
	gs.body.Clear()
	if err := gs.body.PushHead(gs.field.Center()); err != nil {
		gs.running = false
		return fmt.Errorf("reset snake: %w", err)
	}

	gs.dir = DirectionNone
	gs.next = DirectionNone
	gs.score = 0
	gs.speed = gs.Config.InitialSpeed
	gs.running = true
	gs.lastMove = now

	if err := gs.SpawnFood(); err != nil {
		gs.running = false
		return fmt.Errorf("reset food: %w", err)
	}
	return nil
}

// SpawnFood places food on a uniformly random free cell.
func (gs *GameState) SpawnFood() error {
	width, height := gs.field.Width, gs.field.Height

	attempts := spawnAttemptsPerCell * gs.field.Cells()
	for i := 0; i < attempts; i++ {
		pos := Coord{X: gs.rng.Intn(width), Y: gs.rng.Intn(height)}
		if !gs.body.Contains(pos) {
			gs.food = pos
			return nil
		}
	}

	occupied := make(map[Coord]bool, gs.body.Len())
	for i := 0; i < gs.body.Len(); i++ {
		occupied[gs.body.At(i)] = true
	}

	free := make([]Coord, 0, gs.field.Cells()-len(occupied))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := Coord{X: x, Y: y}
			if !occupied[pos] {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}

	gs.food = free[gs.rng.Intn(len(free))]
	return nil
}

// Stop ends the session; the surface loop exits on its next check.
func (gs *GameState) Stop() {
	gs.running = false
}

// Rebase moves the last-move timestamp, e.g. after a pause, so the next
// update waits a full interval.
func (gs *GameState) Rebase(now time.Time) {
	gs.lastMove = now
}

func (gs *GameState) Field() *Field {
	return gs.field
}

func (gs *GameState) Len() int {
	return gs.body.Len()
}

// Segments returns the snake tail-to-head.
func (gs *GameState) Segments() []Coord {
	return gs.body.Segments()
}

func (gs *GameState) Head() Coord {
	return gs.body.Head()
}

func (gs *GameState) Food() Coord {
	return gs.food
}

func (gs *GameState) Score() int {
	return gs.score
}

func (gs *GameState) Speed() time.Duration {
	return gs.speed
}

func (gs *GameState) Direction() Direction {
	return gs.dir
}

func (gs *GameState) PendingDirection() Direction {
	return gs.next
}

func (gs *GameState) Running() bool {
	return gs.running
}

func (gs *GameState) LastMove() time.Time {
	return gs.lastMove
}

func (gs *GameState) Title() string {
	return "Score: " + strconv.Itoa(gs.score)
}
