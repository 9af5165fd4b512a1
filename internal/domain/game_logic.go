package domain

import (
	"errors"
	"fmt"
	"time"
)

type TickResult struct {
	Moved      bool
	Ate        bool
	Collided   bool
	Cleared    bool
	FinalScore int
}

// Steer queues d for the next move. A direction that points straight back
// along the current one is rejected.
func (gs *GameState) Steer(d Direction) bool {
	if d == DirectionNone || gs.dir.IsOpposite(d) {
		return false
	}
	gs.next = d
	return true
}

// Update advances the snake by one cell if a full interval has passed since
// the last move. A self-collision or a cleared board restarts the round.
// The returned error is fatal for the session.
func (gs *GameState) Update(now time.Time) (TickResult, error) {
	var result TickResult

	if !gs.running || now.Sub(gs.lastMove) < gs.speed {
		return result, nil
	}
	gs.lastMove = now

	if gs.next != DirectionNone {
		gs.dir = gs.next
		gs.next = DirectionNone
	}

	if gs.dir == DirectionNone {
		return result, nil
	}

	newHead := gs.field.Move(gs.body.Head(), gs.dir)

	// Index 0 is the tail, which moves out of the way this tick.
	for i := 1; i < gs.body.Len(); i++ {
		if gs.body.At(i).Equals(newHead) {
			result.Collided = true
			result.FinalScore = gs.score
			return result, gs.Reset(now)
		}
	}

	if err := gs.body.PushHead(newHead); err != nil {
		gs.running = false
		return result, fmt.Errorf("move snake to %v: %w", newHead, err)
	}
	result.Moved = true

	if !newHead.Equals(gs.food) {
		gs.body.PopTail()
		return result, nil
	}

	gs.score++
	result.Ate = true
	gs.speed -= gs.Config.SpeedStep
	if gs.speed < gs.Config.MinSpeed {
		gs.speed = gs.Config.MinSpeed
	}

	if err := gs.SpawnFood(); err != nil {
		if !errors.Is(err, ErrBoardFull) {
			gs.running = false
			return result, err
		}
		result.Cleared = true
		result.FinalScore = gs.score
		return result, gs.Reset(now)
	}

	return result, nil
}
