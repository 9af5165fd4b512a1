package app

import (
	"fmt"
	"log"

	"github.com/Wilblik/cyberconda/internal/domain"
)

// App owns one play session: the game state, its clock and the bookkeeping
// around rounds. Every method must be called from the surface's loop
// goroutine.
type App struct {
	config *domain.GameConfig
	clock  Clock
	seed   uint64

	state  *domain.GameState
	stats  Stats
	paused bool
	err    error

	subscribers []chan AppEvent
}

func NewApp(config *domain.GameConfig, clock Clock, seed uint64) (*App, error) {
	state, err := domain.NewGameState(config, clock.Now(), seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Printf("App: session started on %dx%d grid, interval %v", config.GridSize, config.GridSize, config.InitialSpeed)

	return &App{
		config: config.Copy(),
		clock:  clock,
		seed:   seed,
		state:  state,
	}, nil
}

// Subscribe returns a channel that receives session events. Sends never
// block the loop: a full channel drops the event.
func (a *App) Subscribe(buffer int) <-chan AppEvent {
	ch := make(chan AppEvent, buffer)
	a.subscribers = append(a.subscribers, ch)
	return ch
}

func (a *App) State() *domain.GameState {
	return a.state
}

func (a *App) Config() *domain.GameConfig {
	return a.config.Copy()
}

func (a *App) Stats() Stats {
	return a.stats
}

func (a *App) Running() bool {
	return a.state.Running()
}

func (a *App) Paused() bool {
	return a.paused
}

// Err reports why the session stopped, or nil for a normal quit.
func (a *App) Err() error {
	return a.err
}

// Frame runs one iteration of the loop body: all pending input, then one
// update.
func (a *App) Frame(inputs []InputEvent) error {
	for _, input := range inputs {
		a.HandleInput(input)
	}
	return a.Step()
}

func (a *App) HandleInput(input InputEvent) {
	if !a.Running() {
		return
	}

	switch input.Type {
	case InputSteer:
		dir, ok := input.Payload.(domain.Direction)
		if !ok || a.paused {
			return
		}
		a.state.Steer(dir)

	case InputReset:
		a.restartRound()

	case InputPause:
		a.TogglePause()

	case InputQuit:
		log.Println("App: quit requested")
		a.Stop(nil)
	}
}

func (a *App) TogglePause() {
	a.paused = !a.paused
	if !a.paused {
		a.state.Rebase(a.clock.Now())
	}
}

// Step advances the game if the session is live.
func (a *App) Step() error {
	if !a.Running() || a.paused {
		return nil
	}

	result, err := a.state.Update(a.clock.Now())
	if err != nil {
		log.Printf("App: update failed: %v", err)
		a.Stop(err)
		return err
	}

	switch {
	case result.Collided:
		a.stats.endRound(result.FinalScore)
		log.Printf("App: collision, round over with score %d", result.FinalScore)
		a.publish(AppEvent{Type: AppEventCollision, Payload: ScorePayload{Score: result.FinalScore}})

	case result.Cleared:
		a.stats.endRound(result.FinalScore)
		log.Printf("App: board cleared with score %d", result.FinalScore)
		a.publish(AppEvent{Type: AppEventCleared, Payload: ScorePayload{Score: result.FinalScore}})

	case result.Ate:
		a.stats.recordFood(a.state.Score())
		a.publish(AppEvent{Type: AppEventAte, Payload: ScorePayload{Score: a.state.Score()}})
	}

	return nil
}

// Stop ends the session. A nil reason means a normal quit.
func (a *App) Stop(reason error) {
	if !a.state.Running() {
		return
	}
	a.err = reason
	a.state.Stop()
	a.publish(AppEvent{Type: AppEventStopped, Payload: StoppedPayload{Err: reason}})
}

// Restart replaces the session's game with one built from config. Stats are
// kept.
func (a *App) Restart(config *domain.GameConfig) error {
	a.seed++
	state, err := domain.NewGameState(config, a.clock.Now(), a.seed)
	if err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	if a.state.Running() {
		a.stats.endRound(a.state.Score())
	}
	a.config = config.Copy()
	a.state = state
	a.paused = false
	a.err = nil

	log.Printf("App: restarted on %dx%d grid, interval %v", config.GridSize, config.GridSize, config.InitialSpeed)
	a.publish(AppEvent{Type: AppEventRestarted, Payload: ScorePayload{Score: 0}})
	return nil
}

func (a *App) restartRound() {
	score := a.state.Score()
	if err := a.state.Reset(a.clock.Now()); err != nil {
		log.Printf("App: reset failed: %v", err)
		a.err = err
		a.publish(AppEvent{Type: AppEventStopped, Payload: StoppedPayload{Err: err}})
		return
	}

	a.stats.endRound(score)
	a.paused = false
	a.publish(AppEvent{Type: AppEventRestarted, Payload: ScorePayload{Score: score}})
}

func (a *App) publish(event AppEvent) {
	for _, ch := range a.subscribers {
		select {
		case ch <- event:
		default:
			log.Printf("App: event channel full, dropping %v event", event.Type)
		}
	}
}
