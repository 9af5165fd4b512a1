package app

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Wilblik/cyberconda/internal/domain"
)

var epoch = time.Unix(1_700_000_000, 0)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, gridSize int) (*App, *ManualClock) {
	t.Helper()
	cfg := domain.DefaultGameConfig()
	cfg.GridSize = gridSize
	clock := NewManualClock(epoch)
	a, err := NewApp(cfg, clock, 1)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return a, clock
}

// frame advances the clock by one move interval and runs a frame.
func frame(t *testing.T, a *App, clock *ManualClock, inputs ...InputEvent) {
	t.Helper()
	for _, in := range inputs {
		a.HandleInput(in)
	}
	clock.Advance(a.State().Speed())
	if err := a.Frame(nil); err != nil {
		t.Fatalf("Frame: %v", err)
	}
}

// steerTowardFood walks the snake onto the food: first along X, then along Y.
func steerTowardFood(t *testing.T, a *App, clock *ManualClock) {
	t.Helper()
	start := a.Stats().FoodEaten
	for i := 0; i < 4*a.State().Field().Cells(); i++ {
		head, food := a.State().Head(), a.State().Food()
		var dir domain.Direction
		switch {
		case head.X < food.X:
			dir = domain.DirectionRight
		case head.X > food.X:
			dir = domain.DirectionLeft
		case head.Y < food.Y:
			dir = domain.DirectionDown
		default:
			dir = domain.DirectionUp
		}
		frame(t, a, clock, SteerInput(dir))
		if a.Stats().FoodEaten > start {
			return
		}
	}
	t.Fatal("snake never reached the food")
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := domain.DefaultGameConfig()
	cfg.MinSpeed = 0
	if _, err := NewApp(cfg, NewManualClock(epoch), 1); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestFrameFollowsClock(t *testing.T) {
	a, clock := newTestApp(t, 20)
	a.HandleInput(SteerInput(domain.DirectionDown))

	clock.Advance(50 * time.Millisecond)
	a.Frame(nil)
	if a.State().Head() != (domain.Coord{X: 10, Y: 10}) {
		t.Fatalf("moved after half an interval: %v", a.State().Head())
	}

	clock.Advance(50 * time.Millisecond)
	a.Frame(nil)
	if a.State().Head() == (domain.Coord{X: 10, Y: 10}) {
		t.Fatal("did not move after a full interval")
	}
}

func TestEatingPublishesEvent(t *testing.T) {
	a, clock := newTestApp(t, 10)
	events := a.Subscribe(8)

	steerTowardFood(t, a, clock)

	select {
	case ev := <-events:
		if ev.Type != AppEventAte {
			t.Fatalf("event = %v, want ate", ev.Type)
		}
		if p, ok := ev.Payload.(ScorePayload); !ok || p.Score != 1 {
			t.Errorf("payload = %#v, want score 1", ev.Payload)
		}
	default:
		t.Fatal("no event published")
	}
	if a.Stats().BestScore != 1 {
		t.Errorf("best score = %d, want 1", a.Stats().BestScore)
	}
}

func TestPauseFreezesSnake(t *testing.T) {
	a, clock := newTestApp(t, 20)
	frame(t, a, clock, SteerInput(domain.DirectionLeft))
	head := a.State().Head()

	a.HandleInput(InputEvent{Type: InputPause})
	for i := 0; i < 5; i++ {
		frame(t, a, clock, SteerInput(domain.DirectionUp))
	}
	if a.State().Head() != head || a.State().Direction() != domain.DirectionLeft {
		t.Fatalf("paused snake changed: head %v dir %v", a.State().Head(), a.State().Direction())
	}

	a.HandleInput(InputEvent{Type: InputPause})
	a.Frame(nil)
	if a.State().Head() != head {
		t.Error("unpausing moved the snake without waiting an interval")
	}
	frame(t, a, clock)
	if a.State().Head() == head {
		t.Error("snake did not resume after unpausing")
	}
}

func TestResetInputEndsRound(t *testing.T) {
	a, clock := newTestApp(t, 10)
	events := a.Subscribe(8)
	steerTowardFood(t, a, clock)
	<-events

	a.HandleInput(InputEvent{Type: InputReset})

	if a.State().Score() != 0 || a.State().Len() != 1 {
		t.Errorf("score %d len %d after reset", a.State().Score(), a.State().Len())
	}
	stats := a.Stats()
	if stats.RoundsPlayed != 1 || stats.LastScore != 1 {
		t.Errorf("stats = %+v, want one round with score 1", stats)
	}
	if ev := <-events; ev.Type != AppEventRestarted {
		t.Errorf("event = %v, want restarted", ev.Type)
	}
}

func TestQuitStopsSession(t *testing.T) {
	a, clock := newTestApp(t, 10)
	events := a.Subscribe(1)

	frame(t, a, clock, InputEvent{Type: InputQuit})

	if a.Running() {
		t.Fatal("session still running after quit")
	}
	if a.Err() != nil {
		t.Errorf("Err = %v after a normal quit", a.Err())
	}
	ev := <-events
	if ev.Type != AppEventStopped {
		t.Errorf("event = %v, want stopped", ev.Type)
	}

	head := a.State().Head()
	frame(t, a, clock, SteerInput(domain.DirectionUp))
	if a.State().Head() != head {
		t.Error("stopped session advanced")
	}
}

func TestRestartWithNewConfig(t *testing.T) {
	a, _ := newTestApp(t, 10)

	cfg := domain.DefaultGameConfig()
	cfg.GridSize = 12
	if err := a.Restart(cfg); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if a.State().Field().Width != 12 || a.Config().GridSize != 12 {
		t.Errorf("grid = %d, want 12", a.State().Field().Width)
	}

	cfg.GridSize = 0
	if err := a.Restart(cfg); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("Restart(invalid) = %v, want ErrInvalidConfig", err)
	}
	if a.State().Field().Width != 12 {
		t.Error("failed restart replaced the game")
	}
}

func TestFullEventChannelDoesNotBlock(t *testing.T) {
	a, _ := newTestApp(t, 10)
	a.Subscribe(0)

	done := make(chan struct{})
	go func() {
		a.HandleInput(InputEvent{Type: InputReset})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full channel")
	}
}

func TestManualClock(t *testing.T) {
	clock := NewManualClock(epoch)
	clock.Advance(time.Second)
	if !clock.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("Now = %v", clock.Now())
	}
	clock.Set(epoch)
	if !clock.Now().Equal(epoch) {
		t.Errorf("Now = %v after Set", clock.Now())
	}
}
