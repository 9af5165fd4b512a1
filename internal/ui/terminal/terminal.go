package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Wilblik/cyberconda/internal/app"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const eventBuffer = 100

// Terminal runs a session on a tcell screen. One goroutine pumps terminal
// events into a buffered channel; the loop drains it without blocking,
// steps the app and redraws at a fixed frame rate.
type Terminal struct {
	screen   tcell.Screen
	app      *app.App
	renderer *Renderer
	frame    time.Duration
	events   chan tcell.Event
}

// New wraps an initialised screen. Run takes ownership and finalises it.
func New(screen tcell.Screen, a *app.App, fps int) *Terminal {
	if fps <= 0 {
		fps = 100
	}
	return &Terminal{
		screen:   screen,
		app:      a,
		renderer: NewRenderer(screen),
		frame:    time.Second / time.Duration(fps),
		events:   make(chan tcell.Event, eventBuffer),
	}
}

// Run blocks until the session stops or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return t.pump(ctx)
	})

	g.Go(func() error {
		defer cancel()
		defer t.screen.Fini()
		return t.loop(ctx)
	})

	return g.Wait()
}

// pump returns once the screen is finalised, PollEvent then yields nil.
func (t *Terminal) pump(ctx context.Context) error {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case t.events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (t *Terminal) loop(ctx context.Context) error {
	ticker := time.NewTicker(t.frame)
	defer ticker.Stop()

	t.renderer.Draw(t.app.State(), t.app.Stats(), t.app.Paused())

	for {
		select {
		case <-ctx.Done():
			log.Println("Terminal: interrupted")
			t.app.Stop(nil)
			return nil
		case <-ticker.C:
		}

		if err := t.app.Frame(t.drain()); err != nil {
			return fmt.Errorf("session failed: %w", err)
		}
		if !t.app.Running() {
			return nil
		}

		t.renderer.Draw(t.app.State(), t.app.Stats(), t.app.Paused())
	}
}

// drain collects every event queued since the last frame.
func (t *Terminal) drain() []app.InputEvent {
	var inputs []app.InputEvent
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input, ok := TranslateKey(ev); ok {
					inputs = append(inputs, input)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return inputs
		}
	}
}
