// Package sound plays short tones for session events.
package sound

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Wilblik/cyberconda/internal/app"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Cue int

const (
	CueNone Cue = iota
	CueEat
	CueCrash
	CueClear
)

type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[Cue][]tone{
	CueEat:   {{880, 50 * time.Millisecond}},
	CueCrash: {{440, 80 * time.Millisecond}, {330, 80 * time.Millisecond}, {220, 160 * time.Millisecond}},
	CueClear: {{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 160 * time.Millisecond}},
}

// CueFor picks the sound for a session event, CueNone if it is silent.
func CueFor(event app.AppEvent) Cue {
	switch event.Type {
	case app.AppEventAte:
		return CueEat
	case app.AppEventCollision:
		return CueCrash
	case app.AppEventCleared:
		return CueClear
	default:
		return CueNone
	}
}

// Player is a no-op until Init succeeds, so a machine without audio still
// runs the game.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

func NewPlayer() *Player {
	return &Player{}
}

func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) Play(cue Cue) {
	if !p.Enabled() {
		return
	}

	tones := cueTones[cue]
	if len(tones) == 0 {
		return
	}

	streamers := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			log.Printf("Sound: bad tone %v Hz: %v", t.freq, err)
			return
		}
		streamers = append(streamers, beep.Take(sampleRate.N(t.duration), sine))
	}

	speaker.Play(beep.Seq(streamers...))
}

// Run plays a cue for each event until ctx is done or events is closed.
func (p *Player) Run(ctx context.Context, events <-chan app.AppEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if cue := CueFor(event); cue != CueNone {
				p.Play(cue)
			}
		}
	}
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
