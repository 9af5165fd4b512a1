package domain

import (
	"errors"
	"testing"
	"time"
)

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *GameConfig)
		valid  bool
	}{
		{"defaults", func(c *GameConfig) {}, true},
		{"toy grid", func(c *GameConfig) { c.GridSize = 4 }, true},
		{"grid too small", func(c *GameConfig) { c.GridSize = 3 }, false},
		{"grid too large", func(c *GameConfig) { c.GridSize = 101 }, false},
		{"zero speed", func(c *GameConfig) { c.InitialSpeed = 0 }, false},
		{"negative step", func(c *GameConfig) { c.SpeedStep = -time.Millisecond }, false},
		{"floor above initial", func(c *GameConfig) { c.MinSpeed = 200 * time.Millisecond }, false},
		{"zero capacity", func(c *GameConfig) { c.InitialCapacity = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGameConfigCopy(t *testing.T) {
	cfg := DefaultGameConfig()
	cp := cfg.Copy()
	cp.GridSize = 10
	if cfg.GridSize != DefaultGridSize {
		t.Errorf("Copy shares state: GridSize = %d", cfg.GridSize)
	}
}
