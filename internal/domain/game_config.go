package domain

import (
	"fmt"
	"time"
)

const (
	DefaultGridSize      = 30
	DefaultInitialSpeed  = 100 * time.Millisecond
	DefaultSpeedStep     = 5 * time.Millisecond
	DefaultMinSpeed      = 30 * time.Millisecond
	MinGridSize          = 4
	MaxGridSize          = 100
	maxInitialSpeedLimit = 5 * time.Second
)

type GameConfig struct {
	GridSize        int
	InitialSpeed    time.Duration
	SpeedStep       time.Duration
	MinSpeed        time.Duration
	InitialCapacity int
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		GridSize:        DefaultGridSize,
		InitialSpeed:    DefaultInitialSpeed,
		SpeedStep:       DefaultSpeedStep,
		MinSpeed:        DefaultMinSpeed,
		InitialCapacity: DefaultBodyCapacity,
	}
}

func (c *GameConfig) Validate() error {
	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		return fmt.Errorf("%w: grid size %d not in [%d, %d]", ErrInvalidConfig, c.GridSize, MinGridSize, MaxGridSize)
	}
	if c.InitialSpeed <= 0 || c.InitialSpeed > maxInitialSpeedLimit {
		return fmt.Errorf("%w: initial speed %v not in (0, %v]", ErrInvalidConfig, c.InitialSpeed, maxInitialSpeedLimit)
	}
	if c.SpeedStep < 0 {
		return fmt.Errorf("%w: negative speed step %v", ErrInvalidConfig, c.SpeedStep)
	}
	if c.MinSpeed <= 0 || c.MinSpeed > c.InitialSpeed {
		return fmt.Errorf("%w: min speed %v not in (0, %v]", ErrInvalidConfig, c.MinSpeed, c.InitialSpeed)
	}
	if c.InitialCapacity < 1 {
		return fmt.Errorf("%w: initial capacity %d < 1", ErrInvalidConfig, c.InitialCapacity)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		GridSize:        c.GridSize,
		InitialSpeed:    c.InitialSpeed,
		SpeedStep:       c.SpeedStep,
		MinSpeed:        c.MinSpeed,
		InitialCapacity: c.InitialCapacity,
	}
}
