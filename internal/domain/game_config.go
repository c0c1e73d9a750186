package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

type GameConfig struct {
	CellSize           int
	DefaultWidth       int
	DefaultHeight      int
	InitialInterval    time.Duration
	SpeedStep          time.Duration
	SpeedFloor         time.Duration
	FoodScoreThreshold int
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		CellSize:           50,
		DefaultWidth:       700,
		DefaultHeight:      400,
		InitialInterval:    220 * time.Millisecond,
		SpeedStep:          15 * time.Millisecond,
		SpeedFloor:         80 * time.Millisecond,
		FoodScoreThreshold: 3,
	}
}

func (c *GameConfig) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.DefaultWidth < c.CellSize || c.DefaultHeight < c.CellSize {
		return fmt.Errorf("%w: %dx%d canvas is smaller than one %dpx cell",
			ErrInvalidConfig, c.DefaultWidth, c.DefaultHeight, c.CellSize)
	}
	if c.SpeedFloor <= 0 {
		return fmt.Errorf("%w: speed floor %v", ErrInvalidConfig, c.SpeedFloor)
	}
	if c.InitialInterval < c.SpeedFloor {
		return fmt.Errorf("%w: initial interval %v below floor %v",
			ErrInvalidConfig, c.InitialInterval, c.SpeedFloor)
	}
	if c.SpeedStep < 0 {
		return fmt.Errorf("%w: speed step %v", ErrInvalidConfig, c.SpeedStep)
	}
	if c.FoodScoreThreshold <= 0 {
		return fmt.Errorf("%w: food score threshold %d", ErrInvalidConfig, c.FoodScoreThreshold)
	}
	return nil
}

// DefaultField is the default canvas snapped down to whole cells.
func (c *GameConfig) DefaultField() Field {
	return NewField(
		Snap(c.DefaultWidth, c.CellSize),
		Snap(c.DefaultHeight, c.CellSize),
		c.CellSize,
	)
}

func (c *GameConfig) Speed() SpeedController {
	return SpeedController{
		Step:      c.SpeedStep,
		Floor:     c.SpeedFloor,
		Threshold: c.FoodScoreThreshold,
	}
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}

// Snap rounds v down to the nearest multiple of cell.
func Snap(v, cell int) int {
	if cell <= 0 || v <= 0 {
		return 0
	}
	return (v / cell) * cell
}
