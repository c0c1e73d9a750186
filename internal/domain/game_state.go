package domain

import (
	"sync"
	"time"
)

// GameState is the whole simulation: snake, food, field and tick interval.
// It is safe for concurrent use; readers should work on Copy().
type GameState struct {
	TickCount   uint64
	Field       Field
	Config      *GameConfig
	Snake       *Snake
	Food        Coord
	Interval    time.Duration
	LastOutcome TickOutcome

	spawner FoodSpawner
	speed   SpeedController

	mu sync.RWMutex
}

type TickResult struct {
	Outcome      TickOutcome
	Score        int
	Interval     time.Duration
	SpeedChanged bool
}

func NewGameState(config *GameConfig, spawner FoodSpawner) *GameState {
	field := config.DefaultField()
	gs := &GameState{
		Field:       field,
		Config:      config.Copy(),
		Snake:       NewSnake(Coord{0, 0}, DirectionRight),
		Interval:    config.InitialInterval,
		LastOutcome: OutcomeMoved,
		spawner:     spawner,
		speed:       config.Speed(),
	}
	gs.Food = spawner.Spawn(field)
	return gs
}

func (gs *GameState) Tick() *TickResult {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	result := &TickResult{Interval: gs.Interval}

	outcome := gs.Snake.Tick(gs.Field, gs.Food)
	result.Outcome = outcome
	result.Score = gs.Snake.Score()
	if outcome == OutcomeIgnored {
		return result
	}

	gs.TickCount++
	gs.LastOutcome = outcome

	if outcome == OutcomeGrew {
		if gs.spawner != nil {
			gs.Food = gs.spawner.Spawn(gs.Field)
		}

		next := gs.speed.Next(gs.Interval, gs.Snake.Score())
		if next != gs.Interval {
			gs.Interval = next
			result.SpeedChanged = true
		}
		result.Interval = gs.Interval
	}

	return result
}

func (gs *GameState) SetDirection(dir Direction) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Snake.SetDirection(dir)
}

// Resize swaps the playing field. The snake and food keep their
// coordinates even if they now fall outside the field.
func (gs *GameState) Resize(field Field) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Field = field
}

func (gs *GameState) Status() GameStatus {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Snake.State
}

func (gs *GameState) Score() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Snake.Score()
}

func (gs *GameState) GetInterval() time.Duration {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Interval
}

// Copy returns a snapshot. It has no spawner, so food eaten on a ticked
// copy stays where it was.
func (gs *GameState) Copy() *GameState {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	return &GameState{
		TickCount:   gs.TickCount,
		Field:       gs.Field,
		Config:      gs.Config.Copy(),
		Snake:       gs.Snake.Copy(),
		Food:        gs.Food,
		Interval:    gs.Interval,
		LastOutcome: gs.LastOutcome,
		speed:       gs.speed,
	}
}
