package app

import (
	"time"

	"snake/internal/display"
	"snake/internal/domain"
)

// Frame is everything a renderer needs for one picture. It shares no
// memory with the running game.
type Frame struct {
	Body     []domain.Coord
	Food     domain.Coord
	Score    int
	Status   domain.GameStatus
	Outcome  domain.TickOutcome
	Theme    display.Theme
	Viewport display.Viewport
	Interval time.Duration
	Tick     uint64
}

func (f Frame) Head() domain.Coord {
	return f.Body[len(f.Body)-1]
}

func (f Frame) Over() bool {
	return f.Status == domain.StatusOver
}

func (a *App) Frame() Frame {
	a.mu.RLock()
	defer a.mu.RUnlock()

	gs := a.state.Copy()
	return Frame{
		Body:     gs.Snake.Body(),
		Food:     gs.Food,
		Score:    gs.Snake.Score(),
		Status:   gs.Snake.State,
		Outcome:  gs.LastOutcome,
		Theme:    a.themes.Current(),
		Viewport: a.viewport,
		Interval: gs.Interval,
		Tick:     gs.TickCount,
	}
}
