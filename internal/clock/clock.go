// Package clock drives the fixed-interval game tick.
//
// A Clock owns exactly one ticker for its whole life. Reconfigure resets
// that ticker in place, so a stale timer can never fire next to a new one.
package clock

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrInvalidInterval = errors.New("clock: interval must be positive")
	ErrAlreadyRunning  = errors.New("clock: already running")
	ErrNotRunning      = errors.New("clock: not running")
	ErrHalted          = errors.New("clock: halted")
)

type State int

const (
	StateStopped State = iota
	StateRunning
	// StateHalted is entered when a tick reports the end of the game.
	// A halted clock cannot be started again.
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	}
	return "stopped"
}

// TickFunc is called once per tick. Returning false halts the clock.
type TickFunc func() bool

type Clock struct {
	mu       sync.Mutex
	state    State
	interval time.Duration
	ticker   *time.Ticker
	cancel   context.CancelFunc
	done     chan struct{}
	ticks    uint64
}

func New() *Clock {
	done := make(chan struct{})
	close(done)
	return &Clock{done: done}
}

func (c *Clock) Start(ctx context.Context, interval time.Duration, onTick TickFunc) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateRunning:
		return ErrAlreadyRunning
	case StateHalted:
		return ErrHalted
	}

	// The previous run goroutine may still be finishing its last tick.
	select {
	case <-c.done:
	default:
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.interval = interval
	c.ticker = time.NewTicker(interval)
	c.done = make(chan struct{})
	c.state = StateRunning

	go c.run(ctx, c.ticker, onTick, c.done)

	return nil
}

// Reconfigure changes the tick interval. The next tick fires a full
// interval after the call; elapsed time under the old interval is dropped.
// It may be called from inside a TickFunc.
func (c *Clock) Reconfigure(interval time.Duration) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return ErrNotRunning
	}

	c.interval = interval
	c.ticker.Reset(interval)
	return nil
}

// Stop cancels the clock. It does not wait for an in-flight tick; use Done.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return
	}
	c.state = StateStopped
	c.cancel()
}

func (c *Clock) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Clock) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

func (c *Clock) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

func (c *Clock) run(ctx context.Context, ticker *time.Ticker, onTick TickFunc, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			if c.state == StateRunning {
				c.state = StateStopped
			}
			c.mu.Unlock()
			return
		case <-ticker.C:
		}

		// A Stop racing with the ticker must win.
		if ctx.Err() != nil {
			continue
		}

		c.mu.Lock()
		c.ticks++
		c.mu.Unlock()

		if !onTick() {
			c.halt()
			return
		}
	}
}

func (c *Clock) halt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateHalted
	c.cancel()
}
