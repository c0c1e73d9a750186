package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"snake/internal/clock"
	"snake/internal/display"
	"snake/internal/domain"
)

type App struct {
	config   *domain.GameConfig
	state    *domain.GameState
	clock    *clock.Clock
	themes   *display.Themes
	viewport display.Viewport

	// mu guards themes and viewport; game state has its own lock.
	mu sync.RWMutex

	eventCh chan AppEvent
	inputCh chan InputEvent

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventStateUpdated AppEventType = iota
	AppEventThemeChanged
	AppEventViewportChanged
	AppEventSpeedChanged
	AppEventGameOver
)

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputSteer InputEventType = iota
	InputToggleTheme
	InputToggleFullscreen
	InputQuit
)

// ScreenSize is the payload of InputToggleFullscreen: the pixel size of
// the display the canvas would fill.
type ScreenSize struct {
	Width  int
	Height int
}

type GameOverPayload struct {
	Outcome domain.TickOutcome
	Score   int
}

type Option func(*options)

type options struct {
	spawner domain.FoodSpawner
	theme   display.ThemeName
	seed    int64
}

func WithSpawner(s domain.FoodSpawner) Option {
	return func(o *options) { o.spawner = s }
}

func WithTheme(name display.ThemeName) Option {
	return func(o *options) { o.theme = name }
}

func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

func NewApp(cfg *domain.GameConfig, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = domain.DefaultGameConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	o := options{theme: display.ThemeDark, seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.spawner == nil {
		o.spawner = domain.NewRandomSpawner(o.seed)
	}

	themes := display.NewThemes()
	if err := themes.Set(o.theme); err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	return &App{
		config:   cfg.Copy(),
		state:    domain.NewGameState(cfg, o.spawner),
		clock:    clock.New(),
		themes:   themes,
		viewport: display.NewViewport(cfg),
		eventCh:  make(chan AppEvent, 100),
		inputCh:  make(chan InputEvent, 100),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)

	interval := a.state.GetInterval()
	if err := a.clock.Start(a.ctx, interval, a.tick); err != nil {
		a.cancel()
		return fmt.Errorf("failed to start clock: %w", err)
	}

	a.wg.Add(1)
	go a.inputLoop()

	log.Printf("APP: started, field %dx%d, interval %v",
		a.viewport.Width, a.viewport.Height, interval)

	a.publish(AppEvent{Type: AppEventStateUpdated})

	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	a.clock.Stop()
	a.wg.Wait()
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Input() chan<- InputEvent {
	return a.inputCh
}

// Done is closed once the clock has stopped, by game over or Stop.
func (a *App) Done() <-chan struct{} {
	return a.clock.Done()
}

func (a *App) GetState() *domain.GameState {
	return a.state.Copy()
}

func (a *App) Steer(dir domain.Direction) bool {
	return a.state.SetDirection(dir)
}

func (a *App) ToggleTheme() display.Theme {
	a.mu.Lock()
	theme := a.themes.Toggle()
	a.mu.Unlock()

	log.Printf("APP: theme %s", theme.Name)
	a.publish(AppEvent{Type: AppEventThemeChanged, Payload: theme})
	return theme
}

// ToggleFullscreen resizes the playing field between ticks. Snake and food
// are left where they are, even outside a smaller field.
func (a *App) ToggleFullscreen(screenWidth, screenHeight int) display.Viewport {
	a.mu.Lock()
	vp := a.viewport.ToggleFullscreen(screenWidth, screenHeight)
	if vp.Width < vp.CellSize() || vp.Height < vp.CellSize() {
		a.mu.Unlock()
		log.Printf("APP: screen %dx%d too small for fullscreen, ignoring", screenWidth, screenHeight)
		return a.Viewport()
	}
	a.viewport = vp
	a.state.Resize(vp.Field())
	a.mu.Unlock()

	log.Printf("APP: viewport %dx%d fullscreen=%v", vp.Width, vp.Height, vp.Fullscreen)
	a.publish(AppEvent{Type: AppEventViewportChanged, Payload: vp})
	return vp
}

func (a *App) Theme() display.Theme {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.themes.Current()
}

func (a *App) Viewport() display.Viewport {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.viewport
}

func (a *App) HandleInput(input InputEvent) {
	switch input.Type {
	case InputSteer:
		dir, ok := input.Payload.(domain.Direction)
		if !ok {
			return
		}
		a.Steer(dir)

	case InputToggleTheme:
		a.ToggleTheme()

	case InputToggleFullscreen:
		size, ok := input.Payload.(ScreenSize)
		if !ok {
			return
		}
		a.ToggleFullscreen(size.Width, size.Height)

	case InputQuit:
		if a.cancel != nil {
			a.cancel()
		}
	}
}

func (a *App) inputLoop() {
	defer a.wg.Done()

	for {
		select {
		case <-a.ctx.Done():
			return

		case input := <-a.inputCh:
			a.HandleInput(input)
		}
	}
}

func (a *App) tick() bool {
	res := a.state.Tick()

	switch {
	case res.Outcome.Collided():
		log.Printf("APP: game over (%s), score %d", res.Outcome, res.Score)
		a.publish(AppEvent{Type: AppEventStateUpdated})
		a.publish(AppEvent{
			Type:    AppEventGameOver,
			Payload: GameOverPayload{Outcome: res.Outcome, Score: res.Score},
		})
		return false

	case res.Outcome == domain.OutcomeIgnored:
		return false
	}

	if res.SpeedChanged {
		if err := a.clock.Reconfigure(res.Interval); err != nil {
			log.Printf("APP: failed to reconfigure clock: %v", err)
		} else {
			log.Printf("APP: score %d, interval now %v", res.Score, res.Interval)
			a.publish(AppEvent{Type: AppEventSpeedChanged, Payload: res.Interval})
		}
	}

	a.publish(AppEvent{Type: AppEventStateUpdated})
	return true
}

func (a *App) publish(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		if event.Type != AppEventStateUpdated {
			log.Println("APP: event channel full, dropping event")
		}
	}
}
