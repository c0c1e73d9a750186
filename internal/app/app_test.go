package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"snake/internal/display"
	"snake/internal/domain"
)

func fixedSpawner(foods ...domain.Coord) domain.FoodSpawner {
	return domain.SpawnerFunc(func(domain.Field) domain.Coord {
		if len(foods) == 0 {
			return domain.Coord{X: -50, Y: -50}
		}
		c := foods[0]
		foods = foods[1:]
		return c
	})
}

func fastConfig() *domain.GameConfig {
	cfg := domain.DefaultGameConfig()
	cfg.InitialInterval = 5 * time.Millisecond
	cfg.SpeedStep = time.Millisecond
	cfg.SpeedFloor = time.Millisecond
	return cfg
}

func waitFor(t *testing.T, events <-chan AppEvent, want AppEventType) AppEvent {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Type == want {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for event %d", want)
		}
	}
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := domain.DefaultGameConfig()
	cfg.CellSize = 0

	_, err := NewApp(cfg)
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewAppRejectsUnknownTheme(t *testing.T) {
	_, err := NewApp(nil, WithTheme("neon"))
	if !errors.Is(err, display.ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestAppInitialFrame(t *testing.T) {
	a, err := NewApp(nil, WithSpawner(fixedSpawner(domain.Coord{X: 300, Y: 200})), WithTheme(display.ThemeLight))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	f := a.Frame()
	if len(f.Body) != 1 || f.Head() != (domain.Coord{}) {
		t.Errorf("unexpected initial body %v", f.Body)
	}
	if f.Food != (domain.Coord{X: 300, Y: 200}) {
		t.Errorf("unexpected food %v", f.Food)
	}
	if f.Theme.Name != display.ThemeLight {
		t.Errorf("expected light theme, got %s", f.Theme.Name)
	}
	if f.Viewport.Width != 700 || f.Viewport.Height != 400 {
		t.Errorf("unexpected viewport %+v", f.Viewport)
	}
	if f.Interval != 220*time.Millisecond {
		t.Errorf("unexpected interval %v", f.Interval)
	}
	if f.Over() {
		t.Error("new game must be running")
	}
}

func TestAppRunsUntilWall(t *testing.T) {
	// Food on the first three cells: three growths, one speed step, then
	// the snake runs into the right wall.
	spawner := fixedSpawner(
		domain.Coord{X: 50, Y: 0},
		domain.Coord{X: 100, Y: 0},
		domain.Coord{X: 150, Y: 0},
	)
	a, err := NewApp(fastConfig(), WithSpawner(spawner))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer a.Stop()

	speed := waitFor(t, a.Events(), AppEventSpeedChanged)
	if got := speed.Payload.(time.Duration); got != 4*time.Millisecond {
		t.Errorf("expected interval 4ms after third food, got %v", got)
	}

	over := waitFor(t, a.Events(), AppEventGameOver)
	payload := over.Payload.(GameOverPayload)
	if payload.Outcome != domain.OutcomeCollidedWall {
		t.Errorf("expected wall collision, got %v", payload.Outcome)
	}
	if payload.Score != 3 {
		t.Errorf("expected score 3, got %d", payload.Score)
	}

	select {
	case <-a.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("clock still running after game over")
	}

	f := a.Frame()
	if !f.Over() {
		t.Error("expected frame status over")
	}
	if len(f.Body) != 4 {
		t.Errorf("expected 4 segments, got %d", len(f.Body))
	}
	if f.Head() != (domain.Coord{X: 650, Y: 0}) {
		t.Errorf("expected head at the right edge, got %v", f.Head())
	}
	// 14 columns, started at 0: 13 moves, then the collision.
	if f.Tick != 14 {
		t.Errorf("expected 14 counted ticks, got %d", f.Tick)
	}
}

func TestAppSteerFiltersReversal(t *testing.T) {
	a, err := NewApp(nil, WithSpawner(fixedSpawner()))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	if a.Steer(domain.DirectionLeft) {
		t.Error("reversal must be rejected")
	}
	if !a.Steer(domain.DirectionDown) {
		t.Error("down must be accepted")
	}
	if got := a.GetState().Snake.Direction(); got != domain.DirectionDown {
		t.Errorf("expected pending down, got %v", got)
	}
}

func TestAppToggleTheme(t *testing.T) {
	a, _ := NewApp(nil, WithSpawner(fixedSpawner()))

	a.ToggleTheme()
	ev := waitFor(t, a.Events(), AppEventThemeChanged)
	if ev.Payload.(display.Theme).Name != display.ThemeLight {
		t.Errorf("expected light theme event")
	}

	a.ToggleTheme()
	if a.Theme() != display.DarkTheme {
		t.Errorf("two toggles must restore the dark theme")
	}
}

func TestAppToggleFullscreenResizesField(t *testing.T) {
	a, _ := NewApp(nil, WithSpawner(fixedSpawner()))

	vp := a.ToggleFullscreen(1920, 1080)
	if vp.Width != 1900 || vp.Height != 1050 || !vp.Fullscreen {
		t.Fatalf("unexpected fullscreen viewport %+v", vp)
	}
	if f := a.GetState().Field; f.Width != 1900 || f.Height != 1050 {
		t.Errorf("game field not resized: %+v", f)
	}
	waitFor(t, a.Events(), AppEventViewportChanged)

	vp = a.ToggleFullscreen(1920, 1080)
	if vp.Width != 700 || vp.Height != 400 || vp.Fullscreen {
		t.Errorf("expected default viewport back, got %+v", vp)
	}
	if f := a.GetState().Field; f.Width != 700 || f.Height != 400 {
		t.Errorf("game field not restored: %+v", f)
	}
}

func TestAppToggleFullscreenIgnoresTinyScreen(t *testing.T) {
	a, _ := NewApp(nil, WithSpawner(fixedSpawner()))

	vp := a.ToggleFullscreen(30, 30)
	if vp.Fullscreen || vp.Width != 700 {
		t.Errorf("expected viewport unchanged, got %+v", vp)
	}
}

func TestAppHandleInput(t *testing.T) {
	a, _ := NewApp(nil, WithSpawner(fixedSpawner()))

	a.HandleInput(InputEvent{Type: InputSteer, Payload: domain.DirectionDown})
	a.HandleInput(InputEvent{Type: InputToggleTheme})
	a.HandleInput(InputEvent{Type: InputToggleFullscreen, Payload: ScreenSize{Width: 1000, Height: 500}})
	// Malformed payloads are ignored.
	a.HandleInput(InputEvent{Type: InputSteer, Payload: "up"})
	a.HandleInput(InputEvent{Type: InputToggleFullscreen})

	f := a.Frame()
	if got := a.GetState().Snake.Direction(); got != domain.DirectionDown {
		t.Errorf("expected pending down, got %v", got)
	}
	if f.Theme.Name != display.ThemeLight {
		t.Errorf("expected light theme, got %s", f.Theme.Name)
	}
	if f.Viewport.Width != 1000 || f.Viewport.Height != 500 {
		t.Errorf("expected 1000x500, got %dx%d", f.Viewport.Width, f.Viewport.Height)
	}
}

func TestAppInputChannel(t *testing.T) {
	a, _ := NewApp(nil, WithSpawner(fixedSpawner()))
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer a.Stop()

	a.Input() <- InputEvent{Type: InputToggleTheme}
	waitFor(t, a.Events(), AppEventThemeChanged)

	a.Input() <- InputEvent{Type: InputQuit}
	select {
	case <-a.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("quit did not stop the clock")
	}
}

func TestAppFrameIsSnapshot(t *testing.T) {
	a, _ := NewApp(nil, WithSpawner(fixedSpawner()))
	f := a.Frame()
	f.Body[0] = domain.Coord{X: 999, Y: 999}

	if a.Frame().Head() != (domain.Coord{}) {
		t.Error("mutating a frame must not affect the game")
	}
}
