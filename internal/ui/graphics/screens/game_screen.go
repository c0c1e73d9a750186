package screens

import (
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	keyboard      *input.KeyboardHandler
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		scoreboard:    components.NewScoreboard(20, 30),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) Update() types.UIEvent {
	s.fieldRenderer.Advance()
	return s.keyboard.Update()
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	frame := s.ctx.Frame()
	if len(frame.Body) == 0 {
		screen.Fill(frame.Theme.Background)
		return
	}

	s.fieldRenderer.DrawField(screen, frame.Viewport, frame.Theme)
	s.fieldRenderer.DrawSnake(screen, frame.Body, frame.Theme)
	s.fieldRenderer.DrawFood(screen, frame.Food, frame.Theme)

	s.scoreboard.Draw(screen, frame)
	if s.ctx.Debug() {
		s.scoreboard.DrawDebug(screen, frame)
	}
}

func (s *GameScreen) OnEnter() {}

func (s *GameScreen) OnExit() {}
