package screens

import (
	"log"

	"snake/internal/ui/graphics/components"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScreen freezes the last board under a veil. Theme and fullscreen
// toggles keep working; steering does not.
type GameOverScreen struct {
	ctx   types.ScreenContext
	board *GameScreen
}

func NewGameOverScreen(ctx types.ScreenContext, board *GameScreen) *GameOverScreen {
	return &GameOverScreen{
		ctx:   ctx,
		board: board,
	}
}

func (s *GameOverScreen) Update() types.UIEvent {
	event := s.board.keyboard.Update()
	if event.Type == types.UIEventSteer {
		return types.UIEvent{Type: types.UIEventNone}
	}
	return event
}

func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	s.board.Draw(screen)
	components.DrawGameOver(screen, s.ctx.Frame())
}

func (s *GameOverScreen) OnEnter() {
	frame := s.ctx.Frame()
	log.Printf("UI: game over screen, score %d after %d ticks", frame.Score, frame.Tick)
}

func (s *GameOverScreen) OnExit() {}
