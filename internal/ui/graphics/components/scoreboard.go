package components

import (
	"fmt"
	"image/color"

	"snake/internal/app"
	"snake/internal/display"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const KeyHint = "T: Theme | F: Fullscreen"

var whiteText = color.RGBA{255, 255, 255, 255}

type Scoreboard struct {
	X, Y int
}

func NewScoreboard(x, y int) *Scoreboard {
	return &Scoreboard{
		X: x,
		Y: y,
	}
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, frame app.Frame) {
	fonts := types.GetFonts()

	y := sb.Y
	text.Draw(screen, fmt.Sprintf("Score: %d", frame.Score), fonts.Normal, sb.X, y, frame.Theme.Text)
	y += types.LineHeight(fonts.Normal) * 3 / 2
	text.Draw(screen, KeyHint, fonts.Small, sb.X, y, frame.Theme.Text)
}

func (sb *Scoreboard) DrawDebug(screen *ebiten.Image, frame app.Frame) {
	msg := fmt.Sprintf("TPS %.0f  tick %d  interval %v  %s",
		ebiten.ActualTPS(), frame.Tick, frame.Interval, frame.Outcome)
	ebitenutil.DebugPrintAt(screen, msg, sb.X, frame.Viewport.Height-2*types.LineHeight(types.GetFonts().Small))
}

// DrawGameOver veils the board and centres the banner.
func DrawGameOver(screen *ebiten.Image, frame app.Frame) {
	w, h := frame.Viewport.Width, frame.Viewport.Height
	fonts := types.GetFonts()

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), display.Veil, false)

	title := "GAME OVER"
	x := (w - types.TextWidth(fonts.Normal, title)) / 2
	y := h / 2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Normal, x+dx, y+dy, display.Darken(frame.Theme.Food, 0.8))
		}
	}
	text.Draw(screen, title, fonts.Normal, x, y, whiteText)

	score := fmt.Sprintf("Final score: %d", frame.Score)
	x = (w - types.TextWidth(fonts.Small, score)) / 2
	y += 2 * types.LineHeight(fonts.Normal)
	text.Draw(screen, score, fonts.Small, x, y, whiteText)

	hint := "Press ESC to quit"
	x = (w - types.TextWidth(fonts.Small, hint)) / 2
	y += types.LineHeight(fonts.Small) * 3 / 2
	text.Draw(screen, hint, fonts.Small, x, y, whiteText)
}
