// Package terminal renders the game with tcell. One grid cell is two
// columns wide and one row high, below a two-line header.
package terminal

import (
	"fmt"
	"image/color"

	"snake/internal/app"
	"snake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

const (
	cellCols   = 2
	headerRows = 2
	keyHint    = "T: Theme | F: Fullscreen | Esc: Quit"
)

type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// ScreenSize is the pixel size of the largest canvas the terminal can show.
func (v *View) ScreenSize(cellSize int) (int, int) {
	w, h := v.screen.Size()
	cols := w / cellCols
	rows := h - headerRows
	if rows < 0 {
		rows = 0
	}
	return cols * cellSize, rows * cellSize
}

func (v *View) Draw(frame app.Frame) {
	s := v.screen
	s.Clear()

	theme := frame.Theme
	base := tcell.StyleDefault.Background(rgb(theme.Background)).Foreground(rgb(theme.Text))
	grid := base.Foreground(rgb(theme.GridLine))
	body := base.Foreground(rgb(theme.Body))
	head := base.Foreground(rgb(theme.Head))
	food := base.Foreground(rgb(theme.Food))

	field := frame.Viewport.Field()
	cols, rows := field.Cols(), field.Rows()

	v.drawText(0, 0, fmt.Sprintf("Score: %d", frame.Score), base)
	v.drawText(0, 1, keyHint, base)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := col*cellCols, headerRows+row
			s.SetContent(x, y, '·', nil, grid)
			s.SetContent(x+1, y, ' ', nil, grid)
		}
	}

	foodRune := '●'
	if frame.Tick%2 == 1 {
		foodRune = '•'
	}
	v.drawCell(field, frame.Food, foodRune, ' ', food)

	for i, c := range frame.Body {
		style := body
		if i == len(frame.Body)-1 {
			style = head
		}
		v.drawCell(field, c, '█', '█', style)
	}

	if frame.Over() {
		v.drawGameOver(cols*cellCols, rows, frame.Score)
	}

	s.Show()
}

func (v *View) drawCell(field domain.Field, c domain.Coord, left, right rune, style tcell.Style) {
	if c.X < 0 || c.Y < 0 {
		return
	}
	col, row := field.Cell(c)
	x, y := col*cellCols, headerRows+row
	v.screen.SetContent(x, y, left, nil, style)
	v.screen.SetContent(x+1, y, right, nil, style)
}

func (v *View) drawGameOver(width, rows, score int) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)

	lines := []string{
		"  GAME OVER  ",
		fmt.Sprintf("  Final score: %d  ", score),
		"  Press Esc to quit  ",
	}
	y := headerRows + rows/2 - 1
	for i, line := range lines {
		x := (width - len([]rune(line))) / 2
		if x < 0 {
			x = 0
		}
		v.drawText(x, y+i, line, style)
	}
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
