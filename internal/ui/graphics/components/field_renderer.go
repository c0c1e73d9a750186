package components

import (
	"image/color"
	"math"

	"snake/internal/display"
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// Proportions of a 50px cell: a 46px body square with 10px corners and
	// an 18px food radius.
	bodyFill    = 46.0 / 50.0
	cornerRatio = 10.0 / 50.0
	foodRatio   = 18.0 / 50.0
	foodPulse   = 0.12
	glowAlpha   = 70
)

type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int

	pulse float64
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		CellSize: 50,
	}
}

// Advance moves the food animation forward by one frame.
func (fr *FieldRenderer) Advance() {
	fr.pulse += 0.1
}

func (fr *FieldRenderer) FoodScale() float64 {
	return 1 + math.Sin(fr.pulse)*foodPulse
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, vp display.Viewport, theme display.Theme) {
	fr.CellSize = vp.CellSize()

	w := float32(vp.Width)
	h := float32(vp.Height)

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		w, h,
		theme.Background, false)

	if fr.CellSize <= 0 {
		return
	}

	for x := 0; x <= vp.Width; x += fr.CellSize {
		x1 := float32(fr.OffsetX + x)
		vector.StrokeLine(screen,
			x1, float32(fr.OffsetY),
			x1, float32(fr.OffsetY)+h,
			1, theme.GridLine, false)
	}
	for y := 0; y <= vp.Height; y += fr.CellSize {
		y1 := float32(fr.OffsetY + y)
		vector.StrokeLine(screen,
			float32(fr.OffsetX), y1,
			float32(fr.OffsetX)+w, y1,
			1, theme.GridLine, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food domain.Coord, theme display.Theme) {
	half := float32(fr.CellSize) / 2
	cx := float32(fr.OffsetX+food.X) + half
	cy := float32(fr.OffsetY+food.Y) + half
	r := float32(float64(fr.CellSize) * foodRatio * fr.FoodScale())

	vector.DrawFilledCircle(screen, cx, cy, r, theme.Food, true)
}

// DrawSnake paints the body tail first so the head ends up on top.
func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, body []domain.Coord, theme display.Theme) {
	size := float32(float64(fr.CellSize) * bodyFill)
	radius := float32(float64(fr.CellSize) * cornerRatio)
	glow := display.WithAlpha(theme.Body, glowAlpha)

	for _, cell := range body {
		x := float32(fr.OffsetX + cell.X)
		y := float32(fr.OffsetY + cell.Y)
		drawRoundedRect(screen, x-2, y-2, size+4, size+4, radius+2, glow)
	}

	for i, cell := range body {
		x := float32(fr.OffsetX + cell.X)
		y := float32(fr.OffsetY + cell.Y)

		cellColor := theme.Body
		if i == len(body)-1 {
			cellColor = theme.Head
		}

		drawRoundedRect(screen, x, y, size, size, radius, cellColor)
	}
}

func drawRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}

	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(dst, x, y+r, r, h-2*r, clr, true)
	vector.DrawFilledRect(dst, x+w-r, y+r, r, h-2*r, clr, true)

	vector.DrawFilledCircle(dst, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+h-r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+h-r, r, clr, true)
}
