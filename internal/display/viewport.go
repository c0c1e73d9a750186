package display

import (
	"snake/internal/domain"
)

// Viewport tracks the canvas size in pixels and whether it fills the
// screen. Sizes are always whole multiples of the cell size.
type Viewport struct {
	Width      int
	Height     int
	Fullscreen bool

	cellSize      int
	defaultWidth  int
	defaultHeight int
}

func NewViewport(cfg *domain.GameConfig) Viewport {
	field := cfg.DefaultField()
	return Viewport{
		Width:         field.Width,
		Height:        field.Height,
		cellSize:      cfg.CellSize,
		defaultWidth:  cfg.DefaultWidth,
		defaultHeight: cfg.DefaultHeight,
	}
}

// ToggleFullscreen enters fullscreen sized to the largest whole grid that
// fits the screen, or returns to the default canvas.
func (v Viewport) ToggleFullscreen(screenWidth, screenHeight int) Viewport {
	next := v
	if !v.Fullscreen {
		next.Fullscreen = true
		next.Width = domain.Snap(screenWidth, v.cellSize)
		next.Height = domain.Snap(screenHeight, v.cellSize)
	} else {
		next.Fullscreen = false
		next.Width = domain.Snap(v.defaultWidth, v.cellSize)
		next.Height = domain.Snap(v.defaultHeight, v.cellSize)
	}
	return next
}

func (v Viewport) CellSize() int {
	return v.cellSize
}

func (v Viewport) Field() domain.Field {
	return domain.NewField(v.Width, v.Height, v.cellSize)
}
