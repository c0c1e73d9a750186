package types

import (
	"snake/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

type ScreenType int

const (
	ScreenGame ScreenType = iota
	ScreenGameOver
)

type Screen interface {
	Update() UIEvent
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

type ScreenContext interface {
	Size() (int, int)
	Frame() app.Frame
	Debug() bool
}
