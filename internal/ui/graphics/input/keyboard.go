package input

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var directionKeys = []struct {
	keys []ebiten.Key
	dir  domain.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, domain.DirectionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, domain.DirectionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, domain.DirectionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, domain.DirectionRight},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update reports the first intent pressed this frame.
func (kh *KeyboardHandler) Update() types.UIEvent {
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if inpututil.IsKeyJustPressed(k) {
				return types.Steer(dk.dir)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		return types.UIEvent{Type: types.UIEventToggleTheme}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		return types.UIEvent{Type: types.UIEventToggleFullscreen}
	}
	if IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
