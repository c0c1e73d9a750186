package terminal

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/gdamore/tcell/v2"
)

func Translate(ev *tcell.EventKey) types.UIEvent {
	return translate(ev.Key(), ev.Rune())
}

func translate(key tcell.Key, r rune) types.UIEvent {
	switch key {
	case tcell.KeyUp:
		return types.Steer(domain.DirectionUp)
	case tcell.KeyDown:
		return types.Steer(domain.DirectionDown)
	case tcell.KeyLeft:
		return types.Steer(domain.DirectionLeft)
	case tcell.KeyRight:
		return types.Steer(domain.DirectionRight)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.UIEvent{Type: types.UIEventQuit}
	case tcell.KeyRune:
	default:
		return types.UIEvent{Type: types.UIEventNone}
	}

	switch r {
	case 'w', 'W':
		return types.Steer(domain.DirectionUp)
	case 's', 'S':
		return types.Steer(domain.DirectionDown)
	case 'a', 'A':
		return types.Steer(domain.DirectionLeft)
	case 'd', 'D':
		return types.Steer(domain.DirectionRight)
	case 't', 'T':
		return types.UIEvent{Type: types.UIEventToggleTheme}
	case 'f', 'F':
		return types.UIEvent{Type: types.UIEventToggleFullscreen}
	case 'q', 'Q':
		return types.UIEvent{Type: types.UIEventQuit}
	}
	return types.UIEvent{Type: types.UIEventNone}
}
