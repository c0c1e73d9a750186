package types

import (
	"snake/internal/app"
	"snake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventSteer
	UIEventToggleTheme
	UIEventToggleFullscreen
	UIEventQuit
)

type SteerData struct {
	Direction domain.Direction
}

// FullscreenData carries the pixel size of the display the canvas would
// fill when entering fullscreen.
type FullscreenData struct {
	ScreenWidth  int
	ScreenHeight int
}

func Steer(dir domain.Direction) UIEvent {
	return UIEvent{Type: UIEventSteer, Payload: SteerData{Direction: dir}}
}

// ToInput maps a UI intent onto the app's input vocabulary. It reports
// false for UIEventNone and for payloads of the wrong shape.
func (e UIEvent) ToInput() (app.InputEvent, bool) {
	switch e.Type {
	case UIEventSteer:
		data, ok := e.Payload.(SteerData)
		if !ok {
			return app.InputEvent{}, false
		}
		return app.InputEvent{Type: app.InputSteer, Payload: data.Direction}, true

	case UIEventToggleTheme:
		return app.InputEvent{Type: app.InputToggleTheme}, true

	case UIEventToggleFullscreen:
		data, ok := e.Payload.(FullscreenData)
		if !ok {
			return app.InputEvent{}, false
		}
		return app.InputEvent{
			Type:    app.InputToggleFullscreen,
			Payload: app.ScreenSize{Width: data.ScreenWidth, Height: data.ScreenHeight},
		}, true

	case UIEventQuit:
		return app.InputEvent{Type: app.InputQuit}, true
	}
	return app.InputEvent{}, false
}
