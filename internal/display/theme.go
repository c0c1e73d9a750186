package display

import (
	"errors"
	"fmt"
	"image/color"
)

var ErrUnknownTheme = errors.New("unknown theme")

type ThemeName string

const (
	ThemeDark  ThemeName = "dark"
	ThemeLight ThemeName = "light"
)

type Theme struct {
	Name       ThemeName
	Background color.RGBA
	GridLine   color.RGBA
	Body       color.RGBA
	Head       color.RGBA
	Food       color.RGBA
	Text       color.RGBA
}

var (
	DarkTheme = Theme{
		Name:       ThemeDark,
		Background: color.RGBA{0x0f, 0x17, 0x2a, 255},
		GridLine:   color.RGBA{0x1e, 0x29, 0x3b, 255},
		Body:       color.RGBA{0x22, 0xc5, 0x5e, 255},
		Head:       color.RGBA{0x4a, 0xde, 0x80, 255},
		Food:       color.RGBA{0xef, 0x44, 0x44, 255},
		Text:       color.RGBA{0xe5, 0xe7, 0xeb, 255},
	}

	LightTheme = Theme{
		Name:       ThemeLight,
		Background: color.RGBA{0xec, 0xfe, 0xff, 255},
		GridLine:   color.RGBA{0xcb, 0xd5, 0xe1, 255},
		Body:       color.RGBA{0x0f, 0x76, 0x6e, 255},
		Head:       color.RGBA{0x14, 0xb8, 0xa6, 255},
		Food:       color.RGBA{0xdc, 0x26, 0x26, 255},
		Text:       color.RGBA{0x0f, 0x17, 0x2a, 255},
	}
)

// Themes holds the active palette. It flips between the two built-ins.
type Themes struct {
	current Theme
}

func NewThemes() *Themes {
	return &Themes{current: DarkTheme}
}

func (t *Themes) Current() Theme {
	return t.current
}

func (t *Themes) Toggle() Theme {
	if t.current.Name == ThemeDark {
		t.current = LightTheme
	} else {
		t.current = DarkTheme
	}
	return t.current
}

func (t *Themes) Set(name ThemeName) error {
	switch name {
	case ThemeDark:
		t.current = DarkTheme
	case ThemeLight:
		t.current = LightTheme
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return nil
}

// Veil is the translucent overlay drawn over a finished game.
var Veil = color.RGBA{0, 0, 0, 178}

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	// color.RGBA is alpha-premultiplied.
	f := float64(a) / float64(255)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: a,
	}
}
