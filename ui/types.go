// Package ui draws the raylib HUD, panels and game-over screen, and maps
// raylib key presses to game commands.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Anchor is a screen corner (or the centre) a panel is pinned to.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorBottomRight
	AnchorCenter
)

// Place returns the top-left corner of a w x h panel on a screen of the
// given size, inset by margin.
func (a Anchor) Place(w, h, screenW, screenH, margin int32) (x, y int32) {
	switch a {
	case AnchorBottomRight:
		return screenW - w - margin, screenH - h - margin
	case AnchorCenter:
		return (screenW - w) / 2, (screenH - h) / 2
	default:
		return margin, margin
	}
}

// Theme holds colours and metrics shared by every panel.
type Theme struct {
	Background rl.Color
	Border     rl.Color
	Heading    rl.Color
	Label      rl.Color
	Value      rl.Color
	Accent     rl.Color
	Danger     rl.Color
	Track      rl.Color
	Fill       rl.Color

	Pad         int32
	Row         int32
	KeyColumn   int32
	MeterHeight int32
	TextSize    int32
	TitleSize   int32
}

// DefaultTheme matches the board palette.
func DefaultTheme() Theme {
	return Theme{
		Background:  rl.Color{R: 16, G: 22, B: 20, A: 235},
		Border:      rl.Color{R: 52, G: 78, B: 62, A: 255},
		Heading:     rl.Color{R: 240, G: 200, B: 80, A: 255},
		Label:       rl.Color{R: 170, G: 180, B: 175, A: 255},
		Value:       rl.RayWhite,
		Accent:      rl.Color{R: 120, G: 220, B: 120, A: 255},
		Danger:      rl.Color{R: 230, G: 90, B: 80, A: 255},
		Track:       rl.Color{R: 36, G: 44, B: 40, A: 255},
		Fill:        rl.Color{R: 90, G: 180, B: 110, A: 255},
		Pad:         10,
		Row:         18,
		KeyColumn:   90,
		MeterHeight: 10,
		TextSize:    14,
		TitleSize:   16,
	}
}
