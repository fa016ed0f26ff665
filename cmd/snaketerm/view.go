package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/game"
	"github.com/pthm-cable/snake/scene"
)

const (
	headerRows = 1 // status line above the board
	cellCols   = 2 // terminal columns per board cell
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDead   = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// view draws the board into a tcell screen.
type view struct {
	screen   tcell.Screen
	min, max components.Cell
}

func newView(screen tcell.Screen, min, max components.Cell) *view {
	return &view{screen: screen, min: min, max: max}
}

// cellPos returns the terminal column and row of a board cell. Board Y
// grows upward, terminal rows grow downward.
func (v *view) cellPos(c components.Cell) (col, row int) {
	col = 1 + (c.X-v.min.X)*cellCols
	row = headerRows + 1 + (v.max.Y - c.Y)
	return col, row
}

func (v *view) draw(g *game.Game, sc *scene.Scene) {
	v.screen.Clear()
	v.drawBorder()

	if cell, _, ok := sc.Food(); ok {
		col, row := v.cellPos(cell)
		v.screen.SetContent(col, row, '●', nil, styleFood)
	}

	alive := g.Alive()
	for _, seg := range sc.Segments() {
		col, row := v.cellPos(seg.Cell)
		r, style := '▓', styleBody
		if seg.Index == 0 {
			r, style = '█', styleHead
		}
		if !alive {
			style = styleDead
		}
		v.screen.SetContent(col, row, r, nil, style)
		v.screen.SetContent(col+1, row, r, nil, style)
	}

	v.drawStatus(g)
	v.screen.Show()
}

func (v *view) drawBorder() {
	w := (v.max.X-v.min.X+1)*cellCols + 1
	h := v.max.Y - v.min.Y + 2
	top := headerRows
	for x := 1; x < w; x++ {
		v.screen.SetContent(x, top, '─', nil, styleBorder)
		v.screen.SetContent(x, top+h, '─', nil, styleBorder)
	}
	for y := top + 1; y < top+h; y++ {
		v.screen.SetContent(0, y, '│', nil, styleBorder)
		v.screen.SetContent(w, y, '│', nil, styleBorder)
	}
	v.screen.SetContent(0, top, '┌', nil, styleBorder)
	v.screen.SetContent(w, top, '┐', nil, styleBorder)
	v.screen.SetContent(0, top+h, '└', nil, styleBorder)
	v.screen.SetContent(w, top+h, '┘', nil, styleBorder)
}

func (v *view) drawStatus(g *game.Game) {
	mode := "manual"
	if g.Autopilot() {
		mode = fmt.Sprintf("autopilot %s: %s", g.Algorithm(), g.LastDecision())
	}
	status := fmt.Sprintf("Score %d  Best %d  Len %d  Session %d  x%d  [%s]",
		g.Score(), g.BestScore(), len(g.Body()), g.Session(), g.StepsPerUpdate(), mode)
	v.drawText(0, 0, status, styleText)

	_, row := v.cellPos(v.min)
	switch {
	case !g.Alive():
		cause := ""
		if rec, ok := g.LastRecord(); ok {
			cause = rec.Cause
		}
		v.drawText(0, row+2, fmt.Sprintf("GAME OVER (%s): r restart, q quit", cause), styleAlert)
	case g.Paused():
		v.drawText(0, row+2, "PAUSED: space resumes", styleAlert)
	default:
		v.drawText(0, row+2, "arrows/wasd steer  t autopilot  r restart  space pause  , . speed  q quit", styleBorder)
	}
}

func (v *view) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
