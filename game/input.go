package game

import "github.com/pthm-cable/snake/components"

const maxStepsPerUpdate = 10

// Command is a front-end independent player action.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdTogglePause
	CmdToggleAutopilot
	CmdRestart
	CmdFaster
	CmdSlower
)

var commandHeadings = map[Command]components.Heading{
	CmdUp:    components.Up,
	CmdDown:  components.Down,
	CmdLeft:  components.Left,
	CmdRight: components.Right,
}

// Apply executes a player command. Front-ends translate their own key
// events into commands so the game stays free of any windowing library.
func (g *Game) Apply(cmd Command) {
	if h, ok := commandHeadings[cmd]; ok {
		g.RequestHeading(h)
		return
	}

	switch cmd {
	case CmdTogglePause:
		g.paused = !g.paused
	case CmdToggleAutopilot:
		g.ToggleAutopilot()
	case CmdRestart:
		g.RestartSession()
	case CmdFaster:
		g.SetStepsPerUpdate(g.stepsPerUpdate + 1)
	case CmdSlower:
		g.SetStepsPerUpdate(g.stepsPerUpdate - 1)
	}
}
