package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/snake/game"
)

var runeCommands = map[rune]game.Command{
	'w': game.CmdUp,
	'W': game.CmdUp,
	's': game.CmdDown,
	'S': game.CmdDown,
	'a': game.CmdLeft,
	'A': game.CmdLeft,
	'd': game.CmdRight,
	'D': game.CmdRight,
	't': game.CmdToggleAutopilot,
	'T': game.CmdToggleAutopilot,
	'r': game.CmdRestart,
	'R': game.CmdRestart,
	' ': game.CmdTogglePause,
	',': game.CmdSlower,
	'.': game.CmdFaster,
}

// commandFor maps a terminal key to a game command. quit is true for the
// keys that leave the program.
func commandFor(key tcell.Key, r rune) (cmd game.Command, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CmdNone, true
	case tcell.KeyUp:
		return game.CmdUp, false
	case tcell.KeyDown:
		return game.CmdDown, false
	case tcell.KeyLeft:
		return game.CmdLeft, false
	case tcell.KeyRight:
		return game.CmdRight, false
	case tcell.KeyRune:
		if r == 'q' || r == 'Q' {
			return game.CmdNone, true
		}
		return runeCommands[r], false
	}
	return game.CmdNone, false
}
