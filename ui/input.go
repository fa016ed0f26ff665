package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/game"
)

// keyBindings maps raylib keys to game commands.
var keyBindings = []struct {
	key int32
	cmd game.Command
}{
	{rl.KeyUp, game.CmdUp},
	{rl.KeyW, game.CmdUp},
	{rl.KeyDown, game.CmdDown},
	{rl.KeyS, game.CmdDown},
	{rl.KeyLeft, game.CmdLeft},
	{rl.KeyA, game.CmdLeft},
	{rl.KeyRight, game.CmdRight},
	{rl.KeyD, game.CmdRight},
	{rl.KeyT, game.CmdToggleAutopilot},
	{rl.KeySpace, game.CmdTogglePause},
	{rl.KeyR, game.CmdRestart},
	{rl.KeyComma, game.CmdSlower},
	{rl.KeyPeriod, game.CmdFaster},
}

// PollCommands returns the commands for keys pressed this frame.
func PollCommands() []game.Command {
	var cmds []game.Command
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
