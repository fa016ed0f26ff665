package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/camera"
	"github.com/pthm-cable/snake/game"
	"github.com/pthm-cable/snake/renderer"
	"github.com/pthm-cable/snake/scene"
	"github.com/pthm-cable/snake/ui"
)

// hudHeight reserves space above the board for the HUD text.
const hudHeight = 160

// app is the raylib front-end around a game.
type app struct {
	game  *game.Game
	scene *scene.Scene

	camera   *camera.Camera
	board    *renderer.BoardRenderer
	hud      *ui.HUD
	perf     *ui.PerfPanel
	controls *ui.ControlsPanel
	gameOver *ui.GameOverPanel
	overlays ui.Overlays

	screenW, screenH float32
}

func newApp(g *game.Game, sc *scene.Scene, screenW, screenH float32) *app {
	cfg := g.Config()
	cam := camera.New(screenW, screenH, cfg.Derived.Min, cfg.Derived.Max, float32(cfg.Screen.CellSize))
	cam.Pan(0, hudHeight/2)
	cam.FitZoom(float32(cfg.Screen.Margin) + hudHeight/2)

	return &app{
		game:     g,
		scene:    sc,
		camera:   cam,
		board:    renderer.NewBoardRenderer(),
		hud:      ui.NewHUD(),
		perf:     ui.NewPerfPanel(int32(screenW)-300, 10),
		controls: ui.NewControlsPanel(260),
		gameOver: ui.NewGameOverPanel(),
		screenW:  screenW,
		screenH:  screenH,
	}
}

// Update handles input and advances the clock.
func (a *app) Update(dt time.Duration) {
	a.handleResize()

	for _, cmd := range ui.PollCommands() {
		a.game.Apply(cmd)
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		a.overlays.HandleKey(key)
	}
	a.board.SetGrid(a.overlays.Has(ui.OverlayGrid))
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		a.camera.Pan(d.X, d.Y)
	}

	a.scene.SetTick(a.game.Tick())
	a.game.Update(dt)
	a.game.RecordFrame()
}

func (a *app) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	a.screenW, a.screenH = w, h
	a.camera.Resize(w, h)
	a.camera.FitZoom(float32(a.game.Config().Screen.Margin) + hudHeight/2)
	a.perf.SetPosition(int32(w)-300, 10)
}

// Draw renders one frame.
func (a *app) Draw() {
	g := a.game
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 12, G: 14, B: 18, A: 255})

	a.board.Draw(a.camera, a.scene, g.Tick(), g.Alive())
	if a.overlays.Has(ui.OverlayPath) {
		a.board.DrawPath(a.camera, g.PreviewPath(), rl.Color{R: 240, G: 200, B: 80, A: 180})
	}

	hover := ""
	if c, ok := renderer.CellAt(a.camera, rl.GetMousePosition()); ok {
		hover = "Cell " + c.String()
	}
	a.hud.Draw(ui.HUDData{
		Title:     "Snake",
		Score:     g.Score(),
		BestScore: g.BestScore(),
		Length:    len(g.Body()),
		Area:      g.World().Area(),
		Session:   g.Session(),
		Tick:      g.Tick(),
		Speed:     g.StepsPerUpdate(),
		FPS:       rl.GetFPS(),
		Paused:    g.Paused(),
		Autopilot: g.Autopilot(),
		Planner:   string(g.Algorithm()),
		Decision:  g.LastDecision().String(),
		Hover:     hover,
	})

	if a.overlays.Has(ui.OverlayPerf) {
		a.perf.Draw(g.PerfStats())
	}
	if a.overlays.Has(ui.OverlayControls) {
		h := a.controls.Height()
		x, y := ui.AnchorBottomRight.Place(260, h, int32(a.screenW), int32(a.screenH), 10)
		a.controls.Draw(x, y, a.overlays)
	}

	if !g.Alive() {
		a.drawGameOver()
	}

	a.hud.DrawControls(int32(a.screenW), int32(a.screenH),
		"Arrows/WASD: Steer | T: Autopilot | R: Restart | Space: Pause | , .: Speed | H: Help")

	rl.EndDrawing()
}

func (a *app) drawGameOver() {
	g := a.game
	data := ui.GameOverData{
		Score:     g.Score(),
		BestScore: g.BestScore(),
		Length:    len(g.Body()),
		Autopilot: g.Autopilot(),
	}
	if rec, ok := g.LastRecord(); ok {
		data.Ticks = rec.Ticks
		data.Cause = rec.Cause
	}

	switch a.gameOver.Draw(data, int32(a.screenW), int32(a.screenH)) {
	case ui.GameOverRestart:
		g.RestartSession()
	case ui.GameOverToggleAutopilot:
		g.ToggleAutopilot()
	}
}
