package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/SickDinner/Uho-sub001/systems"
)

// handleInput processes keyboard input and returns the movement intent
// for this frame.
func (g *Game) handleInput() systems.Intent {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyF1) && g.tuning != nil {
		g.tuning.Visible = !g.tuning.Visible
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		g.debugOverlay = !g.debugOverlay
	}

	if rl.IsKeyPressed(rl.KeyC) {
		g.followCam = !g.followCam
	}

	g.handleCameraInput()

	return readIntent(g.mode)
}

// readIntent builds the frame's movement intent from the WASD cluster.
// In platformer mode the vertical keys are ignored; jumping is Space.
func readIntent(mode systems.Mode) systems.Intent {
	var x, y float64
	if rl.IsKeyDown(rl.KeyA) {
		x -= 1
	}
	if rl.IsKeyDown(rl.KeyD) {
		x += 1
	}
	if mode == systems.ModeFree {
		if rl.IsKeyDown(rl.KeyW) {
			y -= 1
		}
		if rl.IsKeyDown(rl.KeyS) {
			y += 1
		}
	}

	return systems.Intent{
		Dir:  systems.NormalizeDir(x, y),
		Run:  rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		Jump: mode == systems.ModePlatformer && rl.IsKeyPressed(rl.KeySpace),
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.cam != nil {
		g.cam.Resize(w, h)
	}
}

// handleCameraInput processes camera pan/zoom controls. Panning with the
// arrow keys takes the camera off follow mode.
func (g *Game) handleCameraInput() {
	if g.cam == nil {
		return
	}

	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / g.cam.Zoom

	panned := false
	if rl.IsKeyDown(rl.KeyRight) {
		g.cam.Pan(panSpeed, 0)
		panned = true
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.cam.Pan(-panSpeed, 0)
		panned = true
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.cam.Pan(0, panSpeed)
		panned = true
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.cam.Pan(0, -panSpeed)
		panned = true
	}
	if panned {
		g.followCam = false
	}

	// Zoom controls: mouse wheel or +/- keys
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		zoomFactor := float32(1.0) + wheelMove*0.1
		g.cam.ZoomBy(zoomFactor)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.cam.ZoomBy(0.8)
	}

	// Home key recenters and resumes following
	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset()
		g.followCam = true
	}
}
