package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Mode         string
	Tick         int32
	FPS          int32
	Paused       bool
	Score        int
	Bodies       int
	Statics      int
	PairsTested  int
	Collisions   int
	MaxBucket    int
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	// Title
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	// Simulation info
	rl.DrawText(
		fmt.Sprintf("Mode: %s | Tick: %d | FPS: %d | Score: %d", data.Mode, data.Tick, data.FPS, data.Score),
		10, 35, 16, rl.LightGray,
	)

	// Engine counters
	rl.DrawText(
		fmt.Sprintf("Bodies: %d (+%d static) | Pairs: %d | Hits: %d | Max bucket: %d",
			data.Bodies, data.Statics, data.PairsTested, data.Collisions, data.MaxBucket),
		10, 55, 16, rl.LightGray,
	)

	// Status
	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// DrawDebugInfo renders a multi-line debug snapshot in a panel.
func (h *HUD) DrawDebugInfo(x, y int32, info string) {
	h.renderer.DrawPanel(x, y, 260, 110)
	pad := h.renderer.Theme.Padding
	rl.DrawText(info, x+pad, y+pad, h.renderer.Theme.FontSize, h.renderer.Theme.ValueColor)
}
