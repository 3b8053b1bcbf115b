package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/SickDinner/Uho-sub001/physics"
)

// TuningPanel exposes the engine tuning parameters as live sliders.
type TuningPanel struct {
	renderer *Renderer
	x, y     float32
	width    float32
	Visible  bool
}

// NewTuningPanel creates a tuning panel anchored at (x, y).
func NewTuningPanel(x, y, width float32) *TuningPanel {
	return &TuningPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the sliders over the given parameters and returns the
// edited copy plus whether anything changed. The caller pushes changed
// params back into the engine.
func (p *TuningPanel) Draw(params physics.Params) (physics.Params, bool) {
	if !p.Visible {
		return params, false
	}

	panelH := int32(8*35 + 50)
	p.renderer.DrawPanel(int32(p.x)-10, int32(p.y)-10, int32(p.width)+20, panelH)

	y := p.y
	rl.DrawText("Physics Tuning", int32(p.x), int32(y), 18, rl.White)
	y += 30

	changed := false

	params.AccelForce, y, changed = p.slider(y, "Accel force", params.AccelForce, 100, 4000, "%.0f", changed)
	params.Deadzone, y, changed = p.slider(y, "Input deadzone", params.Deadzone, 0, 0.5, "%.2f", changed)
	params.MinSpeed, y, changed = p.slider(y, "Snap-to-zero speed", params.MinSpeed, 0, 10, "%.1f", changed)
	params.RunThreshold, y, changed = p.slider(y, "Run threshold", params.RunThreshold, 0.5, 1, "%.2f", changed)
	params.Gravity, y, changed = p.slider(y, "Gravity", params.Gravity, 100, 2500, "%.0f", changed)
	params.TerminalVel, y, changed = p.slider(y, "Terminal velocity", params.TerminalVel, 100, 1500, "%.0f", changed)
	params.AirDrag, y, changed = p.slider(y, "Air drag", params.AirDrag, 0, 1, "%.2f", changed)
	params.MaxStepMs, _, changed = p.slider(y, "Max step (ms)", params.MaxStepMs, 8, 100, "%.1f", changed)

	return params, changed
}

// slider draws one labeled slider row and returns the new value, the next
// row's Y, and the accumulated changed flag.
func (p *TuningPanel) slider(y float32, label string, value, lo, hi float64, format string, changed bool) (float64, float32, bool) {
	rl.DrawText(label, int32(p.x), int32(y), 14, rl.Gray)
	y += 16
	newVal := gui.SliderBar(
		rl.Rectangle{X: p.x, Y: y, Width: p.width - 70, Height: 16},
		"", "",
		float32(value), float32(lo), float32(hi),
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(p.x+p.width-60), int32(y), 14, rl.LightGray)
	y += 19
	if sliderEdited(newVal, value) {
		return float64(newVal), y, true
	}
	return value, y, changed
}

// sliderEdited reports whether the widget's output differs from the input
// value. The widget works in float32, so the comparison happens at that
// precision; a value that merely round-trips through the slider is not an
// edit.
func sliderEdited(newVal float32, value float64) bool {
	return newVal != float32(value)
}
