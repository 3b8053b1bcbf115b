package telemetry

import (
	"math"
	"testing"

	"github.com/SickDinner/Uho-sub001/physics"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeSpeedStats(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	mean, p10, p50, p90, max := ComputeSpeedStats(values)

	if math.Abs(mean-55) > 0.001 {
		t.Errorf("mean = %v, want 55", mean)
	}
	if math.Abs(p10-19) > 0.5 {
		t.Errorf("p10 = %v, want ~19", p10)
	}
	if math.Abs(p50-55) > 0.5 {
		t.Errorf("p50 = %v, want ~55", p50)
	}
	if math.Abs(p90-91) > 0.5 {
		t.Errorf("p90 = %v, want ~91", p90)
	}
	if max != 100 {
		t.Errorf("max = %v, want 100", max)
	}

	// Input must not be mutated
	if values[0] != 10 || values[9] != 100 {
		t.Error("ComputeSpeedStats reordered its input")
	}
}

func TestComputeSpeedStatsEmpty(t *testing.T) {
	mean, p10, p50, p90, max := ComputeSpeedStats(nil)
	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 || max != 0 {
		t.Error("expected all zeros for empty input")
	}
}

func TestCollector_WindowBoundary(t *testing.T) {
	// 2-second window at dt = 1s per tick: emits every 2 ticks.
	c := NewCollector(2.0, 1.0)

	if c.ShouldEmit(1) {
		t.Error("window should not be complete after 1 tick")
	}
	if !c.ShouldEmit(2) {
		t.Error("window should be complete after 2 ticks")
	}
}

func TestCollector_EmitAggregatesAndResets(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	eng := physics.NewFreeEngine(physics.DefaultParams())
	eng.CreatePlayer(1, 100, 100)
	eng.CreateStaticObstacle(2, 300, 300, 64, 64)

	c.RecordTick(physics.StepStats{PairsTested: 4, Collisions: 1})
	c.RecordTick(physics.StepStats{PairsTested: 6, Collisions: 2})

	s := c.Emit(60, eng)

	if s.PairsTested != 10 || s.Collisions != 3 {
		t.Errorf("window totals = %d pairs / %d collisions, want 10 / 3", s.PairsTested, s.Collisions)
	}
	if math.Abs(s.HitRate-0.3) > 1e-9 {
		t.Errorf("hit rate = %v, want 0.3", s.HitRate)
	}
	if s.WindowEndTick != 60 {
		t.Errorf("window end = %d, want 60", s.WindowEndTick)
	}
	if math.Abs(s.SimTimeSec-1.0) > 0.001 {
		t.Errorf("sim time = %v, want 1.0", s.SimTimeSec)
	}

	// Next window starts fresh
	s2 := c.Emit(120, eng)
	if s2.PairsTested != 0 || s2.Collisions != 0 {
		t.Error("counters not reset between windows")
	}
	if s2.WindowStartTick != 60 {
		t.Errorf("next window start = %d, want 60", s2.WindowStartTick)
	}
}
