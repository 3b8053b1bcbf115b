package telemetry

import (
	"log/slog"
	"sort"
)

// WindowStats holds aggregated simulation statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Body counts at window end
	Bodies   int `csv:"bodies"`
	Statics  int `csv:"statics"`
	Moving   int `csv:"moving"`
	Grounded int `csv:"grounded"`

	// Collision pass totals over the window
	PairsTested int     `csv:"pairs_tested"`
	Collisions  int     `csv:"collisions"`
	HitRate     float64 `csv:"hit_rate"`

	// Speed distribution over dynamic bodies (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`

	// Spatial grid occupancy at window end
	OccupiedCells int `csv:"occupied_cells"`
	MaxBucket     int `csv:"max_bucket"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSpeedStats calculates mean, percentiles, and maximum from speed
// samples. The input slice is not modified.
func ComputeSpeedStats(values []float64) (mean, p10, p50, p90, max float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	// Sort a copy for percentiles
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)
	max = sorted[n-1]

	return mean, p10, p50, p90, max
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("bodies", s.Bodies),
		slog.Int("statics", s.Statics),
		slog.Int("moving", s.Moving),
		slog.Int("grounded", s.Grounded),
		slog.Int("pairs_tested", s.PairsTested),
		slog.Int("collisions", s.Collisions),
		slog.Float64("hit_rate", s.HitRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Int("occupied_cells", s.OccupiedCells),
		slog.Int("max_bucket", s.MaxBucket),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"bodies", s.Bodies,
		"statics", s.Statics,
		"moving", s.Moving,
		"grounded", s.Grounded,
		"pairs_tested", s.PairsTested,
		"collisions", s.Collisions,
		"hit_rate", s.HitRate,
		"speed_mean", s.SpeedMean,
		"speed_p10", s.SpeedP10,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"speed_max", s.SpeedMax,
		"occupied_cells", s.OccupiedCells,
		"max_bucket", s.MaxBucket,
	)
}
