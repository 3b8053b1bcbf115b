// Package main provides CMA-ES calibration of the free-movement tuning
// constants against target handling numbers (top speed, stopping
// distance, spin-up time).
package main

import (
	"github.com/SickDinner/Uho-sub001/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of calibration parameters.
// Grid cell size and the step clamp stay locked: they trade accuracy for
// throughput and should never be chosen by a fitness function.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "accel_force", Path: "physics.accel_force", Min: 200, Max: 4000, Default: 1200},
			{Name: "min_speed", Path: "physics.min_speed", Min: 0.5, Max: 10.0, Default: 2.0},
			{Name: "player_drag", Path: "player.drag", Min: 0.80, Max: 0.999, Default: 0.98},
			{Name: "player_friction", Path: "player.friction", Min: 0.50, Max: 0.999, Default: 0.95},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig writes parameter values into a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Physics.AccelForce = clamped[0]
	cfg.Physics.MinSpeed = clamped[1]
	cfg.Player.Drag = clamped[2]
	cfg.Player.Friction = clamped[3]
}
