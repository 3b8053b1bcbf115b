package renderer

import "math"

// sincosDeg returns sin and cos of an angle in degrees.
func sincosDeg(deg float64) (sin, cos float64) {
	return math.Sincos(deg * math.Pi / 180)
}
