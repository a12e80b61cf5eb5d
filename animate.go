package learngl

import "github.com/chewxy/math32"

// Pulse maps a time in seconds onto a smooth 0.0-1.0 oscillation,
// sin(t)/2 + 0.5.
func Pulse(t float64) float32 {
	return math32.Sin(float32(t))/2 + 0.5
}

// PulseColor returns base with its green channel replaced by Pulse(t).
func PulseColor(base Color, t float64) Color {
	base.G = Pulse(t)
	return base
}

// Offset returns a horizontal offset oscillating in [-amplitude, amplitude].
func Offset(t float64, amplitude float32) float32 {
	return math32.Sin(float32(t)) * amplitude
}
