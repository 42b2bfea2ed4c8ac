// internal/utils/math.go
package utils

import (
	"cmp"
	"math"
)

// Clamp ограничивает v отрезком [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// DegToRad переводит градусы в радианы.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Heading returns the unit velocity for an angle in degrees, measured in the
// standard trigonometric sense on a y-down screen: 90° points up.
func Heading(deg float64) (dx, dy float64) {
	r := DegToRad(deg)
	return math.Cos(r), -math.Sin(r)
}

// CeilDiv returns ceil(a/b) for positive integers.
func CeilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// FanAngles spreads n angles around center with the given spacing, e.g.
// n=3, center=90, step=10 gives 80, 90, 100.
func FanAngles(n int, center, step float64) []float64 {
	angles := make([]float64, n)
	start := center - step*float64(n-1)/2
	for i := range angles {
		angles[i] = start + step*float64(i)
	}
	return angles
}
