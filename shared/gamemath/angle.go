package gamemath

import "math"

// QuarterTurn is 90 degrees in radians.
const QuarterTurn = math.Pi / 2

// SnapAngle rounds a to the nearest multiple of step.
func SnapAngle(a, step float64) float64 {
	return math.Round(a/step) * step
}

// QuarterIndex returns which quarter turn (0..3) a snapped yaw points at.
func QuarterIndex(yaw float64) int {
	k := int(math.Round(yaw / QuarterTurn))
	return ((k % 4) + 4) % 4
}
