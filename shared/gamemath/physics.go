package gamemath

import "math"

// Damp eases current toward target by exponential decay. The result does not
// depend on how dt is split across calls. A non-positive smoothing snaps.
func Damp(current, target, smoothing, dt float64) float64 {
	if smoothing <= 0 {
		return target
	}
	return target + (current-target)*math.Exp(-smoothing*dt)
}

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring state between calls and is updated in place.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	if smoothTime < 1e-4 {
		smoothTime = 1e-4
	}
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// Do not overshoot.
	if (target-current > 0) == (out > target) {
		out = target
		*velocity = 0
	}
	return out
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// MoveTowards steps current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + Sign(target-current)*maxDelta
}

// Approx reports whether a and b differ by at most eps.
func Approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
