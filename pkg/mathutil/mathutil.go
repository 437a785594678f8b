// Package mathutil holds the scalar helpers shared by the road builder, the
// simulation and the renderer: easing curves, wrapping, fog falloff and the
// footprint overlap test.
package mathutil

import (
	"math"
	"math/rand"
)

// Interpolate returns the point percent of the way from a to b.
func Interpolate(a, b, percent float64) float64 {
	return a + (b-a)*percent
}

// EaseIn is a quadratic ease starting slow.
func EaseIn(a, b, percent float64) float64 {
	return a + (b-a)*math.Pow(percent, 2)
}

// EaseOut is a quadratic ease finishing slow.
func EaseOut(a, b, percent float64) float64 {
	return a + (b-a)*(1-math.Pow(1-percent, 2))
}

// EaseInOut is a cosine ease, slow at both ends.
func EaseInOut(a, b, percent float64) float64 {
	return a + (b-a)*((-math.Cos(percent*math.Pi)/2)+0.5)
}

// ExponentialFog returns the visibility (1 = clear) at a normalized distance.
func ExponentialFog(distance, density float64) float64 {
	return 1 / math.Pow(math.E, distance*distance*density)
}

// Increase adds increment to start and wraps the result into [0, max).
func Increase(start, increment, max float64) float64 {
	if max <= 0 {
		return start + increment
	}
	result := math.Mod(start+increment, max)
	if result < 0 {
		result += max
	}
	if result >= max {
		result = 0
	}
	return result
}

// PercentRemaining is how far n sits inside its current block of size total.
func PercentRemaining(n, total float64) float64 {
	return math.Mod(n, total) / total
}

// Accelerate integrates v by accel over dt.
func Accelerate(v, accel, dt float64) float64 {
	return v + accel*dt
}

// Limit clamps value to [min, max].
func Limit(value, min, max float64) float64 {
	return math.Max(min, math.Min(value, max))
}

// Round rounds half up, matching how screen rows are snapped.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Overlap reports whether two footprints centered on x1 and x2 intersect once
// each width is scaled by percent. A percent of zero or less means 1.
func Overlap(x1, w1, x2, w2, percent float64) bool {
	if percent <= 0 {
		percent = 1
	}
	half := percent / 2
	min1 := x1 - w1*half
	max1 := x1 + w1*half
	min2 := x2 - w2*half
	max2 := x2 + w2*half
	return !(max1 < min2 || min1 > max2)
}

// RandomInt returns an integer in [min, max], rounding a uniform sample.
func RandomInt(rng *rand.Rand, min, max int) int {
	return int(Round(Interpolate(float64(min), float64(max), rng.Float64())))
}

// RandomSign returns -1 or 1 with equal odds.
func RandomSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
