package calc

import "math"

// countTolerance absorbs float noise such as 1071.0000000000002 so that it
// does not ceil to an extra piece.
const countTolerance = 1e-9

// ceilCount rounds a physical need up to whole units. A positive need is
// never rounded to zero.
func ceilCount(x float64) int {
	n := math.Ceil(x - countTolerance)
	if n < 1 && x > 0 {
		return 1
	}
	if n < 0 {
		return 0
	}
	return int(n)
}

func floorCount(x float64) int {
	n := math.Floor(x + countTolerance)
	if n < 0 {
		return 0
	}
	return int(n)
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

// round2 rounds a continuous value for display and persistence.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func reserveMultiplier(pct float64) float64 {
	return 1 + pct/100
}
