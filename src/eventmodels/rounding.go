package eventmodels

import "math"

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// Round2 rounds to 2 decimal places, matching the precision of every
// currency and percentage field on the wire.
func Round2(x float64) float64 {
	return round2(x)
}
