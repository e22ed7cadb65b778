package analysis

import "math"

// Rate returns numerator/denominator as a percentage rounded to one decimal
// place. A zero denominator yields 0 by convention, never NaN, so every
// aggregate degrades cleanly on an empty filtered set.
func Rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return math.Round(float64(numerator)/float64(denominator)*1000) / 10
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
