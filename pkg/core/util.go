package core

import "math"

// Accuracy is the magnitude below which a computed scalar is treated as zero
const Accuracy = 1e-10

// IsZero reports whether x is within Accuracy of zero
func IsZero(x float64) bool {
	return math.Abs(x) < Accuracy
}

// AlignZero rounds values within Accuracy of zero to exactly zero.
// Every scalar that is compared against zero in intersection or shading code goes through it.
func AlignZero(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	return x
}
