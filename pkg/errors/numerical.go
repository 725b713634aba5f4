package errors

import (
	"math"
)

// CheckNumericalStability checks values for NaN or Inf and returns an error
// if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewRankError(operation, "non-finite value produced")
		}
	}
	return nil
}

// CheckMatrixStability checks every entry of a matrix for NaN or Inf.
func CheckMatrixStability(operation string, matrix interface{ At(int, int) float64 }, rows, cols int) error {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return NewRankError(operation, "non-finite matrix entry produced")
			}
		}
	}
	return nil
}

// WhiteningTolerance returns the singularity tolerance for a whitening step:
// machine epsilon scaled by the feature dimension and the magnitude of the
// data, so that the cutoff tracks both problem size and data scale instead of
// being a hardcoded constant.
func WhiteningTolerance(p int, maxAbs float64) float64 {
	return math.SmallestNonzeroFloat64 + float64(p)*maxAbs*epsFloat64
}

// MachineEpsilon is the distance between 1.0 and the next larger float64.
// Tolerances throughout the library are multiples of this value, never
// hardcoded constants, so they scale with the precision in use.
const MachineEpsilon = 0x1p-52

const epsFloat64 = MachineEpsilon

// LogSumExp computes log(sum(exp(values))) without overflow by factoring out
// the maximum value first.
func LogSumExp(values []float64) float64 {
	if len(values) == 0 {
		return math.Inf(-1)
	}

	maxVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	if math.IsInf(maxVal, -1) {
		return math.Inf(-1)
	}

	sum := 0.0
	for _, v := range values {
		sum += math.Exp(v - maxVal)
	}

	return maxVal + math.Log(sum)
}

// StabilizeLog computes log with protection against log(0).
func StabilizeLog(value float64) float64 {
	const epsilon = 1e-300
	if value < epsilon {
		return math.Log(epsilon)
	}
	return math.Log(value)
}
