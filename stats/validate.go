// Package stats provides the dimension validator and per-class statistics
// that underlie the discriminant models: shape resolution for both data
// orientations, prior validation, class counting, centroid computation and
// in-place class centering.
//
// Validation functions are pure: they resolve and return dimensions without
// touching the data. CenterClasses is destructive and overwrites its data
// argument; see its documentation for the ownership contract.
package stats

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/discrim/pkg/errors"
)

// Axis selects the observation layout of a data matrix.
type Axis int

const (
	// AxisRows means each row is one observation (n×p data).
	AxisRows Axis = 1
	// AxisCols means each column is one observation (p×n data).
	AxisCols Axis = 2
)

// Valid reports whether a is one of the two defined orientations.
func (a Axis) Valid() bool {
	return a == AxisRows || a == AxisCols
}

// ResolveShape returns the observation count n and feature count p of X
// under the given orientation. It fails with ShapeError for an invalid axis
// and ErrEmptyData for a matrix with no entries.
func ResolveShape(X mat.Matrix, axis Axis) (n, p int, err error) {
	const op = "stats.ResolveShape"

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return 0, 0, errors.Wrap(errors.ErrEmptyData, op)
	}

	switch axis {
	case AxisRows:
		return r, c, nil
	case AxisCols:
		return c, r, nil
	default:
		return 0, 0, errors.NewShapeError(op, int(axis))
	}
}

// CheckCentroids validates that the centroid matrix M matches the feature
// dimension of X under the shared orientation, returning (n, p, m).
func CheckCentroids(M, X mat.Matrix, axis Axis) (n, p, m int, err error) {
	const op = "stats.CheckCentroids"

	n, p, err = ResolveShape(X, axis)
	if err != nil {
		return 0, 0, 0, err
	}

	mr, mc := M.Dims()
	switch axis {
	case AxisRows:
		// M is m×p.
		if mc != p {
			return 0, 0, 0, errors.NewDimensionError(op, "features", p, mc)
		}
		m = mr
	case AxisCols:
		// M is p×m.
		if mr != p {
			return 0, 0, 0, errors.NewDimensionError(op, "features", p, mr)
		}
		m = mc
	}
	return n, p, m, nil
}

// CheckCentroidsPriors validates that the class dimension of M matches the
// priors vector, returning (m, p).
func CheckCentroidsPriors(M mat.Matrix, priors []float64, axis Axis) (m, p int, err error) {
	const op = "stats.CheckCentroidsPriors"

	mr, mc := M.Dims()
	if mr == 0 || mc == 0 {
		return 0, 0, errors.Wrap(errors.ErrEmptyData, op)
	}

	switch axis {
	case AxisRows:
		m, p = mr, mc
	case AxisCols:
		m, p = mc, mr
	default:
		return 0, 0, errors.NewShapeError(op, int(axis))
	}

	if len(priors) != m {
		return 0, 0, errors.NewDimensionError(op, "classes", m, len(priors))
	}
	return m, p, nil
}

// CheckDataShape validates that the label vector length matches the
// observation count of X, returning (n, p).
func CheckDataShape(X mat.Matrix, y []int, axis Axis) (n, p int, err error) {
	const op = "stats.CheckDataShape"

	n, p, err = ResolveShape(X, axis)
	if err != nil {
		return 0, 0, err
	}
	if len(y) != n {
		return 0, 0, errors.NewDimensionError(op, "labels", n, len(y))
	}
	return n, p, nil
}

// CheckPriors validates that every prior is strictly positive and the vector
// sums to 1 within floating tolerance, returning the class count.
func CheckPriors(priors []float64) (m int, err error) {
	const op = "stats.CheckPriors"

	m = len(priors)
	if m == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, op)
	}

	sum := 0.0
	for k, pi := range priors {
		if pi <= 0 {
			return 0, errors.NewDomainError(op, "priors", pi,
				"prior probabilities must be strictly positive (class "+strconv.Itoa(k+1)+")")
		}
		sum += pi
	}

	// Summation of m terms accumulates at most ~m ulps of error.
	tol := float64(m) * 16 * errors.MachineEpsilon
	if math.Abs(sum-1) > tol {
		return 0, errors.NewDomainError(op, "priors", sum, "prior probabilities must sum to 1")
	}
	return m, nil
}
