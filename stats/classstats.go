package stats

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/discrim/pkg/errors"
)

// CountClasses tallies the occurrences of each label 1..m in y. It fails
// with LabelError if any label falls outside [1, m].
func CountClasses(y []int, m int) ([]int, error) {
	const op = "stats.CountClasses"

	counts := make([]int, m)
	for i, label := range y {
		if label < 1 || label > m {
			return nil, errors.NewLabelError(op, i, label, m)
		}
		counts[label-1]++
	}
	return counts, nil
}

// ClassCentroids computes the per-class mean feature vectors of X. The
// result is m×p for AxisRows and p×m for AxisCols. It fails with LabelError
// on labels outside [1, m] and EmptyClassError if any class has no
// observations.
func ClassCentroids(X *mat.Dense, y []int, m int, axis Axis) (*mat.Dense, error) {
	const op = "stats.ClassCentroids"

	n, p, err := CheckDataShape(X, y, axis)
	if err != nil {
		return nil, err
	}

	counts, err := CountClasses(y, m)
	if err != nil {
		return nil, err
	}
	for k, c := range counts {
		if c == 0 {
			return nil, errors.NewEmptyClassError(op, k+1)
		}
	}

	// Canonical row-oriented accumulation over a transpose view; no copy of X.
	var Xv mat.Matrix = X
	if axis == AxisCols {
		Xv = X.T()
	}

	centroids := mat.NewDense(m, p, nil)
	for i := 0; i < n; i++ {
		k := y[i] - 1
		for j := 0; j < p; j++ {
			centroids.Set(k, j, centroids.At(k, j)+Xv.At(i, j))
		}
	}
	for k := 0; k < m; k++ {
		inv := 1 / float64(counts[k])
		for j := 0; j < p; j++ {
			centroids.Set(k, j, centroids.At(k, j)*inv)
		}
	}

	if axis == AxisCols {
		M := mat.NewDense(p, m, nil)
		M.Copy(centroids.T())
		return M, nil
	}
	return centroids, nil
}

// CenterClasses subtracts from every observation of X its class centroid,
// in place. X is consumed: the caller must treat its contents as overwritten
// after this call. Applying it twice over-subtracts. It fails with
// LabelError on labels outside the class range of M.
func CenterClasses(X, M *mat.Dense, y []int, axis Axis) error {
	const op = "stats.CenterClasses"

	n, p, m, err := CheckCentroids(M, X, axis)
	if err != nil {
		return err
	}
	if len(y) != n {
		return errors.NewDimensionError(op, "labels", n, len(y))
	}

	for i, label := range y {
		if label < 1 || label > m {
			return errors.NewLabelError(op, i, label, m)
		}
	}

	switch axis {
	case AxisRows:
		for i := 0; i < n; i++ {
			k := y[i] - 1
			for j := 0; j < p; j++ {
				X.Set(i, j, X.At(i, j)-M.At(k, j))
			}
		}
	case AxisCols:
		for i := 0; i < n; i++ {
			k := y[i] - 1
			for j := 0; j < p; j++ {
				X.Set(j, i, X.At(j, i)-M.At(j, k))
			}
		}
	}
	return nil
}
