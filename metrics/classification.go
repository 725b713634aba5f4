// Package metrics provides evaluation metrics for the discriminant
// classifiers.
package metrics

import (
	"github.com/YuminosukeSato/discrim/pkg/errors"
)

// Accuracy returns the fraction of predictions equal to the true labels.
func Accuracy(yTrue, yPred []int) (float64, error) {
	const op = "metrics.Accuracy"

	n := len(yTrue)
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, op)
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError(op, "labels", n, len(yPred))
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// ConfusionMatrix returns the m×m matrix whose (i, j) entry counts
// observations with true label i+1 predicted as j+1. Labels must lie in
// [1, m].
func ConfusionMatrix(yTrue, yPred []int, m int) ([][]int, error) {
	const op = "metrics.ConfusionMatrix"

	n := len(yTrue)
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if len(yPred) != n {
		return nil, errors.NewDimensionError(op, "labels", n, len(yPred))
	}

	cm := make([][]int, m)
	for i := range cm {
		cm[i] = make([]int, m)
	}
	for i := 0; i < n; i++ {
		if yTrue[i] < 1 || yTrue[i] > m {
			return nil, errors.NewLabelError(op, i, yTrue[i], m)
		}
		if yPred[i] < 1 || yPred[i] > m {
			return nil, errors.NewLabelError(op, i, yPred[i], m)
		}
		cm[yTrue[i]-1][yPred[i]-1]++
	}
	return cm, nil
}
