// Package core defines the interfaces shared by discrim models.
package core

import "gonum.org/v1/gonum/mat"

// Classifier is the common surface of the discriminant models: fit on
// labeled data, then predict 1-based class labels.
type Classifier interface {
	Fit(X mat.Matrix, y []int) error
	Predict(X mat.Matrix) ([]int, error)
	Score(X mat.Matrix, y []int) (float64, error)
}

// ProbabilisticClassifier additionally exposes class posterior
// probabilities.
type ProbabilisticClassifier interface {
	Classifier
	PredictProba(X mat.Matrix) (*mat.Dense, error)
}

// Transformer maps observations into a derived feature space after fitting.
type Transformer interface {
	Fit(X mat.Matrix, y []int) error
	Transform(X mat.Matrix) (*mat.Dense, error)
}
