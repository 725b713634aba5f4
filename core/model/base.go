// Package model provides the shared estimator base embedded by every
// discrim model type.
package model

// EstimatorState tracks whether a model has been fitted.
type EstimatorState int

const (
	// NotFitted is the state before a successful Fit call.
	NotFitted EstimatorState = iota
	// Fitted is the state after a successful Fit call.
	Fitted
)

// BaseEstimator is embedded by every model. It records the fitted state and
// the training dimensions so inference-time inputs can be checked against
// them.
type BaseEstimator struct {
	state      EstimatorState
	nFeatures  int
	numClasses int
}

// IsFitted reports whether the model has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model fitted and records the training dimensions.
func (e *BaseEstimator) SetFitted(nFeatures, numClasses int) {
	e.state = Fitted
	e.nFeatures = nFeatures
	e.numClasses = numClasses
}

// Reset returns the model to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
	e.nFeatures = 0
	e.numClasses = 0
}

// NFeatures returns the feature count seen at fit time, 0 if unfitted.
func (e *BaseEstimator) NFeatures() int {
	return e.nFeatures
}

// NumClasses returns the class count seen at fit time, 0 if unfitted.
func (e *BaseEstimator) NumClasses() int {
	return e.numClasses
}
