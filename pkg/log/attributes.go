// Standard attribute keys for model operations. Using these keys keeps log
// output consistent across models and lets downstream tooling filter on
// stable field names.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "LinearDiscriminant".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "predict", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of observations being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features per observation.
	FeaturesKey = "data.features"

	// ClassesKey is the number of classes in the label vector.
	ClassesKey = "data.classes"
)

// Regularization and numerics.
const (
	// GammaKey is the identity-shrinkage coefficient applied during a fit.
	GammaKey = "reg.gamma"

	// LambdaKey is the pooled-shrinkage coefficient applied during a fit.
	LambdaKey = "reg.lambda"

	// LogDetKey is the log-determinant of a whitened covariance.
	LogDetKey = "whiten.logdet"
)

// Performance and evaluation.
const (
	// DurationMsKey records operation wall time in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"
)

// ErrorKey carries an error value on failure paths.
const ErrorKey = "error"
