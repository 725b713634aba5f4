package discriminant

import (
	"github.com/YuminosukeSato/discrim/pkg/log"
	"github.com/YuminosukeSato/discrim/stats"
)

// Option configures a discriminant model before fitting.
type Option func(*params)

// params holds the hyperparameters shared by all discriminant models.
type params struct {
	gamma      float64
	lambda     float64
	priors     []float64
	axis       stats.Axis
	df         int // 0 selects the model default
	components int // CDA only; 0 selects min(m-1, p)
	logger     log.Logger
}

func defaultParams() params {
	return params{
		axis:   stats.AxisRows,
		logger: log.GetLogger(),
	}
}

// WithGamma sets the identity-shrinkage coefficient in [0,1]. The covariance
// is blended toward trace/p times the identity, stabilizing near-singular
// estimates.
func WithGamma(gamma float64) Option {
	return func(p *params) {
		p.gamma = gamma
	}
}

// WithLambda sets the pooled-shrinkage coefficient in [0,1]. Quadratic
// models blend each per-class covariance toward the pooled covariance.
func WithLambda(lambda float64) Option {
	return func(p *params) {
		p.lambda = lambda
	}
}

// WithPriors sets explicit class prior probabilities. They must be strictly
// positive and sum to 1. Without this option priors default to the observed
// class frequencies.
func WithPriors(priors []float64) Option {
	return func(p *params) {
		p.priors = priors
	}
}

// WithAxis selects the observation layout of the data passed to Fit and the
// prediction methods. The default is stats.AxisRows.
func WithAxis(axis stats.Axis) Option {
	return func(p *params) {
		p.axis = axis
	}
}

// WithDF overrides the variance divisor. The default is n-m for pooled
// covariances and nk-1 for per-class covariances.
func WithDF(df int) Option {
	return func(p *params) {
		p.df = df
	}
}

// WithComponents limits the number of canonical coordinates kept by
// CanonicalDiscriminant. The default is min(m-1, p).
func WithComponents(d int) Option {
	return func(p *params) {
		p.components = d
	}
}

// WithLogger replaces the logger used for fit and predict progress.
func WithLogger(logger log.Logger) Option {
	return func(p *params) {
		p.logger = logger
	}
}
