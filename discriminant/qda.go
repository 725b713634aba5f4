package discriminant

import (
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/discrim/core/model"
	"github.com/YuminosukeSato/discrim/core/parallel"
	"github.com/YuminosukeSato/discrim/metrics"
	"github.com/YuminosukeSato/discrim/pkg/errors"
	"github.com/YuminosukeSato/discrim/pkg/log"
	"github.com/YuminosukeSato/discrim/whiten"
)

// QuadraticDiscriminant is a quadratic discriminant classifier with one
// covariance per class. Lambda blends each class covariance toward the
// pooled covariance; gamma shrinks it toward the scaled identity. Both
// regularizers together give the full regularized-discriminant family.
type QuadraticDiscriminant struct {
	model.BaseEstimator

	opts params

	// Fitted state, immutable after Fit.
	W         []*mat.Dense // one whitening transform per class, each p×p
	M         *mat.Dense   // class centroids, m×p
	Priors    []float64
	logPriors []float64
	logDets   []float64
}

// NewQuadraticDiscriminant creates an unfitted QDA model.
func NewQuadraticDiscriminant(options ...Option) *QuadraticDiscriminant {
	qda := &QuadraticDiscriminant{opts: defaultParams()}
	for _, option := range options {
		option(&qda.opts)
	}
	return qda
}

// Fit estimates per-class covariances and whitening transforms from labeled
// data. Labels are integers in [1, m]. Every class needs at least two
// observations so its covariance is defined. X is copied; the caller keeps
// ownership of its buffer.
func (qda *QuadraticDiscriminant) Fit(X mat.Matrix, y []int) error {
	const op = "QuadraticDiscriminant.Fit"

	cs, err := fitClassStats(op, X, y, &qda.opts)
	if err != nil {
		return err
	}

	for k, c := range cs.counts {
		if c < 2 {
			return errors.NewRankError(op,
				"class "+strconv.Itoa(k+1)+" has fewer than two observations, covariance undefined")
		}
	}

	// Per-class scatter from the centered rows, plus the pooled covariance
	// when lambda blending is requested.
	sigmas := make([]*mat.SymDense, cs.m)
	for k := range sigmas {
		sigmas[k] = mat.NewSymDense(cs.p, nil)
	}
	for i := 0; i < cs.n; i++ {
		k := y[i] - 1
		s := sigmas[k]
		for a := 0; a < cs.p; a++ {
			va := cs.X.At(i, a)
			for b := a; b < cs.p; b++ {
				s.SetSym(a, b, s.At(a, b)+va*cs.X.At(i, b))
			}
		}
	}

	var pooled *mat.SymDense
	if qda.opts.lambda > 0 {
		pooled = mat.NewSymDense(cs.p, nil)
		for _, s := range sigmas {
			for a := 0; a < cs.p; a++ {
				for b := a; b < cs.p; b++ {
					pooled.SetSym(a, b, pooled.At(a, b)+s.At(a, b))
				}
			}
		}
		scaleSym(pooled, 1/float64(cs.n-cs.m))
	}

	for k, s := range sigmas {
		dfk := qda.opts.df
		if dfk == 0 {
			dfk = cs.counts[k] - 1
		}
		scaleSym(s, 1/float64(dfk))
	}

	// Whiten each class independently; the buffers are disjoint, so classes
	// run in parallel.
	Ws := make([]*mat.Dense, cs.m)
	logDets := make([]float64, cs.m)
	errs := make([]error, cs.m)
	parallel.ForEach(cs.m, func(k int) {
		if pooled != nil {
			if err := whiten.ShrinkToward(sigmas[k], pooled, qda.opts.lambda); err != nil {
				errs[k] = err
				return
			}
		}
		W, det, err := whiten.CovShrunk(sigmas[k], qda.opts.gamma)
		if err != nil {
			errs[k] = errors.Wrapf(err, "class %d", k+1)
			return
		}
		Ws[k] = W
		logDets[k] = errors.StabilizeLog(det)
	})
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	qda.W = Ws
	qda.M = cs.M
	qda.Priors = cs.priors
	qda.logPriors = cs.logPriors
	qda.logDets = logDets
	qda.SetFitted(cs.p, cs.m)

	qda.opts.logger.Info("fit complete",
		log.ModelNameKey, "QuadraticDiscriminant",
		log.OperationKey, "fit",
		log.SamplesKey, cs.n,
		log.FeaturesKey, cs.p,
		log.ClassesKey, cs.m,
		log.GammaKey, qda.opts.gamma,
		log.LambdaKey, qda.opts.lambda,
	)
	return nil
}

// Discriminants returns the observations × classes score matrix.
func (qda *QuadraticDiscriminant) Discriminants(Z mat.Matrix) (*mat.Dense, error) {
	const op = "QuadraticDiscriminant.Discriminants"

	if !qda.IsFitted() {
		return nil, errors.NewNotFittedError("QuadraticDiscriminant", "Discriminants")
	}
	Zc, err := checkPredictInput(op, Z, qda.opts.axis, qda.NFeatures())
	if err != nil {
		return nil, err
	}
	return discriminantScores(Zc, qda.M, qda.W, qda.logDets, qda.logPriors), nil
}

// Predict returns the most probable class label, 1-based, per observation.
func (qda *QuadraticDiscriminant) Predict(Z mat.Matrix) ([]int, error) {
	scores, err := qda.Discriminants(Z)
	if err != nil {
		return nil, err
	}
	return argmaxRows(scores), nil
}

// PredictProba returns per-class posterior probabilities per observation.
func (qda *QuadraticDiscriminant) PredictProba(Z mat.Matrix) (*mat.Dense, error) {
	scores, err := qda.Discriminants(Z)
	if err != nil {
		return nil, err
	}
	return softmaxRows(scores), nil
}

// Score returns the classification accuracy on labeled data.
func (qda *QuadraticDiscriminant) Score(X mat.Matrix, y []int) (float64, error) {
	pred, err := qda.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, pred)
}

func scaleSym(s *mat.SymDense, f float64) {
	p := s.SymmetricDim()
	for a := 0; a < p; a++ {
		for b := a; b < p; b++ {
			s.SetSym(a, b, s.At(a, b)*f)
		}
	}
}
