package discriminant

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/discrim/core/model"
	"github.com/YuminosukeSato/discrim/metrics"
	"github.com/YuminosukeSato/discrim/pkg/errors"
	"github.com/YuminosukeSato/discrim/pkg/log"
	"github.com/YuminosukeSato/discrim/stats"
	"github.com/YuminosukeSato/discrim/whiten"
)

// LinearDiscriminant is a linear discriminant classifier with a pooled
// covariance shared by all classes, optionally shrunk toward the scaled
// identity.
type LinearDiscriminant struct {
	model.BaseEstimator

	opts params

	// Fitted state, immutable after Fit.
	W         *mat.Dense // pooled whitening transform, p×p
	M         *mat.Dense // class centroids, m×p
	Priors    []float64
	logPriors []float64
	logDet    float64
}

// NewLinearDiscriminant creates an unfitted LDA model.
func NewLinearDiscriminant(options ...Option) *LinearDiscriminant {
	lda := &LinearDiscriminant{opts: defaultParams()}
	for _, option := range options {
		option(&lda.opts)
	}
	return lda
}

// Fit estimates centroids, the pooled covariance and its whitening
// transform from labeled data. Labels are integers in [1, m]. X is copied;
// the caller keeps ownership of its buffer.
func (lda *LinearDiscriminant) Fit(X mat.Matrix, y []int) error {
	const op = "LinearDiscriminant.Fit"

	cs, err := fitClassStats(op, X, y, &lda.opts)
	if err != nil {
		return err
	}

	df := lda.opts.df
	if df == 0 {
		df = cs.n - cs.m
	}
	if df <= 0 {
		return errors.NewRankError(op, "insufficient observations for a pooled covariance")
	}

	var W *mat.Dense
	var det float64
	if lda.opts.gamma == 0 {
		W, det, err = whiten.Data(cs.X, stats.AxisRows, df)
	} else {
		W, det, err = whiten.DataShrunk(cs.X, stats.AxisRows, df, lda.opts.gamma)
	}
	if err != nil {
		return err
	}

	lda.W = W
	lda.M = cs.M
	lda.Priors = cs.priors
	lda.logPriors = cs.logPriors
	lda.logDet = errors.StabilizeLog(det)
	lda.SetFitted(cs.p, cs.m)

	lda.opts.logger.Info("fit complete",
		log.ModelNameKey, "LinearDiscriminant",
		log.OperationKey, "fit",
		log.SamplesKey, cs.n,
		log.FeaturesKey, cs.p,
		log.ClassesKey, cs.m,
		log.GammaKey, lda.opts.gamma,
		log.LogDetKey, lda.logDet,
	)
	return nil
}

// Discriminants returns the observations × classes score matrix.
func (lda *LinearDiscriminant) Discriminants(Z mat.Matrix) (*mat.Dense, error) {
	const op = "LinearDiscriminant.Discriminants"

	if !lda.IsFitted() {
		return nil, errors.NewNotFittedError("LinearDiscriminant", "Discriminants")
	}
	Zc, err := checkPredictInput(op, Z, lda.opts.axis, lda.NFeatures())
	if err != nil {
		return nil, err
	}

	m := lda.NumClasses()
	Ws := make([]*mat.Dense, m)
	logDets := make([]float64, m)
	for k := 0; k < m; k++ {
		Ws[k] = lda.W
		logDets[k] = lda.logDet
	}
	return discriminantScores(Zc, lda.M, Ws, logDets, lda.logPriors), nil
}

// Predict returns the most probable class label, 1-based, per observation.
// Ties break toward the lowest class index.
func (lda *LinearDiscriminant) Predict(Z mat.Matrix) ([]int, error) {
	scores, err := lda.Discriminants(Z)
	if err != nil {
		return nil, err
	}
	return argmaxRows(scores), nil
}

// PredictProba returns per-class posterior probabilities per observation.
func (lda *LinearDiscriminant) PredictProba(Z mat.Matrix) (*mat.Dense, error) {
	scores, err := lda.Discriminants(Z)
	if err != nil {
		return nil, err
	}
	return softmaxRows(scores), nil
}

// Score returns the classification accuracy on labeled data.
func (lda *LinearDiscriminant) Score(X mat.Matrix, y []int) (float64, error) {
	pred, err := lda.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, pred)
}
