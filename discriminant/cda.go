package discriminant

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/discrim/core/model"
	"github.com/YuminosukeSato/discrim/metrics"
	"github.com/YuminosukeSato/discrim/pkg/errors"
	"github.com/YuminosukeSato/discrim/pkg/log"
	"github.com/YuminosukeSato/discrim/stats"
	"github.com/YuminosukeSato/discrim/whiten"
)

// CanonicalDiscriminant projects observations onto the canonical coordinates
// that maximize between-class separation relative to the pooled within-class
// covariance, keeping at most min(m-1, p) components. Classification happens
// in the projected space, where the whitened within-class covariance is the
// identity and the per-class determinant term is a shared constant.
type CanonicalDiscriminant struct {
	model.BaseEstimator

	opts params

	// Fitted state, immutable after Fit.
	P          *mat.Dense // projection, p×d
	Mp         *mat.Dense // projected centroids, m×d
	Priors     []float64
	logPriors  []float64
	mean       []float64 // priors-weighted overall mean, length p
	components int
}

// NewCanonicalDiscriminant creates an unfitted CDA model.
func NewCanonicalDiscriminant(options ...Option) *CanonicalDiscriminant {
	cda := &CanonicalDiscriminant{opts: defaultParams()}
	for _, option := range options {
		option(&cda.opts)
	}
	return cda
}

// Fit computes the pooled whitening transform, then the singular value
// decomposition of the whitened between-class centroid spread, and keeps the
// leading canonical directions. X is copied; the caller keeps ownership of
// its buffer.
func (cda *CanonicalDiscriminant) Fit(X mat.Matrix, y []int) error {
	const op = "CanonicalDiscriminant.Fit"

	cs, err := fitClassStats(op, X, y, &cda.opts)
	if err != nil {
		return err
	}
	if cs.m < 2 {
		return errors.NewDomainError(op, "classes", float64(cs.m), "canonical analysis needs at least two classes")
	}

	df := cda.opts.df
	if df == 0 {
		df = cs.n - cs.m
	}
	if df <= 0 {
		return errors.NewRankError(op, "insufficient observations for a pooled covariance")
	}

	var W *mat.Dense
	if cda.opts.gamma == 0 {
		W, _, err = whiten.Data(cs.X, stats.AxisRows, df)
	} else {
		W, _, err = whiten.DataShrunk(cs.X, stats.AxisRows, df, cda.opts.gamma)
	}
	if err != nil {
		return err
	}

	// Priors-weighted overall mean.
	mean := make([]float64, cs.p)
	for k := 0; k < cs.m; k++ {
		for j := 0; j < cs.p; j++ {
			mean[j] += cs.priors[k] * cs.M.At(k, j)
		}
	}

	// Whitened between-class spread: row k is sqrt(n·πₖ)·(μₖ-μ̄)ᵀW.
	spread := mat.NewDense(cs.m, cs.p, nil)
	centeredMu := make([]float64, cs.p)
	for k := 0; k < cs.m; k++ {
		for j := 0; j < cs.p; j++ {
			centeredMu[j] = cs.M.At(k, j) - mean[j]
		}
		w := math.Sqrt(float64(cs.n) * cs.priors[k])
		for j := 0; j < cs.p; j++ {
			s := 0.0
			for l := 0; l < cs.p; l++ {
				s += centeredMu[l] * W.At(l, j)
			}
			spread.Set(k, j, w*s)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(spread, mat.SVDThin); !ok {
		return errors.NewRankError(op, "singular value decomposition of the between-class spread failed")
	}

	d := cs.m - 1
	if cs.p < d {
		d = cs.p
	}
	if cda.opts.components > 0 && cda.opts.components < d {
		d = cda.opts.components
	}

	var V mat.Dense
	svd.VTo(&V)

	// P = W·V[:, :d] maps observations straight into canonical coordinates.
	P := mat.NewDense(cs.p, d, nil)
	var Vd mat.Dense
	Vd.CloneFrom(V.Slice(0, cs.p, 0, d))
	P.Mul(W, &Vd)

	// Projected centroids for the classification rule.
	Mp := mat.NewDense(cs.m, d, nil)
	for k := 0; k < cs.m; k++ {
		for j := 0; j < d; j++ {
			s := 0.0
			for l := 0; l < cs.p; l++ {
				s += (cs.M.At(k, l) - mean[l]) * P.At(l, j)
			}
			Mp.Set(k, j, s)
		}
	}

	cda.P = P
	cda.Mp = Mp
	cda.Priors = cs.priors
	cda.logPriors = cs.logPriors
	cda.mean = mean
	cda.components = d
	cda.SetFitted(cs.p, cs.m)

	cda.opts.logger.Info("fit complete",
		log.ModelNameKey, "CanonicalDiscriminant",
		log.OperationKey, "fit",
		log.SamplesKey, cs.n,
		log.FeaturesKey, cs.p,
		log.ClassesKey, cs.m,
		"cda.components", d,
	)
	return nil
}

// Components returns the number of canonical coordinates kept by Fit.
func (cda *CanonicalDiscriminant) Components() int {
	return cda.components
}

// Transform projects observations onto the canonical coordinates, returning
// an observations × components matrix.
func (cda *CanonicalDiscriminant) Transform(Z mat.Matrix) (*mat.Dense, error) {
	const op = "CanonicalDiscriminant.Transform"

	if !cda.IsFitted() {
		return nil, errors.NewNotFittedError("CanonicalDiscriminant", "Transform")
	}
	Zc, err := checkPredictInput(op, Z, cda.opts.axis, cda.NFeatures())
	if err != nil {
		return nil, err
	}

	nz, p := Zc.Dims()
	for i := 0; i < nz; i++ {
		for j := 0; j < p; j++ {
			Zc.Set(i, j, Zc.At(i, j)-cda.mean[j])
		}
	}

	var T mat.Dense
	T.Mul(Zc, cda.P)
	out := mat.NewDense(nz, cda.components, nil)
	out.Copy(&T)
	return out, nil
}

// Discriminants returns the observations × classes score matrix computed in
// canonical space: -½‖t-cₖ‖² + log πₖ for projected observation t and
// projected centroid cₖ.
func (cda *CanonicalDiscriminant) Discriminants(Z mat.Matrix) (*mat.Dense, error) {
	T, err := cda.Transform(Z)
	if err != nil {
		return nil, err
	}

	nz, d := T.Dims()
	m := cda.NumClasses()
	scores := mat.NewDense(nz, m, nil)
	for i := 0; i < nz; i++ {
		for k := 0; k < m; k++ {
			sq := 0.0
			for j := 0; j < d; j++ {
				diff := T.At(i, j) - cda.Mp.At(k, j)
				sq += diff * diff
			}
			scores.Set(i, k, -0.5*sq+cda.logPriors[k])
		}
	}
	return scores, nil
}

// Predict returns the most probable class label, 1-based, per observation.
func (cda *CanonicalDiscriminant) Predict(Z mat.Matrix) ([]int, error) {
	scores, err := cda.Discriminants(Z)
	if err != nil {
		return nil, err
	}
	return argmaxRows(scores), nil
}

// Score returns the classification accuracy on labeled data.
func (cda *CanonicalDiscriminant) Score(X mat.Matrix, y []int) (float64, error) {
	pred, err := cda.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, pred)
}
