// Package discriminant implements regularized discriminant classifiers on
// top of the stats and whiten packages: linear (LDA), quadratic (QDA) and
// canonical (CDA) discriminant analysis.
//
// A fitted model holds the whitening transform(s), the class centroid
// matrix, the class priors and the regularization parameters; these are
// computed once by Fit and read at every inference call. Per observation z
// and class k the discriminant score is
//
//	-½‖Wₖᵀ(z-μₖ)‖² - ½·log det Σₖ + log πₖ
//
// and classification picks the class with the maximum score, breaking ties
// toward the lowest class index.
//
// Fit copies its input before the destructive centering and whitening steps,
// so callers keep ownership of their data. Fitted models are immutable and
// safe for concurrent prediction.
package discriminant

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/discrim/core"
	"github.com/YuminosukeSato/discrim/core/parallel"
	"github.com/YuminosukeSato/discrim/pkg/errors"
	"github.com/YuminosukeSato/discrim/stats"
)

var (
	_ core.ProbabilisticClassifier = (*LinearDiscriminant)(nil)
	_ core.ProbabilisticClassifier = (*QuadraticDiscriminant)(nil)
	_ core.Classifier              = (*CanonicalDiscriminant)(nil)
	_ core.Transformer             = (*CanonicalDiscriminant)(nil)
)

func (p *params) validate(op string) error {
	if p.gamma < 0 || p.gamma > 1 {
		return errors.NewDomainError(op, "gamma", p.gamma, "must be in [0,1]")
	}
	if p.lambda < 0 || p.lambda > 1 {
		return errors.NewDomainError(op, "lambda", p.lambda, "must be in [0,1]")
	}
	if !p.axis.Valid() {
		return errors.NewShapeError(op, int(p.axis))
	}
	if p.df < 0 {
		return errors.NewDomainError(op, "df", float64(p.df), "degrees of freedom must be positive")
	}
	if p.components < 0 {
		return errors.NewDomainError(op, "components", float64(p.components), "must be non-negative")
	}
	return nil
}

// canonicalData returns an n×p row-oriented copy of X. The models work in
// row orientation internally; a column-oriented input is copied through a
// transpose view.
func canonicalData(X mat.Matrix, axis stats.Axis) (Xc *mat.Dense, n, p int, err error) {
	n, p, err = stats.ResolveShape(X, axis)
	if err != nil {
		return nil, 0, 0, err
	}
	Xc = mat.NewDense(n, p, nil)
	if axis == stats.AxisCols {
		Xc.Copy(X.T())
	} else {
		Xc.Copy(X)
	}
	return Xc, n, p, nil
}

// resolveClasses determines the class count from explicit priors when given,
// otherwise from the largest label in y.
func resolveClasses(y []int, priors []float64) (int, error) {
	if priors != nil {
		return stats.CheckPriors(priors)
	}
	m := 0
	for _, label := range y {
		if label > m {
			m = label
		}
	}
	return m, nil
}

// classStats bundles the shared outcome of the first fitting phase: the
// centered canonical data, the centroid matrix and the priors.
type classStats struct {
	X         *mat.Dense // centered, one observation per row; consumed by whitening
	M         *mat.Dense // m×p centroids
	counts    []int
	priors    []float64
	logPriors []float64
	n, p, m   int
}

// fitClassStats validates the inputs and runs the class-statistics phase
// common to every model: counts, centroids, in-place centering of the
// working copy, and prior resolution.
func fitClassStats(op string, X mat.Matrix, y []int, opt *params) (*classStats, error) {
	if err := opt.validate(op); err != nil {
		return nil, err
	}

	Xc, n, p, err := canonicalData(X, opt.axis)
	if err != nil {
		return nil, err
	}
	if _, _, err := stats.CheckDataShape(Xc, y, stats.AxisRows); err != nil {
		return nil, err
	}

	m, err := resolveClasses(y, opt.priors)
	if err != nil {
		return nil, err
	}

	M, err := stats.ClassCentroids(Xc, y, m, stats.AxisRows)
	if err != nil {
		return nil, err
	}
	counts, err := stats.CountClasses(y, m)
	if err != nil {
		return nil, err
	}
	if err := stats.CenterClasses(Xc, M, y, stats.AxisRows); err != nil {
		return nil, err
	}

	priors := opt.priors
	if priors == nil {
		priors = make([]float64, m)
		for k, c := range counts {
			priors[k] = float64(c) / float64(n)
		}
	}
	logPriors := make([]float64, m)
	for k, pi := range priors {
		logPriors[k] = math.Log(pi)
	}

	return &classStats{
		X:         Xc,
		M:         M,
		counts:    counts,
		priors:    priors,
		logPriors: logPriors,
		n:         n,
		p:         p,
		m:         m,
	}, nil
}

// discriminantScores fills the nz×m score matrix. Ws holds one whitening
// matrix per class (all entries may alias the same matrix for shared
// covariances). Classes are scored in parallel; each goroutine writes a
// disjoint score column.
func discriminantScores(Zc, M *mat.Dense, Ws []*mat.Dense, logDets, logPriors []float64) *mat.Dense {
	nz, p := Zc.Dims()
	m := len(Ws)
	scores := mat.NewDense(nz, m, nil)

	parallel.ForEach(m, func(k int) {
		centered := mat.NewDense(nz, p, nil)
		for i := 0; i < nz; i++ {
			for j := 0; j < p; j++ {
				centered.Set(i, j, Zc.At(i, j)-M.At(k, j))
			}
		}

		var transformed mat.Dense
		transformed.Mul(centered, Ws[k])

		for i := 0; i < nz; i++ {
			sq := 0.0
			for j := 0; j < p; j++ {
				v := transformed.At(i, j)
				sq += v * v
			}
			scores.Set(i, k, -0.5*sq-0.5*logDets[k]+logPriors[k])
		}
	})
	return scores
}

// argmaxRows returns, per row, the 1-based index of the maximum entry.
// Ties break toward the lowest index.
func argmaxRows(scores *mat.Dense) []int {
	n, m := scores.Dims()
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		best, bestScore := 0, scores.At(i, 0)
		for k := 1; k < m; k++ {
			if s := scores.At(i, k); s > bestScore {
				best, bestScore = k, s
			}
		}
		labels[i] = best + 1
	}
	return labels
}

// softmaxRows converts score rows into posterior probabilities. Shared
// additive constants in the scores cancel in the normalization.
func softmaxRows(scores *mat.Dense) *mat.Dense {
	n, m := scores.Dims()
	probs := mat.NewDense(n, m, nil)
	row := make([]float64, m)
	for i := 0; i < n; i++ {
		for k := 0; k < m; k++ {
			row[k] = scores.At(i, k)
		}
		lse := errors.LogSumExp(row)
		for k := 0; k < m; k++ {
			probs.Set(i, k, math.Exp(row[k]-lse))
		}
	}
	return probs
}

// checkPredictInput converts prediction input to canonical row layout and
// checks its feature dimension against the fitted model.
func checkPredictInput(op string, Z mat.Matrix, axis stats.Axis, nFeatures int) (*mat.Dense, error) {
	Zc, _, p, err := canonicalData(Z, axis)
	if err != nil {
		return nil, err
	}
	if p != nFeatures {
		return nil, errors.NewDimensionError(op, "features", nFeatures, p)
	}
	return Zc, nil
}
