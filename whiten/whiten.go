// Package whiten computes numerically stable whitening transforms for
// regularized discriminant analysis.
//
// Every entry point returns a whitening matrix W and the determinant of the
// covariance it whitens, satisfying Wᵀ Σ W ≈ I to floating tolerance. Two
// strategies exist: the data path factors centered observations directly
// (QR or LQ for the plain variant, SVD for the shrinkage variant, so the
// covariance is never formed explicitly), and the covariance path Cholesky-
// factors a supplied covariance matrix. All variants invert only triangular
// or diagonal factors; no general matrix inversion is performed anywhere.
//
// Whitening is destructive by contract: after a data-path call the caller
// must not reuse X, and the covariance-path shrinkage variant overwrites its
// covariance argument. Concurrent calls on disjoint buffers are safe; the
// package holds no state.
package whiten

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/discrim/pkg/errors"
	"github.com/YuminosukeSato/discrim/stats"
)

// Data computes the whitening transform of the covariance implied by the
// centered observation matrix X with the given degrees of freedom, without
// regularization. X must have more observations than features. The scatter
// is never formed: X is factored orthogonally (QR for row orientation, LQ
// for column orientation) and the triangular factor R with RᵀR = XᵀX/df is
// inverted. Returns W = R⁻¹ and det(Σ) = det(R)².
func Data(X *mat.Dense, axis stats.Axis, df int) (W *mat.Dense, det float64, err error) {
	const op = "whiten.Data"
	defer errors.Recover(&err, op)

	_, p, err := checkData(op, X, axis, df)
	if err != nil {
		return nil, 0, err
	}

	R, err := triangularFactor(op, X, axis, p, df)
	if err != nil {
		return nil, 0, err
	}

	detR := 1.0
	for i := 0; i < p; i++ {
		detR *= R.At(i, i)
	}
	det = detR * detR

	W, err = invertTriangular(op, R)
	if err != nil {
		return nil, 0, err
	}
	return W, det, nil
}

// DataShrunk computes the whitening transform of the covariance implied by
// the centered observation matrix X, with every covariance eigenvalue shrunk
// toward the mean eigenvalue by gamma. X is factored by SVD; the singular
// values become eigenvalues via λᵢ = dᵢ²/df, are shrunk, and their product
// (taken before square roots) is the regularized determinant. W scales the
// right singular vectors (left, for column orientation) by the reciprocal
// whitening scales. With gamma = 0 the result agrees numerically with Data
// up to the sign and ordering conventions of the factorization.
func DataShrunk(X *mat.Dense, axis stats.Axis, df int, gamma float64) (W *mat.Dense, det float64, err error) {
	const op = "whiten.DataShrunk"
	defer errors.Recover(&err, op)

	if gamma < 0 || gamma > 1 {
		return nil, 0, errors.NewDomainError(op, "gamma", gamma, "must be in [0,1]")
	}
	_, p, err := checkData(op, X, axis, df)
	if err != nil {
		return nil, 0, err
	}

	// The tolerance scales with both problem size and data magnitude.
	tol := errors.WhiteningTolerance(p, maxAbs(X))

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return nil, 0, errors.NewRankError(op, "singular value decomposition failed to converge")
	}
	values := svd.Values(nil)

	// Singular values -> covariance eigenvalues, then shrink toward the mean.
	eigs := make([]float64, p)
	meanEig := 0.0
	for i, d := range values {
		eigs[i] = d * d / float64(df)
		meanEig += eigs[i]
	}
	meanEig /= float64(p)

	det = 1.0
	for i := range eigs {
		eigs[i] = (1-gamma)*eigs[i] + gamma*meanEig
		det *= eigs[i]
	}

	// Whitening scales; reject any at or below tolerance before dividing.
	scales := make([]float64, p)
	for i, eig := range eigs {
		scales[i] = math.Sqrt(eig)
		if scales[i] <= tol {
			return nil, 0, errors.NewRankError(op, "collinearity in predictors")
		}
	}

	var vectors mat.Dense
	if axis == stats.AxisRows {
		svd.VTo(&vectors)
	} else {
		svd.UTo(&vectors)
	}

	// W = V · D⁻¹: a diagonal scaling of the singular vectors, never a full
	// matrix inverse.
	W = mat.NewDense(p, p, nil)
	for j := 0; j < p; j++ {
		inv := 1 / scales[j]
		for i := 0; i < p; i++ {
			W.Set(i, j, vectors.At(i, j)*inv)
		}
	}
	return W, det, nil
}

// Cov computes the whitening transform of a covariance matrix by Cholesky
// factorization: Σ = UᵀU, W = U⁻¹, det(Σ) = det(U)². A factorization failure
// means Σ is not positive definite and is reported as a rank error.
func Cov(sigma *mat.SymDense) (W *mat.Dense, det float64, err error) {
	return covWhiten("whiten.Cov", sigma)
}

// CovShrunk is Cov with identity shrinkage applied first: sigma is
// overwritten with (1-gamma)*sigma + gamma*(trace/p)*I and then whitened.
// The determinant reflects the shrunk covariance. sigma is consumed.
func CovShrunk(sigma *mat.SymDense, gamma float64) (W *mat.Dense, det float64, err error) {
	const op = "whiten.CovShrunk"

	// gamma = 0 skips the shrink entirely; any out-of-domain value is
	// rejected by ShrinkTowardIdentity before sigma is touched.
	if gamma != 0 {
		if err := ShrinkTowardIdentity(sigma, gamma); err != nil {
			return nil, 0, err
		}
	}
	return covWhiten(op, sigma)
}

func covWhiten(op string, sigma *mat.SymDense) (W *mat.Dense, det float64, err error) {
	defer errors.Recover(&err, op)

	p := sigma.SymmetricDim()
	if p == 0 {
		return nil, 0, errors.Wrap(errors.ErrEmptyData, op)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sigma); !ok {
		return nil, 0, errors.NewRankError(op, "covariance is not positive definite")
	}
	det = chol.Det()

	var U mat.TriDense
	chol.UTo(&U)

	W, err = invertTriangular(op, &U)
	if err != nil {
		return nil, 0, err
	}
	return W, det, nil
}

// checkData validates the shared preconditions of the data-based paths:
// a valid orientation, positive degrees of freedom, and n > p. The n > p
// check runs before any factorization because n ≤ p guarantees a
// rank-deficient scatter.
func checkData(op string, X *mat.Dense, axis stats.Axis, df int) (n, p int, err error) {
	n, p, err = stats.ResolveShape(X, axis)
	if err != nil {
		return 0, 0, err
	}
	if df <= 0 {
		return 0, 0, errors.NewDomainError(op, "df", float64(df), "degrees of freedom must be positive")
	}
	if n <= p {
		return 0, 0, errors.NewRankError(op, "insufficient observations: n must exceed the feature count p")
	}
	return n, p, nil
}

// triangularFactor returns the upper-triangular R with RᵀR = XᵀX/df, scaled
// to covariance form. Row orientation uses QR; column orientation uses the
// transposed factor of an LQ decomposition over the same storage.
func triangularFactor(op string, X *mat.Dense, axis stats.Axis, p, df int) (*mat.TriDense, error) {
	invSqrtDF := 1 / math.Sqrt(float64(df))
	R := mat.NewTriDense(p, mat.Upper, nil)

	switch axis {
	case stats.AxisRows:
		var qr mat.QR
		qr.Factorize(X)
		var raw mat.Dense
		qr.RTo(&raw)
		for i := 0; i < p; i++ {
			for j := i; j < p; j++ {
				R.SetTri(i, j, raw.At(i, j)*invSqrtDF)
			}
		}
	case stats.AxisCols:
		var lq mat.LQ
		lq.Factorize(X)
		var raw mat.Dense
		lq.LTo(&raw)
		// R = Lᵀ so that RᵀR = LLᵀ = XXᵀ.
		for i := 0; i < p; i++ {
			for j := i; j < p; j++ {
				R.SetTri(i, j, raw.At(j, i)*invSqrtDF)
			}
		}
	default:
		return nil, errors.NewShapeError(op, int(axis))
	}
	return R, nil
}

// invertTriangular inverts a triangular factor, mapping a numerically
// singular diagonal to a rank error rather than a raw numerical failure.
func invertTriangular(op string, R *mat.TriDense) (*mat.Dense, error) {
	var inv mat.TriDense
	if err := inv.InverseTri(R); err != nil {
		return nil, errors.NewRankError(op, "collinearity in predictors")
	}

	p, _ := inv.Dims()
	W := mat.NewDense(p, p, nil)
	W.Copy(&inv)
	return W, nil
}

func maxAbs(X *mat.Dense) float64 {
	r, c := X.Dims()
	maxV := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := math.Abs(X.At(i, j)); v > maxV {
				maxV = v
			}
		}
	}
	return maxV
}
