package whiten

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/discrim/pkg/errors"
)

// ShrinkToward blends sigma1 toward sigma2 in place, elementwise:
//
//	sigma1 <- (1-lambda)*sigma1 + lambda*sigma2
//
// sigma1 is consumed. lambda = 0 leaves sigma1 unchanged; lambda = 1
// replaces it with sigma2. The operation is used to pull a per-class
// covariance toward a pooled covariance before whitening.
func ShrinkToward(sigma1, sigma2 *mat.SymDense, lambda float64) error {
	const op = "whiten.ShrinkToward"

	if lambda < 0 || lambda > 1 {
		return errors.NewDomainError(op, "lambda", lambda, "must be in [0,1]")
	}
	p := sigma1.SymmetricDim()
	if q := sigma2.SymmetricDim(); q != p {
		return errors.NewDimensionError(op, "features", p, q)
	}
	if p == 0 {
		return errors.Wrap(errors.ErrEmptyData, op)
	}

	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			sigma1.SetSym(i, j, (1-lambda)*sigma1.At(i, j)+lambda*sigma2.At(i, j))
		}
	}
	return nil
}

// ShrinkTowardIdentity shrinks sigma in place toward the scaled identity
// trace(sigma)/p * I:
//
//	sigma <- (1-gamma)*sigma + gamma*(trace(sigma)/p)*I
//
// The target is the average eigenvalue of sigma rather than a fixed
// constant, so the shrinkage adapts to the scale of the data. sigma is
// consumed. gamma = 0 is a no-op; gamma = 1 yields exactly the scaled
// identity.
func ShrinkTowardIdentity(sigma *mat.SymDense, gamma float64) error {
	const op = "whiten.ShrinkTowardIdentity"

	if gamma < 0 || gamma > 1 {
		return errors.NewDomainError(op, "gamma", gamma, "must be in [0,1]")
	}
	p := sigma.SymmetricDim()
	if p == 0 {
		return errors.Wrap(errors.ErrEmptyData, op)
	}

	a := gamma * mat.Trace(sigma) / float64(p)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			v := (1 - gamma) * sigma.At(i, j)
			if i == j {
				v += a
			}
			sigma.SetSym(i, j, v)
		}
	}
	return nil
}
