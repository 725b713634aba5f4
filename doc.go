// Package discrim provides regularized discriminant analysis for Go: linear,
// quadratic and canonical discriminant classifiers built on whitening
// transforms of the class-conditional covariances.
//
// The library follows a scikit-learn-like fit/predict API so the models slot
// into existing Go services without ceremony.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/discrim/discriminant"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{0, 0, 0.2, 0.1, 4, 4, 4.1, 3.9})
//	    y := []int{1, 1, 2, 2}
//
//	    model := discriminant.NewLinearDiscriminant()
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := model.Predict(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Predictions:", pred)
//	}
//
// # Packages
//
//   - discriminant: LDA, QDA and CDA models with functional options
//   - whiten: whitening transforms over data and covariance matrices
//   - stats: class statistics, centering and input validation
//   - metrics: accuracy and confusion matrix
//   - pkg/errors: typed errors and numerical-stability helpers
//   - pkg/log: structured logging built on zerolog
package discrim
