package errors

import (
	"math"
	"strings"
	"testing"
)

func TestTypedErrorsMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "shape error",
			err:  NewShapeError("stats.ResolveShape", 3),
			want: "invalid observation axis 3",
		},
		{
			name: "dimension error",
			err:  NewDimensionError("stats.CheckDataShape", "labels", 10, 7),
			want: "dimension mismatch on labels: expected 10, got 7",
		},
		{
			name: "domain error",
			err:  NewDomainError("whiten.ShrinkTowardIdentity", "gamma", 1.5, "must be in [0,1]"),
			want: "gamma=1.5 out of domain",
		},
		{
			name: "label error",
			err:  NewLabelError("stats.CountClasses", 4, 9, 3),
			want: "label 9 at index 4 out of range [1, 3]",
		},
		{
			name: "empty class error",
			err:  NewEmptyClassError("stats.ClassCentroids", 2),
			want: "class 2 has no observations",
		},
		{
			name: "rank error",
			err:  NewRankError("whiten.Cov", "covariance is not positive definite"),
			want: "rank deficiency: covariance is not positive definite",
		},
		{
			name: "not fitted error",
			err:  NewNotFittedError("LinearDiscriminant", "Predict"),
			want: "not fitted yet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.err.Error(), tt.want) {
				t.Errorf("error message %q does not contain %q", tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	err := Wrap(NewRankError("whiten.Data", "collinearity in predictors"), "fit failed")

	var rankErr *RankError
	if !As(err, &rankErr) {
		t.Fatalf("As failed to find *RankError in wrapped chain")
	}
	if rankErr.Op != "whiten.Data" {
		t.Errorf("unexpected Op: %q", rankErr.Op)
	}

	var dimErr *DimensionError
	if As(err, &dimErr) {
		t.Errorf("As found *DimensionError in a chain that has none")
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("test", []float64{1, 2, 3}); err != nil {
		t.Errorf("finite values flagged as unstable: %v", err)
	}
	if err := CheckNumericalStability("test", []float64{1, math.NaN()}); err == nil {
		t.Errorf("NaN not detected")
	}
	if err := CheckNumericalStability("test", []float64{math.Inf(1)}); err == nil {
		t.Errorf("Inf not detected")
	}
}

func TestLogSumExp(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		want      float64
		tolerance float64
	}{
		{
			name:      "two equal values",
			values:    []float64{0, 0},
			want:      math.Log(2),
			tolerance: 1e-12,
		},
		{
			name:      "large values do not overflow",
			values:    []float64{1000, 1000},
			want:      1000 + math.Log(2),
			tolerance: 1e-9,
		},
		{
			name:      "empty input",
			values:    nil,
			want:      math.Inf(-1),
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogSumExp(tt.values)
			if math.IsInf(tt.want, -1) {
				if !math.IsInf(got, -1) {
					t.Errorf("want -Inf, got %v", got)
				}
				return
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("LogSumExp(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestWhiteningToleranceScales(t *testing.T) {
	small := WhiteningTolerance(2, 1.0)
	large := WhiteningTolerance(200, 1e6)
	if large <= small {
		t.Errorf("tolerance does not grow with dimension and scale: %v vs %v", small, large)
	}
	if small <= 0 {
		t.Errorf("tolerance must be positive, got %v", small)
	}
}

func TestSafeExecuteRecoversPanic(t *testing.T) {
	err := SafeExecute("panicking op", func() error {
		panic("boom")
	})
	if err == nil {
		t.Fatalf("SafeExecute swallowed the panic without an error")
	}
	var pErr *PanicError
	if !As(err, &pErr) {
		t.Fatalf("expected *PanicError, got %T: %v", err, err)
	}
	if pErr.Operation != "panicking op" {
		t.Errorf("unexpected operation: %q", pErr.Operation)
	}
}
