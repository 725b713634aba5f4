package stats

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/discrim/pkg/errors"
)

func TestResolveShape(t *testing.T) {
	X := mat.NewDense(4, 2, nil)

	tests := []struct {
		name    string
		axis    Axis
		wantN   int
		wantP   int
		wantErr bool
	}{
		{name: "rows", axis: AxisRows, wantN: 4, wantP: 2},
		{name: "cols", axis: AxisCols, wantN: 2, wantP: 4},
		{name: "invalid axis", axis: Axis(0), wantErr: true},
		{name: "invalid axis 3", axis: Axis(3), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, p, err := ResolveShape(X, tt.axis)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got n=%d p=%d", n, p)
				}
				var shapeErr *errors.ShapeError
				if !errors.As(err, &shapeErr) {
					t.Errorf("expected *ShapeError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != tt.wantN || p != tt.wantP {
				t.Errorf("got (%d, %d), want (%d, %d)", n, p, tt.wantN, tt.wantP)
			}
		})
	}
}

func TestResolveShapeEmpty(t *testing.T) {
	X := &mat.Dense{}
	if _, _, err := ResolveShape(X, AxisRows); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
}

func TestCheckCentroids(t *testing.T) {
	X := mat.NewDense(6, 3, nil)
	M := mat.NewDense(2, 3, nil)

	n, p, m, err := CheckCentroids(M, X, AxisRows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 6 || p != 3 || m != 2 {
		t.Errorf("got (%d, %d, %d), want (6, 3, 2)", n, p, m)
	}

	// Column orientation: X is p×n, M is p×m.
	Xc := mat.NewDense(3, 6, nil)
	Mc := mat.NewDense(3, 2, nil)
	n, p, m, err = CheckCentroids(Mc, Xc, AxisCols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 6 || p != 3 || m != 2 {
		t.Errorf("got (%d, %d, %d), want (6, 3, 2)", n, p, m)
	}

	// Mismatched feature dimension.
	Mbad := mat.NewDense(2, 4, nil)
	if _, _, _, err := CheckCentroids(Mbad, X, AxisRows); err == nil {
		t.Errorf("expected DimensionError for mismatched features")
	} else {
		var dimErr *errors.DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("expected *DimensionError, got %T", err)
		}
	}
}

func TestCheckCentroidsPriors(t *testing.T) {
	M := mat.NewDense(3, 5, nil) // 3 classes, 5 features, row orientation

	m, p, err := CheckCentroidsPriors(M, []float64{0.2, 0.3, 0.5}, AxisRows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 3 || p != 5 {
		t.Errorf("got (%d, %d), want (3, 5)", m, p)
	}

	if _, _, err := CheckCentroidsPriors(M, []float64{0.5, 0.5}, AxisRows); err == nil {
		t.Errorf("expected DimensionError for priors length 2 vs 3 classes")
	}
}

func TestCheckDataShape(t *testing.T) {
	X := mat.NewDense(4, 2, nil)

	if _, _, err := CheckDataShape(X, []int{1, 1, 2, 2}, AxisRows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := CheckDataShape(X, []int{1, 1, 2}, AxisRows); err == nil {
		t.Errorf("expected DimensionError for short label vector")
	}
	// Under column orientation the observation count is 2.
	if _, _, err := CheckDataShape(X, []int{1, 2}, AxisCols); err != nil {
		t.Fatalf("unexpected error under column orientation: %v", err)
	}
}

func TestCheckPriors(t *testing.T) {
	tests := []struct {
		name    string
		priors  []float64
		wantErr bool
	}{
		{name: "valid", priors: []float64{0.5, 0.3, 0.2}},
		{name: "uniform", priors: []float64{0.25, 0.25, 0.25, 0.25}},
		{name: "sum above one", priors: []float64{0.5, 0.3, 0.3}, wantErr: true},
		{name: "negative entry", priors: []float64{0.5, -0.1, 0.6}, wantErr: true},
		{name: "zero entry", priors: []float64{0.5, 0, 0.5}, wantErr: true},
		{name: "empty", priors: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := CheckPriors(tt.priors)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got m=%d", m)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m != len(tt.priors) {
				t.Errorf("m = %d, want %d", m, len(tt.priors))
			}
		})
	}
}
