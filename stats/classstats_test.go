package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/discrim/pkg/errors"
)

func TestCountClasses(t *testing.T) {
	counts, err := CountClasses([]int{1, 1, 2, 3, 3, 3}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{2, 1, 3}
	total := 0
	for k := range counts {
		if counts[k] != want[k] {
			t.Errorf("counts[%d] = %d, want %d", k, counts[k], want[k])
		}
		total += counts[k]
	}
	if total != 6 {
		t.Errorf("counts sum to %d, want n=6", total)
	}
}

func TestCountClassesLabelOutOfRange(t *testing.T) {
	for _, y := range [][]int{{1, 2, 4}, {0, 1, 2}, {-1, 1, 2}} {
		_, err := CountClasses(y, 3)
		if err == nil {
			t.Errorf("labels %v: expected LabelError", y)
			continue
		}
		var labelErr *errors.LabelError
		if !errors.As(err, &labelErr) {
			t.Errorf("labels %v: expected *LabelError, got %T", y, err)
		}
	}
}

func TestClassCentroidsRowOrientation(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		0, 0,
		2, 0,
		0, 2,
		2, 2,
	})
	y := []int{1, 1, 2, 2}

	M, err := ClassCentroids(X, y, 2, AxisRows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := mat.NewDense(2, 2, []float64{
		1, 0,
		1, 2,
	})
	if !mat.EqualApprox(M, want, 1e-12) {
		t.Errorf("centroids = %v, want %v", mat.Formatted(M), mat.Formatted(want))
	}
}

func TestClassCentroidsColumnOrientation(t *testing.T) {
	// Same data as the row-oriented case, stored with observations in columns.
	X := mat.NewDense(2, 4, []float64{
		0, 2, 0, 2,
		0, 0, 2, 2,
	})
	y := []int{1, 1, 2, 2}

	M, err := ClassCentroids(X, y, 2, AxisCols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := mat.NewDense(2, 2, []float64{
		1, 1,
		0, 2,
	})
	if !mat.EqualApprox(M, want, 1e-12) {
		t.Errorf("centroids = %v, want %v", mat.Formatted(M), mat.Formatted(want))
	}
}

func TestClassCentroidsEmptyClass(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	y := []int{1, 1}

	_, err := ClassCentroids(X, y, 2, AxisRows)
	if err == nil {
		t.Fatalf("expected EmptyClassError for class 2")
	}
	var emptyErr *errors.EmptyClassError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected *EmptyClassError, got %T: %v", err, err)
	}
	if emptyErr.Class != 2 {
		t.Errorf("empty class = %d, want 2", emptyErr.Class)
	}
}

func TestCenterClassesZeroesClassMeans(t *testing.T) {
	X := mat.NewDense(6, 3, []float64{
		1, 5, 0.5,
		3, 1, 1.5,
		2, 3, 2.5,
		10, -2, 4,
		14, -4, 6,
		12, -3, 5,
	})
	y := []int{1, 1, 1, 2, 2, 2}

	M, err := ClassCentroids(X, y, 2, AxisRows)
	if err != nil {
		t.Fatalf("ClassCentroids: %v", err)
	}
	if err := CenterClasses(X, M, y, AxisRows); err != nil {
		t.Fatalf("CenterClasses: %v", err)
	}

	// Per-class, per-feature means must vanish after centering.
	sums := make([][]float64, 2)
	counts := make([]int, 2)
	for k := range sums {
		sums[k] = make([]float64, 3)
	}
	for i, label := range y {
		k := label - 1
		counts[k]++
		for j := 0; j < 3; j++ {
			sums[k][j] += X.At(i, j)
		}
	}
	for k := range sums {
		for j, s := range sums[k] {
			if mean := s / float64(counts[k]); math.Abs(mean) > 1e-12 {
				t.Errorf("class %d feature %d mean = %g after centering", k+1, j, mean)
			}
		}
	}
}

func TestCenterClassesColumnOrientation(t *testing.T) {
	X := mat.NewDense(2, 4, []float64{
		0, 2, 0, 2,
		0, 0, 2, 2,
	})
	y := []int{1, 1, 2, 2}

	M, err := ClassCentroids(X, y, 2, AxisCols)
	if err != nil {
		t.Fatalf("ClassCentroids: %v", err)
	}
	if err := CenterClasses(X, M, y, AxisCols); err != nil {
		t.Fatalf("CenterClasses: %v", err)
	}

	want := mat.NewDense(2, 4, []float64{
		-1, 1, -1, 1,
		0, 0, -1, 1,
	})
	if !mat.EqualApprox(X, want, 1e-12) {
		t.Errorf("centered data = %v, want %v", mat.Formatted(X), mat.Formatted(want))
	}
}

func TestCenterClassesLabelOutOfRange(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	M := mat.NewDense(1, 2, []float64{2, 3})

	err := CenterClasses(X, M, []int{1, 2}, AxisRows)
	if err == nil {
		t.Fatalf("expected LabelError for label 2 with one class")
	}
	var labelErr *errors.LabelError
	if !errors.As(err, &labelErr) {
		t.Errorf("expected *LabelError, got %T", err)
	}
}
