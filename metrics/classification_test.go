package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/discrim/pkg/errors"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []int
		yPred   []int
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect",
			yTrue: []int{1, 2, 3, 1},
			yPred: []int{1, 2, 3, 1},
			want:  1.0,
		},
		{
			name:  "half right",
			yTrue: []int{1, 1, 2, 2},
			yPred: []int{1, 2, 2, 1},
			want:  0.5,
		},
		{
			name:  "all wrong",
			yTrue: []int{1, 1},
			yPred: []int{2, 2},
			want:  0.0,
		},
		{
			name:    "length mismatch",
			yTrue:   []int{1, 2},
			yPred:   []int{1},
			wantErr: true,
		},
		{
			name:    "empty",
			yTrue:   nil,
			yPred:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.yTrue, tt.yPred)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-15 {
				t.Errorf("Accuracy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfusionMatrix(t *testing.T) {
	yTrue := []int{1, 1, 2, 2, 3}
	yPred := []int{1, 2, 2, 2, 1}

	cm, err := ConfusionMatrix(yTrue, yPred, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]int{
		{1, 1, 0},
		{0, 2, 0},
		{1, 0, 0},
	}
	for i := range want {
		for j := range want[i] {
			if cm[i][j] != want[i][j] {
				t.Errorf("cm[%d][%d] = %d, want %d", i, j, cm[i][j], want[i][j])
			}
		}
	}
}

func TestConfusionMatrixLabelOutOfRange(t *testing.T) {
	_, err := ConfusionMatrix([]int{1, 4}, []int{1, 1}, 3)
	var labelErr *errors.LabelError
	if !errors.As(err, &labelErr) {
		t.Fatalf("expected *LabelError, got %v", err)
	}
}
