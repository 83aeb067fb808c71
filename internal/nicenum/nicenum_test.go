package nicenum

import (
	"math"
	"testing"
)

func TestStepSize(t *testing.T) {
	tests := []struct {
		name        string
		rng         float64
		targetSteps float64
		want        float64
	}{
		{"ten over seven", 10, 7, 1},
		{"hundred over seven", 100, 7, 10},
		{"unit range", 1, 7, 0.1},
		{"promotes to two", 11.2, 7, 2},
		{"promotes to five", 17.5, 7, 5},
		{"promotes to ten", 42, 7, 10},
		{"already nice", 35, 7, 5},
		{"tiny range", 0.0007, 7, 0.0001},
		{"large range", 7e9, 7, 1e9},
		{"zero range", 0, 7, 1},
		{"negative range", -3, 7, 1},
		{"zero target", 10, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepSize(tt.rng, tt.targetSteps)
			if math.Abs(got-tt.want) > 1e-12*math.Max(1, tt.want) {
				t.Errorf("StepSize(%v, %v) = %v, want %v", tt.rng, tt.targetSteps, got, tt.want)
			}
		})
	}
}
