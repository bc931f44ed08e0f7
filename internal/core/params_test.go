package core

import "testing"

func TestParameterControlClamp(t *testing.T) {
	ctrl := ParameterControl{Key: "delay_ms", Type: ParamTypeInt, Step: 5, Min: 25, Max: 1000}
	tests := []struct {
		in, want float64
	}{
		{0, 25},
		{25, 25},
		{27, 25},
		{28, 30},
		{999, 1000},
		{5000, 1000},
	}
	for _, tt := range tests {
		if got := ctrl.Clamp(tt.in); got != tt.want {
			t.Fatalf("Clamp(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestParameterControlClampInvertedBounds(t *testing.T) {
	ctrl := ParameterControl{Min: 10, Max: 5}
	if got := ctrl.Clamp(7); got != 10 {
		t.Fatalf("expected Min for inverted bounds, got %v", got)
	}
}
