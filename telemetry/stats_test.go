package telemetry

import (
	"math"
	"testing"
)

func TestComputeLengthStats(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   LengthStats
	}{
		{"empty", nil, LengthStats{}},
		{"single sample", []float64{4}, LengthStats{Mean: 4, P50: 4, P90: 4, Max: 4}},
		{"constant", []float64{2, 2, 2, 2}, LengthStats{Mean: 2, P50: 2, P90: 2, Max: 2}},
		{"ascending", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, LengthStats{Mean: 5.5, Std: 3.0277, P50: 5, P90: 9, Max: 10}},
		{"unsorted", []float64{5, 1, 3, 2, 4}, LengthStats{Mean: 3, Std: 1.5811, P50: 3, P90: 5, Max: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLengthStats(tt.values)
			for _, c := range []struct {
				field     string
				got, want float64
			}{
				{"mean", got.Mean, tt.want.Mean},
				{"std", got.Std, tt.want.Std},
				{"p50", got.P50, tt.want.P50},
				{"p90", got.P90, tt.want.P90},
				{"max", got.Max, tt.want.Max},
			} {
				if math.Abs(c.got-c.want) > 0.001 {
					t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestComputeLengthStatsLeavesInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeLengthStats(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered to %v", values)
	}
}
