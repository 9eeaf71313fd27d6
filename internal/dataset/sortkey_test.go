package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericLabel(t *testing.T) {
	tests := []struct {
		label   string
		want    float64
		numeric bool
	}{
		{"3", 3, true},
		{"3.5", 3.5, true},
		{" 42 ", 42, true},
		{"-7.25", -7.25, true},
		{"+1", 1, true},
		{".5", 0.5, true},
		{"", 0, false},
		{"   ", 0, false},
		{"1.2.3", 0, false},
		{"1e3", 0, false},
		{"Inf", 0, false},
		{"NaN", 0, false},
		{"palette 1", 0, false},
		{"-", 0, false},
		{".", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := numericLabel(tt.label)
			assert.Equal(t, tt.numeric, ok, "numeric flag")
			if tt.numeric {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestSortLabels(t *testing.T) {
	labels := []string{"zeta", "10", "alpha", "2", "Beta", "3.5"}
	sortLabels(labels)

	// Numerics first by value, then text lexicographically.
	assert.Equal(t, []string{"2", "3.5", "10", "Beta", "alpha", "zeta"}, labels)
}

func TestSortLabelsStable(t *testing.T) {
	// "7" and " 7 " share a numeric key; stable sort keeps input order.
	labels := []string{"7", " 7 ", "1"}
	sortLabels(labels)
	assert.Equal(t, []string{"1", "7", " 7 "}, labels)
}
