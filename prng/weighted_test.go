package prng

import (
	"errors"
	"testing"
)

func TestPickWeightedFairness(t *testing.T) {
	items := []WeightedItem[string]{
		{Value: "rare", Weight: 1},
		{Value: "common", Weight: 99},
	}

	const draws = 100000
	r := New(12345)
	rare := 0
	for i := 0; i < draws; i++ {
		if PickWeighted(r, items) == "rare" {
			rare++
		}
	}

	// Expected 1%; allow +/-0.3 percentage points.
	share := float64(rare) / draws
	if share < 0.007 || share > 0.013 {
		t.Errorf("rare share = %.4f, want 0.01 +/- 0.003", share)
	}
}

func TestPickWeightedSingleItem(t *testing.T) {
	r := New(3)
	items := []WeightedItem[int]{{Value: 7, Weight: 1}}
	for i := 0; i < 100; i++ {
		if got := PickWeighted(r, items); got != 7 {
			t.Fatalf("PickWeighted = %d, want 7", got)
		}
	}
}

func TestPickWeightedCoversAllItems(t *testing.T) {
	items := []WeightedItem[int]{
		{Value: 0, Weight: 5},
		{Value: 1, Weight: 5},
		{Value: 2, Weight: 5},
	}
	r := New(8)
	seen := make([]int, 3)
	for i := 0; i < 3000; i++ {
		seen[PickWeighted(r, items)]++
	}
	for v, n := range seen {
		if n < 800 || n > 1200 {
			t.Errorf("value %d drawn %d times out of 3000", v, n)
		}
	}
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name  string
		items []WeightedItem[int]
		ok    bool
	}{
		{"empty", nil, false},
		{"zero weight", []WeightedItem[int]{{Value: 1, Weight: 0}}, false},
		{"negative weight", []WeightedItem[int]{{Value: 1, Weight: 2}, {Value: 2, Weight: -1}}, false},
		{"valid", []WeightedItem[int]{{Value: 1, Weight: 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeights(tt.items)
			if tt.ok && err != nil {
				t.Errorf("ValidateWeights() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrEmptyWeights) {
				t.Errorf("ValidateWeights() = %v, want ErrEmptyWeights", err)
			}
		})
	}
}

func TestTotalWeight(t *testing.T) {
	items := []WeightedItem[string]{{Weight: 3}, {Weight: 4}}
	if got := TotalWeight(items); got != 7 {
		t.Errorf("TotalWeight() = %d, want 7", got)
	}
}
