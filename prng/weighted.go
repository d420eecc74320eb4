package prng

import "errors"

// ErrEmptyWeights is returned by ValidateWeights for lists that cannot be
// sampled: no items, or a non-positive weight.
var ErrEmptyWeights = errors.New("prng: weighted list is empty or has a non-positive weight")

// WeightedItem pairs a value with its relative rarity weight.
type WeightedItem[T any] struct {
	Value  T
	Weight int
}

// TotalWeight returns the sum of all item weights.
func TotalWeight[T any](items []WeightedItem[T]) int {
	total := 0
	for _, it := range items {
		total += it.Weight
	}
	return total
}

// ValidateWeights reports whether items can be passed to PickWeighted.
func ValidateWeights[T any](items []WeightedItem[T]) error {
	if len(items) == 0 {
		return ErrEmptyWeights
	}
	for _, it := range items {
		if it.Weight <= 0 {
			return ErrEmptyWeights
		}
	}
	return nil
}

// PickWeighted draws one value from items with probability proportional to
// its weight. It consumes exactly one draw.
//
// The roll walks the list subtracting weights until it reaches zero. When
// floating-point rounding leaves a positive remainder after the last item,
// the last item is returned, so a valid list always yields a value.
// items must be non-empty; see ValidateWeights.
func PickWeighted[T any](r *RNG, items []WeightedItem[T]) T {
	roll := r.Next() * float64(TotalWeight(items))
	for _, it := range items {
		roll -= float64(it.Weight)
		if roll <= 0 {
			return it.Value
		}
	}
	return items[len(items)-1].Value
}
