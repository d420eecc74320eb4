// Package prng implements the seeded pseudo-random generator and weighted
// selection used by avatar generation.
//
// The generator is Mulberry32: a single 32-bit accumulator advanced by a
// constant on every draw, followed by an integer mixing function. All
// arithmetic is uint32 with wraparound, so a given seed produces the same
// sequence on every platform.
//
// An RNG is owned by exactly one generation call and passed explicitly to
// everything that draws from it. Draw order is part of the output contract:
// inserting or removing a draw shifts every later value.
package prng

// increment is the Weyl sequence step added to the accumulator per draw.
const increment uint32 = 0x6D2B79F5

// twoPow32 is the divisor mapping a uint32 onto [0, 1).
const twoPow32 = 4294967296.0

// RNG is a Mulberry32 generator. The zero value is a valid generator
// seeded with 0.
//
// RNG is not safe for concurrent use.
type RNG struct {
	state uint32
}

// New creates a generator from seed. Any integer is accepted; only the low
// 32 bits are used.
func New(seed int64) *RNG {
	return &RNG{state: uint32(seed)}
}

// Seed returns the 32-bit seed a generator created with New(seed) starts from.
func Seed(seed int64) uint32 {
	return uint32(seed)
}

// State returns the current accumulator value.
func (r *RNG) State() uint32 {
	return r.state
}

// Next advances the generator once and returns a float in [0, 1).
func (r *RNG) Next() float64 {
	r.state += increment
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t = (t + (t^t>>7)*(t|61)) ^ t
	return float64(t^t>>14) / twoPow32
}

// Int returns an integer in [lo, hi], inclusive on both ends.
func (r *RNG) Int(lo, hi int) int {
	return int(r.Next()*float64(hi-lo+1)) + lo
}

// Float returns a float in [lo, hi).
func (r *RNG) Float(lo, hi float64) float64 {
	return lo + r.Next()*(hi-lo)
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Next() < p
}

// Pick returns a uniformly chosen element of list.
// It consumes one draw and panics if list is empty.
func Pick[T any](r *RNG, list []T) T {
	return list[int(r.Next()*float64(len(list)))]
}
