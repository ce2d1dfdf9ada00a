// Package rng implements the engine's seeded pseudo-random generator.
//
// The generator is a Lehmer (Park-Miller) recurrence chosen specifically
// because it is trivial to reproduce exactly across languages and runs:
// state always starts at 42, and every draw applies
// s ← (s * 16807) mod 2147483647, emitting (s-1)/2147483646 in [0,1).
// Reusing math/rand here would break the determinism invariant (I5) the
// moment the standard library's algorithm changed, so the recurrence is
// implemented directly.
package rng

const (
	seedValue = 42
	multiplier = 16807
	modulus    = 2147483647
)

// RNG is the renderer's seeded random stream. The zero value is not
// usable; call Reset or New before drawing.
type RNG struct {
	state uint64
}

// New returns an RNG already reset to its initial state.
func New() *RNG {
	r := &RNG{}
	r.Reset()
	return r
}

// Reset returns the generator to its initial seed. The renderer calls
// this exactly once at the start of each render so identical inputs
// yield identical output streams.
func (r *RNG) Reset() {
	r.state = seedValue
}

// Float64 draws the next value in [0,1).
func (r *RNG) Float64() float64 {
	r.state = (r.state * multiplier) % modulus
	return float64(r.state-1) / float64(modulus-1)
}

// Jitter perturbs v by up to ±amount.
func Jitter(r *RNG, v, amount float64) float64 {
	return v + (r.Float64()-0.5)*2*amount
}

// JitterPoint perturbs (x,y) by up to ±amount on each axis. It draws
// exactly two consecutive randoms, x then y — callers must not reorder
// this to preserve byte-exact output across implementations.
func JitterPoint(r *RNG, x, y, amount float64) (float64, float64) {
	jx := Jitter(r, x, amount)
	jy := Jitter(r, y, amount)
	return jx, jy
}
