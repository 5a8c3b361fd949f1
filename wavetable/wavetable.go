// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"math"

	"github.com/ik5/oscillation/numeric"
)

// Pair is the coefficient pair of one harmonic: A scales cos(nθ), B scales sin(nθ).
type Pair[F numeric.Float] struct {
	A F
	B F
}

// Table is a DC term plus a fixed number of harmonic coefficient pairs.
// The zero value is an empty table of capacity 0.
type Table[F numeric.Float] struct {
	a0 F
	ab []Pair[F]
}

// View is read-only access to a table's coefficients. AB[k] belongs to
// harmonic k+1. The slice aliases the table and must not be modified.
type View[F numeric.Float] struct {
	A0 F
	AB []Pair[F]
}

// New allocates a zeroed table able to hold capacity harmonics.
func New[F numeric.Float](capacity int) *Table[F] {
	return &Table[F]{
		ab: make([]Pair[F], max(capacity, 0)),
	}
}

// FromFunc allocates a table of the given capacity and fills it.
// ab is called with harmonic numbers 1..capacity in order.
func FromFunc[F numeric.Float](a0 F, capacity int, ab func(n int) (a, b F)) *Table[F] {
	t := New[F](capacity)
	t.Fill(a0, ab)

	return t
}

// Fill overwrites every coefficient of t in place.
// ab is called with harmonic numbers 1..Cap() in order.
func (t *Table[F]) Fill(a0 F, ab func(n int) (a, b F)) {
	t.a0 = a0
	for i := range t.ab {
		a, b := ab(i + 1)
		t.ab[i] = Pair[F]{A: a, B: b}
	}
}

// Cap is the number of harmonics the table stores.
func (t *Table[F]) Cap() int {
	return len(t.ab)
}

// DC returns the constant term a0.
func (t *Table[F]) DC() F {
	return t.a0
}

// Harmonic returns the coefficients of harmonic n (1-based).
func (t *Table[F]) Harmonic(n int) Pair[F] {
	return t.ab[n-1]
}

// View exposes the coefficients without copying.
func (t *Table[F]) View() View[F] {
	return View[F]{A0: t.a0, AB: t.ab}
}

// Evaluate returns a0 + Σ_{n=1}^{min(upTo, Cap())} a_n·cos(nθ) + b_n·sin(nθ).
// ok is false when the sum is not finite.
func (t *Table[F]) Evaluate(theta F, upTo int) (y F, ok bool) {
	n := min(max(upTo, 0), len(t.ab))

	s, c := math.Sincos(float64(theta))
	exp1 := complex(c, s)
	expN := exp1

	sum := float64(t.a0)
	for _, p := range t.ab[:n] {
		sum += float64(p.A)*real(expN) + float64(p.B)*imag(expN)
		expN *= exp1
	}

	y = F(sum)
	if !numeric.IsFinite(y) {
		return 0, false
	}

	return y, true
}

// Truncate returns a new table holding the DC term and the first m pairs of t.
// ok is false when m exceeds Cap(); the table then has to be rebuilt from its
// generator instead.
func (t *Table[F]) Truncate(m int) (*Table[F], bool) {
	if m < 0 || m > len(t.ab) {
		return nil, false
	}

	dst := New[F](m)
	t.TruncateInto(dst)

	return dst, true
}

// TruncateInto copies the DC term and the first dst.Cap() pairs of t into dst
// without allocating. It reports false, leaving dst untouched, when dst is
// wider than t.
func (t *Table[F]) TruncateInto(dst *Table[F]) bool {
	if len(dst.ab) > len(t.ab) {
		return false
	}

	dst.a0 = t.a0
	copy(dst.ab, t.ab)

	return true
}

// Clone returns an independent copy of t.
func (t *Table[F]) Clone() *Table[F] {
	c, _ := t.Truncate(len(t.ab))
	return c
}
