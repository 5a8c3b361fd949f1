// SPDX-License-Identifier: EPL-2.0

// Package numeric holds the real-number capability shared by every
// oscillator component.
//
// All components are parameterised by a type satisfying Float. Transcendental
// functions are evaluated in float64 and narrowed back to the caller's type, so
// float32 voices get float32 storage with double precision intermediates.
package numeric

import (
	"math"
	"unsafe"
)

// Float is the numeric capability required by oscillators, waveforms and
// harmonic tables.
type Float interface {
	~float32 | ~float64
}

// DefaultDutyCycle is the duty cycle at which every shape is unmodulated.
func DefaultDutyCycle[F Float]() F {
	return 0.5
}

// RemEuclid returns x modulo m in [0, m) for m > 0.
func RemEuclid[F Float](x, m F) F {
	r := math.Mod(float64(x), float64(m))
	if r < 0 {
		r += float64(m)
	}

	y := F(r)
	// Narrowing to float32 may round up onto m itself.
	if y >= m {
		return 0
	}

	return y
}

// Clamp limits x to [lo, hi]. NaN is passed through.
func Clamp[F Float](x, lo, hi F) F {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[F Float](x F) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Epsilon is the machine epsilon of F: the gap between 1 and the next
// representable value.
func Epsilon[F Float]() F {
	var x F
	if unsafe.Sizeof(x) == 4 {
		return F(0x1p-23)
	}

	return F(0x1p-52)
}

// Sum adds xs in order. An empty input sums to zero.
func Sum[F Float](xs ...F) F {
	var s F
	for _, x := range xs {
		s += x
	}

	return s
}
