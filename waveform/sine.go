// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/wavetable"
)

const (
	// sineMaxOrder bounds the Bessel orders computed for the skewed sine;
	// higher harmonics are left at zero. It covers the Bessel argument at
	// duty 0 and 1, where |p| = 1 + 1/sineEps.
	sineMaxOrder = 128
	sineEps      = 1.0 / 128
)

// Sine is cos θ. Moving the duty cycle away from 0.5 squeezes it into a
// narrow pulse towards +1 (duty 0) or -1 (duty 1).
type Sine[F numeric.Float] struct{}

func (Sine[F]) Sample(theta F) F {
	return F(math.Cos(float64(theta)))
}

// SampleDutyCycle evaluates s·(coth p − e^{−p·s·cos θ}/sinh p), where p and the
// sign s are derived from the duty cycle. p → 0 recovers cos θ.
func (w Sine[F]) SampleDutyCycle(theta, dutyCycle F) F {
	if dutyCycle == numeric.DefaultDutyCycle[F]() {
		return w.Sample(theta)
	}

	s, p := sineSkew(float64(dutyCycle))

	numer := math.Exp(-p * s * math.Cos(float64(theta)))
	if !numeric.IsFinite(numer) {
		numer = 0
	}

	return F(s * (1/math.Tanh(p) - numer/math.Sinh(p)))
}

// Harmonics reports false: a single cosine gains nothing from a table.
func (Sine[F]) Harmonics(*wavetable.Table[F]) bool {
	return false
}

// HarmonicsDutyCycle expands e^{x·cos θ} = I₀(x) + 2·Σ Iₙ(x)·cos nθ with the
// modified Bessel functions of the first kind.
func (Sine[F]) HarmonicsDutyCycle(t *wavetable.Table[F], dutyCycle F) bool {
	if dutyCycle == numeric.DefaultDutyCycle[F]() {
		return false
	}

	s, p := sineSkew(float64(dutyCycle))
	x := -p * s

	var in [sineMaxOrder + 1]float64
	orders := min(t.Cap(), sineMaxOrder)
	besselI(x, in[:orders+1])

	g := 1 / math.Sinh(p)
	g2 := -2 * s * g

	fill(t, s*(1/math.Tanh(p)-g*in[0]), func(n float64) (float64, float64) {
		k := int(n)
		if k > orders {
			return 0, 0
		}

		return g2 * in[k], 0
	})

	return true
}

// sineSkew maps a duty cycle onto the sign s and the (negative) shape
// parameter p of the skewed sine.
func sineSkew(dutyCycle float64) (s, p float64) {
	a := numeric.Clamp(1-2*dutyCycle, -1, 1)

	s = 1
	if a < 0 {
		s = -1
	}
	a = math.Abs(a)

	return s, (a + sineEps) / (a - 1 - sineEps)
}
