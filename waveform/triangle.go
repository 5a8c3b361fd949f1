// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/wavetable"
)

// Triangle rises from -1 at θ = 0 to +1 at the duty-cycle split and falls
// back to -1 at 2π.
type Triangle[F numeric.Float] struct{}

func (Triangle[F]) Sample(theta F) F {
	x := numeric.RemEuclid(float64(theta), tau)
	return F((math.Pi - math.Abs(2*x-tau)) / math.Pi)
}

func (Triangle[F]) SampleDutyCycle(theta, dutyCycle F) F {
	return F(triangle(float64(theta), split(dutyCycle)))
}

// triangle evaluates the duty-cycle triangle with split point d in [0, 2π].
func triangle(theta, d float64) float64 {
	x := numeric.RemEuclid(theta, tau)
	if x < d {
		return (2*x - d) / d
	}

	return (tau + d - 2*x) / (tau - d)
}

// Harmonics writes aₙ = −8/(π²n²) for odd n.
func (Triangle[F]) Harmonics(t *wavetable.Table[F]) bool {
	const g0 = 4 / (math.Pi * math.Pi)

	fill(t, 0, func(n float64) (float64, float64) {
		g := g0 / n / n
		return g*alternating(n) - g, 0
	})

	return true
}

// HarmonicsDutyCycle writes aₙ = g·(cos nd − 1), bₙ = g·sin nd with
// g = 4/((2π−d)·d·n²). Duty cycles within one epsilon of 0 or 1 collapse
// to a falling or rising full-period ramp, bₙ = ±2/(nπ).
func (Triangle[F]) HarmonicsDutyCycle(t *wavetable.Table[F], dutyCycle F) bool {
	eps := numeric.Epsilon[F]()

	switch {
	case dutyCycle <= eps:
		fill(t, 0, func(n float64) (float64, float64) {
			return 0, 2 / (math.Pi * n)
		})
		return true
	case dutyCycle >= 1-eps:
		fill(t, 0, func(n float64) (float64, float64) {
			return 0, -2 / (math.Pi * n)
		})
		return true
	}

	d := tau * float64(dutyCycle)
	g0 := 4 / (tau - d) / d

	fill(t, 0, func(n float64) (float64, float64) {
		g := g0 / n / n
		s, c := math.Sincos(d * n)
		return g*c - g, g * s
	})

	return true
}
