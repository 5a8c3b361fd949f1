// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/wavetable"
)

// Square is -1 for the first duty-cycle fraction of the period and +1 after.
type Square[F numeric.Float] struct{}

func (Square[F]) Sample(theta F) F {
	if numeric.RemEuclid(float64(theta), tau) < math.Pi {
		return -1
	}

	return 1
}

func (Square[F]) SampleDutyCycle(theta, dutyCycle F) F {
	if numeric.RemEuclid(float64(theta), tau) < split(dutyCycle) {
		return -1
	}

	return 1
}

// Harmonics writes bₙ = −4/(nπ) for odd n.
func (Square[F]) Harmonics(t *wavetable.Table[F]) bool {
	fill(t, 0, func(n float64) (float64, float64) {
		g := 2 / (math.Pi * n)
		return 0, g*alternating(n) - g
	})

	return true
}

// HarmonicsDutyCycle writes the pulse spectrum with the edge at d = 2π·duty:
// a₀ = 1 − 2·duty, aₙ = −2·sin(nd)/(nπ), bₙ = 2·(cos(nd) − 1)/(nπ).
func (Square[F]) HarmonicsDutyCycle(t *wavetable.Table[F], dutyCycle F) bool {
	d := split(dutyCycle)

	fill(t, -(d-math.Pi)/math.Pi, func(n float64) (float64, float64) {
		g := 2 / (math.Pi * n)
		s, c := math.Sincos(d * n)
		return -g * s, g*c - g
	})

	return true
}
