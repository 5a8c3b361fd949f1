// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/wavetable"
)

// Sawtooth rises linearly from -1 to 1 twice per period: over [0, d) and
// over [d, 2π), with d the duty-cycle split. Unmodulated, both ramps are half
// a period long.
type Sawtooth[F numeric.Float] struct{}

func (Sawtooth[F]) Sample(theta F) F {
	x := numeric.RemEuclid(float64(theta), math.Pi)
	return F((x - halfPi) / halfPi)
}

func (Sawtooth[F]) SampleDutyCycle(theta, dutyCycle F) F {
	d := split(dutyCycle)
	x := numeric.RemEuclid(float64(theta), tau)

	if x < d {
		return F((2*x - d) / d)
	}

	return F((2*x - d - tau) / (tau - d))
}

// Harmonics writes bₙ = −4/(nπ) for even n.
func (Sawtooth[F]) Harmonics(t *wavetable.Table[F]) bool {
	fill(t, 0, func(n float64) (float64, float64) {
		g := 2 / (math.Pi * n)
		return 0, -g - g*alternating(n)
	})

	return true
}

// HarmonicsDutyCycle writes, with g = 2/(nπ) and h = (1/d − 1/(2π−d))/n,
// aₙ = g·(h·cos nd − h + sin nd) and bₙ = g·(h·sin nd − 1 − cos nd).
// At d = 0 or 2π the wave is a single full-period ramp, bₙ = −g.
func (Sawtooth[F]) HarmonicsDutyCycle(t *wavetable.Table[F], dutyCycle F) bool {
	d := split(dutyCycle)

	fill(t, 0, func(n float64) (float64, float64) {
		g := 2 / (math.Pi * n)
		if d == 0 || d == tau {
			return 0, -g
		}

		h := (1/d - 1/(tau-d)) / n
		if math.IsNaN(h) {
			h = 0
		}

		s, c := math.Sincos(d * n)
		return g * (h*c - h + s), g * (h*s - 1 - c)
	})

	return true
}
