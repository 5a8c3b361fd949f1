// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/wavetable"
)

// resonanceTolerance is the relative distance from π below which a
// rounded-triangle harmonic is treated as resonant with one of its arcs.
const resonanceTolerance = 1e-9

// RoundedTriangle is sin(π/2·triangle(θ)): two cosine arcs meeting with zero
// slope at θ = 0 and at the duty-cycle split. Unmodulated it is −cos θ.
type RoundedTriangle[F numeric.Float] struct{}

func (RoundedTriangle[F]) Sample(theta F) F {
	return F(-math.Cos(float64(theta)))
}

func (RoundedTriangle[F]) SampleDutyCycle(theta, dutyCycle F) F {
	return F(math.Sin(halfPi * triangle(float64(theta), split(dutyCycle))))
}

// Harmonics reports false: the unmodulated shape is a single cosine.
func (RoundedTriangle[F]) Harmonics(*wavetable.Table[F]) bool {
	return false
}

// HarmonicsDutyCycle writes, with arcs of length d and l = 2π − d,
//
//	G  = n/π·(1/(n² − (π/l)²) − 1/(n² − (π/d)²))
//	aₙ = −G·sin nd,  bₙ = G·(1 + cos nd)
//
// A harmonic whose period matches an arc (n·d = π or n·l = π) takes the exact
// limit aₙ = −d/2π (resp. −l/2π), bₙ = 0. Duty cycle 0.5 reports false.
func (RoundedTriangle[F]) HarmonicsDutyCycle(t *wavetable.Table[F], dutyCycle F) bool {
	if dutyCycle+dutyCycle == 1 {
		return false
	}

	d := split(dutyCycle)
	l := tau - d
	k := math.Pi / d
	m := math.Pi / l

	fill(t, 0, func(n float64) (float64, float64) {
		switch {
		case resonant(n * d):
			return -d / tau, 0
		case resonant(n * l):
			return -l / tau, 0
		}

		g := n / math.Pi * (1/(n*n-m*m) - 1/(n*n-k*k))
		if math.IsNaN(g) {
			return 0, 0
		}

		s, c := math.Sincos(n * d)
		return -g * s, g * (1 + c)
	})

	return true
}

func resonant(x float64) bool {
	return math.Abs(x-math.Pi) <= resonanceTolerance*math.Pi
}
