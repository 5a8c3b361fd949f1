// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/wavetable"
)

const (
	tau    = 2 * math.Pi
	halfPi = math.Pi / 2
)

// Waveform is the per-shape capability used by oscillator states.
type Waveform[F numeric.Float] interface {
	// Sample returns the unmodulated shape at phase angle theta.
	Sample(theta F) F
	// SampleDutyCycle returns the shape modulated by dutyCycle, clamped to [0, 1].
	SampleDutyCycle(theta, dutyCycle F) F
	// Harmonics writes the unmodulated spectrum into t, up to t.Cap()
	// harmonics. It reports false, leaving t untouched, when the shape has
	// no useful finite table.
	Harmonics(t *wavetable.Table[F]) bool
	// HarmonicsDutyCycle is Harmonics for the modulated shape.
	HarmonicsDutyCycle(t *wavetable.Table[F], dutyCycle F) bool
}

// fill writes float64 coefficients into t. ab receives n as a float64.
func fill[F numeric.Float](t *wavetable.Table[F], a0 float64, ab func(n float64) (a, b float64)) {
	t.Fill(F(a0), func(n int) (F, F) {
		a, b := ab(float64(n))
		return F(a), F(b)
	})
}

// split returns the duty-cycle split point 2π·d with d clamped to [0, 1].
func split[F numeric.Float](dutyCycle F) float64 {
	return tau * numeric.Clamp(float64(dutyCycle), 0, 1)
}

// alternating returns (-1)^n for integral n.
func alternating(n float64) float64 {
	if math.Mod(n, 2) == 0 {
		return 1
	}

	return -1
}
