// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/wavetable"
)

// Noise is uniform white noise in [-1, 1). It ignores the phase angle.
//
// Rand selects the random source; nil uses the math/rand/v2 global source.
// A *rand.Rand is not safe for concurrent use, so voices sharing one must
// not run in parallel.
type Noise[F numeric.Float] struct {
	Rand *rand.Rand
}

func (w Noise[F]) Sample(F) F {
	return F(2*w.uniform() - 1)
}

// SampleDutyCycle reshapes the distribution: |y|^{2·duty} with the sign kept.
// Duty 0 pushes every sample to ±1, duty 1 squares the magnitudes.
func (w Noise[F]) SampleDutyCycle(theta, dutyCycle F) F {
	y := float64(w.Sample(theta))
	e := 2 * numeric.Clamp(float64(dutyCycle), 0, 1)

	return F(math.Copysign(math.Pow(math.Abs(y), e), y))
}

// Harmonics reports false: noise is not periodic.
func (Noise[F]) Harmonics(*wavetable.Table[F]) bool {
	return false
}

func (Noise[F]) HarmonicsDutyCycle(*wavetable.Table[F], F) bool {
	return false
}

func (w Noise[F]) uniform() float64 {
	if w.Rand != nil {
		return w.Rand.Float64()
	}

	return rand.Float64()
}
