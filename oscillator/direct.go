// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/waveform"
	"github.com/ik5/oscillation/wavetable"
)

// Direct evaluates the unmodulated waveform formula on every sample.
type Direct[F numeric.Float, W waveform.Waveform[F]] struct {
	waveform W
}

// NewDirect wraps w in a Direct state.
func NewDirect[F numeric.Float, W waveform.Waveform[F]](w W) Direct[F, W] {
	return Direct[F, W]{waveform: w}
}

func (s Direct[F, W]) Sample(theta, omega, rate F) F {
	if _, ok := harmonicLimit(omega, rate); !ok {
		return 0
	}

	return s.waveform.Sample(theta)
}

func (Direct[F, W]) DutyCycle() F {
	return numeric.DefaultDutyCycle[F]()
}

func (Direct[F, W]) Table() (wavetable.View[F], bool) {
	return wavetable.View[F]{}, false
}

func (s Direct[F, W]) Waveform() W {
	return s.waveform
}

func (s *Direct[F, W]) SetWaveform(w W) {
	s.waveform = w
}

// UpdateWaveform hands fn a pointer to the waveform value.
func (s *Direct[F, W]) UpdateWaveform(fn func(*W)) {
	fn(&s.waveform)
}

// WithDutyCycle adds duty-cycle support set to dutyCycle.
func (s Direct[F, W]) WithDutyCycle(dutyCycle F) DirectDutyCycle[F, W] {
	return DirectDutyCycle[F, W]{waveform: s.waveform, dutyCycle: dutyCycle}
}

// EnableDutyCycle adds duty-cycle support at the default 0.5.
func (s Direct[F, W]) EnableDutyCycle() DirectDutyCycle[F, W] {
	return s.WithDutyCycle(numeric.DefaultDutyCycle[F]())
}

// WithWavetable adds an empty harmonic table of the given capacity.
func (s Direct[F, W]) WithWavetable(capacity int) Wavetable[F, W] {
	return Wavetable[F, W]{waveform: s.waveform, cache: newCache[F](capacity)}
}

func (s Direct[F, W]) Clone() Direct[F, W] {
	return s
}

func (Direct[F, W]) invalidate() {}

func (s Direct[F, W]) clone() State[F] {
	return s.Clone()
}
