// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/waveform"
	"github.com/ik5/oscillation/wavetable"
)

// DirectDutyCycle evaluates the duty-cycle waveform formula on every sample.
type DirectDutyCycle[F numeric.Float, W waveform.Waveform[F]] struct {
	waveform  W
	dutyCycle F
}

// NewDirectDutyCycle wraps w in a DirectDutyCycle state.
func NewDirectDutyCycle[F numeric.Float, W waveform.Waveform[F]](w W, dutyCycle F) DirectDutyCycle[F, W] {
	return DirectDutyCycle[F, W]{waveform: w, dutyCycle: dutyCycle}
}

func (s DirectDutyCycle[F, W]) Sample(theta, omega, rate F) F {
	if _, ok := harmonicLimit(omega, rate); !ok {
		return 0
	}

	return s.waveform.SampleDutyCycle(theta, s.dutyCycle)
}

func (s DirectDutyCycle[F, W]) DutyCycle() F {
	return s.dutyCycle
}

func (s *DirectDutyCycle[F, W]) SetDutyCycle(dutyCycle F) {
	s.dutyCycle = dutyCycle
}

func (DirectDutyCycle[F, W]) Table() (wavetable.View[F], bool) {
	return wavetable.View[F]{}, false
}

func (s DirectDutyCycle[F, W]) Waveform() W {
	return s.waveform
}

func (s *DirectDutyCycle[F, W]) SetWaveform(w W) {
	s.waveform = w
}

func (s *DirectDutyCycle[F, W]) UpdateWaveform(fn func(*W)) {
	fn(&s.waveform)
}

// WithDutyCycle replaces the duty cycle.
func (s DirectDutyCycle[F, W]) WithDutyCycle(dutyCycle F) DirectDutyCycle[F, W] {
	s.dutyCycle = dutyCycle
	return s
}

// WithoutDutyCycle drops duty-cycle support. The value is lost.
func (s DirectDutyCycle[F, W]) WithoutDutyCycle() Direct[F, W] {
	return Direct[F, W]{waveform: s.waveform}
}

// WithWavetable adds an empty harmonic table of the given capacity.
func (s DirectDutyCycle[F, W]) WithWavetable(capacity int) WavetableDutyCycle[F, W] {
	return WavetableDutyCycle[F, W]{
		waveform:  s.waveform,
		dutyCycle: s.dutyCycle,
		cache:     newCache[F](capacity),
	}
}

func (s DirectDutyCycle[F, W]) Clone() DirectDutyCycle[F, W] {
	return s
}

func (DirectDutyCycle[F, W]) invalidate() {}

func (s DirectDutyCycle[F, W]) clone() State[F] {
	return s.Clone()
}
