// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/waveform"
	"github.com/ik5/oscillation/wavetable"
)

// WavetableDutyCycle is Wavetable for a duty-cycle waveform. The table holds
// the spectrum for the duty cycle it was built at.
type WavetableDutyCycle[F numeric.Float, W waveform.Waveform[F]] struct {
	waveform  W
	dutyCycle F
	cache     *cache[F]
}

// NewWavetableDutyCycle wraps w in a WavetableDutyCycle state with an empty table.
func NewWavetableDutyCycle[F numeric.Float, W waveform.Waveform[F]](w W, dutyCycle F, capacity int) WavetableDutyCycle[F, W] {
	return NewDirectDutyCycle(w, dutyCycle).WithWavetable(capacity)
}

func (s WavetableDutyCycle[F, W]) Sample(theta, omega, rate F) F {
	upTo, ok := harmonicLimit(omega, rate)
	if !ok {
		return 0
	}

	if s.cache.fits(upTo) {
		if s.cache.status == cacheAbsent {
			s.cache.settle(s.waveform.HarmonicsDutyCycle(s.cache.table, s.dutyCycle))
		}
		if y, ok := s.cache.evaluate(theta, upTo); ok {
			return y
		}
	}

	return s.waveform.SampleDutyCycle(theta, s.dutyCycle)
}

func (s WavetableDutyCycle[F, W]) DutyCycle() F {
	return s.dutyCycle
}

// SetDutyCycle changes the duty cycle and discards the table.
func (s *WavetableDutyCycle[F, W]) SetDutyCycle(dutyCycle F) {
	s.cache.reset()
	s.dutyCycle = dutyCycle
}

func (s WavetableDutyCycle[F, W]) Table() (wavetable.View[F], bool) {
	return s.cache.view()
}

func (s WavetableDutyCycle[F, W]) Capacity() int {
	return s.cache.capacity()
}

func (s WavetableDutyCycle[F, W]) Waveform() W {
	return s.waveform
}

func (s *WavetableDutyCycle[F, W]) SetWaveform(w W) {
	s.cache.reset()
	s.waveform = w
}

func (s *WavetableDutyCycle[F, W]) UpdateWaveform(fn func(*W)) {
	s.cache.reset()
	fn(&s.waveform)
}

// WithDutyCycle replaces the duty cycle. The table is rebuilt on demand.
func (s WavetableDutyCycle[F, W]) WithDutyCycle(dutyCycle F) WavetableDutyCycle[F, W] {
	return s.WithoutWavetable().WithDutyCycle(dutyCycle).WithWavetable(s.Capacity())
}

// WithoutDutyCycle drops duty-cycle support. The value is lost and the
// table is rebuilt on demand.
func (s WavetableDutyCycle[F, W]) WithoutDutyCycle() Wavetable[F, W] {
	return s.WithoutWavetable().WithoutDutyCycle().WithWavetable(s.Capacity())
}

// WithWavetable changes the table capacity, keeping the current table if
// it holds enough harmonics.
func (s WavetableDutyCycle[F, W]) WithWavetable(capacity int) WavetableDutyCycle[F, W] {
	return WavetableDutyCycle[F, W]{
		waveform:  s.waveform,
		dutyCycle: s.dutyCycle,
		cache:     s.cache.resize(capacity),
	}
}

// WithoutWavetable drops the table.
func (s WavetableDutyCycle[F, W]) WithoutWavetable() DirectDutyCycle[F, W] {
	return DirectDutyCycle[F, W]{waveform: s.waveform, dutyCycle: s.dutyCycle}
}

// Clone returns a copy with its own table storage.
func (s WavetableDutyCycle[F, W]) Clone() WavetableDutyCycle[F, W] {
	s.cache = s.cache.clone()
	return s
}

func (s WavetableDutyCycle[F, W]) invalidate() {
	s.cache.reset()
}

func (s WavetableDutyCycle[F, W]) clone() State[F] {
	return s.Clone()
}
