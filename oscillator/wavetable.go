// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/waveform"
	"github.com/ik5/oscillation/wavetable"
)

// Wavetable serves samples from a lazily built table of the unmodulated
// waveform's harmonics whenever the band limit fits in its capacity.
type Wavetable[F numeric.Float, W waveform.Waveform[F]] struct {
	waveform W
	cache    *cache[F]
}

// NewWavetable wraps w in a Wavetable state with an empty table.
func NewWavetable[F numeric.Float, W waveform.Waveform[F]](w W, capacity int) Wavetable[F, W] {
	return NewDirect[F](w).WithWavetable(capacity)
}

func (s Wavetable[F, W]) Sample(theta, omega, rate F) F {
	upTo, ok := harmonicLimit(omega, rate)
	if !ok {
		return 0
	}

	if s.cache.fits(upTo) {
		if s.cache.status == cacheAbsent {
			s.cache.settle(s.waveform.Harmonics(s.cache.table))
		}
		if y, ok := s.cache.evaluate(theta, upTo); ok {
			return y
		}
	}

	return s.waveform.Sample(theta)
}

func (Wavetable[F, W]) DutyCycle() F {
	return numeric.DefaultDutyCycle[F]()
}

func (s Wavetable[F, W]) Table() (wavetable.View[F], bool) {
	return s.cache.view()
}

// Capacity is the number of harmonics the table holds.
func (s Wavetable[F, W]) Capacity() int {
	return s.cache.capacity()
}

func (s Wavetable[F, W]) Waveform() W {
	return s.waveform
}

func (s *Wavetable[F, W]) SetWaveform(w W) {
	s.cache.reset()
	s.waveform = w
}

func (s *Wavetable[F, W]) UpdateWaveform(fn func(*W)) {
	s.cache.reset()
	fn(&s.waveform)
}

// WithDutyCycle adds duty-cycle support set to dutyCycle. The table is
// rebuilt on demand.
func (s Wavetable[F, W]) WithDutyCycle(dutyCycle F) WavetableDutyCycle[F, W] {
	return s.WithoutWavetable().WithDutyCycle(dutyCycle).WithWavetable(s.Capacity())
}

// EnableDutyCycle adds duty-cycle support at the default 0.5.
func (s Wavetable[F, W]) EnableDutyCycle() WavetableDutyCycle[F, W] {
	return s.WithDutyCycle(numeric.DefaultDutyCycle[F]())
}

// WithWavetable changes the table capacity, keeping the current table if
// it holds enough harmonics.
func (s Wavetable[F, W]) WithWavetable(capacity int) Wavetable[F, W] {
	return Wavetable[F, W]{waveform: s.waveform, cache: s.cache.resize(capacity)}
}

// WithoutWavetable drops the table.
func (s Wavetable[F, W]) WithoutWavetable() Direct[F, W] {
	return Direct[F, W]{waveform: s.waveform}
}

// Clone returns a copy with its own table storage.
func (s Wavetable[F, W]) Clone() Wavetable[F, W] {
	return Wavetable[F, W]{waveform: s.waveform, cache: s.cache.clone()}
}

func (s Wavetable[F, W]) invalidate() {
	s.cache.reset()
}

func (s Wavetable[F, W]) clone() State[F] {
	return s.Clone()
}
