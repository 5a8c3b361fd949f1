// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"math"

	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/wavetable"
)

const tau = 2 * math.Pi

// Oscillator is a phase accumulator driving one State.
//
// Omega is the angular frequency in radians per second of the rate passed
// to Next, Phi a constant phase offset in radians.
type Oscillator[F numeric.Float, S State[F]] struct {
	Omega F
	Phi   F

	theta F
	state S
}

// New returns an oscillator at phase zero. The oscillator owns a copy of
// state with its own table storage, so several oscillators may be built from
// one state value. Any table already held by state is discarded.
func New[F numeric.Float, S State[F]](state S, omega, phi F) *Oscillator[F, S] {
	own := state.clone().(S)
	own.invalidate()

	return &Oscillator[F, S]{
		Omega: omega,
		Phi:   phi,
		state: own,
	}
}

// Next advances the phase by Omega/rate and returns the sample there. A rate
// that is not positive yields 0 and leaves the phase unchanged.
func (o *Oscillator[F, S]) Next(rate F) F {
	if !(rate > 0) {
		return 0
	}

	o.theta = numeric.RemEuclid(o.theta+o.Omega/rate, tau)
	return o.state.Sample(o.theta+o.Phi, o.Omega, rate)
}

// Process fills dst with consecutive samples at a constant rate.
func (o *Oscillator[F, S]) Process(dst []F, rate F) {
	for i := range dst {
		dst[i] = o.Next(rate)
	}
}

// Theta is the running phase in [0, 2π), without Phi.
func (o *Oscillator[F, S]) Theta() F {
	return o.theta
}

// State returns a copy of the current state with its own table storage.
// Use Mutate to change the oscillator's state.
func (o *Oscillator[F, S]) State() S {
	return o.state.clone().(S)
}

func (o *Oscillator[F, S]) DutyCycle() F {
	return o.state.DutyCycle()
}

// Table exposes the harmonic table in use, if any.
func (o *Oscillator[F, S]) Table() (wavetable.View[F], bool) {
	return o.state.Table()
}

// Mutate discards any cached table, then hands fn the state for in-place
// changes.
func (o *Oscillator[F, S]) Mutate(fn func(*S)) {
	o.state.invalidate()
	fn(&o.state)
}

// Clone returns an independent oscillator with the same phase.
func (o *Oscillator[F, S]) Clone() *Oscillator[F, S] {
	c := *o
	c.state = o.state.clone().(S)

	return &c
}

// Convert returns an oscillator whose state is fn applied to a copy of o's
// state, keeping Omega, Phi and the running phase. o is left unchanged and
// the two do not share table storage.
//
//	osc2 := oscillator.Convert(osc, func(s oscillator.Direct[float64, waveform.Square[float64]]) oscillator.Wavetable[float64, waveform.Square[float64]] {
//	    return s.WithWavetable(64)
//	})
func Convert[F numeric.Float, S, T State[F]](o *Oscillator[F, S], fn func(S) T) *Oscillator[F, T] {
	return &Oscillator[F, T]{
		Omega: o.Omega,
		Phi:   o.Phi,
		theta: o.theta,
		state: fn(o.state.clone().(S)).clone().(T),
	}
}
