// SPDX-License-Identifier: EPL-2.0

// Package oscillator provides band-limited phase-accumulating oscillators.
//
// An Oscillator owns an angular frequency, a phase offset, a running phase
// and exactly one State. Each call to Next advances the phase by
// omega/rate and asks the state for a sample:
//
//	osc := oscillator.New(
//	    oscillator.NewWavetable[float64](waveform.Sawtooth[float64]{}, 64),
//	    2*math.Pi*440, 0,
//	)
//	y := osc.Next(44100)
//
// # States
//
// The state set is closed:
//   - Direct evaluates the waveform formula on every call
//   - DirectDutyCycle does the same with a duty cycle
//   - Wavetable keeps a lazily built table of analytic harmonics
//   - WavetableDutyCycle keeps the table for the current duty cycle
//
// States convert into each other through value-returning methods. Adding
// duty-cycle support installs 0.5. Removing it forgets the value.
//
//	s := oscillator.NewDirect[float64](waveform.Square[float64]{}).
//	    WithDutyCycle(0.25).
//	    WithWavetable(64)
//
// # Band Limiting
//
// Per sample, with Nyquist limit π·rate:
//   - |omega| at or above the limit yields exactly 0
//   - if floor(limit/|omega|) harmonics fit in the table, the table is
//     evaluated up to that harmonic, building it first if needed
//   - otherwise, or when the waveform has no closed-form spectrum, the
//     direct formula is used
//
// Low pitches therefore use the exact formula, whose aliased components lie
// above the table's reach, and high pitches use an alias-free harmonic sum.
//
// # Cache Coherence
//
// A table is only valid for the waveform and duty cycle it was built from.
// Every setter on a state discards it, as does Oscillator.Mutate before
// handing out the state. Resizing keeps a valid table when it can be
// truncated to the new capacity.
//
// # Allocation
//
// Table storage is allocated when a Wavetable state is composed. Next and
// Process never allocate. A state copied by assignment shares its table
// storage with the original; New, Convert and Oscillator.State make their own
// copy, so voices built from one state value are independent.
//
// Oscillators are not safe for concurrent use.
package oscillator
