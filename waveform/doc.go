// SPDX-License-Identifier: EPL-2.0

// Package waveform provides the periodic shapes an oscillator can play.
//
// Every shape implements Waveform: an exact per-sample formula, a duty-cycle
// modulated variant of it, and optionally analytic Fourier coefficients for
// both, written into a caller-owned wavetable.Table.
//
// # Shapes
//
//   - Sine: cos θ; duty cycle skews it into a Bessel-spectrum pulse
//   - Triangle: piecewise-linear, peak at the duty-cycle split
//   - Sawtooth: two ramps from -1 to 1, reset at 0 and at the split
//   - Square: -1 before the split, +1 after
//   - RoundedTriangle: sin(π/2·triangle)
//   - Noise: uniform white noise, reshaped by duty cycle
//
// Angles need not be reduced; every formula wraps θ into its own period.
// At duty cycle 0.5 each modulated formula reduces to the plain one.
//
// # Run-time selection
//
// Shape is a closed enumeration of the built-in shapes with a stable numeric
// encoding, and Builtin dispatches on it:
//
//	w := waveform.Builtin[float64]{Shape: waveform.ShapeSquare}
//	y := w.SampleDutyCycle(theta, 0.25)
//
// # Degenerate cases
//
// A generator reports false when a finite table would not help: the plain
// sine (one harmonic), the plain and symmetric rounded triangle, and noise.
// Formulas substitute exact limiting values near singular duty cycles instead
// of producing NaN or ±Inf.
package waveform
