// SPDX-License-Identifier: EPL-2.0

// Package wavetable provides fixed-capacity harmonic tables.
//
// A Table holds one DC term and N (cosine, sine) coefficient pairs and
// represents the truncated Fourier series
//
//	a0 + Σ_{n=1}^{N} a_n·cos(nθ) + b_n·sin(nθ)
//
// Capacity is chosen once, when the table is allocated. Rebuilding a table
// (Fill) reuses its storage, so an oscillator that owns a table never
// allocates on the audio path.
//
// # Evaluation
//
// Evaluate sums only the first upTo harmonics, which lets a caller band-limit
// a waveform to whatever lies below the Nyquist frequency for the current
// sample rate:
//
//	t := wavetable.FromFunc(0.0, 64, func(n int) (float64, float64) {
//	    return 0, 2 / (math.Pi * float64(n))
//	})
//	y, ok := t.Evaluate(theta, 10)
//
// cos(nθ) and sin(nθ) are produced by repeated multiplication of the unit
// complex exponential e^{iθ} rather than by calling cos and sin per term.
// A non-finite sum is reported as ok == false.
//
// # Truncation
//
// Truncate and TruncateInto keep the DC term and the first M pairs of a table.
// They refuse to widen: asking for more harmonics than are stored reports
// ok == false, meaning the table must be regenerated from its waveform.
package wavetable
