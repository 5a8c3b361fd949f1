// SPDX-License-Identifier: EPL-2.0

// Package analysis measures rendered oscillator output in the frequency
// domain.
//
// Spectra are single-sided amplitude spectra: a sinusoid of amplitude A
// whose frequency falls exactly on a bin shows up as A in that bin. Bins are
// rate/len(x) Hz apart. No window is applied, so measurements are exact only
// for signals periodic in the analysed length.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/ik5/oscillation/numeric"
)

// Spectrum returns len(x)/2+1 amplitude bins of x.
func Spectrum[F numeric.Float](x []F) []float64 {
	if len(x) == 0 {
		return nil
	}

	in := make([]float64, len(x))
	for i, v := range x {
		in[i] = float64(v)
	}

	X := fft.FFTReal(in)
	n := float64(len(x))

	out := make([]float64, len(x)/2+1)
	for k := range out {
		out[k] = 2 * cmplx.Abs(X[k]) / n
	}
	out[0] /= 2
	if len(x)%2 == 0 {
		out[len(out)-1] /= 2
	}

	return out
}

// Bin returns the index of the bin closest to freq for an n-point transform
// at the given rate.
func Bin(freq, rate float64, n int) int {
	return int(math.Round(freq * float64(n) / rate))
}

// HarmonicLevels returns the amplitude at harmonics 1..count of f0. Harmonics
// beyond the spectrum are reported as 0.
func HarmonicLevels(spectrum []float64, f0, rate float64, count int) []float64 {
	n := 2 * (len(spectrum) - 1)
	out := make([]float64, count)

	for h := range out {
		k := Bin(f0*float64(h+1), rate, n)
		if k < len(spectrum) {
			out[h] = spectrum[k]
		}
	}

	return out
}

// AliasRatio is the fraction of AC energy found outside the bins of the
// harmonics of f0. A band-limited periodic signal at f0 scores close to zero.
func AliasRatio(spectrum []float64, f0, rate float64) float64 {
	if len(spectrum) < 2 {
		return 0
	}

	n := 2 * (len(spectrum) - 1)
	harmonic := make([]bool, len(spectrum))
	for h := 1; ; h++ {
		k := Bin(f0*float64(h), rate, n)
		if k >= len(spectrum) || k <= 0 {
			break
		}
		harmonic[k] = true
	}

	energy := make([]float64, 0, len(spectrum))
	var stray []float64
	for k := 1; k < len(spectrum); k++ {
		e := spectrum[k] * spectrum[k]
		energy = append(energy, e)
		if !harmonic[k] {
			stray = append(stray, e)
		}
	}

	total := numeric.Sum(energy...)
	if total == 0 {
		return 0
	}

	return numeric.Sum(stray...) / total
}

// Peak returns the bin with the largest amplitude, ignoring DC.
func Peak(spectrum []float64) (bin int, amplitude float64) {
	for k := 1; k < len(spectrum); k++ {
		if spectrum[k] > amplitude {
			bin, amplitude = k, spectrum[k]
		}
	}

	return bin, amplitude
}

// RMS is the root mean square of x.
func RMS[F numeric.Float](x []F) float64 {
	if len(x) == 0 {
		return 0
	}

	sq := make([]float64, len(x))
	for i, v := range x {
		sq[i] = float64(v) * float64(v)
	}

	return math.Sqrt(numeric.Sum(sq...) / float64(len(x)))
}
