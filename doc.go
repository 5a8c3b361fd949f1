// SPDX-License-Identifier: EPL-2.0

// Package oscillation provides band-limited periodic oscillators and the
// plumbing to render them.
//
// The core lives in subpackages:
//   - waveform: the built-in shapes and their analytic Fourier spectra
//   - wavetable: the harmonic table and its evaluation
//   - oscillator: the phase accumulator and its four states
//   - patch: YAML and JSON persistence of oscillator parameters
//   - audio, formats/wav, formats/aiff: streams and PCM files
//   - analysis: spectrum measurements of rendered output
//
// # Quick Start
//
// An oscillator is a state plus a frequency. States decide whether to
// evaluate the waveform directly or through a harmonic table that stops
// below the Nyquist frequency:
//
//	state := oscillator.NewWavetable[float64](waveform.Sawtooth[float64]{}, 128)
//	osc := oscillator.New(state, 2*math.Pi*440, 0)
//
//	for range 44100 {
//	    y := osc.Next(44100)
//	    ...
//	}
//
// Duty cycle support is added or removed by value transitions:
//
//	pulse := oscillator.Convert(osc, func(s oscillator.Wavetable[float64, waveform.Sawtooth[float64]]) oscillator.WavetableDutyCycle[float64, waveform.Sawtooth[float64]] {
//	    return s.WithDutyCycle(0.25)
//	})
//
// # Rendering
//
// A patch describes an oscillator at run time. Generate turns it into an
// audio.Source that any registered format can encode:
//
//	p, _ := patch.Load(file)
//	gen, _ := oscillation.Generate(p, 44100, 1, 2*time.Second)
//
//	format, _ := oscillation.NewRegistry().Lookup("wav")
//	out, _ := os.Create("tone.wav")
//	err := format.Encode(out, gen)
//
// MP3 and Ogg Vorbis files can be read for playback or analysis but not
// written, so they are found through LookupDecoder:
//
//	dec, _ := oscillation.NewRegistry().LookupDecoder("ogg")
//
// RenderToMono16 collects any Source as mono 16-bit PCM instead:
//
//	samples, rate, err := oscillation.RenderToMono16(gen, 4096)
//
// # Performance
//
// Oscillator.Next and Oscillator.Process do not allocate. Harmonic tables
// are allocated when a wavetable state is built and filled on first use;
// changing the waveform or duty cycle marks the table stale.
package oscillation
