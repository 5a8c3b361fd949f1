// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files.
//
// It uses github.com/go-audio/wav for the RIFF container. Format implements
// audio.Format, so it can be registered:
//
//	registry.Register("wav", wav.Format{})
//
// # Writing
//
// Encode drains any audio.Source, typically an oscillator generator:
//
//	gen, _ := audio.NewGenerator[float64](osc, 44100, 1, 44100)
//	file, _ := os.Create("tone.wav")
//	err := wav.Format{BitDepth: 16}.Encode(file, gen)
//
// The destination must be an io.WriteSeeker: chunk sizes are written once
// the stream length is known.
//
// WriteWAV16 writes already quantized mono samples.
//
// # Reading
//
//	file, _ := os.Open("tone.wav")
//	source, err := wav.Format{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are returned as float32 in [-1.0, 1.0). Readers that cannot seek
// are buffered in memory first.
package wav
