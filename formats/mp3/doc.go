// SPDX-License-Identifier: EPL-2.0

// Package mp3 reads MPEG-1/2 Layer III files.
//
// It uses github.com/hajimehoshi/go-mp3, which always produces 16-bit
// stereo. Decoder only implements audio.Decoder, so it is registered as a
// read-only format:
//
//	registry.RegisterDecoder("mp3", mp3.Decoder{})
//
// A decoded file can serve as reference material for spectrum analysis or
// be played back alongside an oscillator:
//
//	file, _ := os.Open("reference.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are interleaved [L0, R0, L1, R1, ...] in [-1.0, 1.0).
package mp3
