// SPDX-License-Identifier: EPL-2.0

// Package audio connects oscillators to PCM streams.
//
// This package contains the streaming building blocks:
//   - Source interface for interleaved float32 PCM
//   - Generator, a Source pulling samples from an oscillator
//   - Streamer, a beep.Streamer pulling samples from an oscillator
//   - Downmix for reducing a multichannel Source to mono
//   - Format registry for file encoders and decoders
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Generators, decoders and the downmixer all implement it, so they chain
// into pipelines.
//
// # Generating
//
// Any value with a Next(rate) method, such as *oscillator.Oscillator, can be
// rendered:
//
//	osc := oscillator.New(oscillator.NewWavetable[float64](waveform.Square[float64]{}, 64), 2*math.Pi*440, 0)
//	gen, _ := audio.NewGenerator[float64](osc, 44100, 1, 44100) // one second
//	buf := make([]float32, 4096)
//	n, err := gen.ReadSamples(buf)
//
// A negative frame count makes the generator endless.
//
// # Live Playback
//
// Streamer plugs an oscillator into a faiface/beep pipeline and
// Float32Reader turns any beep.Streamer into the byte stream expected by an
// oto player in FormatFloat32LE:
//
//	s, _ := audio.NewStreamer[float64](osc, beep.SampleRate(44100))
//	player := ctx.NewPlayer(audio.NewFloat32Reader(beep.Take(44100, s)))
//
// # Format Registry
//
// The registry maps names to formats able to decode and encode:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Format{BitDepth: 16})
//	format, err := registry.Lookup("wav")
//
// Read-only formats register a Decoder alone. LookupDecoder finds both kinds:
//
//	registry.RegisterDecoder("mp3", mp3.Decoder{})
//	dec, err := registry.LookupDecoder("mp3")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available, possibly
// together with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
