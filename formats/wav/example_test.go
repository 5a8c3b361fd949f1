// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/ik5/oscillation/audio"
	"github.com/ik5/oscillation/formats/wav"
	"github.com/ik5/oscillation/internal/audiotest"
	"github.com/ik5/oscillation/oscillator"
	"github.com/ik5/oscillation/waveform"
)

// Example_encoding renders 100 ms of a band-limited sawtooth to WAV.
func Example_encoding() {
	osc := oscillator.New(oscillator.NewWavetable[float64](waveform.Sawtooth[float64]{}, 64), 2*math.Pi*220, 0)
	gen, _ := audio.NewGenerator[float64](osc, 16000, 1, 1600)

	file := audiotest.NewBuffer(nil)
	if err := (wav.Format{}).Encode(file, gen); err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", file.Len())
	// Output:
	// Wrote 3244 bytes
}

// Example_decoding reads back a WAV file.
func Example_decoding() {
	file := audiotest.NewBuffer(nil)
	_ = wav.WriteWAV16(file, 16000, []int16{100, 200, 300, 400, 500})

	source, err := wav.Format{}.Decode(bytes.NewReader(file.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())

	buf := make([]float32, 10)
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d samples\n", n)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Read 5 samples
}
