// SPDX-License-Identifier: EPL-2.0

package oscillation

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/oscillation/audio"
	"github.com/ik5/oscillation/formats/aiff"
	"github.com/ik5/oscillation/formats/mp3"
	"github.com/ik5/oscillation/formats/vorbis"
	"github.com/ik5/oscillation/formats/wav"
	"github.com/ik5/oscillation/patch"
	"github.com/ik5/oscillation/utils"
)

// NewRegistry returns a registry holding the wav and aiff formats with
// their default 16-bit encoders, plus the read-only mp3 and ogg decoders.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Format{})
	r.Register("aiff", aiff.Format{})
	r.RegisterDecoder("mp3", mp3.Decoder{})
	r.RegisterDecoder("ogg", vorbis.Decoder{})

	return r
}

// Generate returns a mono or multichannel Source playing p for duration d
// at sampleRate.
func Generate(p patch.Patch, sampleRate, channels int, d time.Duration) (*audio.Generator[float64], error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid patch: %w", err)
	}

	frames := int(d.Seconds() * float64(sampleRate))

	return audio.NewGenerator[float64](p.Oscillator(), sampleRate, channels, frames)
}

// RenderToMono16 drains src, averaging its channels, and collects the result
// as 16-bit PCM. It returns the samples and the sample rate of src.
//
// Example:
//
//	gen, _ := oscillation.Generate(patch.Default(), 8000, 1, time.Second)
//	pcm16, rate, err := oscillation.RenderToMono16(gen, 4096)
func RenderToMono16(src audio.Source, bufferSize int) ([]int16, int, error) {
	if bufferSize <= 0 {
		return nil, 0, fmt.Errorf("%w: buffer size %d", audio.ErrInvalidDstSize, bufferSize)
	}

	rate := src.SampleRate()
	mono := audio.Downmix(src)

	// Start with about two seconds and grow as needed.
	pcm16 := make([]int16, 0, rate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, rate, fmt.Errorf("rendering: %w", err)
		}
	}

	return pcm16, rate, nil
}
