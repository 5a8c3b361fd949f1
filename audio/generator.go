// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/oscillation/numeric"
)

// Sampler yields one sample per call at the given sample rate.
// *oscillator.Oscillator satisfies it.
type Sampler[F numeric.Float] interface {
	Next(rate F) F
}

// Generator is a Source pulling samples from a Sampler at a fixed rate.
// Every channel carries the same signal.
type Generator[F numeric.Float] struct {
	sampler    Sampler[F]
	sampleRate int
	channels   int
	frames     int // negative means endless
	generated  int
}

// NewGenerator returns a Source of frames frames; a negative count never
// ends.
func NewGenerator[F numeric.Float](s Sampler[F], sampleRate, channels, frames int) (*Generator[F], error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	return &Generator[F]{
		sampler:    s,
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
	}, nil
}

func (g *Generator[F]) SampleRate() int { return g.sampleRate }
func (g *Generator[F]) Channels() int   { return g.channels }
func (g *Generator[F]) BufSize() int    { return 4096 }
func (g *Generator[F]) Close() error    { return nil }

// Frames is the total length in frames, negative when endless.
func (g *Generator[F]) Frames() int { return g.frames }

func (g *Generator[F]) ReadSamples(dst []float32) (int, error) {
	if len(dst)%g.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / g.channels
	if g.frames >= 0 {
		if g.generated >= g.frames {
			return 0, io.EOF
		}
		frames = min(frames, g.frames-g.generated)
	}

	rate := F(g.sampleRate)
	for f := range frames {
		y := float32(g.sampler.Next(rate))

		base := f * g.channels
		for c := range g.channels {
			dst[base+c] = y
		}
	}

	g.generated += frames
	n := frames * g.channels

	if g.frames >= 0 && g.generated >= g.frames {
		return n, io.EOF
	}

	return n, nil
}
