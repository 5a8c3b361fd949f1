// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/faiface/beep"

	"github.com/ik5/oscillation/numeric"
)

// Streamer exposes a Sampler as an endless beep.Streamer. Both beep channels
// carry the same signal; wrap it with beep.Take to bound it.
type Streamer[F numeric.Float] struct {
	sampler Sampler[F]
	rate    F
}

func NewStreamer[F numeric.Float](s Sampler[F], sr beep.SampleRate) (*Streamer[F], error) {
	if sr <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sr)
	}

	return &Streamer[F]{sampler: s, rate: F(sr)}, nil
}

func (s *Streamer[F]) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		y := float64(s.sampler.Next(s.rate))
		samples[i] = [2]float64{y, y}
	}

	return len(samples), true
}

func (*Streamer[F]) Err() error {
	return nil
}

// sourceStreamer adapts a Source to beep. Mono is duplicated, channels past
// the second are dropped.
type sourceStreamer struct {
	src Source
	buf []float32
	err error
}

// SourceStreamer exposes src as a beep.Streamer at its own sample rate.
func SourceStreamer(src Source) (beep.Streamer, beep.Format) {
	ch := src.Channels()

	return &sourceStreamer{src: src}, beep.Format{
		SampleRate:  beep.SampleRate(src.SampleRate()),
		NumChannels: min(ch, 2),
		Precision:   2,
	}
}

func (s *sourceStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}

	ch := s.src.Channels()
	need := len(samples) * ch
	if cap(s.buf) < need {
		s.buf = make([]float32, need)
	}
	buf := s.buf[:need]

	n, err := s.src.ReadSamples(buf)
	frames := n / ch
	for f := range frames {
		l := float64(buf[f*ch])
		r := l
		if ch > 1 {
			r = float64(buf[f*ch+1])
		}
		samples[f] = [2]float64{l, r}
	}

	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		if frames == 0 {
			return 0, false
		}
	}

	return frames, true
}

func (s *sourceStreamer) Err() error {
	return s.err
}
