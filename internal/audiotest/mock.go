// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory sources and sinks for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates frames from a function of frame index and channel.
// It implements audio.Source without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	generated  int
	fn         func(frame, channel int) float32
	closed     bool
}

func NewMockSource(sampleRate, channels, frames int, fn func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		fn:         fn,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewSliceSource replays interleaved samples. A trailing partial frame is
// dropped.
func NewSliceSource(sampleRate, channels int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(frame, channel int) float32 {
		return samples[frame*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds to the first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.fn(m.generated+f, c)
		}
	}

	m.generated += frames
	n := frames * m.channels

	if m.generated >= m.frames {
		return n, io.EOF
	}

	return n, nil
}
