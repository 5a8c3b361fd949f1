// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/faiface/beep"

	"github.com/ik5/oscillation/internal/audiotest"
)

func TestStreamer_DuplicatesChannels(t *testing.T) {
	t.Parallel()

	s, err := NewStreamer[float64](&ramp{}, beep.SampleRate(44100))
	if err != nil {
		t.Fatal(err)
	}

	samples := make([][2]float64, 4)
	n, ok := s.Stream(samples)
	if n != 4 || !ok {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i, frame := range samples {
		if frame[0] != float64(i+1) || frame[1] != frame[0] {
			t.Errorf("frame %d = %v", i, frame)
		}
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}
}

func TestStreamer_InvalidRate(t *testing.T) {
	t.Parallel()

	if _, err := NewStreamer[float64](&ramp{}, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("NewStreamer(0) error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestStreamer_Take(t *testing.T) {
	t.Parallel()

	s, _ := NewStreamer[float64](&ramp{}, beep.SampleRate(8000))
	limited := beep.Take(10, s)

	samples := make([][2]float64, 16)
	n, ok := limited.Stream(samples)
	if n != 10 || !ok {
		t.Fatalf("first Stream() = %d, %v", n, ok)
	}
	if n, ok := limited.Stream(samples); n != 0 || ok {
		t.Errorf("second Stream() = %d, %v; want 0, false", n, ok)
	}
}

func TestSourceStreamer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		samples  []float32
		want     [][2]float64
	}{
		{"mono", 1, []float32{0.5, -0.5}, [][2]float64{{0.5, 0.5}, {-0.5, -0.5}}},
		{"stereo", 2, []float32{0.25, -0.25, 0.5, -0.5}, [][2]float64{{0.25, -0.25}, {0.5, -0.5}}},
		{"surround", 3, []float32{0.25, -0.25, 1}, [][2]float64{{0.25, -0.25}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, format := SourceStreamer(audiotest.NewSliceSource(8000, tt.channels, tt.samples))
			if format.SampleRate != 8000 || format.NumChannels != min(tt.channels, 2) {
				t.Errorf("format = %+v", format)
			}

			got := make([][2]float64, 8)
			n, ok := s.Stream(got)
			if !ok || n != len(tt.want) {
				t.Fatalf("Stream() = %d, %v", n, ok)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("frame %d = %v, want %v", i, got[i], tt.want[i])
				}
			}

			if n, ok := s.Stream(got); n != 0 || ok {
				t.Errorf("drained Stream() = %d, %v", n, ok)
			}
			if err := s.Err(); err != nil {
				t.Errorf("Err() = %v", err)
			}
		})
	}
}
