// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/oscillation/audio"
	"github.com/ik5/oscillation/utils"
)

const (
	channels  = 2
	bitDepth  = 16
	sampleLen = bitDepth / 8
)

// mp3Reader is the part of gomp3.Decoder a source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte

	// odd holds the low byte of a sample split across two reads.
	odd    byte
	hasOdd bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / sampleLen }

// ReadSamples converts the decoder's little-endian 16-bit output.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * sampleLen
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	start := 0
	if s.hasOdd {
		buf[0] = s.odd
		start = 1
	}

	n, err := s.dec.Read(buf[start:])
	n += start

	samples := n / sampleLen
	s.hasOdd = n%sampleLen == 1
	if s.hasOdd {
		s.odd = buf[n-1]
	}

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(buf[i*sampleLen:]))
		dst[i] = utils.PCMToFloat(int(v), bitDepth)
	}

	return samples, err
}

// Decoder reads MP3 streams. It has no encoder.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
