// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders and encoders to
// audio.Source.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/oscillation/audio"
	"github.com/ik5/oscillation/utils"
)

// DefaultBitDepth is used when a format leaves the bit depth unset.
const DefaultBitDepth = 16

// ErrUnsupportedBitDepth is returned for depths other than 16, 24 or 32.
var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// CheckBitDepth resolves 0 to DefaultBitDepth and rejects other unsupported depths.
func CheckBitDepth(bitDepth int) (int, error) {
	switch bitDepth {
	case 0:
		return DefaultBitDepth, nil
	case 16, 24, 32:
		return bitDepth, nil
	}

	return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
}

// Reader is implemented by the go-audio wav and aiff decoders.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Writer is implemented by the go-audio wav and aiff encoders.
type Writer interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Source wraps a Reader as an audio.Source.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

func NewSource(dec Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}

	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("reading pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = utils.PCMToFloat(s.intBuf.Data[i], s.bitDepth)
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// Encode drains src into w as integer PCM and closes w.
func Encode(w Writer, src audio.Source, bitDepth int) error {
	channels := src.Channels()
	frames := max(src.BufSize()/channels, 1)

	fbuf := make([]float32, frames*channels)
	data := make([]int, len(fbuf))
	ibuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  src.SampleRate(),
		},
		SourceBitDepth: bitDepth,
	}

	wrote := false
	for {
		n, err := src.ReadSamples(fbuf)
		if n > 0 || !wrote {
			for i, v := range fbuf[:n] {
				data[i] = utils.FloatToPCM(v, bitDepth)
			}
			ibuf.Data = data[:n]

			if werr := w.Write(ibuf); werr != nil {
				return fmt.Errorf("writing pcm: %w", werr)
			}
			wrote = true
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing pcm: %w", err)
	}

	return nil
}

// ReadSeeker returns r itself if it can seek, otherwise an in-memory copy.
// go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
