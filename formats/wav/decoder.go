// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/oscillation/audio"
	"github.com/ik5/oscillation/internal/pcm"
)

const formatPCM = 1

// Format reads and writes integer PCM WAV files. The zero value writes
// 16-bit samples.
type Format struct {
	// BitDepth of encoded samples: 16, 24 or 32. Zero means 16.
	BitDepth int
}

// Decode reads the WAV header from r. The returned Source reads samples
// lazily, so r must stay open until it is drained.
func (Format) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	bitDepth, err := pcm.CheckBitDepth(int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	return pcm.NewSource(dec, int(dec.SampleRate), int(dec.NumChans), bitDepth), nil
}

// Encode writes every sample of src to w and patches the chunk sizes.
func (f Format) Encode(w io.WriteSeeker, src audio.Source) error {
	bitDepth, err := pcm.CheckBitDepth(f.BitDepth)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	enc := wav.NewEncoder(w, src.SampleRate(), bitDepth, src.Channels(), formatPCM)
	if err := pcm.Encode(enc, src, bitDepth); err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	return nil
}
