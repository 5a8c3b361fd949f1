// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/oscillation/audio"
	"github.com/ik5/oscillation/internal/pcm"
)

// Format reads and writes big-endian integer PCM AIFF files. The zero
// value writes 16-bit samples.
type Format struct {
	BitDepth int
}

func (Format) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	bitDepth, err := pcm.CheckBitDepth(int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcm.NewSource(dec, format.SampleRate, format.NumChannels, bitDepth), nil
}

func (f Format) Encode(w io.WriteSeeker, src audio.Source) error {
	bitDepth, err := pcm.CheckBitDepth(f.BitDepth)
	if err != nil {
		return fmt.Errorf("aiff: %w", err)
	}

	enc := aiff.NewEncoder(w, src.SampleRate(), bitDepth, src.Channels())
	if err := pcm.Encode(enc, src, bitDepth); err != nil {
		return fmt.Errorf("aiff: %w", err)
	}

	return nil
}
