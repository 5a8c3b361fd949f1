// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmixer averages every frame of a multichannel Source into one sample.
type Downmixer struct {
	src Source
	tmp []float32
}

// Downmix returns src itself when it is already mono.
func Downmix(src Source) Source {
	if src.Channels() == 1 {
		return src
	}

	return &Downmixer{
		src: src,
		tmp: make([]float32, src.BufSize()*src.Channels()),
	}
}

func (m *Downmixer) SampleRate() int { return m.src.SampleRate() }
func (m *Downmixer) Channels() int   { return 1 }
func (m *Downmixer) BufSize() int    { return m.src.BufSize() }

func (m *Downmixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing downmix source: %w", err)
	}

	return nil
}

// ReadSamples reads up to len(dst) frames from the source.
func (m *Downmixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	tmp := m.tmp[:need]

	n, err := m.src.ReadSamples(tmp)
	frames := n / channels
	scale := 1 / float32(channels)

	for f := range frames {
		var sum float32
		for _, v := range tmp[f*channels : (f+1)*channels] {
			sum += v
		}
		dst[f] = sum * scale
	}

	return frames, err
}
