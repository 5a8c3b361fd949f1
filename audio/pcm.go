// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/faiface/beep"
)

const float32StereoFrame = 8

// Float32Reader renders a beep.Streamer as interleaved little-endian float32
// stereo, the byte layout of oto.FormatFloat32LE with two channels.
type Float32Reader struct {
	s    beep.Streamer
	buf  [][2]float64
	done bool
	err  error
}

func NewFloat32Reader(s beep.Streamer) *Float32Reader {
	return &Float32Reader{s: s}
}

func (r *Float32Reader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}

	frames := len(p) / float32StereoFrame
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}

	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, ok := r.s.Stream(buf)
	for i := range n {
		off := i * float32StereoFrame
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(float32(buf[i][0])))
		binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(float32(buf[i][1])))
	}

	if !ok {
		// A streamer error is reported after any samples it returned with.
		r.done = true
		r.err = io.EOF
		if err := r.s.Err(); err != nil {
			r.err = err
		}
		if n == 0 {
			return 0, r.err
		}
	}

	return n * float32StereoFrame, nil
}
