// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

var errNegativeOffset = errors.New("audiotest: negative offset")

// Buffer is an in-memory io.ReadWriteSeeker. Writing past the end grows it,
// writing inside it overwrites.
type Buffer struct {
	data []byte
	off  int64
}

// NewBuffer starts a buffer holding a copy of data, positioned at 0.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), data...)}
}

func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.off + int64(len(p))
	if end > int64(len(b.data)) {
		b.data = append(b.data, make([]byte, end-int64(len(b.data)))...)
	}

	copy(b.data[b.off:], p)
	b.off = end

	return len(p), nil
}

func (b *Buffer) Read(p []byte) (int, error) {
	if b.off >= int64(len(b.data)) {
		return 0, io.EOF
	}

	n := copy(p, b.data[b.off:])
	b.off += int64(n)

	return n, nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.off + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, errors.New("audiotest: invalid whence")
	}

	if abs < 0 {
		return 0, errNegativeOffset
	}

	b.off = abs

	return abs, nil
}
