// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// mockMP3Reader serves int16 samples as little-endian bytes, at most chunk
// bytes per Read when chunk is set.
type mockMP3Reader struct {
	data  []byte
	chunk int
	err   error
}

func newMockReader(samples []int16, chunk int) *mockMP3Reader {
	data := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(v))
	}

	return &mockMP3Reader{data: data, chunk: chunk}
}

func (m *mockMP3Reader) SampleRate() int { return 44100 }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}

	if m.chunk > 0 && len(buf) > m.chunk {
		buf = buf[:m.chunk]
	}
	n := copy(buf, m.data)
	m.data = m.data[n:]

	return n, nil
}

func drain(t *testing.T, src *source, bufLen int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufLen)
	for range 1000 {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("ReadSamples() never reached EOF")

	return nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not MP3 data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(nil, 0), sampleRate: 22050, buf: make([]byte, 8192)}

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}
	src := &source{dec: newMockReader(samples, 0), sampleRate: 8000}

	got := drain(t, src, 8)
	want := []float32{0, 0.5, 32767.0 / 32768, -0.5, -1, 0.25, -0.25, 0}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_ReadSamples_SplitSample(t *testing.T) {
	t.Parallel()

	samples := []int16{1000, -1000, 20000, -20000, 300, -300}
	src := &source{dec: newMockReader(samples, 3), sampleRate: 8000}

	got := drain(t, src, 4)
	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i, v := range samples {
		if want := float32(v) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader([]int16{1, 2}, 0)}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	dec := newMockReader(nil, 0)
	dec.err = io.ErrUnexpectedEOF
	src := &source{dec: dec}

	_, err := src.ReadSamples(make([]float32, 16))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 1<<16)
	for i := range samples {
		samples[i] = int16(i)
	}
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := &source{dec: newMockReader(samples, 0), buf: make([]byte, 8192)}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
