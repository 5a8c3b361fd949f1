// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Encoder drains a Source into w. Container headers that depend on the
// stream length are patched through Seek once the Source is exhausted.
type Encoder interface {
	Encode(w io.WriteSeeker, src Source) error
}

// Format is a file format able to both read and write PCM.
type Format interface {
	Decoder
	Encoder
}

// Registry for formats by key (e.g., "wav", "aiff"). Read-only formats
// such as "mp3" are registered as decoders only.
type Registry struct {
	formats  map[string]Format
	decoders map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		formats:  make(map[string]Format),
		decoders: make(map[string]Decoder),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) Register(name string, f Format) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.formats[name] = f
	r.decoders[name] = f
}

// RegisterDecoder adds a format that can only be read.
func (r *Registry) RegisterDecoder(name string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.formats, name)
	r.decoders[name] = d
}

func (r *Registry) Get(name string) (Format, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.formats[name]
	return f, ok
}

// Lookup is Get with an ErrUnknownFormat error for missing names.
func (r *Registry) Lookup(name string) (Format, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	return f, nil
}

// Names lists the registered format keys in sorted order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Sorted(maps.Keys(r.formats))
}

// LookupDecoder finds a decoder among both full and read-only formats.
func (r *Registry) LookupDecoder(name string) (Decoder, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	return d, nil
}

// DecoderNames lists every readable format key in sorted order.
func (r *Registry) DecoderNames() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Sorted(maps.Keys(r.decoders))
}
