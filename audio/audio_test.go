package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/oscillation/internal/audiotest"
)

// mockFormat decodes to silence and counts encoded samples.
type mockFormat struct {
	name    string
	encoded int
}

func (f *mockFormat) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func (f *mockFormat) Encode(_ io.WriteSeeker, src Source) error {
	buf := make([]float32, 256)
	for {
		n, err := src.ReadSamples(buf)
		f.encoded += n
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	format := &mockFormat{name: "wav"}

	registry.Register("wav", format)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered format")
	}

	if got != format {
		t.Error("Registry.Get() returned different format instance")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("aiff", &mockFormat{name: "aiff"})

	if _, err := registry.Lookup("aiff"); err != nil {
		t.Errorf("Lookup(aiff) error = %v", err)
	}

	_, err := registry.Lookup("flac")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Lookup(flac) error = %v, want ErrUnknownFormat", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, name := range []string{"wav", "aiff", "raw"} {
		registry.Register(name, &mockFormat{name: name})
	}
	registry.Register("wav", &mockFormat{name: "wav"})

	if got, want := registry.Names(), []string{"aiff", "raw", "wav"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockFormat{name: "first"}
	second := &mockFormat{name: "second"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != second {
		t.Error("Registry.Get() did not return the overwritten format")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	format := &mockFormat{name: "test"}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("format", format)
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Get("format")
		}()
	}
	wg.Wait()

	got, ok := registry.Get("format")
	if !ok || got != format {
		t.Error("Registry lost the format after concurrent operations")
	}
}

func TestRegistry_EncodeThroughInterface(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	format := &mockFormat{name: "raw"}
	registry.Register("raw", format)

	f, _ := registry.Get("raw")
	if err := f.Encode(audiotest.NewBuffer(nil), audiotest.NewSilentSource(8000, 2, 300)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if format.encoded != 600 {
		t.Errorf("encoded %d samples, want 600", format.encoded)
	}
}

// decodeOnly reads silence and has no encoder.
type decodeOnly struct{}

func (decodeOnly) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(22050, 1, 10), nil
}

func TestRegistry_RegisterDecoder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockFormat{name: "wav"})
	registry.RegisterDecoder("mp3", decodeOnly{})

	d, err := registry.LookupDecoder("mp3")
	if err != nil {
		t.Fatalf("LookupDecoder(mp3) error = %v", err)
	}
	src, err := d.Decode(nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}

	if _, err := registry.LookupDecoder("wav"); err != nil {
		t.Errorf("LookupDecoder(wav) error = %v", err)
	}
	if _, err := registry.Lookup("mp3"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Lookup(mp3) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := registry.LookupDecoder("flac"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LookupDecoder(flac) error = %v, want ErrUnknownFormat", err)
	}

	if got, want := registry.Names(), []string{"wav"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if got, want := registry.DecoderNames(), []string{"mp3", "wav"}; !slices.Equal(got, want) {
		t.Errorf("DecoderNames() = %v, want %v", got, want)
	}
}

func TestRegistry_RegisterDecoderReplacesFormat(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("raw", &mockFormat{name: "raw"})
	registry.RegisterDecoder("raw", decodeOnly{})

	if _, ok := registry.Get("raw"); ok {
		t.Error("Get(raw) still returns a writable format")
	}
	if _, err := registry.LookupDecoder("raw"); err != nil {
		t.Errorf("LookupDecoder(raw) error = %v", err)
	}
}

// BenchmarkRegistry_Get benchmarks retrieving formats
func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockFormat{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}
