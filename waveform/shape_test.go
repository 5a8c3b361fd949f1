package waveform

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/oscillation/wavetable"
)

func TestParseShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"sine", ShapeSine, false},
		{"Triangle", ShapeTriangle, false},
		{" SAWTOOTH ", ShapeSawtooth, false},
		{"saw", ShapeSawtooth, false},
		{"square", ShapeSquare, false},
		{"noise", ShapeNoise, false},
		{"rounded-triangle", ShapeRoundedTriangle, false},
		{"rounded_triangle", ShapeRoundedTriangle, false},
		{"3", ShapeSquare, false},
		{"5", ShapeRoundedTriangle, false},
		{"6", 0, true},
		{"-1", 0, true},
		{"pulse", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseShape(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownShape) {
					t.Fatalf("ParseShape(%q) error = %v, want ErrUnknownShape", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShape(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestShape_TextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range Shapes() {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error: %v", s, err)
		}

		var back Shape
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != s {
			t.Errorf("round trip %v -> %q -> %v", s, text, back)
		}
	}
}

func TestShape_Invalid(t *testing.T) {
	t.Parallel()

	s := Shape(42)
	if s.Valid() {
		t.Error("Shape(42).Valid() = true")
	}
	if got := s.String(); got != "Shape(42)" {
		t.Errorf("String() = %q", got)
	}
	if _, err := s.MarshalText(); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("MarshalText() error = %v", err)
	}
	if _, err := ShapeFromIndex(6); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("ShapeFromIndex(6) error = %v", err)
	}
	if got, err := ShapeFromIndex(5); err != nil || got != ShapeRoundedTriangle {
		t.Errorf("ShapeFromIndex(5) = %v, %v", got, err)
	}

	b := NewBuiltin[float64](s)
	if b.Sample(1) != 0 || b.SampleDutyCycle(1, 0.3) != 0 {
		t.Error("invalid builtin is not silent")
	}
	if b.Harmonics(wavetable.New[float64](4)) {
		t.Error("invalid builtin reported harmonics")
	}
}

func TestBuiltin_MatchesConcrete(t *testing.T) {
	t.Parallel()

	concrete := map[Shape]Waveform[float64]{
		ShapeSine:            Sine[float64]{},
		ShapeTriangle:        Triangle[float64]{},
		ShapeSawtooth:        Sawtooth[float64]{},
		ShapeSquare:          Square[float64]{},
		ShapeRoundedTriangle: RoundedTriangle[float64]{},
	}

	for s, w := range concrete {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			b := NewBuiltin[float64](s)
			for _, theta := range []float64{0.3, 1.7, 4.1} {
				if got, want := b.Sample(theta), w.Sample(theta); got != want {
					t.Errorf("Sample(%v) = %v, want %v", theta, got, want)
				}
				if got, want := b.SampleDutyCycle(theta, 0.3), w.SampleDutyCycle(theta, 0.3); got != want {
					t.Errorf("SampleDutyCycle(%v) = %v, want %v", theta, got, want)
				}
			}

			t1, t2 := wavetable.New[float64](8), wavetable.New[float64](8)
			if b.HarmonicsDutyCycle(t1, 0.3) != w.HarmonicsDutyCycle(t2, 0.3) {
				t.Fatal("HarmonicsDutyCycle disagreement")
			}
			for n := 1; n <= 8; n++ {
				p, q := t1.Harmonic(n), t2.Harmonic(n)
				if math.Abs(p.A-q.A) > 0 || math.Abs(p.B-q.B) > 0 {
					t.Errorf("harmonic %d = %+v, want %+v", n, p, q)
				}
			}
		})
	}
}
