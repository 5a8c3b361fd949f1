// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/wavetable"
)

// Shape names one of the built-in waveforms. Its numeric value is stable and
// may be used as an index.
type Shape uint8

const (
	ShapeSine Shape = iota
	ShapeTriangle
	ShapeSawtooth
	ShapeSquare
	ShapeNoise
	ShapeRoundedTriangle
)

var shapeNames = [...]string{
	ShapeSine:            "sine",
	ShapeTriangle:        "triangle",
	ShapeSawtooth:        "sawtooth",
	ShapeSquare:          "square",
	ShapeNoise:           "noise",
	ShapeRoundedTriangle: "rounded-triangle",
}

// Shapes lists every built-in shape in index order.
func Shapes() []Shape {
	out := make([]Shape, len(shapeNames))
	for i := range out {
		out[i] = Shape(i)
	}

	return out
}

// ShapeFromIndex converts a numeric index into a Shape.
func ShapeFromIndex(i int) (Shape, error) {
	if i < 0 || i >= len(shapeNames) {
		return 0, fmt.Errorf("%w: index %d", ErrUnknownShape, i)
	}

	return Shape(i), nil
}

// ParseShape accepts a shape name, case-insensitively, or its decimal
// index. "rounded_triangle" and "roundedtriangle" are accepted as spellings
// of rounded-triangle.
func ParseShape(name string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if i, err := strconv.Atoi(key); err == nil {
		return ShapeFromIndex(i)
	}

	switch key {
	case "rounded_triangle", "roundedtriangle":
		return ShapeRoundedTriangle, nil
	case "saw":
		return ShapeSawtooth, nil
	}

	for i, n := range shapeNames {
		if n == key {
			return Shape(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Valid reports whether s is one of the built-in shapes.
func (s Shape) Valid() bool {
	return int(s) < len(shapeNames)
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}

	return shapeNames[s]
}

func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownShape, uint8(s))
	}

	return []byte(shapeNames[s]), nil
}

func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}

// Builtin is a Waveform selected at runtime by Shape. Noise draws from the
// global random source. An invalid shape is silent and has no harmonics.
type Builtin[F numeric.Float] struct {
	Shape Shape
}

// NewBuiltin returns the runtime-selected waveform for s.
func NewBuiltin[F numeric.Float](s Shape) Builtin[F] {
	return Builtin[F]{Shape: s}
}

func (b Builtin[F]) Sample(theta F) F {
	switch b.Shape {
	case ShapeSine:
		return Sine[F]{}.Sample(theta)
	case ShapeTriangle:
		return Triangle[F]{}.Sample(theta)
	case ShapeSawtooth:
		return Sawtooth[F]{}.Sample(theta)
	case ShapeSquare:
		return Square[F]{}.Sample(theta)
	case ShapeNoise:
		return Noise[F]{}.Sample(theta)
	case ShapeRoundedTriangle:
		return RoundedTriangle[F]{}.Sample(theta)
	}

	return 0
}

func (b Builtin[F]) SampleDutyCycle(theta, dutyCycle F) F {
	switch b.Shape {
	case ShapeSine:
		return Sine[F]{}.SampleDutyCycle(theta, dutyCycle)
	case ShapeTriangle:
		return Triangle[F]{}.SampleDutyCycle(theta, dutyCycle)
	case ShapeSawtooth:
		return Sawtooth[F]{}.SampleDutyCycle(theta, dutyCycle)
	case ShapeSquare:
		return Square[F]{}.SampleDutyCycle(theta, dutyCycle)
	case ShapeNoise:
		return Noise[F]{}.SampleDutyCycle(theta, dutyCycle)
	case ShapeRoundedTriangle:
		return RoundedTriangle[F]{}.SampleDutyCycle(theta, dutyCycle)
	}

	return 0
}

func (b Builtin[F]) Harmonics(t *wavetable.Table[F]) bool {
	switch b.Shape {
	case ShapeSine:
		return Sine[F]{}.Harmonics(t)
	case ShapeTriangle:
		return Triangle[F]{}.Harmonics(t)
	case ShapeSawtooth:
		return Sawtooth[F]{}.Harmonics(t)
	case ShapeSquare:
		return Square[F]{}.Harmonics(t)
	case ShapeNoise:
		return Noise[F]{}.Harmonics(t)
	case ShapeRoundedTriangle:
		return RoundedTriangle[F]{}.Harmonics(t)
	}

	return false
}

func (b Builtin[F]) HarmonicsDutyCycle(t *wavetable.Table[F], dutyCycle F) bool {
	switch b.Shape {
	case ShapeSine:
		return Sine[F]{}.HarmonicsDutyCycle(t, dutyCycle)
	case ShapeTriangle:
		return Triangle[F]{}.HarmonicsDutyCycle(t, dutyCycle)
	case ShapeSawtooth:
		return Sawtooth[F]{}.HarmonicsDutyCycle(t, dutyCycle)
	case ShapeSquare:
		return Square[F]{}.HarmonicsDutyCycle(t, dutyCycle)
	case ShapeNoise:
		return Noise[F]{}.HarmonicsDutyCycle(t, dutyCycle)
	case ShapeRoundedTriangle:
		return RoundedTriangle[F]{}.HarmonicsDutyCycle(t, dutyCycle)
	}

	return false
}
