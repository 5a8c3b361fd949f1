// SPDX-License-Identifier: EPL-2.0

// Package patch stores oscillator parameters as YAML or JSON documents.
//
// A patch records which waveform to play and how, never the harmonic table
// itself: tables are rebuilt by the oscillator on demand.
//
//	shape: square
//	duty_cycle: 0.25
//	harmonics: 128
//	frequency: 220
package patch

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/ik5/oscillation/oscillator"
	"github.com/ik5/oscillation/waveform"
)

// MaxHarmonics bounds the table capacity a patch may request.
const MaxHarmonics = 1 << 16

// Patch describes one oscillator.
type Patch struct {
	Shape waveform.Shape `yaml:"shape" json:"shape"`
	// DutyCycle enables duty cycle support when set.
	DutyCycle *float64 `yaml:"duty_cycle,omitempty" json:"duty_cycle,omitempty"`
	// Harmonics is the table capacity. Zero evaluates the waveform directly.
	Harmonics int `yaml:"harmonics,omitempty" json:"harmonics,omitempty"`
	// Frequency in Hz.
	Frequency float64 `yaml:"frequency" json:"frequency"`
	// Phase offset in radians.
	Phase float64 `yaml:"phase,omitempty" json:"phase,omitempty"`
}

// Default is a 440 Hz sine with a 64 harmonic table.
func Default() Patch {
	return Patch{
		Shape:     waveform.ShapeSine,
		Harmonics: 64,
		Frequency: 440,
	}
}

// DutyCycleOf returns a pointer to d, for filling Patch.DutyCycle.
func DutyCycleOf(d float64) *float64 {
	return &d
}

func (p Patch) Validate() error {
	if !p.Shape.Valid() {
		return fmt.Errorf("%w: index %d", waveform.ErrUnknownShape, uint8(p.Shape))
	}

	if p.DutyCycle != nil {
		d := *p.DutyCycle
		if !(d >= 0 && d <= 1) {
			return fmt.Errorf("%w: %v", ErrInvalidDutyCycle, d)
		}
	}

	if p.Harmonics < 0 || p.Harmonics > MaxHarmonics {
		return fmt.Errorf("%w: %d", ErrInvalidHarmonics, p.Harmonics)
	}

	if math.IsNaN(p.Frequency) || math.IsInf(p.Frequency, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, p.Frequency)
	}

	if math.IsNaN(p.Phase) || math.IsInf(p.Phase, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPhase, p.Phase)
	}

	return nil
}

// State builds the oscillator state the patch describes.
func (p Patch) State() oscillator.State[float64] {
	w := waveform.NewBuiltin[float64](p.Shape)

	switch {
	case p.Harmonics == 0 && p.DutyCycle == nil:
		return oscillator.NewDirect[float64](w)
	case p.Harmonics == 0:
		return oscillator.NewDirectDutyCycle(w, *p.DutyCycle)
	case p.DutyCycle == nil:
		return oscillator.NewWavetable[float64](w, p.Harmonics)
	default:
		return oscillator.NewWavetableDutyCycle(w, *p.DutyCycle, p.Harmonics)
	}
}

// AngularFrequency is Frequency in radians per second.
func (p Patch) AngularFrequency() float64 {
	return 2 * math.Pi * p.Frequency
}

// Oscillator returns a new oscillator playing the patch.
func (p Patch) Oscillator() *oscillator.Oscillator[float64, oscillator.State[float64]] {
	return oscillator.New[float64, oscillator.State[float64]](p.State(), p.AngularFrequency(), p.Phase)
}

// Load decodes and validates a YAML patch. Unknown keys are rejected.
func Load(r io.Reader) (Patch, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Patch
	if err := dec.Decode(&p); err != nil {
		return Patch{}, fmt.Errorf("decoding patch: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Patch{}, fmt.Errorf("invalid patch: %w", err)
	}

	return p, nil
}

// Save writes p as YAML.
func (p Patch) Save(w io.Writer) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid patch: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding patch: %w", err)
	}

	return enc.Close()
}

// LoadJSON decodes and validates a JSON patch. Unknown keys are rejected.
func LoadJSON(r io.Reader) (Patch, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var p Patch
	if err := dec.Decode(&p); err != nil {
		return Patch{}, fmt.Errorf("decoding patch: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Patch{}, fmt.Errorf("invalid patch: %w", err)
	}

	return p, nil
}

// SaveJSON writes p as indented JSON.
func (p Patch) SaveJSON(w io.Writer) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid patch: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding patch: %w", err)
	}

	return nil
}
