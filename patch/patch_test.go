package patch

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ik5/oscillation/oscillator"
	"github.com/ik5/oscillation/waveform"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	doc := `
shape: square
duty_cycle: 0.25
harmonics: 128
frequency: 220
phase: 1.5
`
	p, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if p.Shape != waveform.ShapeSquare {
		t.Errorf("Shape = %v, want square", p.Shape)
	}
	if p.DutyCycle == nil || *p.DutyCycle != 0.25 {
		t.Errorf("DutyCycle = %v, want 0.25", p.DutyCycle)
	}
	if p.Harmonics != 128 || p.Frequency != 220 || p.Phase != 1.5 {
		t.Errorf("got %+v", p)
	}
}

func TestLoad_NumericShape(t *testing.T) {
	t.Parallel()

	p, err := Load(strings.NewReader("shape: 5\nfrequency: 100\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Shape != waveform.ShapeRoundedTriangle {
		t.Errorf("Shape = %v, want rounded-triangle", p.Shape)
	}
	if p.DutyCycle != nil {
		t.Errorf("DutyCycle = %v, want unset", *p.DutyCycle)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown shape", "shape: pulse\nfrequency: 1\n", waveform.ErrUnknownShape},
		{"duty cycle", "shape: sine\nduty_cycle: 1.5\nfrequency: 1\n", ErrInvalidDutyCycle},
		{"negative harmonics", "shape: sine\nharmonics: -1\nfrequency: 1\n", ErrInvalidHarmonics},
		{"huge harmonics", "shape: sine\nharmonics: 1000000\nfrequency: 1\n", ErrInvalidHarmonics},
		{"infinite frequency", "shape: sine\nfrequency: .inf\n", ErrInvalidFrequency},
		{"nan phase", "shape: sine\nfrequency: 1\nphase: .nan\n", ErrInvalidPhase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Load(strings.NewReader(tt.doc)); !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	t.Parallel()

	if _, err := Load(strings.NewReader("shape: sine\nvolume: 3\n")); err == nil {
		t.Error("Load() error = nil, want error for unknown key")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	want := Patch{
		Shape:     waveform.ShapeRoundedTriangle,
		DutyCycle: DutyCycleOf(0.3),
		Harmonics: 32,
		Frequency: 110,
	}

	var buf bytes.Buffer
	if err := want.Save(&buf); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !strings.Contains(buf.String(), "shape: rounded-triangle") {
		t.Errorf("shape not stored by name:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "phase") {
		t.Errorf("zero phase should be omitted:\n%s", buf.String())
	}

	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.Shape != want.Shape || *got.DutyCycle != *want.DutyCycle ||
		got.Harmonics != want.Harmonics || got.Frequency != want.Frequency {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	want := Patch{Shape: waveform.ShapeSawtooth, Harmonics: 16, Frequency: 55, Phase: 0.5}

	var buf bytes.Buffer
	if err := want.SaveJSON(&buf); err != nil {
		t.Fatalf("SaveJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"shape": "sawtooth"`) {
		t.Errorf("shape not stored by name:\n%s", buf.String())
	}

	got, err := LoadJSON(&buf)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadJSON_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadJSON(strings.NewReader(`{"shape":"sine","frequency":1,"gain":2}`)); err == nil {
		t.Error("LoadJSON() accepted an unknown key")
	}

	_, err := LoadJSON(strings.NewReader(`{"shape":"sine","duty_cycle":-0.1,"frequency":1}`))
	if !errors.Is(err, ErrInvalidDutyCycle) {
		t.Errorf("LoadJSON() error = %v, want ErrInvalidDutyCycle", err)
	}
}

func TestSave_Invalid(t *testing.T) {
	t.Parallel()

	p := Patch{Shape: waveform.Shape(42)}
	if err := p.Save(&bytes.Buffer{}); !errors.Is(err, waveform.ErrUnknownShape) {
		t.Errorf("Save() error = %v, want ErrUnknownShape", err)
	}
	if err := p.SaveJSON(&bytes.Buffer{}); !errors.Is(err, waveform.ErrUnknownShape) {
		t.Errorf("SaveJSON() error = %v, want ErrUnknownShape", err)
	}
}

func TestPatch_State(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		patch     Patch
		wantTable bool
		wantDuty  float64
	}{
		{"direct", Patch{Shape: waveform.ShapeSquare}, false, 0.5},
		{"direct duty", Patch{Shape: waveform.ShapeSquare, DutyCycle: DutyCycleOf(0.2)}, false, 0.2},
		{"wavetable", Patch{Shape: waveform.ShapeSquare, Harmonics: 8}, true, 0.5},
		{"wavetable duty", Patch{Shape: waveform.ShapeSquare, DutyCycle: DutyCycleOf(0.2), Harmonics: 8}, true, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := tt.patch.State()
			if got := state.DutyCycle(); got != tt.wantDuty {
				t.Errorf("DutyCycle() = %v, want %v", got, tt.wantDuty)
			}

			switch state.(type) {
			case oscillator.Wavetable[float64, waveform.Builtin[float64]],
				oscillator.WavetableDutyCycle[float64, waveform.Builtin[float64]]:
				if !tt.wantTable {
					t.Errorf("State() = %T, want a direct state", state)
				}
			default:
				if tt.wantTable {
					t.Errorf("State() = %T, want a wavetable state", state)
				}
			}
		})
	}
}

func TestPatch_Oscillator(t *testing.T) {
	t.Parallel()

	// A 1 Hz square at rate 8 with a table: harmonics up to 4 fit.
	p := Patch{Shape: waveform.ShapeSquare, Harmonics: 8, Frequency: 1}
	osc := p.Oscillator()

	if osc.Omega != 2*math.Pi {
		t.Errorf("Omega = %v, want 2π", osc.Omega)
	}

	got := osc.Next(8)
	want := -4 / math.Pi * (math.Sin(math.Pi/4) + math.Sin(3*math.Pi/4)/3)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Next() = %v, want %v", got, want)
	}

	if _, ok := osc.Table(); !ok {
		t.Error("Table() ok = false after sampling below Nyquist")
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}
