// SPDX-License-Identifier: EPL-2.0

// Package cli holds the flag handling shared by the example commands.
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/oscillation/patch"
	"github.com/ik5/oscillation/waveform"
)

// PatchFlags describes an oscillator on the command line, either through a
// patch file or through individual flags.
type PatchFlags struct {
	File      string
	Shape     string
	Frequency float64
	DutyCycle float64
	Harmonics int
	Phase     float64
}

// Register adds the patch flags to fs.
func (f *PatchFlags) Register(fs *flag.FlagSet) {
	def := patch.Default()

	fs.StringVar(&f.File, "patch", "", "patch file (.yaml, .yml or .json); overrides the other oscillator flags")
	fs.StringVar(&f.Shape, "shape", def.Shape.String(), "waveform: "+shapeList())
	fs.Float64Var(&f.Frequency, "freq", def.Frequency, "frequency in Hz")
	fs.Float64Var(&f.DutyCycle, "duty", -1, "duty cycle in [0, 1]; negative disables duty cycle support")
	fs.IntVar(&f.Harmonics, "harmonics", def.Harmonics, "harmonic table capacity, 0 for direct evaluation")
	fs.Float64Var(&f.Phase, "phase", 0, "phase offset in radians")
}

// Patch loads the patch file when one was given, otherwise it builds a
// patch from the flags.
func (f *PatchFlags) Patch() (patch.Patch, error) {
	if f.File != "" {
		return loadFile(f.File)
	}

	shape, err := waveform.ParseShape(f.Shape)
	if err != nil {
		return patch.Patch{}, err
	}

	p := patch.Patch{
		Shape:     shape,
		Harmonics: f.Harmonics,
		Frequency: f.Frequency,
		Phase:     f.Phase,
	}
	if f.DutyCycle >= 0 {
		p.DutyCycle = patch.DutyCycleOf(f.DutyCycle)
	}

	if err := p.Validate(); err != nil {
		return patch.Patch{}, err
	}

	return p, nil
}

func loadFile(path string) (patch.Patch, error) {
	file, err := os.Open(path)
	if err != nil {
		return patch.Patch{}, err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return patch.LoadJSON(file)
	}

	return patch.Load(file)
}

func shapeList() string {
	names := make([]string, 0, len(waveform.Shapes()))
	for _, s := range waveform.Shapes() {
		names = append(names, s.String())
	}

	return strings.Join(names, ", ")
}

// FormatName returns the lowercase extension of path without the dot.
func FormatName(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Fatalf prints to stderr and exits with status 1.
func Fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
