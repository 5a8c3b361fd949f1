// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"math"

	"github.com/ik5/oscillation/numeric"
	"github.com/ik5/oscillation/wavetable"
)

// State is one of Direct, DirectDutyCycle, Wavetable or WavetableDutyCycle.
type State[F numeric.Float] interface {
	// Sample returns the output at phase angle theta for angular frequency
	// omega at the given sample rate.
	Sample(theta, omega, rate F) F
	// DutyCycle is the active duty cycle, 0.5 for states without one.
	DutyCycle() F
	// Table exposes the cached harmonic table when one is valid.
	Table() (wavetable.View[F], bool)

	invalidate()
	clone() State[F]
}

// harmonicLimit returns the number of harmonics of omega below the Nyquist
// limit of rate. ok is false when omega itself is not below it. The limit
// applies to |omega|: a negative frequency runs the phase backwards with the
// same band limit, so omega <= -π·rate is silent too.
func harmonicLimit[F numeric.Float](omega, rate F) (upTo float64, ok bool) {
	nyq := math.Pi * float64(rate)
	w := math.Abs(float64(omega))
	if !(nyq > w) {
		return 0, false
	}

	return math.Floor(nyq / w), true
}

type cacheStatus uint8

const (
	cacheAbsent cacheStatus = iota
	cacheFailed
	cacheValid
)

// cache is a harmonic table of fixed capacity plus whether it currently
// holds the spectrum of its owner. A nil cache has capacity 0.
type cache[F numeric.Float] struct {
	status cacheStatus
	table  *wavetable.Table[F]
}

func newCache[F numeric.Float](capacity int) *cache[F] {
	return &cache[F]{table: wavetable.New[F](capacity)}
}

func (c *cache[F]) capacity() int {
	if c == nil {
		return 0
	}

	return c.table.Cap()
}

func (c *cache[F]) reset() {
	if c != nil {
		c.status = cacheAbsent
	}
}

// fits reports whether upTo harmonics can be served from the table.
// An infinite upTo never fits.
func (c *cache[F]) fits(upTo float64) bool {
	n := c.capacity()
	return n > 0 && upTo <= float64(n)
}

// settle records the outcome of a build.
func (c *cache[F]) settle(built bool) {
	if built {
		c.status = cacheValid
		return
	}

	c.status = cacheFailed
}

func (c *cache[F]) evaluate(theta F, upTo float64) (F, bool) {
	if c.status != cacheValid {
		return 0, false
	}

	return c.table.Evaluate(theta, int(upTo))
}

func (c *cache[F]) view() (wavetable.View[F], bool) {
	if c == nil || c.status != cacheValid {
		return wavetable.View[F]{}, false
	}

	return c.table.View(), true
}

// resize returns a cache of the given capacity. A valid table survives if
// it can be truncated, a failed build stays failed.
func (c *cache[F]) resize(capacity int) *cache[F] {
	next := newCache[F](capacity)
	if c == nil {
		return next
	}

	switch c.status {
	case cacheFailed:
		next.status = cacheFailed
	case cacheValid:
		if c.table.TruncateInto(next.table) {
			next.status = cacheValid
		}
	}

	return next
}

func (c *cache[F]) clone() *cache[F] {
	if c == nil {
		return nil
	}

	return &cache[F]{
		status: c.status,
		table:  c.table.Clone(),
	}
}
