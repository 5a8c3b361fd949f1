// SPDX-License-Identifier: EPL-2.0

package patch

import "errors"

var (
	ErrInvalidDutyCycle = errors.New("duty cycle must be within [0, 1]")
	ErrInvalidHarmonics = errors.New("harmonic count out of range")
	ErrInvalidFrequency = errors.New("frequency must be finite")
	ErrInvalidPhase     = errors.New("phase must be finite")
)
