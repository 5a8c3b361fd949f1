// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	// ErrUnknownShape indicates a shape name or index outside the built-in set
	ErrUnknownShape = errors.New("unknown waveform shape")
)
