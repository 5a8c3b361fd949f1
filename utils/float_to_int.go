// SPDX-License-Identifier: EPL-2.0

package utils

import "github.com/ik5/oscillation/numeric"

// FullScale is the magnitude of the most negative integer sample at the
// given bit depth, 2^(bitDepth-1).
func FullScale(bitDepth int) float64 {
	return float64(int64(1) << (bitDepth - 1))
}

// FloatToPCM converts a sample in [-1, 1] to a signed integer sample of the
// given bit depth. Values outside the range are clamped. Positive full scale
// maps to 2^(bitDepth-1)-1 so it never overflows.
func FloatToPCM[F numeric.Float](x F, bitDepth int) int {
	v := numeric.Clamp(float64(x), -1, 1)
	if v != v {
		return 0
	}

	return int(v * (FullScale(bitDepth) - 1))
}

// PCMToFloat converts a signed integer sample of the given bit depth into
// [-1, 1).
func PCMToFloat(v, bitDepth int) float32 {
	return float32(float64(v) / FullScale(bitDepth))
}

func Float32ToInt16(x float32) int16 {
	return int16(FloatToPCM(x, 16))
}
