// SPDX-License-Identifier: EPL-2.0

package waveform

import "math"

const (
	besselRescale = 1e250
	besselShrink  = 1e-250
)

// besselI stores the modified Bessel functions of the first kind Iₖ(x) in
// dst[k] for k = 0..len(dst)-1.
//
// Miller's algorithm: recur downwards from an order well above both
// len(dst) and |x|, then normalise with e^{|x|} = I₀ + 2·Σ Iₖ.
func besselI(x float64, dst []float64) {
	clear(dst)
	if len(dst) == 0 {
		return
	}
	if x == 0 {
		dst[0] = 1
		return
	}

	ax := math.Abs(x)
	n := len(dst) - 1
	top := max(n, int(math.Ceil(ax)))
	start := top + 16 + int(math.Sqrt(40*float64(top)))

	// above is I_{k+1}, at is I_k; both unnormalised.
	above, at := 0.0, 1.0
	sum := 0.0
	for k := start; k >= 1; k-- {
		if k <= n {
			dst[k] = at
		}
		sum += at

		above, at = at, above+2*float64(k)/ax*at

		if at > besselRescale {
			above *= besselShrink
			at *= besselShrink
			sum *= besselShrink
			for i := k; i <= n; i++ {
				dst[i] *= besselShrink
			}
		}
	}
	dst[0] = at

	norm := math.Exp(ax) / (at + 2*sum)
	for i := range dst {
		dst[i] *= norm
	}

	// Iₖ(−x) = (−1)^k·Iₖ(x)
	if x < 0 {
		for i := 1; i < len(dst); i += 2 {
			dst[i] = -dst[i]
		}
	}
}
