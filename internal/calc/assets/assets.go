// Package assets implements the per-property-type analyzers: descriptive,
// heuristic-scored sub-reports built from the optional nested tenant, unit
// and component records. Analyzers are independent of each other and return
// nil when their input array is absent or empty.
package assets

import (
	"math"
	"time"
)

// yearsUntil returns the fractional years from asOf to t, floored at zero
// for already-expired leases.
func yearsUntil(asOf, t time.Time) float64 {
	y := t.Sub(asOf).Hours() / 24 / 365.25
	if y < 0 {
		return 0
	}
	return y
}

// herfindahl returns the sum of squared shares of the given weights, the
// standard concentration index: 1/n for perfectly even, 1.0 for a single
// dominant entry.
func herfindahl(weights []float64) float64 {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	hhi := 0.0
	for _, w := range weights {
		if w > 0 {
			share := w / total
			hhi += share * share
		}
	}
	return hhi
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
