package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundCents rounds a monetary value to 2 decimal places using
// round-half-away-from-zero. Non-finite values round to 0.
func RoundCents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// SafeAmount normalizes a raw monetary input: NaN, infinities, and
// negatives all become 0 so downstream aggregation never produces NaN.
func SafeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ClampFloat bounds v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloatPtr returns a pointer to v. Convenience for optional fields.
func FloatPtr(v float64) *float64 {
	return &v
}
