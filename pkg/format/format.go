package format

import (
	"math"

	"github.com/shopspring/decimal"
)

// EPS is the tolerance below which an amount counts as zero for display.
const EPS = 1e-12

// finalDust is the threshold under which final balances print as "0.0000".
const finalDust = 1e-6

// Minus is the glyph used for negative signed amounts (U+2212, not the
// ASCII hyphen). Swap lines and signed balances render with it.
const Minus = "−"

// Trim renders v as a plain decimal string: never scientific notation, no
// trailing fraction zeros, and no bare "." or "-0" forms. Non-finite
// values and magnitudes below EPS collapse to "0". Balances must
// round-trip exactly as pasted, so nothing is rounded here.
func Trim(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if math.Abs(v) < EPS {
		return "0"
	}
	return decimal.NewFromFloat(v).String()
}

// Round12 rounds v to 12 decimal places, the precision summary tables
// carry. Non-finite values collapse to 0.
func Round12(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	out, _ := decimal.NewFromFloat(v).Round(12).Float64()
	return out
}

// Signed prefixes the trimmed absolute value with "+" for non-negative
// values or the minus glyph otherwise.
func Signed(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if v >= 0 {
		return "+" + Trim(v)
	}
	return Minus + Trim(-v)
}

// Abs renders the magnitude of v.
func Abs(v float64) string {
	return Trim(math.Abs(v))
}

// Money renders v with exactly two decimals and an asset label. Only
// strictly positive values carry a leading "+".
func Money(v float64, asset string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	s := decimal.NewFromFloat(v).StringFixed(2)
	if v > 0 {
		s = "+" + s
	}
	return s + " " + asset
}

// Final renders a final expected balance. Near-zero dust shows as
// "0.0000" rather than an exact tiny remainder.
func Final(v float64) string {
	if math.Abs(v) < finalDust {
		return "0.0000"
	}
	return Trim(v)
}

// NonZero reports whether v is meaningfully non-zero.
func NonZero(v float64) bool {
	return math.Abs(v) > EPS
}
