// Package oddsmath converts between American and decimal odds conventions.
package oddsmath

import (
	"errors"
	"math"
)

// ErrDegeneratePrice marks an American price inside (-101, 100), which has no
// decimal-odds interpretation under the standard convention.
var ErrDegeneratePrice = errors.New("american price inside (-101, 100) has no odds interpretation")

// ToDecimal converts an American price to decimal odds.
// A non-integer input is assumed to already be decimal odds and is returned
// unchanged, so mixed-format inputs pass through safely.
// Integers inside (-101, 100) are a degenerate input: the raw value is
// returned as-is. Callers that must not see such values should use
// ToDecimalStrict instead.
func ToDecimal(price float64) float64 {
	if price != math.Trunc(price) {
		return price
	}
	if price >= 100 {
		return 1 + price/100
	}
	if price <= -101 {
		return 100/-price + 1
	}
	return price
}

// ToDecimalStrict converts an American price to decimal odds, rejecting
// degenerate values so corrupt quotes cannot masquerade as real prices.
func ToDecimalStrict(price int) (float64, error) {
	switch {
	case price >= 100:
		return 1 + float64(price)/100, nil
	case price <= -101:
		return 100/float64(-price) + 1, nil
	default:
		return 0, ErrDegeneratePrice
	}
}

// ImpliedProbability returns 1/decimal for valid decimal odds.
// Decimal odds below 1 yield a probability above 1, which downstream
// arbitrage checks treat as "no opportunity".
func ImpliedProbability(decimal float64) float64 {
	if decimal == 0 {
		return math.Inf(1)
	}
	return 1 / decimal
}
