package arb

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwhitmer/sportsbets/internal/pkg/models"
	"github.com/cwhitmer/sportsbets/internal/pkg/oddsmath"
)

var (
	// ErrInvalidStake is returned for a non-positive total stake.
	ErrInvalidStake = errors.New("total stake must be positive")
	// ErrUnequalPayout is returned when the computed split fails the
	// equal-payout cross-check. Unreachable for valid decimal odds.
	ErrUnequalPayout = errors.New("allocation does not equalize payouts")
)

// profitTolerance is the currency-rounding slack allowed between the two
// sides' guaranteed profits.
const profitTolerance = 0.01

// roundCents rounds a currency amount to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Allocate splits totalStake across the home and away best prices so that
// the payout is identical whichever side wins.
//
// With decimal odds dh, da the equal-payout constraint dh*x == da*y together
// with x+y == S has the closed form y = S*dh/(dh+da), x = S-y.
func Allocate(homePrice, awayPrice int, totalStake float64) (models.StakeAllocation, error) {
	if totalStake <= 0 {
		return models.StakeAllocation{}, fmt.Errorf("%w: %v", ErrInvalidStake, totalStake)
	}
	dh := oddsmath.ToDecimal(float64(homePrice))
	da := oddsmath.ToDecimal(float64(awayPrice))
	if dh+da == 0 {
		// Unreachable for real decimal odds (always >= 1), but never divide
		// by zero regardless of what upstream fed us.
		return models.StakeAllocation{}, fmt.Errorf("%w: zero combined odds", ErrUnequalPayout)
	}

	awayStake := totalStake * dh / (dh + da)
	homeStake := totalStake - awayStake

	homeProfit := dh*homeStake - totalStake
	awayProfit := da*awayStake - totalStake
	if math.IsNaN(homeProfit) || math.IsNaN(awayProfit) {
		return models.StakeAllocation{}, fmt.Errorf("%w: non-finite profit", ErrUnequalPayout)
	}
	// Both profits are equal by construction; anything beyond rounding noise
	// means the inputs were not real odds.
	if math.Abs(homeProfit-awayProfit) > profitTolerance {
		return models.StakeAllocation{}, fmt.Errorf("%w: home %.4f vs away %.4f", ErrUnequalPayout, homeProfit, awayProfit)
	}

	profitPct := homeProfit / totalStake * 100
	return models.StakeAllocation{
		HomeStake:        roundCents(homeStake),
		AwayStake:        roundCents(awayStake),
		HomeProfit:       roundCents(homeProfit),
		AwayProfit:       roundCents(awayProfit),
		ProfitPercentage: fmt.Sprintf("%.2f%%", profitPct),
	}, nil
}
