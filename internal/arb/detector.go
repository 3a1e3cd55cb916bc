package arb

import (
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
	"github.com/cwhitmer/sportsbets/internal/pkg/oddsmath"
)

// TotalImplied sums the implied probabilities of the given best prices.
func TotalImplied(prices ...models.BestPrice) float64 {
	total := 0.0
	for _, p := range prices {
		total += oddsmath.ImpliedProbability(oddsmath.ToDecimal(float64(p.AmericanPrice)))
	}
	return total
}

// Detect reports whether betting both sides at their best prices locks in a
// profit. Callers must only invoke it when both sides have a quoted price.
// A break-even market (sum exactly 1) is not an opportunity.
func Detect(home, away models.BestPrice) bool {
	return TotalImplied(home, away) < 1
}

// DetectOutcomes generalizes Detect to markets with two or more mutually
// exclusive outcomes (e.g. three-way with a draw). Every outcome must carry
// a best price.
func DetectOutcomes(prices []models.BestPrice) bool {
	if len(prices) < 2 {
		return false
	}
	return TotalImplied(prices...) < 1
}

// FindOpportunity computes best prices on both sides of the row and returns
// an opportunity if one exists. Rows missing a price on either side are
// never opportunities.
func FindOpportunity(row *models.EventOddsRow) (models.ArbitrageOpportunity, bool) {
	home, ok := BestForSide(row, models.SideHome)
	if !ok {
		return models.ArbitrageOpportunity{}, false
	}
	away, ok := BestForSide(row, models.SideAway)
	if !ok {
		return models.ArbitrageOpportunity{}, false
	}
	if !Detect(home, away) {
		return models.ArbitrageOpportunity{}, false
	}
	return models.ArbitrageOpportunity{
		EventID:                 row.EventID,
		Home:                    home,
		Away:                    away,
		TotalImpliedProbability: TotalImplied(home, away),
	}, true
}
