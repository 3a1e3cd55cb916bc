// Package arb finds risk-free arbitrage across books and splits stakes.
package arb

import (
	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
	"github.com/cwhitmer/sportsbets/internal/pkg/oddsmath"
)

// BestForSide returns the highest American price quoted for one side of the
// event across all tracked books, and which book offers it. American prices
// order naturally: any positive price beats any valid negative one, and
// closer to zero is better among negatives, so a plain numeric max is the
// right comparator.
//
// Ties go to the lexicographically smallest book identifier so the result is
// stable regardless of map iteration order. Quotes inside the degenerate
// (-101, 100) band are skipped entirely: a corrupt price must not qualify an
// event for arbitrage.
func BestForSide(row *models.EventOddsRow, side models.Side) (models.BestPrice, bool) {
	var best models.BestPrice
	found := false
	for _, book := range enums.AllBooks() {
		price, ok := row.Price(book, side)
		if !ok {
			continue
		}
		if _, err := oddsmath.ToDecimalStrict(price); err != nil {
			continue
		}
		if !found || price > best.AmericanPrice ||
			(price == best.AmericanPrice && book < best.Book) {
			best = models.BestPrice{Side: side, Book: book, AmericanPrice: price}
			found = true
		}
	}
	return best, found
}
