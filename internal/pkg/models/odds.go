package models

import (
	"time"

	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
)

// Side is one outcome of a head-to-head market.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
	// SideDraw is reserved for three-way markets; no current source populates it.
	SideDraw Side = "draw"
)

// Market is the bet market type. Only the head-to-head moneyline is tracked.
type Market string

const MarketMoneyline Market = "h2h"

// OddsQuote is one book's price for one side of one market at one event.
type OddsQuote struct {
	EventID       string     `json:"event_id"`
	Book          enums.Book `json:"book"`
	Side          Side       `json:"side"`
	Market        Market     `json:"market"`
	AmericanPrice int        `json:"american_price"`
	ObservedAt    time.Time  `json:"observed_at"`
}

// BookQuote holds one book's prices for both sides of an event.
// Nil price means the book did not quote that side.
type BookQuote struct {
	Home       *int      `json:"home,omitempty"`
	Away       *int      `json:"away,omitempty"`
	LastUpdate time.Time `json:"last_update"`
}

// EventOddsRow is all tracked books' quotes for one event: one row of a
// period dataset. Books that quoted nothing carry no map entry.
type EventOddsRow struct {
	EventID   string                   `json:"event_id"`
	Sport     string                   `json:"sport"`
	StartTime time.Time                `json:"start_time"`
	HomeTeam  string                   `json:"home_team"`
	AwayTeam  string                   `json:"away_team"`
	Books     map[enums.Book]BookQuote `json:"books"`
}

// SetQuote records one quote on the row, creating the book entry if needed.
// A later quote for the same (book, side) replaces the earlier one.
func (r *EventOddsRow) SetQuote(q OddsQuote) {
	if r.Books == nil {
		r.Books = make(map[enums.Book]BookQuote)
	}
	bq := r.Books[q.Book]
	price := q.AmericanPrice
	switch q.Side {
	case SideHome:
		bq.Home = &price
	case SideAway:
		bq.Away = &price
	default:
		return
	}
	if q.ObservedAt.After(bq.LastUpdate) {
		bq.LastUpdate = q.ObservedAt
	}
	r.Books[q.Book] = bq
}

// Price returns the quoted American price for (book, side), if any.
func (r *EventOddsRow) Price(book enums.Book, side Side) (int, bool) {
	bq, ok := r.Books[book]
	if !ok {
		return 0, false
	}
	var p *int
	switch side {
	case SideHome:
		p = bq.Home
	case SideAway:
		p = bq.Away
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// BestPrice is the most favorable quoted price for one side of one event
// among all tracked books. Derived on demand, never persisted.
type BestPrice struct {
	Side          Side       `json:"side"`
	Book          enums.Book `json:"book"`
	AmericanPrice int        `json:"american_price"`
}

// ArbitrageOpportunity represents a sure bet found across two books.
type ArbitrageOpportunity struct {
	EventID                 string    `json:"event_id"`
	Home                    BestPrice `json:"home"`
	Away                    BestPrice `json:"away"`
	TotalImpliedProbability float64   `json:"total_implied_probability"`
}

// StakeAllocation is the stake split that equalizes payout on both outcomes.
type StakeAllocation struct {
	HomeStake        float64 `json:"home_stake"`
	AwayStake        float64 `json:"away_stake"`
	HomeProfit       float64 `json:"home_profit"`
	AwayProfit       float64 `json:"away_profit"`
	ProfitPercentage string  `json:"profit_percentage"` // formatted, two decimals
}
