package arb

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

func quote(book enums.Book, side models.Side, price int) models.OddsQuote {
	return models.OddsQuote{
		EventID:       "ev1",
		Book:          book,
		Side:          side,
		Market:        models.MarketMoneyline,
		AmericanPrice: price,
		ObservedAt:    time.Date(2023, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestBestForSideCrossesZero(t *testing.T) {
	row := &models.EventOddsRow{EventID: "ev1"}
	row.SetQuote(quote(enums.DraftKings, models.SideHome, -110))
	row.SetQuote(quote(enums.FanDuel, models.SideHome, 105))

	best, ok := BestForSide(row, models.SideHome)
	if !ok {
		t.Fatal("expected a best price")
	}
	if best.Book != enums.FanDuel || best.AmericanPrice != 105 {
		t.Errorf("got %s %d, want fanduel +105", best.Book, best.AmericanPrice)
	}
}

func TestBestForSideNoQuotes(t *testing.T) {
	row := &models.EventOddsRow{EventID: "ev1"}
	row.SetQuote(quote(enums.DraftKings, models.SideHome, -110))
	if _, ok := BestForSide(row, models.SideAway); ok {
		t.Error("away side has no quotes, expected ok=false")
	}
}

func TestBestForSideSkipsDegeneratePrices(t *testing.T) {
	row := &models.EventOddsRow{EventID: "ev1"}
	row.SetQuote(quote(enums.Bovada, models.SideHome, 5)) // corrupt quote
	row.SetQuote(quote(enums.DraftKings, models.SideHome, -120))

	best, ok := BestForSide(row, models.SideHome)
	if !ok {
		t.Fatal("expected a best price")
	}
	if best.Book != enums.DraftKings || best.AmericanPrice != -120 {
		t.Errorf("degenerate quote won: got %s %d", best.Book, best.AmericanPrice)
	}
}

func TestBestForSideTieBreak(t *testing.T) {
	row := &models.EventOddsRow{EventID: "ev1"}
	row.SetQuote(quote(enums.WynnBet, models.SideHome, 110))
	row.SetQuote(quote(enums.Barstool, models.SideHome, 110))

	best, _ := BestForSide(row, models.SideHome)
	if best.Book != enums.Barstool {
		t.Errorf("tie must go to lexicographically smallest book, got %s", best.Book)
	}

	// barstool sorts before bet_online even though the column order has
	// BetOnline first.
	row2 := &models.EventOddsRow{EventID: "ev1"}
	row2.SetQuote(quote(enums.BetOnline, models.SideHome, -105))
	row2.SetQuote(quote(enums.Barstool, models.SideHome, -105))
	if best, _ := BestForSide(row2, models.SideHome); best.Book != enums.Barstool {
		t.Errorf("tie-break must compare identifiers, not column order, got %s", best.Book)
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name       string
		home, away int
		want       bool
	}{
		{"typical vig market", 120, -150, false}, // 0.4545 + 0.6000 > 1
		{"clear arbitrage", 150, 140, true},      // 0.4 + 0.4167 < 1
		{"break-even is not an opportunity", 100, 100, false},
		{"both favorites", -110, -110, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			home := models.BestPrice{Side: models.SideHome, AmericanPrice: c.home}
			away := models.BestPrice{Side: models.SideAway, AmericanPrice: c.away}
			if got := Detect(home, away); got != c.want {
				t.Errorf("Detect(%+d, %+d) = %v, want %v", c.home, c.away, got, c.want)
			}
		})
	}
}

func TestDetectOutcomesRequiresTwo(t *testing.T) {
	if DetectOutcomes([]models.BestPrice{{AmericanPrice: 500}}) {
		t.Error("single outcome cannot be an arbitrage")
	}
	three := []models.BestPrice{
		{AmericanPrice: 250},
		{AmericanPrice: 280},
		{AmericanPrice: 300},
	}
	// 1/3.5 + 1/3.8 + 1/4.0 = 0.7988... < 1
	if !DetectOutcomes(three) {
		t.Error("three-way arbitrage not detected")
	}
}

func TestAllocate(t *testing.T) {
	// +150 / +140: decimals 2.5 and 2.4.
	alloc, err := Allocate(150, 140, 1000)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if math.Abs(alloc.AwayStake-510.20) > 0.01 {
		t.Errorf("away stake = %.2f, want 510.20", alloc.AwayStake)
	}
	if math.Abs(alloc.HomeStake-489.80) > 0.01 {
		t.Errorf("home stake = %.2f, want 489.80", alloc.HomeStake)
	}
	if math.Abs(alloc.HomeProfit-224.49) > 0.01 {
		t.Errorf("home profit = %.2f, want 224.49", alloc.HomeProfit)
	}
	if math.Abs(alloc.HomeProfit-alloc.AwayProfit) > 0.01 {
		t.Errorf("profits differ: home %.2f away %.2f", alloc.HomeProfit, alloc.AwayProfit)
	}
	if alloc.ProfitPercentage != "22.45%" {
		t.Errorf("profit percentage = %q, want 22.45%%", alloc.ProfitPercentage)
	}
}

func TestAllocateStakesSumToTotal(t *testing.T) {
	alloc, err := Allocate(105, -102, 250)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if math.Abs(alloc.HomeStake+alloc.AwayStake-250) > 0.011 {
		t.Errorf("stakes %.2f + %.2f do not sum to 250", alloc.HomeStake, alloc.AwayStake)
	}
}

func TestAllocateInvalidStake(t *testing.T) {
	for _, s := range []float64{0, -10} {
		if _, err := Allocate(150, 140, s); !errors.Is(err, ErrInvalidStake) {
			t.Errorf("Allocate(stake=%v): expected ErrInvalidStake, got %v", s, err)
		}
	}
}

func TestFindOpportunity(t *testing.T) {
	row := &models.EventOddsRow{EventID: "ev1", HomeTeam: "Cubs", AwayTeam: "Mets"}
	row.SetQuote(quote(enums.DraftKings, models.SideHome, 150))
	row.SetQuote(quote(enums.FanDuel, models.SideAway, 140))
	row.SetQuote(quote(enums.Bovada, models.SideAway, -200))

	opp, ok := FindOpportunity(row)
	if !ok {
		t.Fatal("expected an opportunity")
	}
	if opp.Home.Book != enums.DraftKings || opp.Away.Book != enums.FanDuel {
		t.Errorf("books: home %s away %s", opp.Home.Book, opp.Away.Book)
	}
	if math.Abs(opp.TotalImpliedProbability-(1/2.5+1/2.4)) > 1e-9 {
		t.Errorf("total implied = %v", opp.TotalImpliedProbability)
	}

	// Removing the away side entirely kills the evaluation.
	bare := &models.EventOddsRow{EventID: "ev2"}
	bare.SetQuote(quote(enums.DraftKings, models.SideHome, 150))
	if _, ok := FindOpportunity(bare); ok {
		t.Error("one-sided row must not produce an opportunity")
	}
}

func TestFormatAlert(t *testing.T) {
	row := &models.EventOddsRow{
		EventID:   "ev1",
		HomeTeam:  "Cubs",
		AwayTeam:  "Mets",
		StartTime: time.Date(2023, 3, 10, 18, 0, 0, 0, time.UTC),
	}
	row.SetQuote(quote(enums.DraftKings, models.SideHome, 150))
	row.SetQuote(quote(enums.FanDuel, models.SideAway, 140))

	opp, ok := FindOpportunity(row)
	if !ok {
		t.Fatal("expected an opportunity")
	}
	alloc, err := Allocate(opp.Home.AmericanPrice, opp.Away.AmericanPrice, 1000)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	msg := FormatAlert(row, opp, alloc)
	for _, want := range []string{"Cubs", "Mets", "+150", "+140", "draftkings", "fanduel", "22.45%"} {
		if !strings.Contains(msg, want) {
			t.Errorf("alert missing %q:\n%s", want, msg)
		}
	}
}
