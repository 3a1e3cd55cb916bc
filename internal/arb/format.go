package arb

import (
	"fmt"
	"strings"

	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

// formatAmerican renders an American price with its conventional sign.
func formatAmerican(price int) string {
	if price > 0 {
		return fmt.Sprintf("+%d", price)
	}
	return fmt.Sprintf("%d", price)
}

// FormatAlert builds the notification text for a detected sure bet.
func FormatAlert(row *models.EventOddsRow, opp models.ArbitrageOpportunity, alloc models.StakeAllocation) string {
	var sb strings.Builder
	sb.WriteString("SURE BET DETECTED\n\n")
	sb.WriteString(fmt.Sprintf("%s vs %s\n", row.HomeTeam, row.AwayTeam))
	if !row.StartTime.IsZero() {
		sb.WriteString(fmt.Sprintf("Starts: %s\n", row.StartTime.Format("Mon Jan 2 15:04 MST")))
	}
	sb.WriteString(fmt.Sprintf("\nBet %.2f on %s (home) at %s [%s]\n",
		alloc.HomeStake, row.HomeTeam, formatAmerican(opp.Home.AmericanPrice), opp.Home.Book))
	sb.WriteString(fmt.Sprintf("Bet %.2f on %s (away) at %s [%s]\n",
		alloc.AwayStake, row.AwayTeam, formatAmerican(opp.Away.AmericanPrice), opp.Away.Book))
	sb.WriteString(fmt.Sprintf("\nGuaranteed profit: %.2f (%s)\n", alloc.HomeProfit, alloc.ProfitPercentage))
	sb.WriteString(fmt.Sprintf("Implied probability total: %.4f", opp.TotalImpliedProbability))
	return sb.String()
}
