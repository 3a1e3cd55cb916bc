package betrivers

import (
	"testing"

	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

func TestConvertEvent(t *testing.T) {
	ev := Event{
		ID:    42,
		Start: "2023-03-10T18:05:00Z",
		Participants: []Participant{
			{Name: "Mets", Home: false},
			{Name: "Cubs", Home: true},
		},
		BetOffers: []BetOffer{
			{
				BetDescription: "Point Spread",
				Outcomes: []Outcome{
					{Type: "HOME", OddsAmerican: "-110", Line: "-1.5"},
					{Type: "AWAY", OddsAmerican: "-110", Line: "+1.5"},
				},
			},
			{
				BetDescription: "Moneyline",
				Outcomes: []Outcome{
					{Type: "HOME", OddsAmerican: "-145"},
					{Type: "AWAY", OddsAmerican: "+125"},
				},
			},
		},
	}
	row, ok := convertEvent(ev)
	if !ok {
		t.Fatal("convertEvent failed")
	}
	if row.HomeTeam != "Cubs" || row.AwayTeam != "Mets" {
		t.Errorf("teams: %s vs %s", row.HomeTeam, row.AwayTeam)
	}
	home, _ := row.Price(enums.BetRivers, models.SideHome)
	away, _ := row.Price(enums.BetRivers, models.SideAway)
	if home != -145 || away != 125 {
		t.Errorf("moneyline: home %d away %d", home, away)
	}
}

func TestConvertEventNoMoneyline(t *testing.T) {
	ev := Event{
		Start: "2023-03-10T18:05:00Z",
		Participants: []Participant{
			{Name: "A", Home: true},
			{Name: "B", Home: false},
		},
		BetOffers: []BetOffer{
			{BetDescription: "Total Points", Outcomes: []Outcome{{Type: "OVER", OddsAmerican: "-110"}}},
		},
	}
	if _, ok := convertEvent(ev); ok {
		t.Error("event without a moneyline must be skipped")
	}
}
