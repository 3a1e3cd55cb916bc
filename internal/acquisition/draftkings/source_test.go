package draftkings

import (
	"testing"

	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

func TestConvertEventGroup(t *testing.T) {
	group := EventGroup{
		Events: []Event{
			{
				EventID:     7,
				StartDate:   "2023-03-10T23:05:00Z",
				TeamName1:   "Mets",
				TeamName2:   "Cubs",
				EventStatus: EventStatus{State: "NOT_STARTED"},
			},
			{
				EventID:     8,
				StartDate:   "2023-03-10T20:05:00Z",
				TeamName1:   "Yankees",
				TeamName2:   "Red Sox",
				EventStatus: EventStatus{State: "STARTED"},
			},
		},
		OfferCategories: []OfferCategory{
			{
				OfferSubcategoryDescriptors: []OfferSubcategoryDescriptor{
					{
						OfferSubcategory: OfferSubcategory{
							Offers: [][]Offer{
								{
									{
										EventID: 7,
										Label:   "Moneyline",
										Outcomes: []Outcome{
											{Label: "Mets", OddsAmerican: "+130"},
											{Label: "Cubs", OddsAmerican: "-150"},
										},
									},
									{
										EventID: 7,
										Label:   "Spread",
										Outcomes: []Outcome{
											{Label: "Mets", OddsAmerican: "-110"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	rows := convertEventGroup(group)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row (started game dropped, quoteless dropped), got %d", len(rows))
	}
	row := rows[0]
	if row.HomeTeam != "Cubs" || row.AwayTeam != "Mets" {
		t.Errorf("teams: %s vs %s", row.HomeTeam, row.AwayTeam)
	}
	home, _ := row.Price(enums.DraftKings, models.SideHome)
	away, _ := row.Price(enums.DraftKings, models.SideAway)
	if home != -150 || away != 130 {
		t.Errorf("moneyline: home %d away %d", home, away)
	}
}
