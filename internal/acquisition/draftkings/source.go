// Package draftkings pulls pre-match odds from the DraftKings eventgroups API.
package draftkings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cwhitmer/sportsbets/internal/acquisition"
	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

const defaultBaseURL = "https://sportsbook-us-nh.draftkings.com"

// groupIDs maps each league to the DraftKings event group.
var groupIDs = map[enums.League]int64{
	enums.NFL: 88808,
	enums.MLB: 84240,
	enums.NBA: 42648,
}

// Ensure Source implements acquisition.Source
var _ acquisition.Source = (*Source)(nil)

type Source struct {
	baseURL string
	client  *http.Client
}

func NewSource(baseURL string, timeout time.Duration) *Source {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Source{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *Source) Name() string { return "draftkings" }

// Fetch loads the league's event group and extracts moneylines for games
// that have not started.
func (s *Source) Fetch(ctx context.Context, league enums.League) ([]models.EventOddsRow, error) {
	groupID, ok := groupIDs[league]
	if !ok {
		return nil, fmt.Errorf("draftkings: league %s not supported", league)
	}
	u := fmt.Sprintf("%s/sites/US-NH-SB/api/v5/eventgroups/%d?format=json", s.baseURL, groupID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("draftkings returned status %d", resp.StatusCode)
	}

	var out eventGroupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode eventgroup: %w", err)
	}
	return convertEventGroup(out.EventGroup), nil
}

func convertEventGroup(group EventGroup) []models.EventOddsRow {
	rows := make(map[int64]*models.EventOddsRow, len(group.Events))
	order := make([]int64, 0, len(group.Events))
	for _, ev := range group.Events {
		if ev.EventStatus.State != "NOT_STARTED" {
			continue
		}
		start, err := time.Parse(time.RFC3339, ev.StartDate)
		if err != nil {
			slog.Debug("Skipping draftkings event with bad start date", "event_id", ev.EventID, "start", ev.StartDate)
			continue
		}
		start = start.UTC()
		rows[ev.EventID] = &models.EventOddsRow{
			EventID:   models.CanonicalEventID(ev.TeamName2, ev.TeamName1, start),
			StartTime: start,
			HomeTeam:  ev.TeamName2,
			AwayTeam:  ev.TeamName1,
		}
		order = append(order, ev.EventID)
	}

	observed := time.Now().UTC()
	for _, cat := range group.OfferCategories {
		for _, desc := range cat.OfferSubcategoryDescriptors {
			for _, offerGroup := range desc.OfferSubcategory.Offers {
				for _, offer := range offerGroup {
					if !strings.EqualFold(offer.Label, "Moneyline") {
						continue
					}
					row, ok := rows[offer.EventID]
					if !ok {
						continue
					}
					applyMoneyline(row, offer, observed)
				}
			}
		}
	}

	out := make([]models.EventOddsRow, 0, len(order))
	for _, id := range order {
		row := rows[id]
		if len(row.Books) == 0 {
			continue
		}
		out = append(out, *row)
	}
	return out
}

// applyMoneyline matches outcome labels against the row's team names.
func applyMoneyline(row *models.EventOddsRow, offer Offer, observed time.Time) {
	for _, o := range offer.Outcomes {
		price, err := strconv.Atoi(strings.TrimPrefix(o.OddsAmerican, "+"))
		if err != nil {
			continue
		}
		var side models.Side
		switch o.Label {
		case row.HomeTeam:
			side = models.SideHome
		case row.AwayTeam:
			side = models.SideAway
		default:
			continue
		}
		row.SetQuote(models.OddsQuote{
			EventID:       row.EventID,
			Book:          enums.DraftKings,
			Side:          side,
			Market:        models.MarketMoneyline,
			AmericanPrice: price,
			ObservedAt:    observed,
		})
	}
}
