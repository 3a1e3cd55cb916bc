// Package betrivers pulls pre-match odds from the BetRivers listview API.
package betrivers

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

const defaultBaseURL = "https://il.betrivers.com"

// groupIDs maps each league to the BetRivers offering group.
var groupIDs = map[enums.League]int64{
	enums.NFL: 1000093656,
	enums.MLB: 1000093616,
	enums.NBA: 1000093652,
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

func (s *Source) Name() string { return "betrivers" }

// Fetch loads the league's pre-match listview page and extracts moneylines.
func (s *Source) Fetch(ctx context.Context, league enums.League) ([]models.EventOddsRow, error) {
	groupID, ok := groupIDs[league]
	if !ok {
		return nil, fmt.Errorf("betrivers: league %s not supported", league)
	}
	u := fmt.Sprintf("%s/api/service/sportsbook/offering/listview/events?pageNr=1&cageCode=847&groupId=%d&type=prematch",
		s.baseURL, groupID)
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
		return nil, fmt.Errorf("betrivers returned status %d", resp.StatusCode)
	}

	var out listViewResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode listview: %w", err)
	}

	rows := make([]models.EventOddsRow, 0, len(out.Items))
	for _, ev := range out.Items {
		row, ok := convertEvent(ev)
		if !ok {
			slog.Debug("Skipping betrivers event", "event_id", ev.ID)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func convertEvent(ev Event) (models.EventOddsRow, bool) {
	var home, away string
	for _, p := range ev.Participants {
		if p.Home {
			home = p.Name
		} else {
			away = p.Name
		}
	}
	if home == "" || away == "" {
		return models.EventOddsRow{}, false
	}
	start, err := time.Parse(time.RFC3339, ev.Start)
	if err != nil {
		return models.EventOddsRow{}, false
	}
	start = start.UTC()

	row := models.EventOddsRow{
		EventID:   models.CanonicalEventID(home, away, start),
		StartTime: start,
		HomeTeam:  home,
		AwayTeam:  away,
	}
	observed := time.Now().UTC()
	for _, offer := range ev.BetOffers {
		if !strings.EqualFold(offer.BetDescription, "Moneyline") {
			continue
		}
		for _, o := range offer.Outcomes {
			price, err := strconv.Atoi(strings.TrimPrefix(o.OddsAmerican, "+"))
			if err != nil {
				continue
			}
			var side models.Side
			switch strings.ToUpper(o.Type) {
			case "HOME":
				side = models.SideHome
			case "AWAY":
				side = models.SideAway
			default:
				continue
			}
			row.SetQuote(models.OddsQuote{
				EventID:       row.EventID,
				Book:          enums.BetRivers,
				Side:          side,
				Market:        models.MarketMoneyline,
				AmericanPrice: price,
				ObservedAt:    observed,
			})
		}
	}
	if len(row.Books) == 0 {
		return models.EventOddsRow{}, false
	}
	return row, true
}
