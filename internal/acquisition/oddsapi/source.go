package oddsapi

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cwhitmer/sportsbets/internal/acquisition"
	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

// Ensure Source implements acquisition.Source
var _ acquisition.Source = (*Source)(nil)

// Source shapes the-odds-api responses into event odds rows.
type Source struct {
	client *Client
	now    func() time.Time
}

func NewSource(client *Client) *Source {
	return &Source{client: client, now: time.Now}
}

func (s *Source) Name() string { return "odds-api" }

// Fetch pulls the league's upcoming games and converts every tracked book's
// quotes. Games that already started are skipped: live lines move too fast
// to be useful for logging.
func (s *Source) Fetch(ctx context.Context, league enums.League) ([]models.EventOddsRow, error) {
	games, err := s.client.GetOdds(ctx, league.GetLeagueInfo().SportKey)
	if err != nil {
		return nil, fmt.Errorf("odds-api fetch %s: %w", league, err)
	}

	now := s.now()
	rows := make([]models.EventOddsRow, 0, len(games))
	for _, game := range games {
		if time.Unix(game.CommenceTime, 0).Before(now) {
			continue
		}
		row, ok := convertGame(game)
		if !ok {
			slog.Warn("Skipping malformed game", "source", s.Name(), "game_id", game.ID)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// convertGame builds one row from a game. The h2h price array follows the
// order of the teams array, which may list either team first.
func convertGame(game Game) (models.EventOddsRow, bool) {
	if game.ID == "" || len(game.Teams) != 2 {
		return models.EventOddsRow{}, false
	}
	awayTeam := game.Teams[0]
	if awayTeam == game.HomeTeam {
		awayTeam = game.Teams[1]
	}
	homeFirst := game.Teams[0] == game.HomeTeam

	row := models.EventOddsRow{
		EventID:   game.ID,
		Sport:     game.SportNice,
		StartTime: time.Unix(game.CommenceTime, 0).UTC(),
		HomeTeam:  game.HomeTeam,
		AwayTeam:  awayTeam,
	}

	for _, site := range game.Sites {
		book, ok := enums.BookFromAPIKey(site.SiteKey)
		if !ok {
			continue // not a tracked sportsbook
		}
		if len(site.Odds.H2H) < 2 {
			continue
		}
		homeOdds, awayOdds := site.Odds.H2H[0], site.Odds.H2H[1]
		if !homeFirst {
			homeOdds, awayOdds = awayOdds, homeOdds
		}
		observed := time.Unix(site.LastUpdate, 0).UTC()
		row.SetQuote(models.OddsQuote{
			EventID:       game.ID,
			Book:          book,
			Side:          models.SideHome,
			Market:        models.MarketMoneyline,
			AmericanPrice: int(homeOdds),
			ObservedAt:    observed,
		})
		row.SetQuote(models.OddsQuote{
			EventID:       game.ID,
			Book:          book,
			Side:          models.SideAway,
			Market:        models.MarketMoneyline,
			AmericanPrice: int(awayOdds),
			ObservedAt:    observed,
		})
	}
	return row, true
}
