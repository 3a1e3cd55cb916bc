// Package betmgm scrapes moneyline odds from the BetMGM web pages. The site
// has no public JSON feed, so a headless browser renders the league page and
// the six-pack event grid is read out of the DOM.
package betmgm

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/cwhitmer/sportsbets/internal/acquisition"
	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

// chromeMu serializes all Chrome usage so only one instance runs at a time.
var chromeMu sync.Mutex

// leagueURLs maps each league to its pre-match page.
var leagueURLs = map[enums.League]string{
	enums.NBA: "https://sports.il.betmgm.com/en/sports/basketball-7/betting/usa-9/nba-6004",
	enums.MLB: "https://sports.il.betmgm.com/en/sports/baseball-23/betting/usa-9/mlb-75",
	enums.NFL: "https://sports.il.betmgm.com/en/sports/football-11/betting/usa-9/nfl-35",
}

// extractJS reads every rendered six-pack event into a plain object. The
// moneyline is the third option group; live games carry a live indicator
// and are flagged so Go-side conversion can drop them.
const extractJS = `
Array.from(document.querySelectorAll('ms-six-pack-event')).map(ev => {
	const timer = ev.querySelector('ms-event-timer.grid-event-timer');
	const participants = Array.from(ev.querySelectorAll('div.participant')).map(p => p.textContent.trim());
	const groups = Array.from(ev.querySelectorAll('ms-option-group'));
	let moneyline = [];
	if (groups.length >= 3) {
		moneyline = Array.from(groups[2].querySelectorAll('div.option-value')).map(o => o.textContent.trim());
	}
	return {
		live: !!ev.querySelector('i[class^="live"]'),
		start: timer ? timer.textContent.trim() : '',
		participants: participants,
		moneyline: moneyline,
	};
})
`

// scrapedEvent mirrors the object built by extractJS.
type scrapedEvent struct {
	Live         bool     `json:"live"`
	Start        string   `json:"start"`
	Participants []string `json:"participants"`
	Moneyline    []string `json:"moneyline"`
}

// Ensure Source implements acquisition.Source
var _ acquisition.Source = (*Source)(nil)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/105.0.0.0 Safari/537.36"

type Source struct {
	timeout   time.Duration
	userAgent string
	now       func() time.Time
}

func NewSource(timeout time.Duration, userAgent string) *Source {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Source{timeout: timeout, userAgent: userAgent, now: time.Now}
}

func (s *Source) Name() string { return "betmgm" }

// Fetch renders the league page headlessly and converts the event grid.
func (s *Source) Fetch(ctx context.Context, league enums.League) ([]models.EventOddsRow, error) {
	pageURL, ok := leagueURLs[league]
	if !ok {
		return nil, fmt.Errorf("betmgm: league %s not supported", league)
	}

	chromeMu.Lock()
	defer chromeMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(s.userAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var events []scrapedEvent
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible("ms-six-pack-event", chromedp.ByQuery),
		chromedp.Evaluate(extractJS, &events),
	)
	if err != nil {
		return nil, fmt.Errorf("betmgm scrape: %w", err)
	}

	now := s.now()
	rows := make([]models.EventOddsRow, 0, len(events))
	for _, ev := range events {
		row, ok := s.convertEvent(ev, now)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	slog.Info("BetMGM scrape finished", "league", league.String(), "events", len(events), "rows", len(rows))
	return rows, nil
}

func (s *Source) convertEvent(ev scrapedEvent, now time.Time) (models.EventOddsRow, bool) {
	if ev.Live || ev.Start == "" || len(ev.Participants) != 2 || len(ev.Moneyline) < 2 {
		return models.EventOddsRow{}, false
	}
	start, err := parseStart(ev.Start, now)
	if err != nil {
		slog.Debug("Skipping betmgm event", "error", err)
		return models.EventOddsRow{}, false
	}
	// The grid lists away before home.
	away := cleanTeam(ev.Participants[0])
	home := cleanTeam(ev.Participants[1])
	if home == "" || away == "" {
		return models.EventOddsRow{}, false
	}
	awayPrice, err1 := parsePrice(ev.Moneyline[0])
	homePrice, err2 := parsePrice(ev.Moneyline[1])
	if err1 != nil || err2 != nil {
		return models.EventOddsRow{}, false
	}

	start = start.UTC()
	row := models.EventOddsRow{
		EventID:   models.CanonicalEventID(home, away, start),
		StartTime: start,
		HomeTeam:  home,
		AwayTeam:  away,
	}
	observed := now.UTC()
	row.SetQuote(models.OddsQuote{
		EventID: row.EventID, Book: enums.BetMGM, Side: models.SideHome,
		Market: models.MarketMoneyline, AmericanPrice: homePrice, ObservedAt: observed,
	})
	row.SetQuote(models.OddsQuote{
		EventID: row.EventID, Book: enums.BetMGM, Side: models.SideAway,
		Market: models.MarketMoneyline, AmericanPrice: awayPrice, ObservedAt: observed,
	})
	return row, true
}

func parsePrice(s string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "+"))
}
