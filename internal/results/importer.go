// Package results imports final MLB scores from baseball-reference team
// schedule pages. This is a one-shot import, wholly separate from the odds
// pipeline; it shares nothing with the capture cycle but the CSV habit.
package results

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const defaultBaseURL = "https://www.baseball-reference.com"

// teamCodes are the baseball-reference franchise codes.
var teamCodes = []string{
	"ATL", "ARI", "BAL", "BOS", "CHC", "CHW", "CIN", "CLE", "COL", "DET",
	"KCR", "HOU", "LAA", "LAD", "MIA", "MIL", "MIN", "NYM", "NYY", "OAK",
	"PHI", "PIT", "SDP", "SEA", "SFG", "STL", "TBR", "TEX", "TOR", "WSN",
}

type Importer struct {
	baseURL string
	outDir  string
	client  *http.Client
}

func NewImporter(baseURL, outDir string) (*Importer, error) {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if outDir == "" {
		outDir = "mlb_results"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("results: create dir: %w", err)
	}
	return &Importer{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		outDir:  outDir,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Run downloads and stores one season's schedule/results for every team.
// A failing team is logged and skipped; the import continues.
func (im *Importer) Run(ctx context.Context, year int) error {
	var imported int
	for _, team := range teamCodes {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := im.importTeam(ctx, team, year); err != nil {
			slog.Error("Team import failed", "team", team, "year", year, "error", err)
			continue
		}
		imported++
	}
	if imported == 0 {
		return fmt.Errorf("results: no team imported for %d", year)
	}
	slog.Info("Results import finished", "year", year, "teams", imported)
	return nil
}

func (im *Importer) importTeam(ctx context.Context, team string, year int) error {
	u := fmt.Sprintf("%s/teams/%s/%d-schedule-scores.shtml", im.baseURL, team, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	resp, err := im.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("schedule page returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}
	records := parseScheduleTable(doc)
	if len(records) == 0 {
		return fmt.Errorf("no schedule table found")
	}

	path := filepath.Join(im.outDir, fmt.Sprintf("%s_%d.csv", team, year))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// parseScheduleTable extracts the rows of the table with id "team_schedule".
// Repeated in-body header rows (first cell "Gm#") are dropped, keeping only
// the leading header and game rows.
func parseScheduleTable(doc *html.Node) [][]string {
	table := findTable(doc, "team_schedule")
	if table == nil {
		return nil
	}
	var records [][]string
	var walkRows func(n *html.Node)
	walkRows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			row := extractCells(n)
			if len(row) > 0 {
				if len(records) == 0 || row[0] != "Gm#" {
					records = append(records, row)
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkRows(c)
		}
	}
	walkRows(table)
	return records
}

func findTable(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTable(c, id); found != nil {
			return found
		}
	}
	return nil
}

func extractCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, strings.TrimSpace(textContent(c)))
		}
	}
	return cells
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
