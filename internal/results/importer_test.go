package results

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const schedulePage = `
<html><body>
<table id="other"><tr><th>nope</th></tr></table>
<table id="team_schedule">
<thead><tr><th>Gm#</th><th>Date</th><th>Opp</th><th>W/L</th><th>R</th><th>RA</th></tr></thead>
<tbody>
<tr><th>1</th><td>Apr 7</td><td>MIL</td><td>W</td><td>5</td><td>4</td></tr>
<tr><th>Gm#</th><th>Date</th><th>Opp</th><th>W/L</th><th>R</th><th>RA</th></tr>
<tr><th>2</th><td>Apr 8</td><td>MIL</td><td>L</td><td>2</td><td>9</td></tr>
</tbody>
</table>
</body></html>`

func TestParseScheduleTable(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(schedulePage))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	records := parseScheduleTable(doc)
	if len(records) != 3 {
		t.Fatalf("expected header + 2 games, got %d rows", len(records))
	}
	if records[0][0] != "Gm#" || records[0][1] != "Date" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "1" || records[1][3] != "W" {
		t.Errorf("game 1 = %v", records[1])
	}
	if records[2][0] != "2" || records[2][5] != "9" {
		t.Errorf("game 2 = %v", records[2])
	}
}

func TestParseScheduleTableMissing(t *testing.T) {
	doc, _ := html.Parse(strings.NewReader("<html><body><p>nothing</p></body></html>"))
	if records := parseScheduleTable(doc); records != nil {
		t.Errorf("expected nil for missing table, got %v", records)
	}
}
