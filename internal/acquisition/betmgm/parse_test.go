package betmgm

import (
	"testing"
	"time"
)

var parseNow = time.Date(2023, 3, 10, 14, 0, 0, 0, time.UTC)

func TestParseStartStartingIn(t *testing.T) {
	got, err := parseStart("Starting in 25 minutes", parseNow)
	if err != nil {
		t.Fatalf("parseStart: %v", err)
	}
	want := parseNow.Add(25 * time.Minute)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseStartToday(t *testing.T) {
	got, err := parseStart("Today • 7:30 PM", parseNow)
	if err != nil {
		t.Fatalf("parseStart: %v", err)
	}
	want := time.Date(2023, 3, 10, 19, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseStartTomorrow(t *testing.T) {
	got, err := parseStart("Tomorrow • 1:05 PM", parseNow)
	if err != nil {
		t.Fatalf("parseStart: %v", err)
	}
	want := time.Date(2023, 3, 11, 13, 5, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseStartExplicitDate(t *testing.T) {
	got, err := parseStart("10/12/23 • 7:30 PM", parseNow)
	if err != nil {
		t.Fatalf("parseStart: %v", err)
	}
	want := time.Date(2023, 10, 12, 19, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseStartGarbage(t *testing.T) {
	for _, s := range []string{"", "Live", "Starting soon-ish"} {
		if _, err := parseStart(s, parseNow); err == nil {
			t.Errorf("parseStart(%q): expected error", s)
		}
	}
}

func TestCleanTeam(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Chicago Cubs 12", "Chicago Cubs"},
		{"  Mets  ", "Mets"},
		{"Philadelphia 76ers 10", "Philadelphia 76ers"},
		{"76ers", "76ers"},
		{"49ers 4", "49ers"},
	}
	for _, c := range cases {
		if got := cleanTeam(c.in); got != c.want {
			t.Errorf("cleanTeam(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewSourceDefaults(t *testing.T) {
	s := NewSource(0, "")
	if s.timeout <= 0 {
		t.Errorf("timeout default missing: %v", s.timeout)
	}
	if s.userAgent != defaultUserAgent {
		t.Errorf("user agent default missing: %q", s.userAgent)
	}
	custom := NewSource(time.Minute, "my-agent/1.0")
	if custom.userAgent != "my-agent/1.0" {
		t.Errorf("configured user agent not kept: %q", custom.userAgent)
	}
}

func TestConvertEventDropsLiveAndPartial(t *testing.T) {
	s := NewSource(0, "")
	cases := []scrapedEvent{
		{Live: true, Start: "Today • 7:30 PM", Participants: []string{"A", "B"}, Moneyline: []string{"+100", "-120"}},
		{Start: "", Participants: []string{"A", "B"}, Moneyline: []string{"+100", "-120"}},
		{Start: "Today • 7:30 PM", Participants: []string{"A"}, Moneyline: []string{"+100", "-120"}},
		{Start: "Today • 7:30 PM", Participants: []string{"A", "B"}, Moneyline: nil},
	}
	for i, ev := range cases {
		if _, ok := s.convertEvent(ev, parseNow); ok {
			t.Errorf("case %d: expected drop", i)
		}
	}
}

func TestConvertEvent(t *testing.T) {
	s := NewSource(0, "")
	ev := scrapedEvent{
		Start:        "Today • 7:30 PM",
		Participants: []string{"Mets 4", "Cubs 2"},
		Moneyline:    []string{"+125", "-145"},
	}
	row, ok := s.convertEvent(ev, parseNow)
	if !ok {
		t.Fatal("convertEvent failed")
	}
	if row.HomeTeam != "Cubs" || row.AwayTeam != "Mets" {
		t.Errorf("teams: %s vs %s", row.HomeTeam, row.AwayTeam)
	}
}
