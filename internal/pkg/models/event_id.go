package models

import (
	"strings"
	"time"
)

// CanonicalEventID builds a stable cross-book event identifier for sources
// that expose no id of their own. Sources with a native event id (the odds
// API) keep it; scraped sources derive one from teams and start time so the
// same game merges into one row.
//
// Format: home|away|time. Assumes team names share a language across sources.
func CanonicalEventID(homeTeam, awayTeam string, startTime time.Time) string {
	home := normalizeKeyPart(homeTeam)
	away := normalizeKeyPart(awayTeam)

	ts := "unknown-time"
	if !startTime.IsZero() {
		ts = startTime.UTC().Format(time.RFC3339)
	}
	return home + "|" + away + "|" + ts
}

func normalizeKeyPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "/", " ")
	s = strings.ReplaceAll(s, "\\", " ")
	s = strings.ReplaceAll(s, "|", " ")
	return strings.Join(strings.Fields(s), " ")
}
