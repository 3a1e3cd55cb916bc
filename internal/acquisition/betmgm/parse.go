package betmgm

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseStart turns the event-timer text into a start time. The page renders
// one of four shapes: "Starting in 12 minutes", "Today • 7:30 PM",
// "Tomorrow • 1:05 PM" or "10/12/23 • 7:30 PM".
func parseStart(text string, now time.Time) (time.Time, error) {
	text = strings.ReplaceAll(text, "•", " ")
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return time.Time{}, fmt.Errorf("empty start text")
	}

	switch {
	case strings.HasPrefix(text, "Starting"):
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return time.Time{}, fmt.Errorf("bad starting-in text %q", text)
		}
		mins, err := strconv.Atoi(fields[len(fields)-2])
		if err != nil {
			return time.Time{}, fmt.Errorf("bad starting-in text %q: %w", text, err)
		}
		return now.Add(time.Duration(mins) * time.Minute).Truncate(time.Minute), nil

	case strings.HasPrefix(text, "Today"):
		clock, err := parseClock(strings.TrimSpace(strings.TrimPrefix(text, "Today")))
		if err != nil {
			return time.Time{}, err
		}
		return atClock(now, clock), nil

	case strings.HasPrefix(text, "Tomorrow"):
		clock, err := parseClock(strings.TrimSpace(strings.TrimPrefix(text, "Tomorrow")))
		if err != nil {
			return time.Time{}, err
		}
		return atClock(now.AddDate(0, 0, 1), clock), nil

	default:
		t, err := time.ParseInLocation("1/2/06 3:04 PM", text, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("bad start text %q: %w", text, err)
		}
		return t, nil
	}
}

func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("3:04 PM", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad clock text %q: %w", s, err)
	}
	return t, nil
}

func atClock(day time.Time, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
}

// cleanTeam strips trailing record digits the participant cell carries.
// Only the right side is trimmed: names like "76ers" keep their digits.
func cleanTeam(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), " 0123456789")
}
