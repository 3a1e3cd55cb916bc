// Package merge reconciles freshly captured odds rows with previously
// persisted period datasets.
package merge

import (
	"sort"
	"time"

	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

// PeriodKey returns the calendar-month key a start time belongs to,
// e.g. "March_2023". It doubles as the dataset file/table name.
func PeriodKey(t time.Time) string {
	return t.Format("January_2006")
}

// SplitByPeriod groups rows by the calendar month of their start time.
// A capture batch spanning a month boundary touches several periods.
func SplitByPeriod(rows []models.EventOddsRow) map[string][]models.EventOddsRow {
	out := make(map[string][]models.EventOddsRow)
	for _, row := range rows {
		key := PeriodKey(row.StartTime)
		out[key] = append(out[key], row)
	}
	return out
}

// Merge reconciles incoming rows with the existing dataset for one period.
// Rows are keyed by event ID and incoming always wins on conflict: freshly
// captured data is authoritative over anything previously stored, even if
// its own timestamps happen to be older. Replacement is whole-row, never
// field-by-field.
//
// The result is sorted by (start time, event ID) so repeated runs produce
// identical output. Merging the same incoming batch twice is a no-op.
func Merge(existing, incoming []models.EventOddsRow) []models.EventOddsRow {
	byID := make(map[string]models.EventOddsRow, len(existing)+len(incoming))
	order := make([]string, 0, len(existing)+len(incoming))
	for _, row := range existing {
		if _, seen := byID[row.EventID]; !seen {
			order = append(order, row.EventID)
		}
		byID[row.EventID] = row
	}
	for _, row := range incoming {
		if _, seen := byID[row.EventID]; !seen {
			order = append(order, row.EventID)
		}
		byID[row.EventID] = row
	}

	merged := make([]models.EventOddsRow, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}
	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].StartTime.Equal(merged[j].StartTime) {
			return merged[i].StartTime.Before(merged[j].StartTime)
		}
		return merged[i].EventID < merged[j].EventID
	})
	return merged
}
