// Package pipeline runs one synchronous capture cycle: acquire quotes,
// alert on sure bets, and reconcile the batch into period datasets.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cwhitmer/sportsbets/internal/acquisition"
	"github.com/cwhitmer/sportsbets/internal/arb"
	"github.com/cwhitmer/sportsbets/internal/merge"
	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
	"github.com/cwhitmer/sportsbets/internal/pkg/notify"
	"github.com/cwhitmer/sportsbets/internal/pkg/storage"
)

// AlertGate decides whether an opportunity should be alerted. Implemented by
// notify.Deduplicator; nil means every opportunity alerts.
type AlertGate interface {
	ShouldAlert(ctx context.Context, opp models.ArbitrageOpportunity) (bool, error)
}

// Runner wires the collaborators of one capture cycle. Callers must not run
// two cycles for the same league concurrently: the snapshot store's
// read-modify-write is not locked.
type Runner struct {
	League     enums.League
	TotalStake float64
	Books      []enums.Book // allow-list; empty means every tracked book
	Sources    []acquisition.Source
	Store      storage.SnapshotStore
	Sinks      []notify.Sink
	Gate       AlertGate
}

// Run executes one cycle to completion. Acquisition and delivery failures
// are diagnostics only; a persistence failure is the single fatal outcome.
func (r *Runner) Run(ctx context.Context) error {
	rows := r.acquire(ctx)
	if len(rows) == 0 {
		slog.Info("No odds acquired this cycle, nothing to do", "league", r.League.String())
		return nil
	}

	r.alertOpportunities(ctx, rows)

	return r.persist(ctx, rows)
}

// acquire collects rows from every source. A failing source contributes an
// empty batch and the cycle goes on.
func (r *Runner) acquire(ctx context.Context) []models.EventOddsRow {
	var all []models.EventOddsRow
	for _, src := range r.Sources {
		rows, err := src.Fetch(ctx, r.League)
		if err != nil {
			slog.Error("Source failed, continuing without it", "source", src.Name(), "error", err)
			continue
		}
		slog.Info("Source fetched", "source", src.Name(), "rows", len(rows))
		all = append(all, rows...)
	}
	return r.filterBooks(combineRows(all))
}

// filterBooks drops quotes from books outside the configured allow-list and
// rows that end up with no quotes at all.
func (r *Runner) filterBooks(rows []models.EventOddsRow) []models.EventOddsRow {
	if len(r.Books) == 0 {
		return rows
	}
	allowed := make(map[enums.Book]bool, len(r.Books))
	for _, b := range r.Books {
		allowed[b] = true
	}
	out := rows[:0]
	for _, row := range rows {
		for book := range row.Books {
			if !allowed[book] {
				delete(row.Books, book)
			}
		}
		if len(row.Books) == 0 {
			continue
		}
		out = append(out, row)
	}
	return out
}

// combineRows folds rows that describe the same event (by id) into one row
// carrying the union of book quotes. Later sources win per book.
func combineRows(rows []models.EventOddsRow) []models.EventOddsRow {
	byID := make(map[string]*models.EventOddsRow, len(rows))
	var order []string
	for _, row := range rows {
		existing, ok := byID[row.EventID]
		if !ok {
			r := row
			byID[row.EventID] = &r
			order = append(order, row.EventID)
			continue
		}
		for book, bq := range row.Books {
			if existing.Books == nil {
				existing.Books = make(map[enums.Book]models.BookQuote)
			}
			existing.Books[book] = bq
		}
	}
	out := make([]models.EventOddsRow, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

// alertOpportunities scans the batch for sure bets and delivers alerts.
// Nothing here can fail the cycle.
func (r *Runner) alertOpportunities(ctx context.Context, rows []models.EventOddsRow) {
	for i := range rows {
		row := &rows[i]
		opp, ok := arb.FindOpportunity(row)
		if !ok {
			continue
		}
		slog.Info("Sure bet detected",
			"event_id", opp.EventID,
			"home_book", opp.Home.Book.String(), "home_price", opp.Home.AmericanPrice,
			"away_book", opp.Away.Book.String(), "away_price", opp.Away.AmericanPrice,
			"implied_total", opp.TotalImpliedProbability,
		)

		if r.Gate != nil {
			send, err := r.Gate.ShouldAlert(ctx, opp)
			if err != nil {
				slog.Error("Alert dedup check failed, alerting anyway", "event_id", opp.EventID, "error", err)
			} else if !send {
				slog.Info("Opportunity already alerted recently, skipping", "event_id", opp.EventID)
				continue
			}
		}

		alloc, err := arb.Allocate(opp.Home.AmericanPrice, opp.Away.AmericanPrice, r.TotalStake)
		if err != nil {
			slog.Error("Stake allocation failed", "event_id", opp.EventID, "error", err)
			continue
		}
		text := arb.FormatAlert(row, opp, alloc)
		for _, sink := range r.Sinks {
			if err := sink.Send(ctx, text); err != nil {
				slog.Error("Alert delivery failed", "event_id", opp.EventID, "error", err)
			}
		}
	}
}

// persist merges the batch into every period dataset it touches. The first
// load/save failure aborts the cycle.
func (r *Runner) persist(ctx context.Context, rows []models.EventOddsRow) error {
	for periodKey, periodRows := range merge.SplitByPeriod(rows) {
		existing, _, err := r.Store.Load(ctx, periodKey)
		if err != nil {
			return fmt.Errorf("load period %s: %w", periodKey, err)
		}
		merged := merge.Merge(existing, periodRows)
		if err := r.Store.Save(ctx, periodKey, merged); err != nil {
			return fmt.Errorf("save period %s: %w", periodKey, err)
		}
		slog.Info("Period dataset saved", "period", periodKey, "incoming", len(periodRows), "total", len(merged))
	}
	return nil
}
