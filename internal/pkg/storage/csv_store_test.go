package storage

import (
	"context"
	"testing"
	"time"

	"github.com/cwhitmer/sportsbets/internal/arb"
	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

func sampleRows() []models.EventOddsRow {
	start := time.Date(2023, 3, 10, 18, 0, 0, 0, time.UTC)
	r1 := models.EventOddsRow{
		EventID:   "a1b2",
		Sport:     "Baseball",
		StartTime: start,
		HomeTeam:  "Cubs",
		AwayTeam:  "Mets",
	}
	r1.SetQuote(models.OddsQuote{EventID: "a1b2", Book: enums.DraftKings, Side: models.SideHome, Market: models.MarketMoneyline, AmericanPrice: 150, ObservedAt: start.Add(-time.Hour)})
	r1.SetQuote(models.OddsQuote{EventID: "a1b2", Book: enums.DraftKings, Side: models.SideAway, Market: models.MarketMoneyline, AmericanPrice: -180, ObservedAt: start.Add(-time.Hour)})
	r1.SetQuote(models.OddsQuote{EventID: "a1b2", Book: enums.FanDuel, Side: models.SideAway, Market: models.MarketMoneyline, AmericanPrice: 140, ObservedAt: start.Add(-30 * time.Minute)})

	r2 := models.EventOddsRow{
		EventID:   "c3d4",
		Sport:     "Baseball",
		StartTime: start.Add(3 * time.Hour),
		HomeTeam:  "Yankees",
		AwayTeam:  "Red Sox",
	}
	// No quotes at all for r2: every book column stays blank.
	return []models.EventOddsRow{r1, r2}
}

func TestCSVStoreRoundTrip(t *testing.T) {
	store, err := NewCSVStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}
	ctx := context.Background()
	rows := sampleRows()

	if err := store.Save(ctx, "March_2023", rows); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, ok, err := store.Load(ctx, "March_2023")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if len(loaded) != len(rows) {
		t.Fatalf("loaded %d rows, want %d", len(loaded), len(rows))
	}

	ids := map[string]bool{}
	for _, r := range loaded {
		ids[r.EventID] = true
	}
	if !ids["a1b2"] || !ids["c3d4"] {
		t.Errorf("event id set changed across round trip: %v", ids)
	}

	// Best-price computations must survive the round trip.
	for i := range rows {
		if rows[i].EventID != loaded[i].EventID {
			t.Fatalf("row order changed: %s vs %s", rows[i].EventID, loaded[i].EventID)
		}
		for _, side := range []models.Side{models.SideHome, models.SideAway} {
			wantBP, wantOK := arb.BestForSide(&rows[i], side)
			gotBP, gotOK := arb.BestForSide(&loaded[i], side)
			if wantOK != gotOK || wantBP != gotBP {
				t.Errorf("row %s side %s: best price %v/%v, want %v/%v",
					rows[i].EventID, side, gotBP, gotOK, wantBP, wantOK)
			}
		}
	}

	if loaded[1].Books != nil {
		t.Errorf("row without quotes must load with no book entries, got %v", loaded[1].Books)
	}
	if loaded[0].Books[enums.FanDuel].Home != nil {
		t.Error("fanduel home side was never quoted, expected nil")
	}
}

func TestCSVStoreLoadMissing(t *testing.T) {
	store, err := NewCSVStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}
	rows, ok, err := store.Load(context.Background(), "January_1999")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || rows != nil {
		t.Errorf("missing period must report absent, got ok=%v rows=%v", ok, rows)
	}
}

func TestCSVStoreSaveOverwrites(t *testing.T) {
	store, err := NewCSVStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}
	ctx := context.Background()
	rows := sampleRows()

	if err := store.Save(ctx, "March_2023", rows); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := store.Save(ctx, "March_2023", rows[:1]); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	loaded, _, err := store.Load(ctx, "March_2023")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("save must replace the dataset wholesale, got %d rows", len(loaded))
	}
}
