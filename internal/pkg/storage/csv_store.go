package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

// Ensure CSVStore implements SnapshotStore
var _ SnapshotStore = (*CSVStore)(nil)

const csvTimeFormat = time.RFC3339Nano

// CSVStore keeps each period dataset as <dir>/<periodKey>.csv in the legacy
// flat-column layout: an explicit ID index column, event metadata, then
// {book}_last_update/{book}_home/{book}_away column groups for every tracked
// book. Absent books are blank cells, never sentinel numbers.
type CSVStore struct {
	dir string
}

// NewCSVStore creates the dataset directory if needed and returns the store.
func NewCSVStore(dir string) (*CSVStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("csv store: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("csv store: create dir: %w", err)
	}
	return &CSVStore{dir: dir}, nil
}

func (s *CSVStore) path(periodKey string) string {
	return filepath.Join(s.dir, periodKey+".csv")
}

func header() []string {
	h := []string{"ID", "Sport", "Home", "Away", "Start Time"}
	for _, book := range enums.AllBooks() {
		h = append(h,
			book.String()+"_last_update",
			book.String()+"_home",
			book.String()+"_away",
		)
	}
	return h
}

func encodeRow(row models.EventOddsRow) []string {
	rec := []string{
		row.EventID,
		row.Sport,
		row.HomeTeam,
		row.AwayTeam,
		row.StartTime.Format(csvTimeFormat),
	}
	for _, book := range enums.AllBooks() {
		bq, ok := row.Books[book]
		if !ok {
			rec = append(rec, "", "", "")
			continue
		}
		update := ""
		if !bq.LastUpdate.IsZero() {
			update = bq.LastUpdate.Format(csvTimeFormat)
		}
		rec = append(rec, update, encodePrice(bq.Home), encodePrice(bq.Away))
	}
	return rec
}

func encodePrice(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func decodeRow(rec []string) (models.EventOddsRow, error) {
	want := 5 + 3*len(enums.AllBooks())
	if len(rec) != want {
		return models.EventOddsRow{}, fmt.Errorf("csv store: record has %d fields, want %d", len(rec), want)
	}
	start, err := time.Parse(csvTimeFormat, rec[4])
	if err != nil {
		return models.EventOddsRow{}, fmt.Errorf("csv store: bad start time %q: %w", rec[4], err)
	}
	row := models.EventOddsRow{
		EventID:   rec[0],
		Sport:     rec[1],
		HomeTeam:  rec[2],
		AwayTeam:  rec[3],
		StartTime: start,
	}
	for i, book := range enums.AllBooks() {
		base := 5 + 3*i
		updateStr, homeStr, awayStr := rec[base], rec[base+1], rec[base+2]
		if updateStr == "" && homeStr == "" && awayStr == "" {
			continue
		}
		var bq models.BookQuote
		if updateStr != "" {
			bq.LastUpdate, err = time.Parse(csvTimeFormat, updateStr)
			if err != nil {
				return models.EventOddsRow{}, fmt.Errorf("csv store: bad %s update %q: %w", book, updateStr, err)
			}
		}
		if bq.Home, err = decodePrice(homeStr); err != nil {
			return models.EventOddsRow{}, fmt.Errorf("csv store: bad %s home price: %w", book, err)
		}
		if bq.Away, err = decodePrice(awayStr); err != nil {
			return models.EventOddsRow{}, fmt.Errorf("csv store: bad %s away price: %w", book, err)
		}
		if row.Books == nil {
			row.Books = make(map[enums.Book]models.BookQuote)
		}
		row.Books[book] = bq
	}
	return row, nil
}

func decodePrice(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Load reads the period dataset. A missing file means no dataset yet.
func (s *CSVStore) Load(ctx context.Context, periodKey string) ([]models.EventOddsRow, bool, error) {
	f, err := os.Open(s.path(periodKey))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("csv store: open %s: %w", periodKey, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("csv store: read %s: %w", periodKey, err)
	}
	if len(records) == 0 {
		return nil, true, nil
	}
	rows := make([]models.EventOddsRow, 0, len(records)-1)
	for _, rec := range records[1:] { // skip header
		row, err := decodeRow(rec)
		if err != nil {
			return nil, false, err
		}
		rows = append(rows, row)
	}
	return rows, true, nil
}

// Save writes the full dataset to a temp file and renames it into place, so
// a failure part-way leaves the prior dataset intact.
func (s *CSVStore) Save(ctx context.Context, periodKey string, rows []models.EventOddsRow) error {
	tmp, err := os.CreateTemp(s.dir, periodKey+".*.tmp")
	if err != nil {
		return fmt.Errorf("csv store: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	if err := w.Write(header()); err != nil {
		tmp.Close()
		return fmt.Errorf("csv store: write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(encodeRow(row)); err != nil {
			tmp.Close()
			return fmt.Errorf("csv store: write row %s: %w", row.EventID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("csv store: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("csv store: close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path(periodKey)); err != nil {
		return fmt.Errorf("csv store: rename: %w", err)
	}
	return nil
}

// Close is a no-op for the CSV store.
func (s *CSVStore) Close() error { return nil }
