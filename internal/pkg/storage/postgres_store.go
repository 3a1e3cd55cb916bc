package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

// Ensure PostgresStore implements SnapshotStore
var _ SnapshotStore = (*PostgresStore)(nil)

// PostgresStore keeps period datasets in a single table keyed by
// (period_key, event_id). Book quotes are stored as one JSONB document per
// row, mirroring the in-memory map instead of one column-triple per book.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the connection, verifies it and creates the schema.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL snapshot store initialized")
	return s, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS odds_rows (
		period_key VARCHAR(50) NOT NULL,
		event_id VARCHAR(200) NOT NULL,
		sport VARCHAR(100) NOT NULL DEFAULT '',
		start_time TIMESTAMPTZ NOT NULL,
		home_team VARCHAR(200) NOT NULL,
		away_team VARCHAR(200) NOT NULL,
		books JSONB NOT NULL DEFAULT '{}',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (period_key, event_id)
	);

	CREATE INDEX IF NOT EXISTS idx_odds_rows_start_time ON odds_rows(start_time);
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// Load returns all rows stored under the period key.
func (s *PostgresStore) Load(ctx context.Context, periodKey string) ([]models.EventOddsRow, bool, error) {
	query := `
	SELECT event_id, sport, start_time, home_team, away_team, books
	FROM odds_rows
	WHERE period_key = $1
	ORDER BY start_time, event_id
	`
	dbRows, err := s.db.QueryContext(ctx, query, periodKey)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load period %s: %w", periodKey, err)
	}
	defer dbRows.Close()

	var rows []models.EventOddsRow
	for dbRows.Next() {
		var row models.EventOddsRow
		var booksJSON []byte
		if err := dbRows.Scan(&row.EventID, &row.Sport, &row.StartTime, &row.HomeTeam, &row.AwayTeam, &booksJSON); err != nil {
			return nil, false, fmt.Errorf("failed to scan row: %w", err)
		}
		books := make(map[enums.Book]models.BookQuote)
		if err := json.Unmarshal(booksJSON, &books); err != nil {
			return nil, false, fmt.Errorf("failed to decode books for %s: %w", row.EventID, err)
		}
		if len(books) > 0 {
			row.Books = books
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return rows, len(rows) > 0, nil
}

// Save replaces the period dataset inside one transaction: either every row
// is written or the prior dataset stays untouched.
func (s *PostgresStore) Save(ctx context.Context, periodKey string, rows []models.EventOddsRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM odds_rows WHERE period_key = $1`, periodKey); err != nil {
		return fmt.Errorf("failed to clear period %s: %w", periodKey, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO odds_rows (period_key, event_id, sport, start_time, home_team, away_team, books, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		booksJSON, err := json.Marshal(row.Books)
		if err != nil {
			return fmt.Errorf("failed to encode books for %s: %w", row.EventID, err)
		}
		if _, err := stmt.ExecContext(ctx, periodKey, row.EventID, row.Sport, row.StartTime, row.HomeTeam, row.AwayTeam, booksJSON); err != nil {
			return fmt.Errorf("failed to insert row %s: %w", row.EventID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit period %s: %w", periodKey, err)
	}
	return nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
