package storage

import (
	"context"

	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

// SnapshotStore persists one period dataset per key ("March_2023", ...).
// Implementations must make Save all-or-nothing: a failed save leaves the
// previously stored dataset untouched.
type SnapshotStore interface {
	// Load returns the stored rows for the period. The second return value
	// is false when no dataset exists yet for that key.
	Load(ctx context.Context, periodKey string) ([]models.EventOddsRow, bool, error)

	// Save replaces the period dataset with the given rows.
	Save(ctx context.Context, periodKey string, rows []models.EventOddsRow) error

	// Close releases any underlying resources.
	Close() error
}
