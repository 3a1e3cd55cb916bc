package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cwhitmer/sportsbets/internal/pkg/models"
)

// Deduplicator suppresses repeat alerts for the same opportunity using
// Redis keys with a TTL. The same event quoted by the same pair of books
// alerts at most once per window.
type Deduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeduplicator connects to Redis and verifies the connection.
func NewDeduplicator(addr, password string, db int, ttl time.Duration) (*Deduplicator, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Deduplicator{client: client, ttl: ttl}, nil
}

func dedupKey(opp models.ArbitrageOpportunity) string {
	return fmt.Sprintf("alert:dedup:%s:%s:%s", opp.EventID, opp.Home.Book, opp.Away.Book)
}

// ShouldAlert returns true if this opportunity has not been alerted within
// the TTL window, and marks it as alerted.
func (d *Deduplicator) ShouldAlert(ctx context.Context, opp models.ArbitrageOpportunity) (bool, error) {
	ok, err := d.client.SetNX(ctx, dedupKey(opp), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set dedup key: %w", err)
	}
	return ok, nil
}

// Close releases the Redis connection.
func (d *Deduplicator) Close() error {
	return d.client.Close()
}
