package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker guarantees a contractor is notified at most once per project
// request, even when the creating handler is retried.
// Key format: notify:<request_id>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether a notification for this request was already sent.
func (d *DedupChecker) IsDuplicate(ctx context.Context, requestID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(requestID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this request's notification went out (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, requestID string) error {
	return d.client.Set(ctx, d.key(requestID), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(requestID string) string {
	return "notify:" + requestID
}
