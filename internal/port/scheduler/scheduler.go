package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DeadlineScheduler tracks when open offers expire, independent of client
// liveness. The sweeper claims due entries and feeds them back to the engine
// as timeout responses; the sent-status CAS keeps a racing client-reported
// timeout or accept safe.
type DeadlineScheduler interface {
	Schedule(ctx context.Context, distributionID uuid.UUID, fireAt time.Time) error
	Cancel(ctx context.Context, distributionID uuid.UUID) error
	// ClaimDue atomically removes and returns entries whose deadline passed.
	// An entry is returned to exactly one caller across instances.
	ClaimDue(ctx context.Context, now time.Time, limit int64) ([]uuid.UUID, error)
}
