package distribution

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
)

var (
	ErrNotFound = errors.New("distribution not found")
	// ErrNotPending is the CAS failure: the record already left the sent
	// state. First responder wins; everyone else gets this.
	ErrNotPending = errors.New("distribution no longer pending")
)

type Repository interface {
	Create(ctx context.Context, d domaindist.Distribution) (domaindist.Distribution, error)
	GetByID(ctx context.Context, id uuid.UUID) (domaindist.Distribution, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domaindist.Distribution, error)

	// MarkResponded is the single-shot response CAS: sent → to, recording
	// response time and reason. ErrNotPending when the record was already
	// responded — the load-bearing idempotency guard.
	MarkResponded(ctx context.Context, id uuid.UUID, to domaindist.Status, respondedAt time.Time, responseSeconds int, reason string) error

	// TimeoutSiblings marks every other still-sent distribution of the same
	// order as timed out. Returns how many were cancelled.
	TimeoutSiblings(ctx context.Context, orderID, exceptID uuid.UUID, at time.Time) (int64, error)

	// DeleteByOrder purges the offer history. Only the administrative
	// redistribute reset uses it.
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) error
}
