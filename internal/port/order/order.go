package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domainorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/order"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateReference surfaces the unique-index conflict so callers
	// can regenerate the reference and retry the insert.
	ErrDuplicateReference = errors.New("order reference already exists")
	// ErrStatusConflict is returned when a conditional status update matched
	// no row: the order moved on since it was read.
	ErrStatusConflict = errors.New("order status conflict")
)

type Repository interface {
	Create(ctx context.Context, o domainorder.Order) (domainorder.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainorder.Order, error)
	List(ctx context.Context, filters domainorder.ListFilters) ([]domainorder.Order, error)

	// UpdateStatus performs an atomic CAS: the row transitions only if its
	// current status matches from. ErrStatusConflict otherwise.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domainorder.Status) error

	// AssignAgent is the acceptance CAS: searching → assigned with the
	// winning agent, assignment time, and the commission computed at accept
	// time. ErrStatusConflict when the order is no longer searching.
	AssignAgent(ctx context.Context, id, agentID uuid.UUID, commission float64, at time.Time) error

	// AssignManual is the operator override: assigns regardless of the
	// automatic state machine, refused only once completed or cancelled.
	AssignManual(ctx context.Context, id, agentID uuid.UUID, at time.Time) error

	// IncrementAttempts bumps the attempt counter atomically and returns the
	// new value.
	IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error)

	// Complete finishes an assigned or in-progress order.
	Complete(ctx context.Context, id uuid.UUID, at time.Time) error

	// Cancel withdraws a pending or searching order.
	Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) error

	// SetRating stores the requester's score once; ErrStatusConflict when
	// the order is not completed or already rated.
	SetRating(ctx context.Context, id uuid.UUID, rating int, review string, at time.Time) error

	// AverageRating returns the mean score over the agent's rated completed
	// orders and how many contributed.
	AverageRating(ctx context.Context, agentID uuid.UUID) (float64, int, error)

	// ResetDistribution rewinds an order for a fresh distribution round:
	// pending status, zero attempts, no agent.
	ResetDistribution(ctx context.Context, id uuid.UUID) error
}
