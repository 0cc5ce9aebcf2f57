package agent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
)

var ErrNotFound = errors.New("agent not found")

// Repository manages agent state in the database.
type Repository interface {
	Create(ctx context.Context, a domainagent.Agent) (domainagent.Agent, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainagent.Agent, error)
	List(ctx context.Context, filters domainagent.ListFilters) ([]domainagent.Agent, error)

	// UpdateStatus also refreshes last_online_at when the new status is
	// offerable.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domainagent.Status) error

	// MarkAccepted flips the agent to busy and bumps total_orders in one
	// statement. Called exactly once per acceptance.
	MarkAccepted(ctx context.Context, id uuid.UUID) error

	// IncrementRejected bumps rejected_orders atomically and returns the new
	// cumulative count, which drives the auto-suspension policy.
	IncrementRejected(ctx context.Context, id uuid.UUID) (int, error)

	// CreditCompletion frees the agent and credits the settled commission to
	// balance and lifetime earnings in one statement.
	CreditCompletion(ctx context.Context, id uuid.UUID, amount float64) error

	Suspend(ctx context.Context, id uuid.UUID, reason string, until *time.Time) error
	Unsuspend(ctx context.Context, id uuid.UUID) error

	SetRating(ctx context.Context, id uuid.UUID, rating float64) error
}
