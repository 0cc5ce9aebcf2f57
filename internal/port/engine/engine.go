package engine

import (
	"context"

	"github.com/google/uuid"
)

// Result reports the outcome of a dispatch decision.
type Result struct {
	OrderID        uuid.UUID  `json:"order_id"`
	AgentID        *uuid.UUID `json:"agent_id,omitempty"`
	DistributionID *uuid.UUID `json:"distribution_id,omitempty"`
}

// Starter begins a distribution cycle for an order. The order service
// depends on this rather than on the engine implementation.
type Starter interface {
	Start(ctx context.Context, orderID uuid.UUID) (Result, error)
}
