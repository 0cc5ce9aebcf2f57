package distribution

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusTimedOut Status = "timed_out"
)

// Responded reports whether the record already left the sent state. A
// responded record never changes again.
func (s Status) Responded() bool {
	return s != StatusSent
}

// Strategy decides how the next candidate is ordered.
type Strategy string

const (
	StrategyRating   Strategy = "rating"   // highest rating first
	StrategyWorkload Strategy = "workload" // fewest lifetime orders first
	StrategyLevel    Strategy = "level"    // highest level first
	StrategyRandom   Strategy = "random"   // most recently online first
)

func (s Strategy) Valid() bool {
	switch s {
	case StrategyRating, StrategyWorkload, StrategyLevel, StrategyRandom:
		return true
	}
	return false
}

const DefaultRejectReason = "rejected by agent"

// Distribution is one offer of one order to one agent.
type Distribution struct {
	ID              uuid.UUID  `json:"id"`
	OrderID         uuid.UUID  `json:"order_id"`
	AgentID         uuid.UUID  `json:"agent_id"`
	Status          Status     `json:"status"`
	Reason          string     `json:"reason,omitempty"`
	SentAt          time.Time  `json:"sent_at"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	ResponseSeconds *int       `json:"response_seconds,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func New(orderID, agentID uuid.UUID) Distribution {
	now := time.Now().UTC()
	return Distribution{
		ID:        uuid.New(),
		OrderID:   orderID,
		AgentID:   agentID,
		Status:    StatusSent,
		SentAt:    now,
		CreatedAt: now,
	}
}
