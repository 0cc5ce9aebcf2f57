package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusSearching  Status = "searching"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// searching → pending is the parking transition: attempts exhausted or no
// candidate left, the order falls back to manual handling.
var validTransitions = map[Status][]Status{
	StatusPending:    {StatusSearching, StatusCancelled},
	StatusSearching:  {StatusAssigned, StatusPending, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCompleted},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Cancellable reports whether a requester may still withdraw the order.
func (s Status) Cancellable() bool {
	return s == StatusPending || s == StatusSearching
}

// Completable reports whether the assigned agent may mark the order done.
func (s Status) Completable() bool {
	return s == StatusAssigned || s == StatusInProgress
}

const (
	DefaultMaxAttempts     = 10
	DefaultResponseTimeout = 30 // seconds
)

type Order struct {
	ID              uuid.UUID           `json:"id"`
	Reference       string              `json:"reference"`
	RequesterID     *uuid.UUID          `json:"requester_id,omitempty"`
	RequesterName   string              `json:"requester_name"`
	RequesterEmail  string              `json:"requester_email,omitempty"`
	RequesterPhone  string              `json:"requester_phone,omitempty"`
	Category        string              `json:"category"`
	Description     string              `json:"description"`
	Requirements    string              `json:"requirements,omitempty"`
	Price           float64             `json:"price"`
	Commission      float64             `json:"commission"`
	Deadline        *time.Time          `json:"deadline,omitempty"`
	Priority        int                 `json:"priority"`
	Strategy        domaindist.Strategy `json:"strategy"`
	Status          Status              `json:"status"`
	Attempts        int                 `json:"attempts"`
	MaxAttempts     int                 `json:"max_attempts"`
	ResponseTimeout int                 `json:"response_timeout"`
	AgentID         *uuid.UUID          `json:"agent_id,omitempty"`
	AssignedAt      *time.Time          `json:"assigned_at,omitempty"`
	StartedAt       *time.Time          `json:"started_at,omitempty"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	CancelledAt     *time.Time          `json:"cancelled_at,omitempty"`
	CancelReason    string              `json:"cancel_reason,omitempty"`
	Rating          *int                `json:"rating,omitempty"`
	Review          string              `json:"review,omitempty"`
	RatedAt         *time.Time          `json:"rated_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func New(requesterName, category, description string, price float64) Order {
	now := time.Now().UTC()
	return Order{
		ID:              uuid.New(),
		Reference:       NewReference(),
		RequesterName:   requesterName,
		Category:        category,
		Description:     description,
		Price:           price,
		Strategy:        domaindist.StrategyRating,
		Status:          StatusPending,
		MaxAttempts:     DefaultMaxAttempts,
		ResponseTimeout: DefaultResponseTimeout,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ResponseDeadline is the instant an offer sent at sentAt expires.
func (o Order) ResponseDeadline(sentAt time.Time) time.Time {
	return sentAt.Add(time.Duration(o.ResponseTimeout) * time.Second)
}

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReference builds a human-readable order reference: DF + yymmdd + a
// 4-character random suffix. The suffix alone is not collision-proof; the
// orders table keeps a unique index on reference and inserts retry on
// conflict.
func NewReference() string {
	now := time.Now().UTC()
	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceAlphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a time-derived index rather than panicking.
			suffix[i] = referenceAlphabet[now.UnixNano()%int64(len(referenceAlphabet))]
			continue
		}
		suffix[i] = referenceAlphabet[n.Int64()]
	}
	return fmt.Sprintf("DF%s-%s", now.Format("060102"), suffix)
}

type ListFilters struct {
	Status      *Status
	AgentID     *uuid.UUID
	RequesterID *uuid.UUID
	Category    *string
	Limit       int
	Offset      int
}
