package agent

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOffline   Status = "offline"
	StatusOnline    Status = "online"    // logged in, ready for offers
	StatusAvailable Status = "available" // freed after completing an order
	StatusBusy      Status = "busy"
)

// Offerable reports whether the status admits new offers. Online and
// available are equivalent for selection; busy agents hold an order and are
// skipped, which is what keeps one agent on at most one active order.
func (s Status) Offerable() bool {
	return s == StatusOnline || s == StatusAvailable
}

const (
	DefaultCommissionRate = 0.8

	// Every RejectionSuspendStep-th cumulative rejection triggers an
	// automatic suspension of SuspensionPeriod.
	RejectionSuspendStep = 10
	SuspensionPeriod     = 24 * time.Hour
)

type Agent struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Skills          []string   `json:"skills"`
	Level           int        `json:"level"`
	Rating          float64    `json:"rating"`
	CommissionRate  float64    `json:"commission_rate"`
	TotalOrders     int        `json:"total_orders"`
	CompletedOrders int        `json:"completed_orders"`
	RejectedOrders  int        `json:"rejected_orders"`
	Balance         float64    `json:"balance"`
	TotalEarnings   float64    `json:"total_earnings"`
	Status          Status     `json:"status"`
	Active          bool       `json:"active"`
	Suspended       bool       `json:"suspended"`
	SuspendReason   string     `json:"suspend_reason,omitempty"`
	SuspendedUntil  *time.Time `json:"suspended_until,omitempty"`
	LastOnlineAt    *time.Time `json:"last_online_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func New(name, email string, skills []string) Agent {
	now := time.Now().UTC()
	return Agent{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		Skills:         skills,
		Level:          1,
		CommissionRate: DefaultCommissionRate,
		Status:         StatusOffline,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (a Agent) HasSkill(category string) bool {
	for _, s := range a.Skills {
		if s == category {
			return true
		}
	}
	return false
}

// Eligible reports whether the agent may receive offers at all.
func (a Agent) Eligible() bool {
	return a.Active && !a.Suspended && a.Status.Offerable()
}

// RejectionSuspends reports whether reaching the given cumulative rejection
// count triggers an automatic suspension. Only exact multiples of the step
// trigger: 10, 20, 30 do, 11 or 21 do not.
func RejectionSuspends(count int) bool {
	return count > 0 && count%RejectionSuspendStep == 0
}

// AutoSuspendReason is the policy-generated reason recorded on automatic
// suspensions.
func AutoSuspendReason(count int) string {
	return fmt.Sprintf("auto-suspend: %d offers rejected", count)
}

type ListFilters struct {
	Status    *Status
	Active    *bool
	Suspended *bool
	Skill     *string
}
