package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/event"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/identity"
	domainorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/order"
	portagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/agent"
	portbus "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/bus"
	portengine "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/engine"
	portorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/order"
)

var (
	ErrValidation   = errors.New("invalid order input")
	ErrInvalidState = errors.New("order state does not allow this operation")
	ErrForbidden    = errors.New("caller may not perform this operation")
	ErrAlreadyRated = errors.New("order already rated")
)

// referenceRetries bounds regeneration when the random reference suffix
// collides with an existing row.
const referenceRetries = 3

// Service owns the order lifecycle around the distribution engine: intake,
// processing, completion settlement, rating, cancellation.
type Service struct {
	orders  portorder.Repository
	agents  portagent.Repository
	bus     portbus.EventBus
	starter portengine.Starter
}

func NewService(orders portorder.Repository, agents portagent.Repository, bus portbus.EventBus, starter portengine.Starter) *Service {
	return &Service{orders: orders, agents: agents, bus: bus, starter: starter}
}

type CreateInput struct {
	RequesterID     *uuid.UUID
	RequesterName   string
	RequesterEmail  string
	RequesterPhone  string
	Category        string
	Description     string
	Requirements    string
	Price           float64
	Deadline        *time.Time
	Priority        int
	Strategy        string
	MaxAttempts     int
	ResponseTimeout int
	AutoDistribute  *bool // nil means yes
}

// Create validates and stores a new order, then starts distribution unless
// the caller opted out. A distribution round that immediately parks the
// order (nobody online) is not a creation failure.
func (s *Service) Create(ctx context.Context, in CreateInput) (domainorder.Order, *portengine.Result, error) {
	if in.RequesterName == "" || in.Category == "" || in.Description == "" {
		return domainorder.Order{}, nil, fmt.Errorf("requester name, category and description are required: %w", ErrValidation)
	}
	if in.Price <= 0 {
		return domainorder.Order{}, nil, fmt.Errorf("price must be positive: %w", ErrValidation)
	}

	o := domainorder.New(in.RequesterName, in.Category, in.Description, in.Price)
	o.RequesterID = in.RequesterID
	o.RequesterEmail = in.RequesterEmail
	o.RequesterPhone = in.RequesterPhone
	o.Requirements = in.Requirements
	o.Deadline = in.Deadline
	o.Priority = in.Priority
	if in.Strategy != "" {
		st := domaindist.Strategy(in.Strategy)
		if !st.Valid() {
			return domainorder.Order{}, nil, fmt.Errorf("unknown distribution strategy %q: %w", in.Strategy, ErrValidation)
		}
		o.Strategy = st
	}
	if in.MaxAttempts > 0 {
		o.MaxAttempts = in.MaxAttempts
	}
	if in.ResponseTimeout > 0 {
		o.ResponseTimeout = in.ResponseTimeout
	}

	created, err := s.createWithReferenceRetry(ctx, o)
	if err != nil {
		return domainorder.Order{}, nil, err
	}

	s.publish(ctx, event.New(event.TopicAdmin, event.NameNewOrder, map[string]any{
		"order_id":  created.ID,
		"reference": created.Reference,
		"category":  created.Category,
		"price":     created.Price,
	}))

	if in.AutoDistribute != nil && !*in.AutoDistribute {
		return created, nil, nil
	}
	res, err := s.starter.Start(ctx, created.ID)
	if err != nil {
		// parked (nobody online, ceiling) or raced — the order exists and
		// can be assigned manually
		slog.InfoContext(ctx, "initial distribution did not assign", "order_id", created.ID, "reason", err)
		return created, nil, nil
	}
	return created, &res, nil
}

func (s *Service) createWithReferenceRetry(ctx context.Context, o domainorder.Order) (domainorder.Order, error) {
	for attempt := 0; ; attempt++ {
		created, err := s.orders.Create(ctx, o)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, portorder.ErrDuplicateReference) || attempt >= referenceRetries {
			return domainorder.Order{}, fmt.Errorf("create order: %w", err)
		}
		o.Reference = domainorder.NewReference()
	}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID, caller identity.Caller) (domainorder.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return domainorder.Order{}, fmt.Errorf("get order: %w", err)
	}
	if !canSee(o, caller) {
		return domainorder.Order{}, ErrForbidden
	}
	return o, nil
}

// List scopes results by role: agents see orders assigned to them,
// requesters their own, admins everything.
func (s *Service) List(ctx context.Context, filters domainorder.ListFilters, caller identity.Caller) ([]domainorder.Order, error) {
	switch caller.Role {
	case identity.RoleAgent:
		filters.AgentID = &caller.ID
	case identity.RoleRequester:
		filters.RequesterID = &caller.ID
	}
	orders, err := s.orders.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// StartProcessing moves an assigned order into active work.
func (s *Service) StartProcessing(ctx context.Context, id uuid.UUID, caller identity.Caller) error {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if !callerIsAssigned(o, caller) {
		return ErrForbidden
	}
	if err := s.orders.UpdateStatus(ctx, id, domainorder.StatusAssigned, domainorder.StatusInProgress); err != nil {
		if errors.Is(err, portorder.ErrStatusConflict) {
			return fmt.Errorf("order is %s: %w", o.Status, ErrInvalidState)
		}
		return fmt.Errorf("start processing: %w", err)
	}
	s.publish(ctx, event.New(event.TopicAdmin, event.NameOrderStatusChanged, map[string]any{
		"order_id":  id,
		"reference": o.Reference,
		"status":    string(domainorder.StatusInProgress),
	}))
	return nil
}

// Complete finalizes the order and settles the commission computed at
// acceptance time — deliberately not recomputed from the agent's current
// rate.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, caller identity.Caller) error {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if !callerIsAssigned(o, caller) {
		return ErrForbidden
	}
	if o.AgentID == nil || !o.Status.Completable() {
		return fmt.Errorf("order is %s: %w", o.Status, ErrInvalidState)
	}

	now := time.Now().UTC()
	if err := s.orders.Complete(ctx, id, now); err != nil {
		if errors.Is(err, portorder.ErrStatusConflict) {
			return fmt.Errorf("order moved since read: %w", ErrInvalidState)
		}
		return fmt.Errorf("complete order: %w", err)
	}
	if err := s.agents.CreditCompletion(ctx, *o.AgentID, o.Commission); err != nil {
		return fmt.Errorf("credit agent: %w", err)
	}

	payload := map[string]any{
		"order_id":  id,
		"reference": o.Reference,
		"agent_id":  *o.AgentID,
	}
	s.publish(ctx, event.New(event.TopicDistribution, event.NameOrderCompleted, payload))
	s.publish(ctx, event.New(event.TopicAdmin, event.NameOrderCompleted, map[string]any{
		"order_id":  id,
		"reference": o.Reference,
		"agent_id":  *o.AgentID,
		"message":   fmt.Sprintf("order %s completed", o.Reference),
	}))
	s.publish(ctx, event.New(event.TopicOrders, event.NameOrderStatusChanged, map[string]any{
		"order_id":  id,
		"reference": o.Reference,
		"status":    string(domainorder.StatusCompleted),
	}))
	return nil
}

// Rate records the requester's score, once, and refreshes the agent's
// displayed rating as the mean over their rated completed orders.
func (s *Service) Rate(ctx context.Context, id uuid.UUID, rating int, review string, caller identity.Caller) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if !callerIsRequester(o, caller) {
		return ErrForbidden
	}
	if o.Status != domainorder.StatusCompleted {
		return fmt.Errorf("order is %s: %w", o.Status, ErrInvalidState)
	}
	if o.Rating != nil {
		return ErrAlreadyRated
	}

	if err := s.orders.SetRating(ctx, id, rating, review, time.Now().UTC()); err != nil {
		if errors.Is(err, portorder.ErrStatusConflict) {
			return ErrAlreadyRated
		}
		return fmt.Errorf("store rating: %w", err)
	}

	if o.AgentID != nil {
		avg, n, err := s.orders.AverageRating(ctx, *o.AgentID)
		if err != nil {
			slog.ErrorContext(ctx, "rating recompute failed", "agent_id", *o.AgentID, "error", err)
		} else if n > 0 {
			rounded := math.Round(avg*10) / 10
			if err := s.agents.SetRating(ctx, *o.AgentID, rounded); err != nil {
				slog.ErrorContext(ctx, "agent rating update failed", "agent_id", *o.AgentID, "error", err)
			}
		}
	}

	s.publish(ctx, event.New(event.TopicAdmin, event.NameOrderStatusChanged, map[string]any{
		"order_id":  id,
		"reference": o.Reference,
		"status":    "rated",
		"rating":    rating,
	}))
	return nil
}

// Cancel withdraws an order that hasn't been taken yet. Offers already out
// stay out; a late accept fails the order-availability guard instead.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, reason string, caller identity.Caller) error {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if !callerIsRequester(o, caller) {
		return ErrForbidden
	}
	if !o.Status.Cancellable() {
		return fmt.Errorf("order is %s: %w", o.Status, ErrInvalidState)
	}

	if err := s.orders.Cancel(ctx, id, reason, time.Now().UTC()); err != nil {
		if errors.Is(err, portorder.ErrStatusConflict) {
			return fmt.Errorf("order moved since read: %w", ErrInvalidState)
		}
		return fmt.Errorf("cancel order: %w", err)
	}

	payload := map[string]any{
		"order_id":  id,
		"reference": o.Reference,
		"status":    string(domainorder.StatusCancelled),
		"reason":    reason,
	}
	s.publish(ctx, event.New(event.TopicOrders, event.NameOrderStatusChanged, payload))
	s.publish(ctx, event.New(event.TopicAdmin, event.NameOrderStatusChanged, payload))
	return nil
}

func (s *Service) publish(ctx context.Context, e event.Event) {
	if err := s.bus.Publish(ctx, e); err != nil {
		slog.ErrorContext(ctx, "broadcast failed", "topic", e.Topic, "event", e.Name, "error", err)
	}
}

func canSee(o domainorder.Order, caller identity.Caller) bool {
	if caller.IsAdmin() {
		return true
	}
	if caller.Role == identity.RoleAgent {
		return o.AgentID != nil && *o.AgentID == caller.ID
	}
	return o.RequesterID != nil && *o.RequesterID == caller.ID
}

func callerIsAssigned(o domainorder.Order, caller identity.Caller) bool {
	if caller.IsAdmin() {
		return true
	}
	return caller.Role == identity.RoleAgent && o.AgentID != nil && *o.AgentID == caller.ID
}

func callerIsRequester(o domainorder.Order, caller identity.Caller) bool {
	if caller.IsAdmin() {
		return true
	}
	return caller.Role == identity.RoleRequester && o.RequesterID != nil && *o.RequesterID == caller.ID
}
