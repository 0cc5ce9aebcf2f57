package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/event"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/identity"
	portagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/agent"
	portbus "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/bus"
)

var (
	ErrValidation = errors.New("invalid agent input")
	ErrForbidden  = errors.New("caller may not perform this operation")
	ErrSuspended  = errors.New("agent is suspended")
)

// Service manages the agent roster: registration, presence, suspensions,
// admin rating overrides.
type Service struct {
	agents portagent.Repository
	bus    portbus.EventBus
}

func NewService(agents portagent.Repository, bus portbus.EventBus) *Service {
	return &Service{agents: agents, bus: bus}
}

type RegisterInput struct {
	Name           string
	Email          string
	Phone          string
	Skills         []string
	Level          int
	CommissionRate float64
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (domainagent.Agent, error) {
	if in.Name == "" {
		return domainagent.Agent{}, fmt.Errorf("agent name is required: %w", ErrValidation)
	}
	if in.CommissionRate < 0 || in.CommissionRate > 1 {
		return domainagent.Agent{}, fmt.Errorf("commission rate must be within [0, 1]: %w", ErrValidation)
	}

	a := domainagent.New(in.Name, in.Email, in.Skills)
	a.Phone = in.Phone
	if in.Level > 0 {
		a.Level = in.Level
	}
	if in.CommissionRate > 0 {
		a.CommissionRate = in.CommissionRate
	}

	created, err := s.agents.Create(ctx, a)
	if err != nil {
		return domainagent.Agent{}, fmt.Errorf("create agent: %w", err)
	}
	s.publish(ctx, event.New(event.TopicAdmin, event.NameAgentStatusChanged, map[string]any{
		"agent_id": created.ID,
		"name":     created.Name,
		"status":   string(created.Status),
	}))
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainagent.Agent, error) {
	a, err := s.agents.GetByID(ctx, id)
	if err != nil {
		return domainagent.Agent{}, fmt.Errorf("get agent: %w", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, filters domainagent.ListFilters) ([]domainagent.Agent, error) {
	agents, err := s.agents.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

// SetStatus records a presence change. Agents set their own status; admins
// may set anyone's. Suspended agents cannot come back online before the
// suspension lapses.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domainagent.Status, caller identity.Caller) error {
	switch status {
	case domainagent.StatusOffline, domainagent.StatusOnline, domainagent.StatusAvailable, domainagent.StatusBusy:
	default:
		return fmt.Errorf("unknown agent status %q: %w", status, ErrValidation)
	}
	if !caller.IsAdmin() && caller.ID != id {
		return ErrForbidden
	}

	a, err := s.agents.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get agent: %w", err)
	}
	if a.Suspended && status.Offerable() {
		if a.SuspendedUntil == nil || a.SuspendedUntil.After(time.Now().UTC()) {
			return ErrSuspended
		}
		// suspension lapsed, lift it before going online
		if err := s.agents.Unsuspend(ctx, id); err != nil {
			return fmt.Errorf("lift lapsed suspension: %w", err)
		}
	}

	if err := s.agents.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update agent status: %w", err)
	}

	payload := map[string]any{
		"agent_id": id,
		"name":     a.Name,
		"status":   string(status),
	}
	s.publish(ctx, event.New(event.TopicDistribution, event.NameAgentStatusChanged, payload))
	s.publish(ctx, event.New(event.TopicAdmin, event.NameAgentStatusChanged, payload))
	return nil
}

// Suspend is the admin action; the automatic rejection policy lives in the
// distribution engine. Suspension forces the agent offline so the candidate
// query never has to reason about suspended-but-online rows.
func (s *Service) Suspend(ctx context.Context, id uuid.UUID, reason string, until *time.Time, caller identity.Caller) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	if reason == "" {
		reason = "suspended by admin"
	}
	if err := s.agents.Suspend(ctx, id, reason, until); err != nil {
		return fmt.Errorf("suspend agent: %w", err)
	}
	s.publish(ctx, event.New(event.TopicAdmin, event.NameAgentStatusChanged, map[string]any{
		"agent_id":  id,
		"status":    string(domainagent.StatusOffline),
		"suspended": true,
		"reason":    reason,
	}))
	return nil
}

func (s *Service) Unsuspend(ctx context.Context, id uuid.UUID, caller identity.Caller) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	if err := s.agents.Unsuspend(ctx, id); err != nil {
		return fmt.Errorf("unsuspend agent: %w", err)
	}
	s.publish(ctx, event.New(event.TopicAdmin, event.NameAgentStatusChanged, map[string]any{
		"agent_id":  id,
		"suspended": false,
	}))
	return nil
}

// SetRating is the admin override; the organic path recomputes the mean
// from order ratings.
func (s *Service) SetRating(ctx context.Context, id uuid.UUID, rating float64, caller identity.Caller) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	if rating < 0 || rating > 5 {
		return fmt.Errorf("rating must be within [0, 5]: %w", ErrValidation)
	}
	if err := s.agents.SetRating(ctx, id, rating); err != nil {
		return fmt.Errorf("set agent rating: %w", err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, e event.Event) {
	if err := s.bus.Publish(ctx, e); err != nil {
		slog.ErrorContext(ctx, "broadcast failed", "topic", e.Topic, "event", e.Name, "error", err)
	}
}
