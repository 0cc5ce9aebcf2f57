package distribution

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/event"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/identity"
	domainorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/order"
	portagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/agent"
	portaudit "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/audit"
	portbus "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/bus"
	portdist "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/distribution"
	portengine "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/engine"
	portlocker "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/locker"
	portorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/order"
	portsched "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/scheduler"
	portselector "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/selector"
	selectorsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/selector"
)

var (
	// ErrUnauthorized: the responding agent is not the one the offer was
	// addressed to.
	ErrUnauthorized = errors.New("offer addressed to another agent")
	// ErrAlreadyResponded: the offer already left the sent state. First
	// responder wins; late accepts and rejects land here.
	ErrAlreadyResponded = errors.New("offer already responded")
	// ErrOrderUnavailable: an accept arrived but the order is no longer up
	// for grabs (cancelled, or another offer won the race).
	ErrOrderUnavailable = errors.New("order no longer available")
	// ErrAttemptsExhausted: the attempt ceiling was hit; the order parked
	// back to pending for manual handling.
	ErrAttemptsExhausted = errors.New("distribution attempts exhausted")
	// ErrInvalidState: the operation is not legal in the order's current
	// state.
	ErrInvalidState = errors.New("order state does not allow this operation")
	// ErrForbidden: the caller's role lacks the privilege.
	ErrForbidden = errors.New("operation requires admin role")
)

type Action string

const (
	ActionAccept  Action = "accept"
	ActionReject  Action = "reject"
	ActionTimeout Action = "timeout"
)

var _ portengine.Starter = (*Service)(nil)

// Service drives the sequential-offer state machine: dispatch one offer at
// a time, process the response, cascade to the next candidate on reject or
// timeout, park the order for manual handling when candidates or attempts
// run out.
type Service struct {
	orders   portorder.Repository
	agents   portagent.Repository
	dists    portdist.Repository
	selector portselector.CandidateSelector
	locker   portlocker.AdvisoryLocker
	bus      portbus.EventBus
	sched    portsched.DeadlineScheduler
	audit    portaudit.Recorder
}

func NewService(
	orders portorder.Repository,
	agents portagent.Repository,
	dists portdist.Repository,
	sel portselector.CandidateSelector,
	locker portlocker.AdvisoryLocker,
	bus portbus.EventBus,
	sched portsched.DeadlineScheduler,
	audit portaudit.Recorder,
) *Service {
	return &Service{
		orders:   orders,
		agents:   agents,
		dists:    dists,
		selector: sel,
		locker:   locker,
		bus:      bus,
		sched:    sched,
		audit:    audit,
	}
}

// Start begins a distribution cycle. Legal only while the order is pending
// or searching; anything else has already progressed past the engine.
func (s *Service) Start(ctx context.Context, orderID uuid.UUID) (portengine.Result, error) {
	res := portengine.Result{OrderID: orderID}

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return res, fmt.Errorf("load order: %w", err)
	}
	switch o.Status {
	case domainorder.StatusPending:
		if err := s.orders.UpdateStatus(ctx, orderID, domainorder.StatusPending, domainorder.StatusSearching); err != nil {
			if errors.Is(err, portorder.ErrStatusConflict) {
				return res, fmt.Errorf("order moved past pending: %w", ErrInvalidState)
			}
			return res, fmt.Errorf("mark order searching: %w", err)
		}
	case domainorder.StatusSearching:
		// resuming a cycle that parked or crashed mid-way
	default:
		return res, fmt.Errorf("order already %s: %w", o.Status, ErrInvalidState)
	}

	s.publish(ctx, event.New(event.TopicAdmin, event.NameDistributionUpdate, map[string]any{
		"order_id":  orderID,
		"reference": o.Reference,
		"status":    "searching",
		"message":   fmt.Sprintf("searching for an agent for order %s", o.Reference),
	}))

	return s.offerNext(ctx, orderID)
}

// Redistribute is the administrative retry-from-scratch: rewind the order,
// purge the offer history so previously tried agents become eligible again,
// and start a fresh cycle.
func (s *Service) Redistribute(ctx context.Context, orderID uuid.UUID, caller identity.Caller) (portengine.Result, error) {
	res := portengine.Result{OrderID: orderID}
	if !caller.IsAdmin() {
		return res, ErrForbidden
	}
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return res, fmt.Errorf("load order: %w", err)
	}
	if err := s.orders.ResetDistribution(ctx, orderID); err != nil {
		return res, fmt.Errorf("reset order distribution state: %w", err)
	}
	if err := s.dists.DeleteByOrder(ctx, orderID); err != nil {
		return res, fmt.Errorf("purge distribution history: %w", err)
	}
	return s.Start(ctx, orderID)
}

// AssignManual is the operator escape hatch: direct assignment outside the
// automatic state machine, no distribution record involved. Allowed at any
// state before completion.
func (s *Service) AssignManual(ctx context.Context, orderID, agentID uuid.UUID, caller identity.Caller) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if o.Status == domainorder.StatusCompleted || o.Status == domainorder.StatusCancelled {
		return fmt.Errorf("order already %s: %w", o.Status, ErrInvalidState)
	}
	if _, err := s.agents.GetByID(ctx, agentID); err != nil {
		return fmt.Errorf("load agent: %w", err)
	}

	now := time.Now().UTC()
	if err := s.orders.AssignManual(ctx, orderID, agentID, now); err != nil {
		return fmt.Errorf("assign order: %w", err)
	}
	if err := s.agents.MarkAccepted(ctx, agentID); err != nil {
		return fmt.Errorf("mark agent busy: %w", err)
	}

	s.publish(ctx, event.New(event.TopicDistribution, event.NameOrderAssigned, map[string]any{
		"order_id":  orderID,
		"reference": o.Reference,
		"agent_id":  agentID,
	}))
	s.record(ctx, "order_assigned_manual", orderID, &caller.ID,
		fmt.Sprintf("order %s manually assigned to agent %s", o.Reference, agentID))
	return nil
}

// History returns the full offer trail of an order, oldest first.
func (s *Service) History(ctx context.Context, orderID uuid.UUID) ([]domaindist.Distribution, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	dists, err := s.dists.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load distribution history: %w", err)
	}
	return dists, nil
}

// Respond processes an agent's answer to an offer. Preconditions are
// checked in a fixed order so each failure mode is distinct; the definitive
// arbiter under concurrency is the storage-level CAS, not these reads.
func (s *Service) Respond(ctx context.Context, distributionID, agentID uuid.UUID, action Action, reason string) (portengine.Result, error) {
	d, err := s.dists.GetByID(ctx, distributionID)
	if err != nil {
		return portengine.Result{}, fmt.Errorf("load distribution: %w", err)
	}
	res := portengine.Result{OrderID: d.OrderID, AgentID: &d.AgentID, DistributionID: &d.ID}

	if d.AgentID != agentID {
		return res, ErrUnauthorized
	}
	if d.Status.Responded() {
		if action == ActionTimeout {
			// late or duplicate timeout call: plain no-op
			return res, portdist.ErrNotPending
		}
		return res, ErrAlreadyResponded
	}

	switch action {
	case ActionAccept:
		return res, s.accept(ctx, d)
	case ActionReject:
		return res, s.reject(ctx, d, reason)
	case ActionTimeout:
		return res, s.timeout(ctx, d)
	default:
		return res, fmt.Errorf("unknown response action %q", action)
	}
}

// HandleDeadline is the sweeper entry point: a server-side offer deadline
// fired. Resolves to a timeout response; if the agent answered in the
// meantime the CAS makes this a no-op.
func (s *Service) HandleDeadline(ctx context.Context, distributionID uuid.UUID) error {
	d, err := s.dists.GetByID(ctx, distributionID)
	if err != nil {
		if errors.Is(err, portdist.ErrNotFound) {
			return nil // history purged since scheduling
		}
		return fmt.Errorf("load distribution: %w", err)
	}
	if d.Status.Responded() {
		return nil
	}
	if _, err := s.Respond(ctx, distributionID, d.AgentID, ActionTimeout, ""); err != nil {
		if errors.Is(err, portdist.ErrNotPending) {
			return nil
		}
		return err
	}
	return nil
}

func (s *Service) accept(ctx context.Context, d domaindist.Distribution) error {
	o, err := s.orders.GetByID(ctx, d.OrderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if o.Status != domainorder.StatusSearching {
		return ErrOrderUnavailable
	}
	ag, err := s.agents.GetByID(ctx, d.AgentID)
	if err != nil {
		return fmt.Errorf("load agent: %w", err)
	}

	now := time.Now().UTC()
	latency := int(now.Sub(d.SentAt).Seconds())
	commission := o.Price * ag.CommissionRate

	// The offer record is the arbiter between the agent and the deadline
	// sweeper: exactly one sent→accepted CAS wins. An accept arriving after
	// the offer expired loses here and never touches the order.
	if err := s.dists.MarkResponded(ctx, d.ID, domaindist.StatusAccepted, now, latency, ""); err != nil {
		if errors.Is(err, portdist.ErrNotPending) {
			return ErrAlreadyResponded
		}
		return fmt.Errorf("mark offer accepted: %w", err)
	}

	if err := s.orders.AssignAgent(ctx, d.OrderID, d.AgentID, commission, now); err != nil {
		if errors.Is(err, portorder.ErrStatusConflict) {
			// cancelled between the precondition read and here; the accepted
			// record stays as the trail of what the agent answered
			slog.WarnContext(ctx, "order left searching while accept was in flight",
				"distribution_id", d.ID, "order_id", d.OrderID)
			return ErrOrderUnavailable
		}
		return fmt.Errorf("assign order: %w", err)
	}

	if err := s.agents.MarkAccepted(ctx, d.AgentID); err != nil {
		return fmt.Errorf("mark agent busy: %w", err)
	}

	if n, err := s.dists.TimeoutSiblings(ctx, d.OrderID, d.ID, now); err != nil {
		slog.ErrorContext(ctx, "failed to cancel sibling offers", "order_id", d.OrderID, "error", err)
	} else if n > 0 {
		slog.InfoContext(ctx, "cancelled sibling offers", "order_id", d.OrderID, "count", n)
	}

	if err := s.sched.Cancel(ctx, d.ID); err != nil {
		slog.WarnContext(ctx, "failed to cancel offer deadline", "distribution_id", d.ID, "error", err)
	}

	payload := map[string]any{
		"order_id":        d.OrderID,
		"reference":       o.Reference,
		"agent_id":        d.AgentID,
		"agent_name":      ag.Name,
		"distribution_id": d.ID,
	}
	s.publish(ctx, event.New(event.TopicDistribution, event.NameOrderAccepted, payload))
	s.publish(ctx, event.New(event.TopicAdmin, event.NameOrderAccepted, map[string]any{
		"order_id":   d.OrderID,
		"reference":  o.Reference,
		"agent_id":   d.AgentID,
		"agent_name": ag.Name,
		"message":    fmt.Sprintf("order %s accepted by %s (%ds)", o.Reference, ag.Name, latency),
	}))
	s.record(ctx, "order_accepted", d.OrderID, &d.AgentID,
		fmt.Sprintf("order %s accepted by %s after %ds", o.Reference, ag.Name, latency))
	return nil
}

func (s *Service) reject(ctx context.Context, d domaindist.Distribution, reason string) error {
	if reason == "" {
		reason = domaindist.DefaultRejectReason
	}
	now := time.Now().UTC()
	latency := int(now.Sub(d.SentAt).Seconds())

	if err := s.dists.MarkResponded(ctx, d.ID, domaindist.StatusRejected, now, latency, reason); err != nil {
		if errors.Is(err, portdist.ErrNotPending) {
			return ErrAlreadyResponded
		}
		return fmt.Errorf("mark offer rejected: %w", err)
	}
	if err := s.sched.Cancel(ctx, d.ID); err != nil {
		slog.WarnContext(ctx, "failed to cancel offer deadline", "distribution_id", d.ID, "error", err)
	}

	count, err := s.agents.IncrementRejected(ctx, d.AgentID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count rejection", "agent_id", d.AgentID, "error", err)
	} else if domainagent.RejectionSuspends(count) {
		until := now.Add(domainagent.SuspensionPeriod)
		if err := s.agents.Suspend(ctx, d.AgentID, domainagent.AutoSuspendReason(count), &until); err != nil {
			slog.ErrorContext(ctx, "auto-suspension failed", "agent_id", d.AgentID, "error", err)
		} else {
			slog.InfoContext(ctx, "agent auto-suspended", "agent_id", d.AgentID, "rejections", count)
		}
	}

	s.publish(ctx, event.New(event.TopicDistribution, event.NameOrderRejected, map[string]any{
		"order_id":        d.OrderID,
		"agent_id":        d.AgentID,
		"distribution_id": d.ID,
		"reason":          reason,
	}))
	s.publish(ctx, event.New(event.TopicAdmin, event.NameDistributionUpdate, map[string]any{
		"order_id":        d.OrderID,
		"agent_id":        d.AgentID,
		"distribution_id": d.ID,
		"status":          string(domaindist.StatusRejected),
		"reason":          reason,
	}))
	s.record(ctx, "order_rejected", d.OrderID, &d.AgentID,
		fmt.Sprintf("offer rejected by agent %s: %s", d.AgentID, reason))

	s.cascade(ctx, d.OrderID)
	return nil
}

func (s *Service) timeout(ctx context.Context, d domaindist.Distribution) error {
	now := time.Now().UTC()
	latency := int(now.Sub(d.SentAt).Seconds())

	if err := s.dists.MarkResponded(ctx, d.ID, domaindist.StatusTimedOut, now, latency, ""); err != nil {
		if errors.Is(err, portdist.ErrNotPending) {
			return portdist.ErrNotPending
		}
		return fmt.Errorf("mark offer timed out: %w", err)
	}
	if err := s.sched.Cancel(ctx, d.ID); err != nil {
		slog.WarnContext(ctx, "failed to cancel offer deadline", "distribution_id", d.ID, "error", err)
	}

	s.publish(ctx, event.New(event.TopicDistribution, event.NameOrderTimeout, map[string]any{
		"order_id":        d.OrderID,
		"agent_id":        d.AgentID,
		"distribution_id": d.ID,
	}))
	s.publish(ctx, event.New(event.TopicAdmin, event.NameDistributionUpdate, map[string]any{
		"order_id":        d.OrderID,
		"agent_id":        d.AgentID,
		"distribution_id": d.ID,
		"status":          string(domaindist.StatusTimedOut),
	}))

	s.cascade(ctx, d.OrderID)
	return nil
}

// cascade re-dispatches after a reject or timeout. Exhaustion and
// no-candidate outcomes are normal state transitions (the order parks back
// to pending), never errors surfaced to the responding agent.
func (s *Service) cascade(ctx context.Context, orderID uuid.UUID) {
	res, err := s.offerNext(ctx, orderID)
	switch {
	case err == nil && res.AgentID != nil:
		slog.InfoContext(ctx, "order re-dispatched", "order_id", orderID, "agent_id", *res.AgentID)
	case errors.Is(err, ErrAttemptsExhausted) || errors.Is(err, selectorsvc.ErrNoAgentAvailable):
		slog.InfoContext(ctx, "order parked for manual handling", "order_id", orderID, "reason", err)
	case err != nil:
		slog.ErrorContext(ctx, "re-dispatch failed", "order_id", orderID, "error", err)
	}
}

// offerNext makes one dispatch decision for the order: enforce the attempt
// ceiling, pick the next untried candidate, send the offer. Serialised per
// order by an advisory lock so at most one offer is ever in the sent state
// for a given order.
func (s *Service) offerNext(ctx context.Context, orderID uuid.UUID) (portengine.Result, error) {
	res := portengine.Result{OrderID: orderID}
	err := s.locker.WithLock(ctx, lockKey(orderID), func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if o.Status != domainorder.StatusSearching {
			// assigned, cancelled, or parked since this dispatch was
			// triggered — nothing to do
			slog.DebugContext(ctx, "skipping dispatch, order not searching",
				"order_id", orderID, "status", o.Status)
			return nil
		}

		if o.Attempts >= o.MaxAttempts {
			s.park(ctx, o, "exhausted",
				fmt.Sprintf("no agent took order %s after %d attempts, manual assignment needed", o.Reference, o.Attempts))
			return ErrAttemptsExhausted
		}

		history, err := s.dists.ListByOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("load distribution history: %w", err)
		}
		exclude := make([]uuid.UUID, 0, len(history))
		for _, h := range history {
			exclude = append(exclude, h.AgentID)
		}

		cand, err := s.selector.Next(ctx, o.Strategy, o.Category, exclude)
		if err != nil {
			if errors.Is(err, selectorsvc.ErrNoAgentAvailable) {
				s.park(ctx, o, "no_agent",
					fmt.Sprintf("no agent online for order %s", o.Reference))
				return err
			}
			return fmt.Errorf("select candidate: %w", err)
		}

		d, err := s.dispatch(ctx, o, cand)
		if err != nil {
			return err
		}
		res.AgentID = &cand.ID
		res.DistributionID = &d.ID
		return nil
	})
	return res, err
}

// dispatch creates the offer record, bumps the attempt counter, schedules
// the server-side deadline, and pushes the offer to the agent channel.
func (s *Service) dispatch(ctx context.Context, o domainorder.Order, cand domainagent.Agent) (domaindist.Distribution, error) {
	d, err := s.dists.Create(ctx, domaindist.New(o.ID, cand.ID))
	if err != nil {
		return domaindist.Distribution{}, fmt.Errorf("create distribution: %w", err)
	}
	attempts, err := s.orders.IncrementAttempts(ctx, o.ID)
	if err != nil {
		return domaindist.Distribution{}, fmt.Errorf("increment attempts: %w", err)
	}

	if err := s.sched.Schedule(ctx, d.ID, o.ResponseDeadline(d.SentAt)); err != nil {
		// The client-side countdown still covers the offer; log and move on.
		slog.ErrorContext(ctx, "failed to schedule offer deadline",
			"distribution_id", d.ID, "error", err)
	}

	s.publish(ctx, event.New(event.TopicDistribution, event.NameOrderOffer, map[string]any{
		"distribution_id":  d.ID,
		"order_id":         o.ID,
		"reference":        o.Reference,
		"agent_id":         cand.ID,
		"category":         o.Category,
		"description":      o.Description,
		"price":            o.Price,
		"commission":       o.Price * cand.CommissionRate,
		"deadline":         o.Deadline,
		"requester_name":   o.RequesterName,
		"response_timeout": o.ResponseTimeout,
	}))
	s.publish(ctx, event.New(event.TopicAdmin, event.NameDistributionUpdate, map[string]any{
		"order_id":        o.ID,
		"reference":       o.Reference,
		"agent_id":        cand.ID,
		"agent_name":      cand.Name,
		"distribution_id": d.ID,
		"status":          string(domaindist.StatusSent),
		"attempt":         attempts,
		"message":         fmt.Sprintf("order %s offered to %s (attempt %d/%d)", o.Reference, cand.Name, attempts, o.MaxAttempts),
	}))

	return d, nil
}

// park sends the order back to pending for manual handling and tells the
// admin channel why.
func (s *Service) park(ctx context.Context, o domainorder.Order, status, message string) {
	if err := s.orders.UpdateStatus(ctx, o.ID, domainorder.StatusSearching, domainorder.StatusPending); err != nil {
		slog.ErrorContext(ctx, "failed to park order", "order_id", o.ID, "error", err)
	}
	s.publish(ctx, event.New(event.TopicAdmin, event.NameDistributionUpdate, map[string]any{
		"order_id":  o.ID,
		"reference": o.Reference,
		"status":    status,
		"message":   message,
	}))
}

func (s *Service) publish(ctx context.Context, e event.Event) {
	if err := s.bus.Publish(ctx, e); err != nil {
		slog.ErrorContext(ctx, "broadcast failed", "topic", e.Topic, "event", e.Name, "error", err)
	}
}

func (s *Service) record(ctx context.Context, action string, orderID uuid.UUID, actorID *uuid.UUID, details string) {
	err := s.audit.Record(ctx, portaudit.Entry{
		Action:    action,
		Entity:    "order",
		EntityID:  orderID,
		ActorID:   actorID,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "audit record failed", "action", action, "order_id", orderID, "error", err)
	}
}

// lockKey hashes an order id to a stable int64 for pg_advisory_lock.
func lockKey(orderID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(orderID[:])
	return int64(h.Sum64())
}
