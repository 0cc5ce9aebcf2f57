package distribution_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/event"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/identity"
	domainorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/order"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/mocks"
	portdist "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/distribution"
	portorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/order"
	distsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/distribution"
	selectorsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/selector"
)

type engineDeps struct {
	orders *mocks.MockOrderRepository
	agents *mocks.MockAgentRepository
	dists  *mocks.MockDistributionRepository
	sel    *mocks.MockCandidateSelector
	locker *mocks.MockAdvisoryLocker
	bus    *mocks.MockEventBus
	sched  *mocks.MockDeadlineScheduler
	audit  *mocks.MockAuditRecorder
}

func newEngine(t *testing.T) (*distsvc.Service, engineDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := engineDeps{
		orders: mocks.NewMockOrderRepository(ctrl),
		agents: mocks.NewMockAgentRepository(ctrl),
		dists:  mocks.NewMockDistributionRepository(ctrl),
		sel:    mocks.NewMockCandidateSelector(ctrl),
		locker: mocks.NewMockAdvisoryLocker(ctrl),
		bus:    mocks.NewMockEventBus(ctrl),
		sched:  mocks.NewMockDeadlineScheduler(ctrl),
		audit:  mocks.NewMockAuditRecorder(ctrl),
	}
	svc := distsvc.NewService(d.orders, d.agents, d.dists, d.sel, d.locker, d.bus, d.sched, d.audit)
	return svc, d
}

// passthroughLock makes the advisory lock run its critical section inline.
func passthroughLock(d engineDeps) {
	d.locker.EXPECT().
		WithLock(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

// allowBroadcast accepts any number of event publishes and audit records.
func allowBroadcast(d engineDeps) {
	d.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// eventNamed matches a published event by name.
type eventNamed string

func (m eventNamed) Matches(x any) bool {
	e, ok := x.(event.Event)
	return ok && e.Name == string(m)
}

func (m eventNamed) String() string {
	return fmt.Sprintf("event named %q", string(m))
}

func searchingOrder() domainorder.Order {
	o := domainorder.New("Alice", "design", "company logo", 100)
	o.Status = domainorder.StatusSearching
	return o
}

func onlineAgent(rate float64) domainagent.Agent {
	a := domainagent.New("Bob", "bob@example.com", []string{"design"})
	a.Status = domainagent.StatusOnline
	a.CommissionRate = rate
	return a
}

func sentOffer(o domainorder.Order, agentID uuid.UUID) domaindist.Distribution {
	d := domaindist.New(o.ID, agentID)
	d.SentAt = time.Now().UTC().Add(-5 * time.Second)
	return d
}

func admin() identity.Caller {
	return identity.Caller{ID: uuid.New(), Role: identity.RoleAdmin}
}

func TestStartOffersFirstCandidate(t *testing.T) {
	svc, d := newEngine(t)
	passthroughLock(d)
	allowBroadcast(d)

	o := domainorder.New("Alice", "design", "company logo", 100)
	cand := onlineAgent(0.8)
	searching := o
	searching.Status = domainorder.StatusSearching

	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
	d.orders.EXPECT().UpdateStatus(gomock.Any(), o.ID, domainorder.StatusPending, domainorder.StatusSearching).Return(nil)
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(searching, nil)
	d.dists.EXPECT().ListByOrder(gomock.Any(), o.ID).Return(nil, nil)
	d.sel.EXPECT().Next(gomock.Any(), o.Strategy, o.Category, gomock.Len(0)).Return(cand, nil)
	d.dists.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dd domaindist.Distribution) (domaindist.Distribution, error) {
			assert.Equal(t, o.ID, dd.OrderID)
			assert.Equal(t, cand.ID, dd.AgentID)
			assert.Equal(t, domaindist.StatusSent, dd.Status)
			return dd, nil
		})
	d.orders.EXPECT().IncrementAttempts(gomock.Any(), o.ID).Return(1, nil)
	d.sched.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Start(context.Background(), o.ID)
	require.NoError(t, err)
	require.NotNil(t, res.AgentID)
	assert.Equal(t, cand.ID, *res.AgentID)
	require.NotNil(t, res.DistributionID)
}

func TestStartRejectsProgressedOrder(t *testing.T) {
	svc, d := newEngine(t)

	o := searchingOrder()
	o.Status = domainorder.StatusAssigned
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)

	_, err := svc.Start(context.Background(), o.ID)
	require.ErrorIs(t, err, distsvc.ErrInvalidState)
}

func TestStartParksWhenNoCandidate(t *testing.T) {
	svc, d := newEngine(t)
	passthroughLock(d)
	allowBroadcast(d)

	o := searchingOrder()
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil).Times(2)
	d.dists.EXPECT().ListByOrder(gomock.Any(), o.ID).Return(nil, nil)
	d.sel.EXPECT().Next(gomock.Any(), o.Strategy, o.Category, gomock.Any()).
		Return(domainagent.Agent{}, selectorsvc.ErrNoAgentAvailable)
	d.orders.EXPECT().UpdateStatus(gomock.Any(), o.ID, domainorder.StatusSearching, domainorder.StatusPending).Return(nil)

	res, err := svc.Start(context.Background(), o.ID)
	require.ErrorIs(t, err, selectorsvc.ErrNoAgentAvailable)
	assert.Nil(t, res.AgentID)
	assert.Nil(t, res.DistributionID)
}

func TestStartParksWhenAttemptsExhausted(t *testing.T) {
	svc, d := newEngine(t)
	passthroughLock(d)
	allowBroadcast(d)

	o := searchingOrder()
	o.Attempts = o.MaxAttempts
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil).Times(2)
	d.orders.EXPECT().UpdateStatus(gomock.Any(), o.ID, domainorder.StatusSearching, domainorder.StatusPending).Return(nil)

	_, err := svc.Start(context.Background(), o.ID)
	require.ErrorIs(t, err, distsvc.ErrAttemptsExhausted)
}

func TestRespondRejectsWrongAgent(t *testing.T) {
	svc, d := newEngine(t)

	o := searchingOrder()
	offer := sentOffer(o, uuid.New())
	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil)

	_, err := svc.Respond(context.Background(), offer.ID, uuid.New(), distsvc.ActionAccept, "")
	require.ErrorIs(t, err, distsvc.ErrUnauthorized)
}

func TestRespondRejectsDoubleResponse(t *testing.T) {
	svc, d := newEngine(t)

	o := searchingOrder()
	offer := sentOffer(o, uuid.New())
	offer.Status = domaindist.StatusAccepted
	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil).Times(2)

	_, err := svc.Respond(context.Background(), offer.ID, offer.AgentID, distsvc.ActionReject, "changed my mind")
	require.ErrorIs(t, err, distsvc.ErrAlreadyResponded)

	// A late timeout against a responded offer is a quiet CAS miss, not a
	// client error.
	_, err = svc.Respond(context.Background(), offer.ID, offer.AgentID, distsvc.ActionTimeout, "")
	require.ErrorIs(t, err, portdist.ErrNotPending)
}

func TestAcceptAssignsOrderAndCancelsSiblings(t *testing.T) {
	svc, d := newEngine(t)

	o := searchingOrder()
	o.Price = 250
	ag := onlineAgent(0.8)
	offer := sentOffer(o, ag.ID)

	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil)
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
	d.agents.EXPECT().GetByID(gomock.Any(), ag.ID).Return(ag, nil)
	d.orders.EXPECT().AssignAgent(gomock.Any(), o.ID, ag.ID, 200.0, gomock.Any()).Return(nil)
	d.dists.EXPECT().MarkResponded(gomock.Any(), offer.ID, domaindist.StatusAccepted, gomock.Any(), gomock.Any(), "").Return(nil)
	d.agents.EXPECT().MarkAccepted(gomock.Any(), ag.ID).Return(nil)
	d.dists.EXPECT().TimeoutSiblings(gomock.Any(), o.ID, offer.ID, gomock.Any()).Return(int64(1), nil)
	d.sched.EXPECT().Cancel(gomock.Any(), offer.ID).Return(nil)

	d.bus.EXPECT().Publish(gomock.Any(), eventNamed(event.NameOrderAccepted)).Return(nil).Times(2)
	d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Respond(context.Background(), offer.ID, ag.ID, distsvc.ActionAccept, "")
	require.NoError(t, err)
	assert.Equal(t, o.ID, res.OrderID)
	require.NotNil(t, res.AgentID)
	assert.Equal(t, ag.ID, *res.AgentID)
}

func TestAcceptLosesOrderRace(t *testing.T) {
	svc, d := newEngine(t)

	o := searchingOrder()
	ag := onlineAgent(0.8)
	offer := sentOffer(o, ag.ID)

	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil)
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
	d.agents.EXPECT().GetByID(gomock.Any(), ag.ID).Return(ag, nil)
	d.dists.EXPECT().MarkResponded(gomock.Any(), offer.ID, domaindist.StatusAccepted, gomock.Any(), gomock.Any(), "").Return(nil)
	d.orders.EXPECT().AssignAgent(gomock.Any(), o.ID, ag.ID, gomock.Any(), gomock.Any()).
		Return(portorder.ErrStatusConflict)

	_, err := svc.Respond(context.Background(), offer.ID, ag.ID, distsvc.ActionAccept, "")
	require.ErrorIs(t, err, distsvc.ErrOrderUnavailable)
}

func TestAcceptRefusedWhenOrderNotSearching(t *testing.T) {
	svc, d := newEngine(t)

	o := searchingOrder()
	o.Status = domainorder.StatusCancelled
	ag := onlineAgent(0.8)
	offer := sentOffer(o, ag.ID)

	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil)
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)

	_, err := svc.Respond(context.Background(), offer.ID, ag.ID, distsvc.ActionAccept, "")
	require.ErrorIs(t, err, distsvc.ErrOrderUnavailable)
}

func TestAcceptLosesRecordRace(t *testing.T) {
	// The sweeper timed the record out between the precondition read and
	// the accept. First responder wins: the late accept must not take the
	// order.
	svc, d := newEngine(t)

	o := searchingOrder()
	ag := onlineAgent(0.8)
	offer := sentOffer(o, ag.ID)

	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil)
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
	d.agents.EXPECT().GetByID(gomock.Any(), ag.ID).Return(ag, nil)
	d.dists.EXPECT().MarkResponded(gomock.Any(), offer.ID, domaindist.StatusAccepted, gomock.Any(), gomock.Any(), "").
		Return(portdist.ErrNotPending)
	// no AssignAgent, no MarkAccepted: the order stays untouched

	_, err := svc.Respond(context.Background(), offer.ID, ag.ID, distsvc.ActionAccept, "")
	require.ErrorIs(t, err, distsvc.ErrAlreadyResponded)
}

func TestRejectCascadesToNextCandidate(t *testing.T) {
	svc, d := newEngine(t)
	passthroughLock(d)
	allowBroadcast(d)

	o := searchingOrder()
	o.Attempts = 1
	first := onlineAgent(0.8)
	second := onlineAgent(0.7)
	offer := sentOffer(o, first.ID)

	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil)
	d.dists.EXPECT().MarkResponded(gomock.Any(), offer.ID, domaindist.StatusRejected, gomock.Any(), gomock.Any(), "too busy").Return(nil)
	d.sched.EXPECT().Cancel(gomock.Any(), offer.ID).Return(nil)
	d.agents.EXPECT().IncrementRejected(gomock.Any(), first.ID).Return(3, nil)

	// cascade picks the next candidate, skipping the agent who rejected
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
	rejected := offer
	rejected.Status = domaindist.StatusRejected
	d.dists.EXPECT().ListByOrder(gomock.Any(), o.ID).Return([]domaindist.Distribution{rejected}, nil)
	d.sel.EXPECT().Next(gomock.Any(), o.Strategy, o.Category, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domaindist.Strategy, _ string, exclude []uuid.UUID) (domainagent.Agent, error) {
			require.Contains(t, exclude, first.ID)
			return second, nil
		})
	d.dists.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dd domaindist.Distribution) (domaindist.Distribution, error) {
			return dd, nil
		})
	d.orders.EXPECT().IncrementAttempts(gomock.Any(), o.ID).Return(2, nil)
	d.sched.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Respond(context.Background(), offer.ID, first.ID, distsvc.ActionReject, "too busy")
	require.NoError(t, err)
}

func TestRejectAtThresholdAutoSuspends(t *testing.T) {
	svc, d := newEngine(t)
	passthroughLock(d)
	allowBroadcast(d)

	o := searchingOrder()
	ag := onlineAgent(0.8)
	offer := sentOffer(o, ag.ID)

	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil)
	d.dists.EXPECT().MarkResponded(gomock.Any(), offer.ID, domaindist.StatusRejected, gomock.Any(), gomock.Any(), domaindist.DefaultRejectReason).Return(nil)
	d.sched.EXPECT().Cancel(gomock.Any(), offer.ID).Return(nil)
	d.agents.EXPECT().IncrementRejected(gomock.Any(), ag.ID).Return(10, nil)
	d.agents.EXPECT().Suspend(gomock.Any(), ag.ID, domainagent.AutoSuspendReason(10), gomock.Not(gomock.Nil())).Return(nil)

	// order was assigned elsewhere in the meantime; cascade is a no-op
	assigned := o
	assigned.Status = domainorder.StatusAssigned
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(assigned, nil)

	_, err := svc.Respond(context.Background(), offer.ID, ag.ID, distsvc.ActionReject, "")
	require.NoError(t, err)
}

func TestTimeoutCascadesAndParksWhenNoCandidate(t *testing.T) {
	svc, d := newEngine(t)
	passthroughLock(d)
	allowBroadcast(d)

	o := searchingOrder()
	o.Attempts = 4
	ag := onlineAgent(0.8)
	offer := sentOffer(o, ag.ID)

	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil)
	d.dists.EXPECT().MarkResponded(gomock.Any(), offer.ID, domaindist.StatusTimedOut, gomock.Any(), gomock.Any(), "").Return(nil)
	d.sched.EXPECT().Cancel(gomock.Any(), offer.ID).Return(nil)

	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
	d.dists.EXPECT().ListByOrder(gomock.Any(), o.ID).Return([]domaindist.Distribution{offer}, nil)
	d.sel.EXPECT().Next(gomock.Any(), o.Strategy, o.Category, gomock.Any()).
		Return(domainagent.Agent{}, selectorsvc.ErrNoAgentAvailable)
	d.orders.EXPECT().UpdateStatus(gomock.Any(), o.ID, domainorder.StatusSearching, domainorder.StatusPending).Return(nil)

	_, err := svc.Respond(context.Background(), offer.ID, ag.ID, distsvc.ActionTimeout, "")
	require.NoError(t, err)
}

func TestHandleDeadlineTimesOutOpenOffer(t *testing.T) {
	svc, d := newEngine(t)
	passthroughLock(d)
	allowBroadcast(d)

	o := searchingOrder()
	ag := onlineAgent(0.8)
	offer := sentOffer(o, ag.ID)

	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil).Times(2)
	d.dists.EXPECT().MarkResponded(gomock.Any(), offer.ID, domaindist.StatusTimedOut, gomock.Any(), gomock.Any(), "").Return(nil)
	d.sched.EXPECT().Cancel(gomock.Any(), offer.ID).Return(nil)

	// the order was assigned before the cascade ran; nothing to re-dispatch
	assigned := o
	assigned.Status = domainorder.StatusAssigned
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(assigned, nil)

	require.NoError(t, svc.HandleDeadline(context.Background(), offer.ID))
}

func TestHandleDeadlineNoopWhenResponded(t *testing.T) {
	svc, d := newEngine(t)

	o := searchingOrder()
	offer := sentOffer(o, uuid.New())
	offer.Status = domaindist.StatusAccepted
	d.dists.EXPECT().GetByID(gomock.Any(), offer.ID).Return(offer, nil)

	require.NoError(t, svc.HandleDeadline(context.Background(), offer.ID))
}

func TestHandleDeadlineNoopWhenHistoryPurged(t *testing.T) {
	svc, d := newEngine(t)

	id := uuid.New()
	d.dists.EXPECT().GetByID(gomock.Any(), id).Return(domaindist.Distribution{}, portdist.ErrNotFound)

	require.NoError(t, svc.HandleDeadline(context.Background(), id))
}

func TestRedistributeRequiresAdmin(t *testing.T) {
	svc, _ := newEngine(t)

	caller := identity.Caller{ID: uuid.New(), Role: identity.RoleAgent}
	_, err := svc.Redistribute(context.Background(), uuid.New(), caller)
	require.ErrorIs(t, err, distsvc.ErrForbidden)
}

func TestRedistributePurgesHistoryAndRestarts(t *testing.T) {
	svc, d := newEngine(t)
	passthroughLock(d)
	allowBroadcast(d)

	o := searchingOrder()
	o.Status = domainorder.StatusPending
	o.Attempts = 0
	cand := onlineAgent(0.8)
	searching := o
	searching.Status = domainorder.StatusSearching

	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil).Times(2)
	d.orders.EXPECT().ResetDistribution(gomock.Any(), o.ID).Return(nil)
	d.dists.EXPECT().DeleteByOrder(gomock.Any(), o.ID).Return(nil)
	d.orders.EXPECT().UpdateStatus(gomock.Any(), o.ID, domainorder.StatusPending, domainorder.StatusSearching).Return(nil)
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(searching, nil)
	d.dists.EXPECT().ListByOrder(gomock.Any(), o.ID).Return(nil, nil)
	// purged history means previously tried agents are candidates again
	d.sel.EXPECT().Next(gomock.Any(), o.Strategy, o.Category, gomock.Len(0)).Return(cand, nil)
	d.dists.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dd domaindist.Distribution) (domaindist.Distribution, error) {
			return dd, nil
		})
	d.orders.EXPECT().IncrementAttempts(gomock.Any(), o.ID).Return(1, nil)
	d.sched.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Redistribute(context.Background(), o.ID, admin())
	require.NoError(t, err)
	require.NotNil(t, res.AgentID)
	assert.Equal(t, cand.ID, *res.AgentID)
}

func TestAssignManualRequiresAdmin(t *testing.T) {
	svc, _ := newEngine(t)

	caller := identity.Caller{ID: uuid.New(), Role: identity.RoleRequester}
	err := svc.AssignManual(context.Background(), uuid.New(), uuid.New(), caller)
	require.ErrorIs(t, err, distsvc.ErrForbidden)
}

func TestAssignManualRefusedOnTerminalOrder(t *testing.T) {
	svc, d := newEngine(t)

	o := searchingOrder()
	o.Status = domainorder.StatusCompleted
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)

	err := svc.AssignManual(context.Background(), o.ID, uuid.New(), admin())
	require.ErrorIs(t, err, distsvc.ErrInvalidState)
}

func TestAssignManualAssignsAndMarksAgentBusy(t *testing.T) {
	svc, d := newEngine(t)
	allowBroadcast(d)

	o := searchingOrder()
	o.Status = domainorder.StatusPending
	ag := onlineAgent(0.8)

	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
	d.agents.EXPECT().GetByID(gomock.Any(), ag.ID).Return(ag, nil)
	d.orders.EXPECT().AssignManual(gomock.Any(), o.ID, ag.ID, gomock.Any()).Return(nil)
	d.agents.EXPECT().MarkAccepted(gomock.Any(), ag.ID).Return(nil)

	require.NoError(t, svc.AssignManual(context.Background(), o.ID, ag.ID, admin()))
}

func TestHistoryReturnsOfferTrail(t *testing.T) {
	svc, d := newEngine(t)

	o := searchingOrder()
	trail := []domaindist.Distribution{
		sentOffer(o, uuid.New()),
		sentOffer(o, uuid.New()),
	}
	d.orders.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
	d.dists.EXPECT().ListByOrder(gomock.Any(), o.ID).Return(trail, nil)

	got, err := svc.History(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHistoryUnknownOrder(t *testing.T) {
	svc, d := newEngine(t)

	id := uuid.New()
	d.orders.EXPECT().GetByID(gomock.Any(), id).Return(domainorder.Order{}, portorder.ErrNotFound)

	_, err := svc.History(context.Background(), id)
	require.ErrorIs(t, err, portorder.ErrNotFound)
}
