package agent_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/identity"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/mocks"
	agentsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/agent"
)

type agentDeps struct {
	agents *mocks.MockAgentRepository
	bus    *mocks.MockEventBus
}

func newAgentSvc(t *testing.T) (*agentsvc.Service, agentDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := agentDeps{
		agents: mocks.NewMockAgentRepository(ctrl),
		bus:    mocks.NewMockEventBus(ctrl),
	}
	svc := agentsvc.NewService(d.agents, d.bus)
	return svc, d
}

func allowEvents(d agentDeps) {
	d.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func adminCaller() identity.Caller {
	return identity.Caller{ID: uuid.New(), Role: identity.RoleAdmin}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAgentSvc(t)

	_, err := svc.Register(context.Background(), agentsvc.RegisterInput{Name: ""})
	require.ErrorIs(t, err, agentsvc.ErrValidation)

	_, err = svc.Register(context.Background(), agentsvc.RegisterInput{Name: "Bob", CommissionRate: 1.2})
	require.ErrorIs(t, err, agentsvc.ErrValidation)
}

func TestRegisterAppliesDefaults(t *testing.T) {
	svc, d := newAgentSvc(t)
	allowEvents(d)

	d.agents.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a domainagent.Agent) (domainagent.Agent, error) {
			assert.Equal(t, 1, a.Level)
			assert.Equal(t, domainagent.DefaultCommissionRate, a.CommissionRate)
			assert.Equal(t, domainagent.StatusOffline, a.Status)
			assert.True(t, a.Active)
			return a, nil
		})

	created, err := svc.Register(context.Background(), agentsvc.RegisterInput{
		Name:   "Bob",
		Email:  "bob@example.com",
		Skills: []string{"design"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob", created.Name)
}

func TestSetStatusSelfOnly(t *testing.T) {
	svc, _ := newAgentSvc(t)

	id := uuid.New()
	other := identity.Caller{ID: uuid.New(), Role: identity.RoleAgent}
	err := svc.SetStatus(context.Background(), id, domainagent.StatusOnline, other)
	require.ErrorIs(t, err, agentsvc.ErrForbidden)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newAgentSvc(t)

	id := uuid.New()
	err := svc.SetStatus(context.Background(), id, domainagent.Status("sleeping"), identity.Caller{ID: id, Role: identity.RoleAgent})
	require.ErrorIs(t, err, agentsvc.ErrValidation)
}

func TestSetStatusBlockedWhileSuspended(t *testing.T) {
	svc, d := newAgentSvc(t)

	a := domainagent.New("Bob", "bob@example.com", nil)
	a.Suspended = true
	until := time.Now().UTC().Add(12 * time.Hour)
	a.SuspendedUntil = &until

	d.agents.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)

	err := svc.SetStatus(context.Background(), a.ID, domainagent.StatusOnline, identity.Caller{ID: a.ID, Role: identity.RoleAgent})
	require.ErrorIs(t, err, agentsvc.ErrSuspended)
}

func TestSetStatusLiftsLapsedSuspension(t *testing.T) {
	svc, d := newAgentSvc(t)
	allowEvents(d)

	a := domainagent.New("Bob", "bob@example.com", nil)
	a.Suspended = true
	until := time.Now().UTC().Add(-time.Hour)
	a.SuspendedUntil = &until

	d.agents.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	d.agents.EXPECT().Unsuspend(gomock.Any(), a.ID).Return(nil)
	d.agents.EXPECT().UpdateStatus(gomock.Any(), a.ID, domainagent.StatusOnline).Return(nil)

	err := svc.SetStatus(context.Background(), a.ID, domainagent.StatusOnline, identity.Caller{ID: a.ID, Role: identity.RoleAgent})
	require.NoError(t, err)
}

func TestSetStatusOfflineAllowedWhileSuspended(t *testing.T) {
	svc, d := newAgentSvc(t)
	allowEvents(d)

	a := domainagent.New("Bob", "bob@example.com", nil)
	a.Suspended = true

	d.agents.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	d.agents.EXPECT().UpdateStatus(gomock.Any(), a.ID, domainagent.StatusOffline).Return(nil)

	err := svc.SetStatus(context.Background(), a.ID, domainagent.StatusOffline, identity.Caller{ID: a.ID, Role: identity.RoleAgent})
	require.NoError(t, err)
}

func TestSuspendRequiresAdmin(t *testing.T) {
	svc, _ := newAgentSvc(t)

	id := uuid.New()
	err := svc.Suspend(context.Background(), id, "misconduct", nil, identity.Caller{ID: id, Role: identity.RoleAgent})
	require.ErrorIs(t, err, agentsvc.ErrForbidden)
}

func TestSuspendDefaultsReason(t *testing.T) {
	svc, d := newAgentSvc(t)
	allowEvents(d)

	id := uuid.New()
	d.agents.EXPECT().Suspend(gomock.Any(), id, "suspended by admin", gomock.Nil()).Return(nil)

	require.NoError(t, svc.Suspend(context.Background(), id, "", nil, adminCaller()))
}

func TestUnsuspendRequiresAdmin(t *testing.T) {
	svc, _ := newAgentSvc(t)

	err := svc.Unsuspend(context.Background(), uuid.New(), identity.Caller{ID: uuid.New(), Role: identity.RoleRequester})
	require.ErrorIs(t, err, agentsvc.ErrForbidden)
}

func TestSetRatingBoundsAndRole(t *testing.T) {
	svc, d := newAgentSvc(t)

	id := uuid.New()
	err := svc.SetRating(context.Background(), id, 4.5, identity.Caller{ID: id, Role: identity.RoleAgent})
	require.ErrorIs(t, err, agentsvc.ErrForbidden)

	err = svc.SetRating(context.Background(), id, 5.5, adminCaller())
	require.ErrorIs(t, err, agentsvc.ErrValidation)

	d.agents.EXPECT().SetRating(gomock.Any(), id, 4.5).Return(nil)
	require.NoError(t, svc.SetRating(context.Background(), id, 4.5, adminCaller()))
}
