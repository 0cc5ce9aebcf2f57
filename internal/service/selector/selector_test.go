package selector_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/mocks"
	portagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/agent"
	selectorsvc "github.com/MUHULILAMRI/DoneFastAdmin/internal/service/selector"
)

func newSelector(t *testing.T) (*selectorsvc.Service, *mocks.MockCandidateReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockCandidateReader(ctrl)
	return selectorsvc.NewService(reader), reader
}

func candidate(name string) domainagent.Agent {
	a := domainagent.New(name, name+"@example.com", []string{"design"})
	a.Status = domainagent.StatusOnline
	return a
}

func TestNextPrefersSkilledCandidates(t *testing.T) {
	svc, reader := newSelector(t)

	skilled := candidate("Bob")
	reader.EXPECT().FindCandidates(gomock.Any(), portagent.CandidateQuery{
		Strategy: domaindist.StrategyRating,
		Category: "design",
	}).Return([]domainagent.Agent{skilled, candidate("Carol")}, nil)

	got, err := svc.Next(context.Background(), domaindist.StrategyRating, "design", nil)
	require.NoError(t, err)
	assert.Equal(t, skilled.ID, got.ID)
}

func TestNextFallsBackToAnyEligibleAgent(t *testing.T) {
	svc, reader := newSelector(t)

	fallback := candidate("Dave")
	reader.EXPECT().FindCandidates(gomock.Any(), portagent.CandidateQuery{
		Strategy: domaindist.StrategyRating,
		Category: "plumbing",
	}).Return(nil, nil)
	reader.EXPECT().FindCandidates(gomock.Any(), portagent.CandidateQuery{
		Strategy: domaindist.StrategyRating,
	}).Return([]domainagent.Agent{fallback}, nil)

	got, err := svc.Next(context.Background(), domaindist.StrategyRating, "plumbing", nil)
	require.NoError(t, err)
	assert.Equal(t, fallback.ID, got.ID)
}

func TestNextSkipsSkilledPhaseWithoutCategory(t *testing.T) {
	svc, reader := newSelector(t)

	reader.EXPECT().FindCandidates(gomock.Any(), portagent.CandidateQuery{
		Strategy: domaindist.StrategyLevel,
	}).Return([]domainagent.Agent{candidate("Eve")}, nil)

	_, err := svc.Next(context.Background(), domaindist.StrategyLevel, "", nil)
	require.NoError(t, err)
}

func TestNextNormalizesUnknownStrategy(t *testing.T) {
	svc, reader := newSelector(t)

	reader.EXPECT().FindCandidates(gomock.Any(), portagent.CandidateQuery{
		Strategy: domaindist.StrategyRandom,
	}).Return([]domainagent.Agent{candidate("Frank")}, nil)

	_, err := svc.Next(context.Background(), domaindist.Strategy("alphabetical"), "", nil)
	require.NoError(t, err)
}

func TestNextPropagatesExclusions(t *testing.T) {
	svc, reader := newSelector(t)

	exclude := []uuid.UUID{uuid.New(), uuid.New()}
	reader.EXPECT().FindCandidates(gomock.Any(), portagent.CandidateQuery{
		Strategy: domaindist.StrategyRating,
		Exclude:  exclude,
	}).Return([]domainagent.Agent{candidate("Grace")}, nil)

	_, err := svc.Next(context.Background(), domaindist.StrategyRating, "", exclude)
	require.NoError(t, err)
}

func TestNextNoAgentAvailable(t *testing.T) {
	svc, reader := newSelector(t)

	reader.EXPECT().FindCandidates(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	_, err := svc.Next(context.Background(), domaindist.StrategyRating, "design", nil)
	require.ErrorIs(t, err, selectorsvc.ErrNoAgentAvailable)
}
