package selector

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
	portagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/agent"
	portselector "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/selector"
)

var ErrNoAgentAvailable = errors.New("no agent available")

var _ portselector.CandidateSelector = (*Service)(nil)

// Service picks the next candidate for an order. Selection only — no
// notification, no state mutation.
type Service struct {
	agents portagent.CandidateReader
}

func NewService(agents portagent.CandidateReader) *Service {
	return &Service{agents: agents}
}

// Next runs the two-phase search: agents whose skills cover the order
// category first, any eligible agent second. The repository applies the
// strategy ordering; Next takes the first match.
func (s *Service) Next(ctx context.Context, strategy domaindist.Strategy, category string, exclude []uuid.UUID) (domainagent.Agent, error) {
	if !strategy.Valid() {
		strategy = domaindist.StrategyRandom
	}

	if category != "" {
		agents, err := s.agents.FindCandidates(ctx, portagent.CandidateQuery{
			Strategy: strategy,
			Category: category,
			Exclude:  exclude,
		})
		if err != nil {
			return domainagent.Agent{}, fmt.Errorf("find skilled candidates: %w", err)
		}
		if len(agents) > 0 {
			return agents[0], nil
		}
	}

	agents, err := s.agents.FindCandidates(ctx, portagent.CandidateQuery{
		Strategy: strategy,
		Exclude:  exclude,
	})
	if err != nil {
		return domainagent.Agent{}, fmt.Errorf("find candidates: %w", err)
	}
	if len(agents) == 0 {
		return domainagent.Agent{}, ErrNoAgentAvailable
	}
	return agents[0], nil
}
