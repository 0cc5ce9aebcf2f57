package agent

import (
	"context"

	"github.com/google/uuid"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
)

// CandidateQuery scopes one availability lookup. Eligibility (offerable
// status, active, not suspended, not excluded) is fixed; Category narrows to
// agents whose skills include it and is dropped for the fallback phase.
type CandidateQuery struct {
	Strategy domaindist.Strategy
	Category string
	Exclude  []uuid.UUID
}

// CandidateReader is the narrow interface the selector needs: eligible
// agents, ordered per strategy, best first.
type CandidateReader interface {
	FindCandidates(ctx context.Context, q CandidateQuery) ([]domainagent.Agent, error)
}
