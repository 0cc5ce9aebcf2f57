package selector

import (
	"context"

	"github.com/google/uuid"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
)

// CandidateSelector picks the next agent to offer an order to. Pure policy:
// no side effects.
type CandidateSelector interface {
	Next(ctx context.Context, strategy domaindist.Strategy, category string, exclude []uuid.UUID) (domainagent.Agent, error)
}
