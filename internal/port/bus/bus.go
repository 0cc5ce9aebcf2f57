package bus

import (
	"context"

	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/event"
)

type Handler func(ctx context.Context, e event.Event)

type Subscription interface {
	Unsubscribe()
}

// EventBus is the best-effort broadcast collaborator. Publish errors are
// logged by callers, never propagated into the business transaction.
type EventBus interface {
	Publish(ctx context.Context, e event.Event) error
	Subscribe(ctx context.Context, topic event.Topic, handler Handler) (Subscription, error)
}
