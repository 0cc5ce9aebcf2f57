package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one activity-log line. Best-effort: recording failures are
// logged by callers, never returned to the client.
type Entry struct {
	Action    string
	Entity    string
	EntityID  uuid.UUID
	ActorID   *uuid.UUID
	Details   string
	CreatedAt time.Time
}

type Recorder interface {
	Record(ctx context.Context, e Entry) error
}
