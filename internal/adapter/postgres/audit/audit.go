package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	portaudit "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/audit"
)

// Recorder appends activity-log rows. Append-only; nothing in the engine
// reads them back.
type Recorder struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Recorder {
	return &Recorder{pool: pool}
}

func (r *Recorder) Record(ctx context.Context, e portaudit.Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO activity_logs (id, action, entity, entity_id, actor_id, details, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		uuid.New(), e.Action, e.Entity, e.EntityID, e.ActorID, nilIfEmpty(e.Details), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting activity log: %w", err)
	}
	return nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
