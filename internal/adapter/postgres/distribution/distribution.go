package distribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
	portdist "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/distribution"
)

const distColumns = `id, order_id, agent_id, status, reason, sent_at, responded_at, response_seconds, created_at`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, d domaindist.Distribution) (domaindist.Distribution, error) {
	query := `
		INSERT INTO distributions (id, order_id, agent_id, status, reason, sent_at, responded_at, response_seconds, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING ` + distColumns

	row := r.pool.QueryRow(ctx, query,
		d.ID, d.OrderID, d.AgentID, string(d.Status), nilIfEmpty(d.Reason),
		d.SentAt, d.RespondedAt, d.ResponseSeconds, d.CreatedAt,
	)
	created, err := scanDistribution(row)
	if err != nil {
		return domaindist.Distribution{}, fmt.Errorf("inserting distribution: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domaindist.Distribution, error) {
	query := `SELECT ` + distColumns + ` FROM distributions WHERE id = $1`

	d, err := scanDistribution(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domaindist.Distribution{}, fmt.Errorf("distribution %s: %w", id, portdist.ErrNotFound)
		}
		return domaindist.Distribution{}, fmt.Errorf("querying distribution: %w", err)
	}
	return d, nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domaindist.Distribution, error) {
	query := `SELECT ` + distColumns + ` FROM distributions WHERE order_id = $1 ORDER BY sent_at`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing distributions: %w", err)
	}
	defer rows.Close()

	var dists []domaindist.Distribution
	for rows.Next() {
		d, err := scanDistribution(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning distribution row: %w", err)
		}
		dists = append(dists, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating distribution rows: %w", err)
	}
	return dists, nil
}

// MarkResponded is the response CAS: only a still-sent record moves.
func (r *Repository) MarkResponded(ctx context.Context, id uuid.UUID, to domaindist.Status, respondedAt time.Time, responseSeconds int, reason string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE distributions SET status = $1, responded_at = $2, response_seconds = $3, reason = $4
		WHERE id = $5 AND status = 'sent'`,
		string(to), respondedAt, responseSeconds, nilIfEmpty(reason), id)
	if err != nil {
		return fmt.Errorf("marking distribution responded: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("distribution %s: %w", id, portdist.ErrNotPending)
	}
	return nil
}

func (r *Repository) TimeoutSiblings(ctx context.Context, orderID, exceptID uuid.UUID, at time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE distributions SET status = 'timed_out', responded_at = $1, reason = 'order taken by another agent'
		WHERE order_id = $2 AND id != $3 AND status = 'sent'`, at, orderID, exceptID)
	if err != nil {
		return 0, fmt.Errorf("timing out sibling distributions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM distributions WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("deleting distributions: %w", err)
	}
	return nil
}

func scanDistribution(row pgx.Row) (domaindist.Distribution, error) {
	var d domaindist.Distribution
	var reason *string
	err := row.Scan(
		&d.ID, &d.OrderID, &d.AgentID, &d.Status, &reason,
		&d.SentAt, &d.RespondedAt, &d.ResponseSeconds, &d.CreatedAt,
	)
	if err != nil {
		return domaindist.Distribution{}, err
	}
	if reason != nil {
		d.Reason = *reason
	}
	return d, nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
