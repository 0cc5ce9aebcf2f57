package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/order"
	portorder "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/order"
)

const orderColumns = `id, reference, requester_id, requester_name, requester_email, requester_phone,
		category, description, requirements, price, commission, deadline, priority,
		strategy, status, attempts, max_attempts, response_timeout,
		agent_id, assigned_at, started_at, completed_at, cancelled_at, cancel_reason,
		rating, review, rated_at, created_at, updated_at`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, o domainorder.Order) (domainorder.Order, error) {
	query := `
		INSERT INTO orders (id, reference, requester_id, requester_name, requester_email, requester_phone,
			category, description, requirements, price, commission, deadline, priority,
			strategy, status, attempts, max_attempts, response_timeout,
			agent_id, assigned_at, started_at, completed_at, cancelled_at, cancel_reason,
			rating, review, rated_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29)
		RETURNING ` + orderColumns

	row := r.pool.QueryRow(ctx, query,
		o.ID, o.Reference, o.RequesterID, o.RequesterName, nilIfEmpty(o.RequesterEmail), nilIfEmpty(o.RequesterPhone),
		o.Category, o.Description, nilIfEmpty(o.Requirements), o.Price, o.Commission, o.Deadline, o.Priority,
		string(o.Strategy), string(o.Status), o.Attempts, o.MaxAttempts, o.ResponseTimeout,
		o.AgentID, o.AssignedAt, o.StartedAt, o.CompletedAt, o.CancelledAt, nilIfEmpty(o.CancelReason),
		o.Rating, nilIfEmpty(o.Review), o.RatedAt, o.CreatedAt, o.UpdatedAt,
	)
	created, err := scanOrder(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainorder.Order{}, fmt.Errorf("reference %s: %w", o.Reference, portorder.ErrDuplicateReference)
		}
		return domainorder.Order{}, fmt.Errorf("inserting order: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainorder.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainorder.Order{}, fmt.Errorf("order %s: %w", id, portorder.ErrNotFound)
		}
		return domainorder.Order{}, fmt.Errorf("querying order: %w", err)
	}
	return o, nil
}

func (r *Repository) List(ctx context.Context, filters domainorder.ListFilters) ([]domainorder.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filters.Status))
		argIdx++
	}
	if filters.AgentID != nil {
		query += fmt.Sprintf(" AND agent_id = $%d", argIdx)
		args = append(args, *filters.AgentID)
		argIdx++
	}
	if filters.RequesterID != nil {
		query += fmt.Sprintf(" AND requester_id = $%d", argIdx)
		args = append(args, *filters.RequesterID)
		argIdx++
	}
	if filters.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, *filters.Category)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filters.Limit)
		argIdx++
	}
	if filters.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, filters.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domainorder.Status) error {
	now := time.Now().UTC()
	var query string
	var args []interface{}

	switch to {
	case domainorder.StatusInProgress:
		query = `UPDATE orders SET status = $1, updated_at = $2, started_at = $2 WHERE id = $3 AND status = $4`
		args = []interface{}{string(to), now, id, string(from)}
	default:
		query = `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
		args = []interface{}{string(to), now, id, string(from)}
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s is not %s: %w", id, from, portorder.ErrStatusConflict)
	}
	return nil
}

// AssignAgent is the acceptance CAS. Exactly one caller per order wins it;
// everyone else sees ErrStatusConflict.
func (r *Repository) AssignAgent(ctx context.Context, id, agentID uuid.UUID, commission float64, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = 'assigned', agent_id = $1, commission = $2, assigned_at = $3, updated_at = $3
		WHERE id = $4 AND status = 'searching'`, agentID, commission, at, id)
	if err != nil {
		return fmt.Errorf("assigning order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s is not searching: %w", id, portorder.ErrStatusConflict)
	}
	return nil
}

func (r *Repository) AssignManual(ctx context.Context, id, agentID uuid.UUID, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = 'assigned', agent_id = $1, assigned_at = $2, updated_at = $2
		WHERE id = $3 AND status NOT IN ('completed', 'cancelled')`, agentID, at, id)
	if err != nil {
		return fmt.Errorf("manually assigning order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s is closed: %w", id, portorder.ErrStatusConflict)
	}
	return nil
}

func (r *Repository) IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	var attempts int
	err := r.pool.QueryRow(ctx, `
		UPDATE orders SET attempts = attempts + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING attempts`, id).Scan(&attempts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("order %s: %w", id, portorder.ErrNotFound)
		}
		return 0, fmt.Errorf("incrementing attempts: %w", err)
	}
	return attempts, nil
}

func (r *Repository) Complete(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = 'completed', completed_at = $1, updated_at = $1
		WHERE id = $2 AND status IN ('assigned', 'in_progress')`, at, id)
	if err != nil {
		return fmt.Errorf("completing order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s is not completable: %w", id, portorder.ErrStatusConflict)
	}
	return nil
}

func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = 'cancelled', cancel_reason = $1, cancelled_at = $2, updated_at = $2
		WHERE id = $3 AND status IN ('pending', 'searching')`, nilIfEmpty(reason), at, id)
	if err != nil {
		return fmt.Errorf("cancelling order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s is not cancellable: %w", id, portorder.ErrStatusConflict)
	}
	return nil
}

func (r *Repository) SetRating(ctx context.Context, id uuid.UUID, rating int, review string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET rating = $1, review = $2, rated_at = $3, updated_at = $3
		WHERE id = $4 AND status = 'completed' AND rating IS NULL`, rating, nilIfEmpty(review), at, id)
	if err != nil {
		return fmt.Errorf("rating order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s is not rateable: %w", id, portorder.ErrStatusConflict)
	}
	return nil
}

func (r *Repository) AverageRating(ctx context.Context, agentID uuid.UUID) (float64, int, error) {
	var avg *float64
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT AVG(rating), COUNT(rating) FROM orders
		WHERE agent_id = $1 AND status = 'completed' AND rating IS NOT NULL`, agentID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("averaging ratings: %w", err)
	}
	if avg == nil {
		return 0, 0, nil
	}
	return *avg, count, nil
}

func (r *Repository) ResetDistribution(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = 'pending', attempts = 0, agent_id = NULL, assigned_at = NULL, commission = 0, updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('completed', 'cancelled')`, id)
	if err != nil {
		return fmt.Errorf("resetting order distribution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s is closed: %w", id, portorder.ErrStatusConflict)
	}
	return nil
}

func scanOrder(row pgx.Row) (domainorder.Order, error) {
	var o domainorder.Order
	var requesterEmail, requesterPhone, requirements, cancelReason, review *string
	err := row.Scan(
		&o.ID, &o.Reference, &o.RequesterID, &o.RequesterName, &requesterEmail, &requesterPhone,
		&o.Category, &o.Description, &requirements, &o.Price, &o.Commission, &o.Deadline, &o.Priority,
		&o.Strategy, &o.Status, &o.Attempts, &o.MaxAttempts, &o.ResponseTimeout,
		&o.AgentID, &o.AssignedAt, &o.StartedAt, &o.CompletedAt, &o.CancelledAt, &cancelReason,
		&o.Rating, &review, &o.RatedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return domainorder.Order{}, err
	}
	o.RequesterEmail = deref(requesterEmail)
	o.RequesterPhone = deref(requesterPhone)
	o.Requirements = deref(requirements)
	o.CancelReason = deref(cancelReason)
	o.Review = deref(review)
	return o, nil
}

func scanOrders(rows pgx.Rows) ([]domainorder.Order, error) {
	var orders []domainorder.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}
	return orders, nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
