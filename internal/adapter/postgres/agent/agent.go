package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/agent"
	domaindist "github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/distribution"
	portagent "github.com/MUHULILAMRI/DoneFastAdmin/internal/port/agent"
)

const agentColumns = `id, name, email, phone, skills, level, rating, commission_rate,
		total_orders, completed_orders, rejected_orders, balance, total_earnings,
		status, active, suspended, suspend_reason, suspended_until, last_online_at,
		created_at, updated_at`

// Repository implements both port/agent.Repository and
// port/agent.CandidateReader; consumers depend only on the interface they
// need.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, a domainagent.Agent) (domainagent.Agent, error) {
	query := `
		INSERT INTO agents (id, name, email, phone, skills, level, rating, commission_rate,
			total_orders, completed_orders, rejected_orders, balance, total_earnings,
			status, active, suspended, suspend_reason, suspended_until, last_online_at,
			created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		RETURNING ` + agentColumns

	row := r.pool.QueryRow(ctx, query,
		a.ID, a.Name, nilIfEmpty(a.Email), nilIfEmpty(a.Phone), a.Skills, a.Level, a.Rating, a.CommissionRate,
		a.TotalOrders, a.CompletedOrders, a.RejectedOrders, a.Balance, a.TotalEarnings,
		string(a.Status), a.Active, a.Suspended, nilIfEmpty(a.SuspendReason), a.SuspendedUntil, a.LastOnlineAt,
		a.CreatedAt, a.UpdatedAt,
	)
	created, err := scanAgent(row)
	if err != nil {
		return domainagent.Agent{}, fmt.Errorf("inserting agent: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainagent.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE id = $1`

	a, err := scanAgent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainagent.Agent{}, fmt.Errorf("agent %s: %w", id, portagent.ErrNotFound)
		}
		return domainagent.Agent{}, fmt.Errorf("querying agent: %w", err)
	}
	return a, nil
}

func (r *Repository) List(ctx context.Context, filters domainagent.ListFilters) ([]domainagent.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filters.Status))
		argIdx++
	}
	if filters.Active != nil {
		query += fmt.Sprintf(" AND active = $%d", argIdx)
		args = append(args, *filters.Active)
		argIdx++
	}
	if filters.Suspended != nil {
		query += fmt.Sprintf(" AND suspended = $%d", argIdx)
		args = append(args, *filters.Suspended)
		argIdx++
	}
	if filters.Skill != nil {
		query += fmt.Sprintf(" AND $%d = ANY(skills)", argIdx)
		args = append(args, *filters.Skill)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	defer rows.Close()

	return scanAgents(rows)
}

// FindCandidates implements port/agent.CandidateReader: eligible agents
// only, already-offered agents excluded, sorted by the distribution
// strategy so the first row is the next candidate.
func (r *Repository) FindCandidates(ctx context.Context, q portagent.CandidateQuery) ([]domainagent.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents
		WHERE active = TRUE AND suspended = FALSE AND status IN ('online', 'available')`

	args := []interface{}{}
	argIdx := 1

	if q.Category != "" {
		query += fmt.Sprintf(" AND $%d = ANY(skills)", argIdx)
		args = append(args, q.Category)
		argIdx++
	}
	if len(q.Exclude) > 0 {
		query += fmt.Sprintf(" AND NOT (id = ANY($%d))", argIdx)
		args = append(args, q.Exclude)
		argIdx++
	}

	query += " ORDER BY " + strategyOrder(q.Strategy) + " LIMIT 10"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding candidates: %w", err)
	}
	defer rows.Close()

	return scanAgents(rows)
}

// strategyOrder maps a distribution strategy to its candidate sort.
// Workload counts lifetime orders taken, not currently open ones, so an
// agent who has worked a lot stays at the back even when idle.
func strategyOrder(s domaindist.Strategy) string {
	switch s {
	case domaindist.StrategyWorkload:
		return "total_orders ASC, rating DESC"
	case domaindist.StrategyLevel:
		return "level DESC, rating DESC"
	case domaindist.StrategyRandom:
		return "last_online_at DESC NULLS LAST"
	default:
		return "rating DESC, completed_orders DESC"
	}
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domainagent.Status) error {
	now := time.Now().UTC()
	var query string
	var args []interface{}

	if status.Offerable() {
		query = `UPDATE agents SET status = $1, last_online_at = $2, updated_at = $2 WHERE id = $3`
		args = []interface{}{string(status), now, id}
	} else {
		query = `UPDATE agents SET status = $1, updated_at = $2 WHERE id = $3`
		args = []interface{}{string(status), now, id}
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating agent status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent %s: %w", id, portagent.ErrNotFound)
	}
	return nil
}

func (r *Repository) MarkAccepted(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE agents SET status = 'busy', total_orders = total_orders + 1, updated_at = NOW()
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marking agent accepted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent %s: %w", id, portagent.ErrNotFound)
	}
	return nil
}

func (r *Repository) IncrementRejected(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		UPDATE agents SET rejected_orders = rejected_orders + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING rejected_orders`, id).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("agent %s: %w", id, portagent.ErrNotFound)
		}
		return 0, fmt.Errorf("incrementing rejections: %w", err)
	}
	return count, nil
}

func (r *Repository) CreditCompletion(ctx context.Context, id uuid.UUID, amount float64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE agents SET status = 'available',
			completed_orders = completed_orders + 1,
			balance = balance + $1,
			total_earnings = total_earnings + $1,
			updated_at = NOW()
		WHERE id = $2`, amount, id)
	if err != nil {
		return fmt.Errorf("crediting completion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent %s: %w", id, portagent.ErrNotFound)
	}
	return nil
}

// Suspend also forces the agent offline so the candidate query never sees
// suspended-but-online rows.
func (r *Repository) Suspend(ctx context.Context, id uuid.UUID, reason string, until *time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE agents SET suspended = TRUE, suspend_reason = $1, suspended_until = $2,
			status = 'offline', updated_at = NOW()
		WHERE id = $3`, reason, until, id)
	if err != nil {
		return fmt.Errorf("suspending agent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent %s: %w", id, portagent.ErrNotFound)
	}
	return nil
}

func (r *Repository) Unsuspend(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE agents SET suspended = FALSE, suspend_reason = NULL, suspended_until = NULL, updated_at = NOW()
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unsuspending agent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent %s: %w", id, portagent.ErrNotFound)
	}
	return nil
}

func (r *Repository) SetRating(ctx context.Context, id uuid.UUID, rating float64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE agents SET rating = $1, updated_at = NOW() WHERE id = $2`, rating, id)
	if err != nil {
		return fmt.Errorf("setting agent rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("agent %s: %w", id, portagent.ErrNotFound)
	}
	return nil
}

func scanAgent(row pgx.Row) (domainagent.Agent, error) {
	var a domainagent.Agent
	var email, phone, suspendReason *string
	err := row.Scan(
		&a.ID, &a.Name, &email, &phone, &a.Skills, &a.Level, &a.Rating, &a.CommissionRate,
		&a.TotalOrders, &a.CompletedOrders, &a.RejectedOrders, &a.Balance, &a.TotalEarnings,
		&a.Status, &a.Active, &a.Suspended, &suspendReason, &a.SuspendedUntil, &a.LastOnlineAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domainagent.Agent{}, err
	}
	a.Email = deref(email)
	a.Phone = deref(phone)
	a.SuspendReason = deref(suspendReason)
	return a, nil
}

func scanAgents(rows pgx.Rows) ([]domainagent.Agent, error) {
	var agents []domainagent.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning agent row: %w", err)
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating agent rows: %w", err)
	}
	return agents, nil
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
