package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-os/internal/database"
	"career-os/internal/domain/progression"

	"github.com/jackc/pgx/v5"
)

var ErrUserMetricsNotFound = errors.New("user metrics not found")

// UpdateFunc transforms the current record into its successor. It runs inside
// the per-user critical section; it must not block on external calls.
type UpdateFunc func(m progression.Metrics) (progression.Metrics, error)

type UserMetricsRepository interface {
	// Get returns the persisted record. Reads never materialize a record;
	// unseen users yield ErrUserMetricsNotFound.
	Get(ctx context.Context, userID string) (progression.Metrics, error)

	// Update runs the read-modify-write cycle atomically for one user. A
	// previously unseen user id is materialized as a zeroed record before fn
	// runs.
	Update(ctx context.Context, userID string, fn UpdateFunc) (progression.Metrics, error)
}

type PostgresUserMetricsRepository struct {
	db database.DB
}

func NewPostgresUserMetricsRepository(db database.DB) *PostgresUserMetricsRepository {
	return &PostgresUserMetricsRepository{db: db}
}

const metricsColumns = `user_id, xp, level, rank, streak, total_assigned_tasks, total_completed_tasks, execution_score, last_submission_date`

func (r *PostgresUserMetricsRepository) Get(ctx context.Context, userID string) (progression.Metrics, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+metricsColumns+` FROM user_metrics WHERE user_id = $1`,
		userID,
	)
	m, err := scanMetrics(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return progression.Metrics{}, ErrUserMetricsNotFound
		}
		return progression.Metrics{}, err
	}
	return m, nil
}

// Update locks the user's row with SELECT ... FOR UPDATE so concurrent
// submissions for the same user serialize at the database even across
// processes. The row is inserted zeroed first if the user was never seen.
func (r *PostgresUserMetricsRepository) Update(ctx context.Context, userID string, fn UpdateFunc) (progression.Metrics, error) {
	if strings.TrimSpace(userID) == "" {
		return progression.Metrics{}, errors.New("empty user id")
	}
	if fn == nil {
		return progression.Metrics{}, errors.New("nil update func")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return progression.Metrics{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	zero := progression.NewMetrics(userID)
	if _, err := tx.Exec(ctx,
		`INSERT INTO user_metrics (user_id, xp, level, rank, streak, total_assigned_tasks, total_completed_tasks, execution_score, last_submission_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULL)
		 ON CONFLICT (user_id) DO NOTHING`,
		zero.UserID, zero.XP, zero.Level, string(zero.Rank), zero.Streak,
		zero.TotalAssignedTasks, zero.TotalCompletedTasks, zero.ExecutionScore,
	); err != nil {
		return progression.Metrics{}, err
	}

	row := tx.QueryRow(ctx,
		`SELECT `+metricsColumns+` FROM user_metrics WHERE user_id = $1 FOR UPDATE`,
		userID,
	)
	current, err := scanMetrics(row)
	if err != nil {
		return progression.Metrics{}, err
	}

	next, err := fn(current)
	if err != nil {
		return progression.Metrics{}, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE user_metrics
		 SET xp = $2, level = $3, rank = $4, streak = $5,
		     total_assigned_tasks = $6, total_completed_tasks = $7,
		     execution_score = $8, last_submission_date = $9, updated_at = now()
		 WHERE user_id = $1`,
		next.UserID, next.XP, next.Level, string(next.Rank), next.Streak,
		next.TotalAssignedTasks, next.TotalCompletedTasks, next.ExecutionScore,
		next.LastSubmission,
	); err != nil {
		return progression.Metrics{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return progression.Metrics{}, err
	}
	return next, nil
}

func scanMetrics(row database.Row) (progression.Metrics, error) {
	var m progression.Metrics
	var rank string
	var last *time.Time
	if err := row.Scan(
		&m.UserID, &m.XP, &m.Level, &rank, &m.Streak,
		&m.TotalAssignedTasks, &m.TotalCompletedTasks, &m.ExecutionScore, &last,
	); err != nil {
		return progression.Metrics{}, err
	}
	m.Rank = progression.Rank(rank)
	m.LastSubmission = last
	return m, nil
}

var _ UserMetricsRepository = (*PostgresUserMetricsRepository)(nil)
