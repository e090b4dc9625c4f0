package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guttosm/putpricer/internal/domain/models"
	pq "github.com/lib/pq"
)

// ErrSchemaMissing is returned when pricing_runs does not exist, usually
// because migrations have not been applied.
var ErrSchemaMissing = errors.New("pricing_runs table missing; run migrations")

// undefinedTable is the Postgres SQLSTATE for a missing relation.
const undefinedTable pq.ErrorCode = "42P01"

// RunsRepository defines contract for DB operations on pricing run history.
type RunsRepository interface {
	InsertRun(ctx context.Context, run models.PricingRun) error
	ListRecentRuns(ctx context.Context, limit int) ([]models.PricingRun, error)
}

type runsRepository struct {
	db *sql.DB
}

func NewRunsRepository(db *sql.DB) RunsRepository {
	return &runsRepository{db: db}
}

// InsertRun stores one run summary. created_at is taken from the run when
// set, otherwise the database default applies.
func (r *runsRepository) InsertRun(ctx context.Context, run models.PricingRun) error {
	var createdAt any
	if !run.CreatedAt.IsZero() {
		createdAt = run.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pricing_runs (
			id, kind, strike, risk_free_rate, dividend_yield, time_to_maturity,
			volatility, spot_count, min_value, max_value, elapsed_us, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, COALESCE($12, NOW()))
	`,
		run.ID,
		run.Kind,
		run.Strike,
		run.RiskFreeRate,
		run.DividendYield,
		run.TimeToMaturity,
		run.Volatility,
		run.SpotCount,
		run.MinValue,
		run.MaxValue,
		run.ElapsedMicros,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert pricing run %s: %w", run.ID, translate(err))
	}
	return nil
}

// ListRecentRuns returns up to limit runs, newest first.
func (r *runsRepository) ListRecentRuns(ctx context.Context, limit int) ([]models.PricingRun, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, strike, risk_free_rate, dividend_yield, time_to_maturity,
		       volatility, spot_count, min_value, max_value, elapsed_us, created_at
		FROM pricing_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list pricing runs: %w", translate(err))
	}
	defer func() { _ = rows.Close() }()

	runs := make([]models.PricingRun, 0, limit)
	for rows.Next() {
		var run models.PricingRun
		if err := rows.Scan(
			&run.ID,
			&run.Kind,
			&run.Strike,
			&run.RiskFreeRate,
			&run.DividendYield,
			&run.TimeToMaturity,
			&run.Volatility,
			&run.SpotCount,
			&run.MinValue,
			&run.MaxValue,
			&run.ElapsedMicros,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pricing run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pricing runs: %w", err)
	}
	return runs, nil
}

func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
		return ErrSchemaMissing
	}
	return err
}
