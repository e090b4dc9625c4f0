package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/guttosm/putpricer/internal/domain/models"
	pq "github.com/lib/pq"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

var runColumns = []string{
	"id", "kind", "strike", "risk_free_rate", "dividend_yield", "time_to_maturity",
	"volatility", "spot_count", "min_value", "max_value", "elapsed_us", "created_at",
}

func newMockRepo(t *testing.T) (*runsRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &runsRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func sampleRun() models.PricingRun {
	return models.PricingRun{
		ID:             uuid.MustParse("1f0e4a52-8d2b-4c4e-9a55-0b2f3d8c7e11"),
		Kind:           "put",
		Strike:         60,
		RiskFreeRate:   0.01,
		DividendYield:  0.02,
		TimeToMaturity: 1,
		Volatility:     0.05,
		SpotCount:      3,
		MinValue:       0,
		MaxValue:       59.403,
		ElapsedMicros:  17,
	}
}

func TestInsertRun_SQLMock(t *testing.T) {
	at := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name      string
		createdAt time.Time
		wantAt    any
		execErr   error
		wantErr   error
	}{
		{name: "db default timestamp", createdAt: time.Time{}, wantAt: nil},
		{name: "explicit timestamp", createdAt: at, wantAt: at},
		{name: "missing table", wantAt: nil, execErr: &pq.Error{Code: "42P01"}, wantErr: ErrSchemaMissing},
		{name: "other error", wantAt: nil, execErr: dummyErr{}, wantErr: dummyErr{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockRepo(t)
			defer done()

			run := sampleRun()
			run.CreatedAt = tc.createdAt

			exp := mock.ExpectExec(`INSERT INTO pricing_runs`).
				WithArgs(run.ID.String(), "put", 60.0, 0.01, 0.02, 1.0, 0.05, 3, 0.0, 59.403, int64(17), tc.wantAt)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.InsertRun(context.Background(), run)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestListRecentRuns_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	newer := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	id1, id2 := uuid.New(), uuid.New()

	rows := sqlmock.NewRows(runColumns).
		AddRow(id1.String(), "put", 60.0, 0.01, 0.02, 1.0, 0.05, int64(3), 0.0, 59.4, int64(10), newer).
		AddRow(id2.String(), "call", 100.0, 0.05, 0.0, 0.5, 0.2, int64(1000), 0.1, 20.0, int64(900), older)

	mock.ExpectQuery(`SELECT .* FROM pricing_runs\s+ORDER BY created_at DESC\s+LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(rows)

	out, err := repo.ListRecentRuns(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 runs, got %d", len(out))
	}
	if out[0].ID != id1 || out[0].SpotCount != 3 || !out[0].CreatedAt.Equal(newer) {
		t.Fatalf("unexpected first row %+v", out[0])
	}
	if out[1].Kind != "call" || out[1].ElapsedMicros != 900 {
		t.Fatalf("unexpected second row %+v", out[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRecentRuns_Errors(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		repo, mock, done := newMockRepo(t)
		defer done()
		mock.ExpectQuery(`SELECT`).WithArgs(5).WillReturnError(&pq.Error{Code: "42P01"})

		_, err := repo.ListRecentRuns(context.Background(), 5)
		if !errors.Is(err, ErrSchemaMissing) {
			t.Fatalf("want ErrSchemaMissing, got %v", err)
		}
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock, done := newMockRepo(t)
		defer done()
		rows := sqlmock.NewRows(runColumns).
			AddRow("not-a-uuid", "put", 1.0, 0.0, 0.0, 1.0, 0.1, int64(1), 0.0, 1.0, int64(1), time.Now())
		mock.ExpectQuery(`SELECT`).WithArgs(5).WillReturnRows(rows)

		if _, err := repo.ListRecentRuns(context.Background(), 5); err == nil {
			t.Fatalf("expected scan error")
		}
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock, done := newMockRepo(t)
		defer done()
		rows := sqlmock.NewRows(runColumns).
			AddRow(uuid.NewString(), "put", 1.0, 0.0, 0.0, 1.0, 0.1, int64(1), 0.0, 1.0, int64(1), time.Now()).
			RowError(0, dummyErr{})
		mock.ExpectQuery(`SELECT`).WithArgs(5).WillReturnRows(rows)

		if _, err := repo.ListRecentRuns(context.Background(), 5); err == nil {
			t.Fatalf("expected row error")
		}
	})
}
