package app

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/putpricer/config"
)

var pgConfig = config.Config{Postgres: config.PostgresConfig{User: "u", Password: "p", Host: "h", Port: 5432, DBName: "d", SSLMode: "disable"}}

// withMockOpener routes InitPostgres to a sqlmock handle and records what it was asked to open.
func withMockOpener(t *testing.T, setup func(sqlmock.Sqlmock)) (*sql.DB, sqlmock.Sqlmock, *[2]string) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	setup(mock)

	var opened [2]string
	old := sqlOpener
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		opened = [2]string{driverName, dataSourceName}
		return db, nil
	}
	t.Cleanup(func() { sqlOpener = old })
	return db, mock, &opened
}

func TestInitPostgres_OpenError(t *testing.T) {
	old := sqlOpener
	openErr := errors.New("open failed")
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		return nil, openErr
	}
	t.Cleanup(func() { sqlOpener = old })

	db, err := InitPostgres(pgConfig)
	if !errors.Is(err, openErr) || db != nil {
		t.Fatalf("want wrapped open error and nil db, got db=%v err=%v", db, err)
	}
}

func TestInitPostgres_PingErrorClosesHandle(t *testing.T) {
	_, mock, _ := withMockOpener(t, func(m sqlmock.Sqlmock) {
		m.ExpectPing().WillReturnError(errors.New("ping failed"))
		m.ExpectClose()
	})

	db, err := InitPostgres(pgConfig)
	if err == nil || db != nil {
		t.Fatalf("expected ping error and nil db, got db=%v err=%v", db, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("handle should be closed after failed ping: %v", err)
	}
}

func TestInitPostgres_SizesPool(t *testing.T) {
	want, mock, opened := withMockOpener(t, func(m sqlmock.Sqlmock) {
		m.ExpectPing()
	})
	t.Cleanup(func() { _ = want.Close() })

	db, err := InitPostgres(pgConfig)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if db != want {
		t.Fatalf("expected the opened handle to be returned")
	}
	if opened[0] != "postgres" || opened[1] != pgConfig.Postgres.DSN() {
		t.Fatalf("opened %q %q", opened[0], opened[1])
	}
	if got := db.Stats().MaxOpenConnections; got != 4 {
		t.Fatalf("max open connections=%d, want 4", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
