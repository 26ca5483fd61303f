package app

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	intconfig "taxifare/internal/config"
	"taxifare/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestLoadTableConfigErrorBeforeOpen(t *testing.T) {
	called := false
	open := func(intconfig.Env) (*sql.DB, error) {
		called = true
		return nil, errors.New("should not be called")
	}

	env := intconfig.Env{DataSource: intconfig.SourceDatabricks, Host: "adb-1.azuredatabricks.net", Query: intconfig.DefaultQuery}
	_, err := LoadTable(context.Background(), env, open)
	if !domain.IsConfig(err) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if called {
		t.Fatalf("opener called despite missing warehouse id")
	}
}

func TestLoadTableRunsQueryAndCloses(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(intconfig.DefaultQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"pickup_zip", "dropoff_zip", "trip_distance", "fare_amount"}).
			AddRow(int64(10003), int64(11238), 1.5, 8.0)).
		RowsWillBeClosed()
	mock.ExpectClose()

	env := intconfig.Env{
		DataSource:  intconfig.SourceDatabricks,
		WarehouseID: "abc123",
		Host:        "adb-1.azuredatabricks.net",
		Query:       intconfig.DefaultQuery,
	}
	var gotEnv intconfig.Env
	table, err := LoadTable(context.Background(), env, func(e intconfig.Env) (*sql.DB, error) {
		gotEnv = e
		return db, nil
	})
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("got %d trips want 1", table.Len())
	}
	if gotEnv.HTTPPath() != "/sql/1.0/warehouses/abc123" {
		t.Fatalf("opener got wrong env: %+v", gotEnv)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoadTableClosesOnQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	mock.ExpectQuery(regexp.QuoteMeta(intconfig.DefaultQuery)).WillReturnError(errors.New("PERMISSION_DENIED"))
	mock.ExpectClose()

	env := intconfig.Env{DataSource: intconfig.SourceMySQL, MySQLDSN: "dsn", Query: intconfig.DefaultQuery}
	_, err = LoadTable(context.Background(), env, func(intconfig.Env) (*sql.DB, error) { return db, nil })
	if !domain.IsQuery(err) {
		t.Fatalf("expected QueryError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("connection not closed: %v", err)
	}
}
