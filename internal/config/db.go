package config

import (
	"database/sql"
	"fmt"

	"taxifare/internal/domain"

	dbsql "github.com/databricks/databricks-sql-go"
	"github.com/databricks/databricks-sql-go/auth/oauth/m2m"
	_ "github.com/go-sql-driver/mysql"
)

// Opener opens the handle the startup query runs on. The caller owns the
// returned *sql.DB and must Close it.
type Opener func(env Env) (*sql.DB, error)

// OpenDB picks the driver for env.DataSource. Nothing is dialed until the
// first query; credential problems surface there.
func OpenDB(env Env) (*sql.DB, error) {
	switch env.DataSource {
	case SourceMySQL:
		db, err := sql.Open("mysql", env.MySQLDSN)
		if err != nil {
			return nil, domain.QueryError{Op: "open", Err: err}
		}
		db.SetMaxOpenConns(1)
		return db, nil
	case SourceDatabricks:
		return openWarehouse(env)
	default:
		return nil, env.Validate()
	}
}

func openWarehouse(env Env) (*sql.DB, error) {
	opts := []dbsql.ConnOption{
		dbsql.WithServerHostname(env.Host),
		dbsql.WithPort(443),
		dbsql.WithHTTPPath(env.HTTPPath()),
		dbsql.WithUserAgentEntry("taxifare"),
	}
	switch {
	case env.ClientID != "":
		opts = append(opts, dbsql.WithAuthenticator(m2m.NewAuthenticator(env.ClientID, env.ClientSecret, env.Host)))
	case env.Token != "":
		opts = append(opts, dbsql.WithAccessToken(env.Token))
	}

	connector, err := dbsql.NewConnector(opts...)
	if err != nil {
		return nil, domain.QueryError{Op: "connect", Err: fmt.Errorf("warehouse %s: %w", env.WarehouseID, err)}
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)
	return db, nil
}
