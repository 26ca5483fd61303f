package config

import (
	"fmt"
	"os"
	"strings"

	"taxifare/internal/domain"
)

const (
	SourceDatabricks = "databricks"
	SourceMySQL      = "mysql"

	// DefaultQuery depends on the nyctaxi sample data set in Unity Catalog.
	DefaultQuery = "select * from samples.nyctaxi.trips limit 5000"
)

const warehouseHint = "To use SQL, set DATABRICKS_WAREHOUSE_ID in app.yaml. You can find your SQL Warehouse ID by " +
	"navigating to SQL Warehouses, clicking on your warehouse, and then looking for the ID next to the Name."

type Env struct {
	AppAddr  string
	GinMode  string
	LogLevel string

	CORSOrigins []string

	DataSource   string
	Query        string
	WarehouseID  string
	Host         string
	Token        string
	ClientID     string
	ClientSecret string
	MySQLDSN     string
}

// HTTPPath is the warehouse endpoint path on the Databricks host.
func (e Env) HTTPPath() string {
	return "/sql/1.0/warehouses/" + e.WarehouseID
}

// LoadEnv reads the process environment.
func LoadEnv() (Env, error) {
	return LoadEnvFrom(os.Getenv)
}

// LoadEnvFrom builds the Env from getenv and validates it. It never touches the network.
func LoadEnvFrom(getenv func(string) string) (Env, error) {
	get := func(k string) string { return strings.TrimSpace(getenv(k)) }

	appAddr := get("APP_ADDR")
	if appAddr == "" {
		if port := get("DATABRICKS_APP_PORT"); port != "" {
			appAddr = ":" + port
		} else {
			appAddr = ":8000"
		}
	}

	source := strings.ToLower(get("DATA_SOURCE"))
	if source == "" {
		source = SourceDatabricks
	}

	query := get("TRIPS_QUERY")
	if query == "" {
		query = DefaultQuery
	}

	env := Env{
		AppAddr:      appAddr,
		GinMode:      get("GIN_MODE"),
		LogLevel:     get("LOG_LEVEL"),
		CORSOrigins:  splitList(get("CORS_ALLOWED_ORIGINS")),
		DataSource:   source,
		Query:        query,
		WarehouseID:  get("DATABRICKS_WAREHOUSE_ID"),
		Host:         stripScheme(get("DATABRICKS_HOST")),
		Token:        get("DATABRICKS_TOKEN"),
		ClientID:     get("DATABRICKS_CLIENT_ID"),
		ClientSecret: get("DATABRICKS_CLIENT_SECRET"),
		MySQLDSN:     get("MYSQL_DSN"),
	}
	if err := env.Validate(); err != nil {
		return Env{}, err
	}
	return env, nil
}

func (e Env) Validate() error {
	for _, o := range e.CORSOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return domain.ConfigError{
				Key:  "CORS_ALLOWED_ORIGINS",
				Hint: fmt.Sprintf("CORS_ALLOWED_ORIGINS entry %q must start with http:// or https://", o),
			}
		}
	}
	switch e.DataSource {
	case SourceDatabricks:
		if e.WarehouseID == "" {
			return domain.ConfigError{Key: "DATABRICKS_WAREHOUSE_ID", Hint: warehouseHint}
		}
		if e.Host == "" {
			return domain.ConfigError{Key: "DATABRICKS_HOST", Hint: "set DATABRICKS_HOST to the workspace hostname"}
		}
		if e.ClientID != "" && e.ClientSecret == "" {
			return domain.ConfigError{Key: "DATABRICKS_CLIENT_SECRET", Hint: "DATABRICKS_CLIENT_ID is set but DATABRICKS_CLIENT_SECRET is empty"}
		}
	case SourceMySQL:
		if e.MySQLDSN == "" {
			return domain.ConfigError{Key: "MYSQL_DSN", Hint: "DATA_SOURCE=mysql requires MYSQL_DSN"}
		}
	default:
		return domain.ConfigError{
			Key:  "DATA_SOURCE",
			Hint: fmt.Sprintf("unknown DATA_SOURCE %q (want %s or %s)", e.DataSource, SourceDatabricks, SourceMySQL),
		}
	}
	return nil
}

func stripScheme(host string) string {
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimSuffix(host, "/")
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
