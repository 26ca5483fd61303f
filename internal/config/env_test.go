package config

import (
	"testing"

	"taxifare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadEnvFrom(t *testing.T) {
	t.Run("missing warehouse id fails with a hint", func(t *testing.T) {
		_, err := LoadEnvFrom(envFrom(map[string]string{"DATABRICKS_HOST": "adb-1.azuredatabricks.net"}))
		require.Error(t, err)
		assert.True(t, domain.IsConfig(err))
		assert.Contains(t, err.Error(), "DATABRICKS_WAREHOUSE_ID")
		assert.Contains(t, err.Error(), "SQL Warehouses")
	})

	t.Run("blank warehouse id counts as missing", func(t *testing.T) {
		_, err := LoadEnvFrom(envFrom(map[string]string{
			"DATABRICKS_WAREHOUSE_ID": "   ",
			"DATABRICKS_HOST":         "adb-1.azuredatabricks.net",
		}))
		assert.True(t, domain.IsConfig(err))
	})

	t.Run("missing host", func(t *testing.T) {
		_, err := LoadEnvFrom(envFrom(map[string]string{"DATABRICKS_WAREHOUSE_ID": "abc123"}))
		require.Error(t, err)
		var cerr domain.ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "DATABRICKS_HOST", cerr.Key)
	})

	t.Run("databricks defaults", func(t *testing.T) {
		env, err := LoadEnvFrom(envFrom(map[string]string{
			"DATABRICKS_WAREHOUSE_ID": "abc123",
			"DATABRICKS_HOST":         "https://adb-1.azuredatabricks.net/",
			"DATABRICKS_TOKEN":        "dapi-x",
		}))
		require.NoError(t, err)
		assert.Equal(t, SourceDatabricks, env.DataSource)
		assert.Equal(t, "adb-1.azuredatabricks.net", env.Host)
		assert.Equal(t, "/sql/1.0/warehouses/abc123", env.HTTPPath())
		assert.Equal(t, DefaultQuery, env.Query)
		assert.Equal(t, ":8000", env.AppAddr)
	})

	t.Run("app port from platform", func(t *testing.T) {
		env, err := LoadEnvFrom(envFrom(map[string]string{
			"DATABRICKS_WAREHOUSE_ID": "abc123",
			"DATABRICKS_HOST":         "adb-1.azuredatabricks.net",
			"DATABRICKS_APP_PORT":     "8080",
		}))
		require.NoError(t, err)
		assert.Equal(t, ":8080", env.AppAddr)
	})

	t.Run("client id without secret", func(t *testing.T) {
		_, err := LoadEnvFrom(envFrom(map[string]string{
			"DATABRICKS_WAREHOUSE_ID": "abc123",
			"DATABRICKS_HOST":         "adb-1.azuredatabricks.net",
			"DATABRICKS_CLIENT_ID":    "sp",
		}))
		assert.True(t, domain.IsConfig(err))
	})

	t.Run("mysql source skips warehouse id", func(t *testing.T) {
		env, err := LoadEnvFrom(envFrom(map[string]string{
			"DATA_SOURCE":          "MySQL",
			"MYSQL_DSN":            "root@tcp(127.0.0.1:3306)/nyctaxi",
			"CORS_ALLOWED_ORIGINS": "http://a.test, ,http://b.test",
		}))
		require.NoError(t, err)
		assert.Equal(t, SourceMySQL, env.DataSource)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, env.CORSOrigins)
	})

	t.Run("origin without scheme", func(t *testing.T) {
		_, err := LoadEnvFrom(envFrom(map[string]string{
			"DATA_SOURCE":          "mysql",
			"MYSQL_DSN":            "root@tcp(127.0.0.1:3306)/nyctaxi",
			"CORS_ALLOWED_ORIGINS": "https://ok.test,example.com",
		}))
		require.Error(t, err)
		var cerr domain.ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "CORS_ALLOWED_ORIGINS", cerr.Key)
		assert.Contains(t, err.Error(), "example.com")
	})

	t.Run("mysql source needs dsn", func(t *testing.T) {
		_, err := LoadEnvFrom(envFrom(map[string]string{"DATA_SOURCE": "mysql"}))
		assert.True(t, domain.IsConfig(err))
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := LoadEnvFrom(envFrom(map[string]string{"DATA_SOURCE": "sqlite"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sqlite")
	})
}

func TestOpenDBMySQLDoesNotDial(t *testing.T) {
	db, err := OpenDB(Env{DataSource: SourceMySQL, MySQLDSN: "root@tcp(127.0.0.1:1)/nyctaxi"})
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
