package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/proveedores-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir()) // sin .env

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "proveedores-service", cfg.App.Name)
	assert.Equal(t, config.StorageDriverPostgres, cfg.App.StorageDriver)
	assert.Equal(t, 8003, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8003", cfg.HTTP.Addr())
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.False(t, cfg.Suppliers.StrictNIT)
	assert.Equal(t, 10, cfg.GraphQL.MaxDepth)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("SUPPLIER_STRICT_NIT", "true")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("GRAPHQL_MAX_DEPTH", "6")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.StorageDriverMemory, cfg.App.StorageDriver)
	assert.True(t, cfg.Suppliers.StrictNIT)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 6, cfg.GraphQL.MaxDepth)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "proveedores", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/proveedores?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro@host/db"
	assert.Equal(t, "postgres://otro@host/db", c.ConnectionString())
}
