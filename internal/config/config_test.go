package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.False(t, cfg.GRPC.Enabled)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, DriverMySQL, cfg.Database.DatabaseDriver())
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, EnvDevelopment, cfg.Env())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DOTFLIK_SERVER_ADDRESS", ":9999")
	t.Setenv("DOTFLIK_DATABASE_DRIVER", "postgres")
	t.Setenv("DOTFLIK_DATABASE_PORT", "5432")
	t.Setenv("DOTFLIK_PAGINATION_MAX_PAGE_SIZE", "25")
	t.Setenv("DOTFLIK_ENVIRONMENT", "production")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Address)
	assert.Equal(t, DriverPostgres, cfg.Database.DatabaseDriver())
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Pagination.MaxPageSize)
	assert.True(t, cfg.Env().IsProduction())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotflik.yaml")
	content := `
database:
  driver: sqlite
  path: /tmp/dotflik.db
grpc:
  enabled: true
  address: ":7070"
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.DatabaseDriver())
	assert.Equal(t, "/tmp/dotflik.db", cfg.Database.Path)
	assert.True(t, cfg.GRPC.Enabled)
	assert.Equal(t, ":7070", cfg.GRPC.Address)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:      ServerConfig{Address: ":8080"},
			Database:    DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, User: "u", Password: "p", Name: "n"},
			Pagination:  PaginationConfig{MaxPageSize: 50},
			LogLevel:    "info",
			Environment: "development",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, "Config.Database.Driver"},
		{"port out of range", func(c *Config) { c.Database.Port = 70000 }, "Config.Database.Port"},
		{"missing host", func(c *Config) { c.Database.Host = "" }, "Config.Database.Host"},
		{"sqlite needs path", func(c *Config) { c.Database = DatabaseConfig{Driver: "sqlite"} }, "Config.Database.Path"},
		{"sqlite without host", func(c *Config) { c.Database = DatabaseConfig{Driver: "sqlite", Path: "x.db"} }, ""},
		{"zero max page size", func(c *Config) { c.Pagination.MaxPageSize = 0 }, "Config.Pagination.MaxPageSize"},
		{"grpc without address", func(c *Config) { c.GRPC = GRPCConfig{Enabled: true} }, "Config.GRPC.Address"},
		{"bad environment", func(c *Config) { c.Environment = "staging" }, "Config.Environment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
