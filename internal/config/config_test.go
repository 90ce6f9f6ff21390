package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.False(t, cfg.Pricing.Enabled)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, time.Hour, cfg.Pricing.CacheMaxAge)
				assert.Equal(t, 3, cfg.Pricing.MinPeers)
				assert.Equal(t, 30, cfg.Pricing.HistorySnapshots)
				assert.Equal(t, 20, cfg.Pricing.HistoryAudits)
				assert.Equal(t, 62, cfg.Pricing.Defaults.QualityPercent)
				assert.Equal(t, "B", cfg.Pricing.Defaults.ComplexityTag)
				assert.InDelta(t, 50.0, cfg.Pricing.Defaults.CleaningCostUSD, 1e-9)
				assert.Equal(t, 1, cfg.Pricing.RepriceRate.Burst)
				assert.Equal(t, 24*time.Hour, cfg.Schedule.RepriceInterval)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.LockTTL)
				assert.Equal(t, "dataset-pricer", cfg.Telemetry.ServiceName)
				assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
cron:
  token: "${TEST_CRON_TOKEN}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
				"TEST_CRON_TOKEN":  "cron-abc",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "cron-abc", cfg.Cron.Token)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "invalid default complexity tag",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
pricing:
  defaults:
    complexity_tag: E
`,
			wantErr: `pricing.defaults.complexity_tag must be one of: A, B, C, D (got "E")`,
		},
		{
			name: "default quality out of range",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
pricing:
  defaults:
    quality_percent: 120
`,
			wantErr: "pricing.defaults.quality_percent must be between 0 and 100 (got 120)",
		},
		{
			name: "negative reprice rate",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
pricing:
  reprice_rate:
    per_second: -1
`,
			wantErr: "pricing.reprice_rate.per_second must not be negative",
		},
		{
			name: "reprice interval too short",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
schedule:
  reprice_interval: 10s
`,
			wantErr: "schedule.reprice_interval must be at least 1m (got 10s)",
		},
		{
			name: "webhook enabled without url",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
audit:
  webhook:
    enabled: true
`,
			wantErr: "audit.webhook.url must be an absolute URL",
		},
		{
			name: "multiple errors are joined",
			yaml: `
database:
  host: localhost
pricing:
  defaults:
    complexity_tag: Z
`,
			wantErr: "database.name is required\ndatabase.user is required\npricing.defaults.complexity_tag",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: pricer_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
pricing:
  enabled: true
  cache_max_age: 15m
  min_peers: 5
  history_snapshots: 10
  history_audits: 5
  defaults:
    quality_percent: 70
    complexity_tag: C
    cleaning_cost_usd: 80
  reprice_rate:
    per_second: 2.5
    burst: 4
schedule:
  reprice_interval: 6h
  lock_ttl: 1h
cron:
  token: s3cret
audit:
  webhook:
    enabled: true
    url: https://audit.example.com/events
    headers:
      Authorization: Bearer abc
telemetry:
  enabled: true
  endpoint: otel-collector:4317
  insecure: true
  service_name: pricer
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.True(t, cfg.Pricing.Enabled)
				assert.Equal(t, 15*time.Minute, cfg.Pricing.CacheMaxAge)
				assert.Equal(t, 5, cfg.Pricing.MinPeers)
				assert.Equal(t, 10, cfg.Pricing.HistorySnapshots)
				assert.Equal(t, 5, cfg.Pricing.HistoryAudits)
				assert.Equal(t, 70, cfg.Pricing.Defaults.QualityPercent)
				assert.Equal(t, "C", cfg.Pricing.Defaults.ComplexityTag)
				assert.InDelta(t, 2.5, cfg.Pricing.RepriceRate.PerSecond, 1e-9)
				assert.Equal(t, 4, cfg.Pricing.RepriceRate.Burst)
				assert.Equal(t, 6*time.Hour, cfg.Schedule.RepriceInterval)
				assert.Equal(t, time.Hour, cfg.Schedule.LockTTL)
				assert.Equal(t, "s3cret", cfg.Cron.Token)
				assert.True(t, cfg.Audit.Webhook.Enabled)
				assert.Equal(t, "Bearer abc", cfg.Audit.Webhook.Headers["Authorization"])
				assert.True(t, cfg.Telemetry.Enabled)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.Equal(t, "pricer", cfg.Telemetry.ServiceName)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "testdb",
				User:     "testuser",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=testdb user=testuser password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "pricer",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=pricer user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
