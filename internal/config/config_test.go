package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDB = `
database:
  host: localhost
  name: testdb
  user: testuser
`

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
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, 10*time.Second, cfg.EventAPI.AuthTimeout)
				assert.Equal(t, 30*time.Second, cfg.EventAPI.EventTimeout)
				assert.InDelta(t, 10.0, cfg.EventAPI.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 20, cfg.EventAPI.RateLimit.Burst)
				assert.Zero(t, cfg.EventAPI.RateLimit.DailyLimit)
				assert.Equal(t, uint32(3), cfg.EventAPI.Breaker.MaxRequests)
				assert.InDelta(t, 0.5, cfg.EventAPI.Breaker.FailureThreshold, 0.001)
				assert.Equal(t, TokenStoreConfigBackend, cfg.TokenStore.Backend)
				assert.Equal(t, "*/15 * * * *", cfg.Schedule.Cron)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.LockTTL)
				assert.Equal(t, 1, cfg.Runner.Concurrency)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, "cart-abandonment-notifier", cfg.Tracing.ServiceName)
				assert.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0.001)
				assert.Equal(t, "UTC", cfg.Timezone)
				assert.Equal(t, SourceMemory, cfg.ConfigSource)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalDB + `  password: "${TEST_DB_PASSWORD}"
notifications:
  discord:
    enabled: true
    webhook_url: "${TEST_DISCORD_WEBHOOK}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD":     "secret123",
				"TEST_DISCORD_WEBHOOK": "https://discord.example.com/hook",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "https://discord.example.com/hook", cfg.Notifications.Discord.WebhookURL)
			},
		},
		{
			name: "scopes block parsed",
			yaml: minimalDB + `
scopes:
  - scope: default
    path: marketing/event_api/general/api_url
    value: https://mc.example.com/interaction/v1/events
  - scope: websites
    scope_id: 1
    path: marketing/event_api/cart_abandonment_alert/enabled
    value: "1"
  - scope: stores
    scope_id: 2
    website_id: 1
    path: checkout/cart/delete_quote_after
    value: "14"
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				require.Len(t, cfg.Scopes, 3)
				assert.Equal(t, ScopeValue{
					Scope:     ScopeStores,
					ScopeID:   2,
					WebsiteID: 1,
					Path:      "checkout/cart/delete_quote_after",
					Value:     "14",
				}, cfg.Scopes[2])
			},
		},
		{
			name: "redis token store",
			yaml: minimalDB + `
token_store:
  backend: redis
  key_prefix: can:tok
redis:
  addr: localhost:6379
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, TokenStoreRedisBackend, cfg.TokenStore.Backend)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
			},
		},
		{
			name: "timezone location",
			yaml: minimalDB + "timezone: Asia/Tokyo\n",
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "Asia/Tokyo", cfg.Location().String())
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
			name:    "invalid token store backend",
			yaml:    minimalDB + "token_store:\n  backend: memcached\n",
			wantErr: `token_store.backend must be one of: config, redis (got "memcached")`,
		},
		{
			name:    "redis backend missing addr",
			yaml:    minimalDB + "token_store:\n  backend: redis\n",
			wantErr: "redis.addr is required when token_store.backend is redis",
		},
		{
			name:    "invalid config source",
			yaml:    minimalDB + "config_source: etcd\n",
			wantErr: `config_source must be one of: memory, postgres (got "etcd")`,
		},
		{
			name:    "invalid cron expression",
			yaml:    minimalDB + "schedule:\n  cron: every quarter hour\n",
			wantErr: "schedule.cron",
		},
		{
			name:    "invalid timezone",
			yaml:    minimalDB + "timezone: Mars/Olympus\n",
			wantErr: `timezone "Mars/Olympus" is invalid`,
		},
		{
			name:    "negative concurrency",
			yaml:    minimalDB + "runner:\n  concurrency: -1\n",
			wantErr: "runner.concurrency must be at least 1",
		},
		{
			name:    "ses enabled without region",
			yaml:    minimalDB + "notifications:\n  ses:\n    enabled: true\n",
			wantErr: "notifications.ses.region is required when ses is enabled",
		},
		{
			name:    "discord enabled without webhook",
			yaml:    minimalDB + "notifications:\n  discord:\n    enabled: true\n",
			wantErr: "notifications.discord.webhook_url is required when discord is enabled",
		},
		{
			name:    "sample ratio out of range",
			yaml:    minimalDB + "tracing:\n  sample_ratio: 1.5\n",
			wantErr: "tracing.sample_ratio must be between 0 and 1",
		},
		{
			name:    "invalid scope kind",
			yaml:    minimalDB + "scopes:\n  - scope: global\n    path: a/b/c\n    value: x\n",
			wantErr: `scopes[0].scope must be one of: default, websites, stores (got "global")`,
		},
		{
			name:    "scope without path",
			yaml:    minimalDB + "scopes:\n  - scope: websites\n    scope_id: 1\n",
			wantErr: "scopes[0].path is required",
		},
		{
			name:    "default scope with id",
			yaml:    minimalDB + "scopes:\n  - scope: default\n    scope_id: 3\n    path: a/b/c\n",
			wantErr: "scopes[0].scope_id must be 0 for default scope",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			// Set env vars for this test.
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			// Write YAML to a temp file.
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
				Name:     "storefront",
				User:     "notifier",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=storefront user=notifier password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestConfig_LocationFallsBackToUTC(t *testing.T) {
	t.Parallel()

	cfg := &Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())
}
