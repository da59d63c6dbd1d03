// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	EventAPI      EventAPIConfig      `yaml:"event_api"`
	TokenStore    TokenStoreConfig    `yaml:"token_store"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Runner        RunnerConfig        `yaml:"runner"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
	Tracing       TracingConfig       `yaml:"tracing"`

	// Timezone is the zone of storefront dates and payload timestamps.
	Timezone string `yaml:"timezone"`

	// ConfigSource selects where scoped business settings are read from:
	// "memory" (the scopes block below) or "postgres" (scope_config table).
	ConfigSource string       `yaml:"config_source"`
	Scopes       []ScopeValue `yaml:"scopes"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// RedisConfig defines the Redis connection used by the redis token store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// EventAPIConfig tunes the outbound event and authentication calls.
type EventAPIConfig struct {
	AuthTimeout  time.Duration   `yaml:"auth_timeout"`
	EventTimeout time.Duration   `yaml:"event_timeout"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
	Breaker      BreakerConfig   `yaml:"breaker"`
}

// RateLimitConfig defines event API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"` // 0 disables the quota
}

// BreakerConfig defines the event API circuit breaker.
type BreakerConfig struct {
	MaxRequests      uint32        `yaml:"max_requests"`
	Interval         time.Duration `yaml:"interval"`
	Timeout          time.Duration `yaml:"timeout"`
	FailureThreshold float64       `yaml:"failure_threshold"`
	MinRequests      uint32        `yaml:"min_requests"`
}

// Token store backends.
const (
	TokenStoreConfigBackend = "config"
	TokenStoreRedisBackend  = "redis"
)

// TokenStoreConfig selects where access tokens are cached between runs.
type TokenStoreConfig struct {
	Backend   string `yaml:"backend"` // config, redis
	KeyPrefix string `yaml:"key_prefix"`
}

// ScheduleConfig defines when the abandonment job runs.
type ScheduleConfig struct {
	// Cron is a robfig/cron expression, e.g. "*/15 * * * *" or "@every 15m".
	Cron       string        `yaml:"cron"`
	LockTTL    time.Duration `yaml:"lock_ttl"`
	RunOnStart bool          `yaml:"run_on_start"`
}

// RunnerConfig bounds one run.
type RunnerConfig struct {
	Concurrency    int `yaml:"concurrency"`
	CandidateLimit int `yaml:"candidate_limit"` // 0 means no cap
}

// NotificationsConfig defines operator summary targets.
type NotificationsConfig struct {
	SES     SESConfig     `yaml:"ses"`
	Discord DiscordConfig `yaml:"discord"`
}

// SESConfig defines Amazon SES templated email settings.
type SESConfig struct {
	Enabled bool   `yaml:"enabled"`
	Region  string `yaml:"region"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TracingConfig defines the OTLP trace exporter. An empty endpoint disables
// export.
type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Scope kinds accepted in the scopes block.
const (
	ScopeDefault  = "default"
	ScopeWebsites = "websites"
	ScopeStores   = "stores"
)

// ScopeValue seeds one scoped business setting.
type ScopeValue struct {
	Scope     string `yaml:"scope"`
	ScopeID   int64  `yaml:"scope_id"`
	WebsiteID int64  `yaml:"website_id"` // stores only
	Path      string `yaml:"path"`
	Value     string `yaml:"value"`
}

// Config sources.
const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
)

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Location returns the configured zone. validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyEventAPIDefaults(&cfg.EventAPI)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)

	if cfg.TokenStore.Backend == "" {
		cfg.TokenStore.Backend = TokenStoreConfigBackend
	}
	if cfg.Runner.Concurrency == 0 {
		cfg.Runner.Concurrency = 1
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = "cart-abandonment-notifier"
	}
	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = 1.0
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if cfg.ConfigSource == "" {
		cfg.ConfigSource = SourceMemory
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyEventAPIDefaults(e *EventAPIConfig) {
	if e.AuthTimeout == 0 {
		e.AuthTimeout = 10 * time.Second
	}
	if e.EventTimeout == 0 {
		e.EventTimeout = 30 * time.Second
	}
	if e.RateLimit.PerSecond == 0 {
		e.RateLimit.PerSecond = 10.0
	}
	if e.RateLimit.Burst == 0 {
		e.RateLimit.Burst = 20
	}

	b := &e.Breaker
	if b.MaxRequests == 0 {
		b.MaxRequests = 3
	}
	if b.Interval == 0 {
		b.Interval = 60 * time.Second
	}
	if b.Timeout == 0 {
		b.Timeout = 120 * time.Second
	}
	if b.FailureThreshold == 0 {
		b.FailureThreshold = 0.5
	}
	if b.MinRequests == 0 {
		b.MinRequests = 5
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.Cron == "" {
		s.Cron = "*/15 * * * *"
	}
	if s.LockTTL == 0 {
		s.LockTTL = 30 * time.Minute
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	switch cfg.TokenStore.Backend {
	case TokenStoreConfigBackend:
	case TokenStoreRedisBackend:
		if cfg.Redis.Addr == "" {
			errs = append(errs, fmt.Errorf("redis.addr is required when token_store.backend is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"token_store.backend must be one of: config, redis (got %q)",
			cfg.TokenStore.Backend,
		))
	}

	switch cfg.ConfigSource {
	case SourceMemory, SourcePostgres:
	default:
		errs = append(errs, fmt.Errorf(
			"config_source must be one of: memory, postgres (got %q)",
			cfg.ConfigSource,
		))
	}

	if _, err := cron.ParseStandard(cfg.Schedule.Cron); err != nil {
		errs = append(errs, fmt.Errorf("schedule.cron %q is invalid: %w", cfg.Schedule.Cron, err))
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone %q is invalid: %w", cfg.Timezone, err))
	}

	if cfg.Runner.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("runner.concurrency must be at least 1"))
	}
	if cfg.Runner.CandidateLimit < 0 {
		errs = append(errs, fmt.Errorf("runner.candidate_limit must not be negative"))
	}

	if cfg.Notifications.SES.Enabled && cfg.Notifications.SES.Region == "" {
		errs = append(errs, fmt.Errorf("notifications.ses.region is required when ses is enabled"))
	}
	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf(
			"notifications.discord.webhook_url is required when discord is enabled",
		))
	}

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be between 0 and 1"))
	}

	for i, sv := range cfg.Scopes {
		errs = append(errs, validateScope(i, sv)...)
	}

	return errors.Join(errs...)
}

func validateScope(i int, sv ScopeValue) []error {
	var errs []error
	if sv.Path == "" {
		errs = append(errs, fmt.Errorf("scopes[%d].path is required", i))
	}
	switch sv.Scope {
	case ScopeDefault:
		if sv.ScopeID != 0 {
			errs = append(errs, fmt.Errorf("scopes[%d].scope_id must be 0 for default scope", i))
		}
	case ScopeWebsites, ScopeStores:
	default:
		errs = append(errs, fmt.Errorf(
			"scopes[%d].scope must be one of: default, websites, stores (got %q)",
			i, sv.Scope,
		))
	}
	return errs
}
