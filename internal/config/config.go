// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Pricing   PricingConfig   `yaml:"pricing"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Cron      CronConfig      `yaml:"cron"`
	Audit     AuditConfig     `yaml:"audit"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
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

// PricingConfig controls the recommendation engine.
type PricingConfig struct {
	// Enabled gates every pricing route. When false they answer 404.
	Enabled          bool              `yaml:"enabled"`
	CacheMaxAge      time.Duration     `yaml:"cache_max_age"`
	MinPeers         int               `yaml:"min_peers"`
	HistorySnapshots int               `yaml:"history_snapshots"`
	HistoryAudits    int               `yaml:"history_audits"`
	Defaults         AssessmentDefault `yaml:"defaults"`
	RepriceRate      RateConfig        `yaml:"reprice_rate"`
}

// AssessmentDefault is the assessment assumed for unassessed items.
type AssessmentDefault struct {
	QualityPercent  int     `yaml:"quality_percent"`
	ComplexityTag   string  `yaml:"complexity_tag"`
	CleaningCostUSD float64 `yaml:"cleaning_cost_usd"`
}

// RateConfig throttles the batch repricer. PerSecond 0 means unthrottled.
type RateConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	RepriceInterval time.Duration `yaml:"reprice_interval"`
	LockTTL         time.Duration `yaml:"lock_ttl"`
}

// CronConfig secures the HTTP reprice trigger.
type CronConfig struct {
	Token string `yaml:"token"`
}

// AuditConfig selects where price change events are sent.
type AuditConfig struct {
	Webhook WebhookConfig `yaml:"webhook"`
}

// WebhookConfig defines generic webhook settings.
type WebhookConfig struct {
	Enabled bool              `yaml:"enabled"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers"`
}

// TelemetryConfig defines OTLP export settings.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

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

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyPricingDefaults(&cfg.Pricing)
	applyScheduleDefaults(&cfg.Schedule)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
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

func applyPricingDefaults(p *PricingConfig) {
	if p.CacheMaxAge == 0 {
		p.CacheMaxAge = time.Hour
	}
	if p.MinPeers == 0 {
		p.MinPeers = 3
	}
	if p.HistorySnapshots == 0 {
		p.HistorySnapshots = 30
	}
	if p.HistoryAudits == 0 {
		p.HistoryAudits = 20
	}
	if p.Defaults.QualityPercent == 0 {
		p.Defaults.QualityPercent = 62
	}
	if p.Defaults.ComplexityTag == "" {
		p.Defaults.ComplexityTag = string(domain.ComplexityB)
	}
	if p.Defaults.CleaningCostUSD == 0 {
		p.Defaults.CleaningCostUSD = 50
	}
	if p.RepriceRate.Burst == 0 {
		p.RepriceRate.Burst = 1
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.RepriceInterval == 0 {
		s.RepriceInterval = 24 * time.Hour
	}
	if s.LockTTL == 0 {
		s.LockTTL = 30 * time.Minute
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "dataset-pricer"
	}
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
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

	p := cfg.Pricing
	if p.Defaults.QualityPercent < 0 || p.Defaults.QualityPercent > 100 {
		errs = append(errs, fmt.Errorf(
			"pricing.defaults.quality_percent must be between 0 and 100 (got %d)",
			p.Defaults.QualityPercent,
		))
	}
	if !domain.ComplexityTag(p.Defaults.ComplexityTag).Valid() {
		errs = append(errs, fmt.Errorf(
			"pricing.defaults.complexity_tag must be one of: A, B, C, D (got %q)",
			p.Defaults.ComplexityTag,
		))
	}
	if p.Defaults.CleaningCostUSD < 0 {
		errs = append(errs, fmt.Errorf("pricing.defaults.cleaning_cost_usd must not be negative"))
	}
	if p.RepriceRate.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("pricing.reprice_rate.per_second must not be negative"))
	}

	if cfg.Schedule.RepriceInterval < time.Minute {
		errs = append(errs, fmt.Errorf(
			"schedule.reprice_interval must be at least 1m (got %s)",
			cfg.Schedule.RepriceInterval,
		))
	}

	if cfg.Audit.Webhook.Enabled {
		if u, err := url.Parse(cfg.Audit.Webhook.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("audit.webhook.url must be an absolute URL when the webhook is enabled"))
		}
	}

	return errors.Join(errs...)
}
