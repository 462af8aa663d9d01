package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all engine configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Provider  ProviderConfig  `mapstructure:"provider"`
	Delivery  DeliveryConfig  `mapstructure:"delivery"`
	Bulk      BulkConfig      `mapstructure:"bulk"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Alerts    AlertsConfig    `mapstructure:"alerts"`
	Auth      AuthConfig      `mapstructure:"auth"`
	AES       AESConfig       `mapstructure:"aes"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ProviderConfig covers the inbound payment-provider webhook.
type ProviderConfig struct {
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// DeliveryConfig tunes the outbound callback delivery engine.
type DeliveryConfig struct {
	Timeout     time.Duration   `mapstructure:"timeout"`
	MaxAttempts int             `mapstructure:"max_attempts"`
	RetryDelays []time.Duration `mapstructure:"retry_delays"`
}

// BulkConfig tunes the bulk operation processor.
type BulkConfig struct {
	ChunkSize int `mapstructure:"chunk_size"`
}

// SchedulerConfig tunes the periodic sweeps.
type SchedulerConfig struct {
	SweepInterval       time.Duration `mapstructure:"sweep_interval"`
	RenewalWindow       time.Duration `mapstructure:"renewal_window"`
	NotificationOffsets []int         `mapstructure:"notification_offsets"`
}

// AlertsConfig holds health monitor thresholds. Critical bands are derived
// by the monitor (2.5x the warning threshold).
type AlertsConfig struct {
	Window                 time.Duration `mapstructure:"window"`
	MaxFailedRenewalRatio  float64       `mapstructure:"max_failed_renewal_ratio"`
	MaxResponseTimeMs      float64       `mapstructure:"max_response_time_ms"`
	MaxErrorRate           float64       `mapstructure:"max_error_rate"`
	MaxSuspendedRatio      float64       `mapstructure:"max_suspended_ratio"`
	OpsWebhookURL          string        `mapstructure:"ops_webhook_url"`
	OpsNotifyTimeout       time.Duration `mapstructure:"ops_notify_timeout"`
	CriticalSeverityFactor float64       `mapstructure:"critical_severity_factor"`
}

// AuthConfig covers internal API service tokens.
type AuthConfig struct {
	ServiceTokenSecret string `mapstructure:"service_token_secret"`
	Issuer             string `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SAE_.
// Nested keys use underscore: SAE_DATABASE_HOST, SAE_PROVIDER_WEBHOOK_SECRET.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "subscription_engine")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("provider.webhook_secret", "")
	v.SetDefault("delivery.timeout", "10s")
	v.SetDefault("delivery.max_attempts", 3)
	v.SetDefault("delivery.retry_delays", []string{"1s", "5s", "15s"})
	v.SetDefault("bulk.chunk_size", 50)
	v.SetDefault("scheduler.sweep_interval", "5m")
	v.SetDefault("scheduler.renewal_window", "168h") // 7 days
	v.SetDefault("scheduler.notification_offsets", []int{30, 15, 7, 3, 1})
	v.SetDefault("alerts.window", "24h")
	v.SetDefault("alerts.max_failed_renewal_ratio", 0.05)
	v.SetDefault("alerts.max_response_time_ms", 2000)
	v.SetDefault("alerts.max_error_rate", 0.1)
	v.SetDefault("alerts.max_suspended_ratio", 0.2)
	v.SetDefault("alerts.ops_webhook_url", "")
	v.SetDefault("alerts.ops_notify_timeout", "5s")
	v.SetDefault("alerts.critical_severity_factor", 2.5)
	v.SetDefault("auth.service_token_secret", "")
	v.SetDefault("auth.issuer", "subscription-automation-engine")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SAE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SAE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
