// Package config loads service configuration from YAML and the environment
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

// Config is the full service configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Redis    RedisConfig    `yaml:"redis"`
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

// ServerConfig holds the listener settings
type ServerConfig struct {
	GRPCPort        int     `yaml:"grpc_port"`
	MetricsPort     int     `yaml:"metrics_port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	ShutdownSeconds int     `yaml:"shutdown_seconds"`

	ShutdownTimeout time.Duration `yaml:"-"`
}

// LogConfig selects the logger mode and level
type LogConfig struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

// RedisConfig holds the redis connection settings
type RedisConfig struct {
	Endpoint           string `yaml:"endpoint"`
	Password           string `yaml:"password"`
	DB                 int    `yaml:"db"`
	PoolSize           int    `yaml:"pool_size"`
	DialTimeoutSeconds int    `yaml:"dial_timeout_seconds"`
	UseTLS             bool   `yaml:"use_tls"`
}

// DatabaseConfig holds the catalog database settings
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	AutoMigrate            bool   `yaml:"auto_migrate"`
	Debug                  bool   `yaml:"debug"`
}

// CatalogConfig holds the catalog cache and seed settings
type CatalogConfig struct {
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	SeedPath        string `yaml:"seed_path"`
}

// ScheduleConfig bounds recurrence expansion
type ScheduleConfig struct {
	MaxOccurrences int `yaml:"max_occurrences"`
}

// Load reads configuration from path. A .env file in the working directory is
// loaded first when present, and ${VAR} references in the YAML are expanded
// from the environment. An empty path yields defaults plus environment
// overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // nolint:errcheck // .env is optional

	cfg := &Config{}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), cfg); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("RAIDPLANNER_REDIS_ENDPOINT"); v != "" {
		c.Redis.Endpoint = v
	}
	if v := os.Getenv("RAIDPLANNER_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("RAIDPLANNER_DATABASE_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("RAIDPLANNER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.GRPCPort == 0 {
		c.Server.GRPCPort = 50051
	}
	if c.Server.MetricsPort == 0 {
		c.Server.MetricsPort = 9090
	}
	if c.Server.RateLimitPerSec == 0 {
		c.Server.RateLimitPerSec = 50
	}
	if c.Server.RateLimitBurst == 0 {
		c.Server.RateLimitBurst = 100
	}
	if c.Server.ShutdownSeconds <= 0 {
		c.Server.ShutdownSeconds = 30
	}
	c.Server.ShutdownTimeout = time.Duration(c.Server.ShutdownSeconds) * time.Second

	if c.Log.Mode == "" {
		c.Log.Mode = "development"
	}
	if c.Redis.Endpoint == "" {
		c.Redis.Endpoint = "localhost:6379"
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
	if c.Redis.DialTimeoutSeconds == 0 {
		c.Redis.DialTimeoutSeconds = 5
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Catalog.CacheTTLSeconds == 0 {
		c.Catalog.CacheTTLSeconds = 600
	}
	if c.Schedule.MaxOccurrences == 0 {
		c.Schedule.MaxOccurrences = schedule.MaxOccurrences
	}
}

// Validate checks ranges after defaults are applied
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("server.grpc_port", c.Server.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("server.metrics_port", c.Server.MetricsPort, 1, 65535, vb)
	if c.Server.RateLimitPerSec < 0 {
		vb.Field("server.rate_limit_per_sec", "must not be negative")
	}
	if c.Server.RateLimitBurst < 0 {
		vb.Field("server.rate_limit_burst", "must not be negative")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		vb.Fieldf("database.driver", "unsupported driver %q", c.Database.Driver)
	}
	errors.ValidateRange("schedule.max_occurrences", c.Schedule.MaxOccurrences, 1, schedule.MaxOccurrences, vb)
	return vb.Build()
}

// DialTimeout returns the redis dial timeout
func (c RedisConfig) DialTimeout() time.Duration {
	return time.Duration(c.DialTimeoutSeconds) * time.Second
}

// ConnMaxLifetime returns the database connection lifetime, zero for unlimited
func (c DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeMinutes) * time.Minute
}

// CacheTTL returns the catalog cache lifetime
func (c CatalogConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
