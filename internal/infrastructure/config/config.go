package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/civicdesk/civicdesk/internal/shared/config"
	"github.com/civicdesk/civicdesk/internal/shared/constants"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit"`
	Issues    sharedConfig.IssuesConfig    `mapstructure:"issues"`
	Analytics sharedConfig.AnalyticsConfig `mapstructure:"analytics"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (or configPath when set), applies
// CIVICDESK_* environment overrides and fills defaults. Without an explicit
// path a missing file is not an error.
func Load(env, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	// CIVICDESK_DATABASE_HOST overrides database.host
	v.SetEnvPrefix("CIVICDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case sharedConfig.DriverMySQL, sharedConfig.DriverPostgres, sharedConfig.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Issues.DefaultListLimit < 1 || c.Issues.MaxListLimit < c.Issues.DefaultListLimit {
		return fmt.Errorf("issues.default_list_limit must be between 1 and issues.max_list_limit")
	}
	if c.Redis.Enabled {
		if c.RateLimit.Requests < 1 {
			return fmt.Errorf("rate_limit.requests must be at least 1 when redis is enabled")
		}
		if c.RateLimit.WindowSeconds < 1 {
			return fmt.Errorf("rate_limit.window_seconds must be at least 1 when redis is enabled")
		}
	}
	if c.Analytics.DefaultTrendDays < 1 || c.Analytics.MaxTrendDays < c.Analytics.DefaultTrendDays {
		return fmt.Errorf("analytics.default_trend_days must be between 1 and analytics.max_trend_days")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", constants.EnvDevelopment)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.timezone", "UTC")
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 15)

	// Database defaults
	v.SetDefault("database.driver", sharedConfig.DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "civicdesk_dev")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.path", "civicdesk.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.requests", 60)
	v.SetDefault("rate_limit.window_seconds", 60)

	v.SetDefault("issues.strict_transitions", false)
	v.SetDefault("issues.default_list_limit", constants.DefaultListLimit)
	v.SetDefault("issues.max_list_limit", constants.MaxListLimit)

	v.SetDefault("analytics.fallback_avg_resolution_days", 2.3)
	v.SetDefault("analytics.fallback_department_resolution", "2.5 days")
	v.SetDefault("analytics.default_trend_days", constants.DefaultTrendDays)
	v.SetDefault("analytics.max_trend_days", constants.MaxTrendDays)
}
