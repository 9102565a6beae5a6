package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "zelo/internal/shared/config"
)

type Config struct {
	Server         sharedConfig.ServerConfig         `mapstructure:"server"`
	Database       sharedConfig.DatabaseConfig       `mapstructure:"database"`
	Logger         sharedConfig.LoggerConfig         `mapstructure:"logger"`
	Auth           sharedConfig.AuthConfig           `mapstructure:"auth"`
	Email          sharedConfig.EmailConfig          `mapstructure:"email"`
	Redis          sharedConfig.RedisConfig          `mapstructure:"redis"`
	SupplierPortal sharedConfig.SupplierPortalConfig `mapstructure:"supplier_portal"`
	Storage        sharedConfig.StorageConfig        `mapstructure:"storage"`
	Reminder       sharedConfig.ReminderConfig       `mapstructure:"reminder"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("ZELO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
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

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "zelo_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 60)

	// Email defaults
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@zelo.local")
	viper.SetDefault("email.from_name", "Zelo")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Supplier portal defaults
	viper.SetDefault("supplier_portal.base_url", "http://localhost:8080")
	viper.SetDefault("supplier_portal.rate_limit", 30)
	viper.SetDefault("supplier_portal.rate_window_seconds", 60)
	viper.SetDefault("supplier_portal.rate_limiter_backend", "memory")

	// Storage defaults
	viper.SetDefault("storage.bucket", "zelo-photos")
	viper.SetDefault("storage.key_prefix", "assistencias")
	viper.SetDefault("storage.region", "eu-west-1")
	viper.SetDefault("storage.presign_expiry_seconds", 3600)

	// Reminder defaults: once a day at 08:00 local time
	viper.SetDefault("reminder.cron", "0 8 * * *")
}
