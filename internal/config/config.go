package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port           int           `mapstructure:"port" envconfig:"PORT"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" envconfig:"REQUEST_TIMEOUT"`
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps" envconfig:"RATE_LIMIT_RPS"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst" envconfig:"RATE_LIMIT_BURST"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" envconfig:"DB_HOST"`
	Port     int    `mapstructure:"port" envconfig:"DB_PORT"`
	User     string `mapstructure:"user" envconfig:"DB_USER"`
	Password string `mapstructure:"password" envconfig:"DB_PASSWORD"`
	Name     string `mapstructure:"name" envconfig:"DB_NAME"`
	SSLMode  string `mapstructure:"sslmode" envconfig:"DB_SSLMODE"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret" envconfig:"JWT_SECRET"`
	ExpiryHours int    `mapstructure:"expiry_hours" envconfig:"JWT_EXPIRY_HOURS"`
}

type RedisConfig struct {
	URL string `mapstructure:"url" envconfig:"REDIS_URL"`
}

type SMTPConfig struct {
	Host       string `mapstructure:"host" envconfig:"SMTP_HOST"`
	Port       int    `mapstructure:"port" envconfig:"SMTP_PORT"`
	Username   string `mapstructure:"username" envconfig:"SMTP_USERNAME"`
	Password   string `mapstructure:"password" envconfig:"SMTP_PASSWORD"`
	From       string `mapstructure:"from" envconfig:"SMTP_FROM"`
	AdminInbox string `mapstructure:"admin_inbox" envconfig:"SMTP_ADMIN_INBOX"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	Pretty bool   `mapstructure:"pretty" envconfig:"LOG_PRETTY"`
}

// Expiry returns the configured token lifetime
func (c JWTConfig) Expiry() time.Duration {
	if c.ExpiryHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.ExpiryHours) * time.Hour
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.request_timeout", "30s")
	viper.SetDefault("server.rate_limit_rps", 50.0)
	viper.SetDefault("server.rate_limit_burst", 100)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.name", "athletex")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("log.level", "info")
}

// LoadConfig reads config.yaml (optional) and then applies environment
// overrides, so containers can run without a config file at all.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}

	return &config, nil
}
