package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Notify   NotifyConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	Username string
	Password string
	SSLMode  string
}

// DSN builds the connection string for pgx.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type NotifyConfig struct {
	TopicARN string
	Region   string
}

type AppConfig struct {
	Env            string
	RateLimitPerIP string // "100-M" style; empty disables
	VerifyTokenTTL int64  // seconds
}

func Load() (*Config, error) {
	viper.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		viper.SetConfigFile(p)
		_ = viper.ReadInConfig()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			Name:     getEnvOrDefault("DB_DATABASE", "webapp"),
			Username: getEnvOrDefault("DB_USERNAME", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		Notify: NotifyConfig{
			TopicARN: getEnvOrDefault("SNS_TOPIC_ARN", ""),
			Region:   getEnvOrDefault("AWS_REGION", "us-east-1"),
		},
		App: AppConfig{
			Env:            getEnvOrDefault("APP_ENV", "dev"),
			RateLimitPerIP: getEnvOrDefault("RATE_LIMIT_PER_IP", ""),
			VerifyTokenTTL: viper.GetInt64("VERIFY_TOKEN_TTL_SECONDS"),
		},
	}
	if cfg.App.VerifyTokenTTL <= 0 {
		cfg.App.VerifyTokenTTL = 120
	}
	return cfg, nil
}

// TestMode reports whether accounts should be created already verified.
func (c *Config) TestMode() bool {
	return c.App.Env == "test"
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
