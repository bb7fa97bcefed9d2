package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Debug         bool
	LogPath       string
	PublicBaseURL string
}

type ServerConfig struct {
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	AutoMigrate bool
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Enabled reports whether per-client rate limiting should be installed.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "business-directory")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("PUBLIC_BASE_URL", "")
	v.SetDefault("READ_TIMEOUT_SECONDS", 15)
	v.SetDefault("WRITE_TIMEOUT_SECONDS", 15)
	v.SetDefault("IDLE_TIMEOUT_SECONDS", 60)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	// .env is optional, real deployments pass plain environment variables
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:          v.GetString("APP_NAME"),
			Port:          v.GetString("PORT"),
			Debug:         v.GetBool("DEBUG"),
			LogPath:       v.GetString("LOG_PATH"),
			PublicBaseURL: strings.TrimSuffix(v.GetString("PUBLIC_BASE_URL"), "/"),
		},
		Server: ServerConfig{
			ReadTimeout:        seconds(v.GetInt("READ_TIMEOUT_SECONDS")),
			WriteTimeout:       seconds(v.GetInt("WRITE_TIMEOUT_SECONDS")),
			IdleTimeout:        seconds(v.GetInt("IDLE_TIMEOUT_SECONDS")),
			ShutdownTimeout:    seconds(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			MinConns:    v.GetInt32("DB_MIN_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
