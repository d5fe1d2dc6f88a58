package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App      AppConfig      `toml:"app"`
	Auth     AuthConfig     `toml:"auth"`
	MySQL    MySQLConfig    `toml:"mysql"`
	Redis    RedisConfig    `toml:"redis"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq"`
	Mail     MailConfig     `toml:"mail"`
}

type AppConfig struct {
	Name          string `toml:"name"`
	Env           string `toml:"env"`
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	GinMode       string `toml:"gin_mode"`
	ClientOrigins string `toml:"client_origins"`
	PDFDir        string `toml:"pdf_dir"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type MySQLConfig struct {
	DSN string `toml:"dsn"`
}

type RedisConfig struct {
	Addr              string `toml:"addr"`
	Password          string `toml:"password"`
	DB                int    `toml:"db"`
	ProfileTTLSeconds int    `toml:"profile_ttl_seconds"`
}

type RabbitMQConfig struct {
	URL          string `toml:"url"`
	WelcomeQueue string `toml:"welcome_queue"`
}

type MailConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	Sender         string `toml:"sender"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

// ClientOrigins splits the comma-separated origin allowlist, dropping blanks.
func (c *Config) ClientOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.App.ClientOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func (c *Config) ProfileTTL() time.Duration {
	return time.Duration(c.Redis.ProfileTTLSeconds) * time.Second
}

func (c *Config) MailTimeout() time.Duration {
	return time.Duration(c.Mail.TimeoutSeconds) * time.Second
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:          "portfolio-api",
			Env:           "dev",
			Host:          "0.0.0.0",
			Port:          8080,
			GinMode:       "debug",
			ClientOrigins: "http://localhost:3000",
			PDFDir:        "static/pdf",
		},
		Auth: AuthConfig{
			JWTSecret: "",
		},
		MySQL: MySQLConfig{
			DSN: "",
		},
		Redis: RedisConfig{
			Addr:              "",
			Password:          "",
			DB:                0,
			ProfileTTLSeconds: 300,
		},
		RabbitMQ: RabbitMQConfig{
			URL:          "",
			WelcomeQueue: "user.welcome.email",
		},
		Mail: MailConfig{
			BaseURL:        "https://api.sendgrid.com/v3",
			APIKey:         "",
			Sender:         "",
			TimeoutSeconds: 10,
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)
	cfg.App.ClientOrigins = getEnv("CLIENT_ORIGINS", cfg.App.ClientOrigins)
	cfg.App.PDFDir = getEnv("PDF_DIR", cfg.App.PDFDir)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)

	cfg.MySQL.DSN = getEnv("MYSQL_DSN", cfg.MySQL.DSN)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.ProfileTTLSeconds = getEnvAsInt("REDIS_PROFILE_TTL_SECONDS", cfg.Redis.ProfileTTLSeconds)

	cfg.RabbitMQ.URL = getEnv("RABBITMQ_URL", cfg.RabbitMQ.URL)
	cfg.RabbitMQ.WelcomeQueue = getEnv("RABBITMQ_WELCOME_QUEUE", cfg.RabbitMQ.WelcomeQueue)

	cfg.Mail.BaseURL = getEnv("MAIL_BASE_URL", cfg.Mail.BaseURL)
	cfg.Mail.APIKey = getEnv("MAIL_API_KEY", cfg.Mail.APIKey)
	cfg.Mail.Sender = getEnv("MAIL_SENDER", cfg.Mail.Sender)
	cfg.Mail.TimeoutSeconds = getEnvAsInt("MAIL_TIMEOUT_SECONDS", cfg.Mail.TimeoutSeconds)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
