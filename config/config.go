package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config gom toàn bộ cấu hình đọc từ biến môi trường
type Config struct {
	Env         string          `validate:"required,oneof=dev qc prod test"`
	Port        string          `validate:"required,numeric"`
	DBDriver    string          `validate:"required,oneof=postgres sqlite"`
	Postgres    *PostgresConfig `validate:"required_if=DBDriver postgres"`
	SQLitePath  string          `validate:"required_if=DBDriver sqlite"`
	Redis       RedisConfig
	CORSOrigins []string `validate:"required,dive,url"`
	Timezone    string   `validate:"required,timezone"`
	LogLevel    string   `validate:"omitempty,oneof=debug info warn warning error"`
}

type PostgresConfig struct {
	User     string `validate:"required"`
	Password string
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	Name     string `validate:"required"`
	SSLMode  string `validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
}

// RedisConfig để trống Addr thì tắt cache
type RedisConfig struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Username string
	Password string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// getDBConfigByEnv chọn bộ biến DB theo môi trường, ví dụ DEV_DB_HOST khi ENV=dev
func getDBConfigByEnv(env string) *PostgresConfig {
	prefix := strings.ToUpper(env) + "_DB_"
	return &PostgresConfig{
		User:     os.Getenv(prefix + "USER"),
		Password: os.Getenv(prefix + "PASSWORD"),
		Host:     os.Getenv(prefix + "HOST"),
		Port:     getEnvDefault(prefix+"PORT", "5432"),
		Name:     os.Getenv(prefix + "NAME"),
		SSLMode:  getEnvDefault("DB_SSLMODE", "require"),
	}
}

// Load đọc cấu hình từ môi trường (đã nạp .env nếu có) và kiểm tra hợp lệ
func Load() (*Config, error) {
	env := getEnvDefault("ENV", "dev")
	cfg := &Config{
		Env:        env,
		Port:       getEnvDefault("PORT", "8000"),
		DBDriver:   getEnvDefault("DB_DRIVER", "sqlite"),
		SQLitePath: getEnvDefault("SQLITE_PATH", "hostel.db"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Username: os.Getenv("REDIS_USER"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		CORSOrigins: splitList(getEnvDefault("CORS_ORIGINS", "http://localhost:5173")),
		Timezone:    getEnvDefault("TIMEZONE", "UTC"),
		LogLevel:    getEnvDefault("LOG_LEVEL", "info"),
	}
	if cfg.DBDriver == "postgres" {
		cfg.Postgres = getDBConfigByEnv(env)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Location trả về múi giờ dùng để xác định "hôm nay"
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
