package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/formation"
	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	HTTP      HTTPConfig
	Optimizer OptimizerConfig
	Defaults  DefaultsConfig
	LogLevel  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type HTTPConfig struct {
	Addr string
}

type OptimizerConfig struct {
	URL     string
	Timeout time.Duration
	Retries int
}

// DefaultsConfig - параметры нового состава, если клиент их не передал
type DefaultsConfig struct {
	Season    string
	Budget    domain.Price
	Formation string
}

// Load читает .env (если есть) и переменные окружения.
// Некорректные числа и длительности - ошибка, а не тихий дефолт.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("OPTIMIZER_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("OPTIMIZER_TIMEOUT: %w", err)
	}

	retries, err := strconv.Atoi(getEnv("OPTIMIZER_RETRIES", "3"))
	if err != nil || retries < 0 {
		return nil, fmt.Errorf("OPTIMIZER_RETRIES must be a non-negative integer, got %q", os.Getenv("OPTIMIZER_RETRIES"))
	}

	millions, err := strconv.ParseFloat(getEnv("DEFAULT_BUDGET", "100.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_BUDGET must be a number, got %q", os.Getenv("DEFAULT_BUDGET"))
	}
	budget, err := domain.BudgetFromFloat(millions)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_BUDGET: %w", err)
	}

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "squad"),
			Password: getEnv("DB_PASSWORD", "squad"),
			DBName:   getEnv("DB_NAME", "squad_builder"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Optimizer: OptimizerConfig{
			URL:     getEnv("OPTIMIZER_URL", "http://localhost:8000"),
			Timeout: timeout,
			Retries: retries,
		},
		Defaults: DefaultsConfig{
			Season:    getEnv("DEFAULT_SEASON", "2025-26"),
			Budget:    budget,
			Formation: getEnv("DEFAULT_FORMATION", formation.Default),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
