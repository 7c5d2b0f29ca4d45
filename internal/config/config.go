package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Zakat    ZakatConfig
	Finance  FinanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT verification configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ZakatConfig holds the zakat constants. The gold price is fixed per
// deployment; updating it means a config change and restart.
type ZakatConfig struct {
	GoldPricePerGram decimal.Decimal
}

// FinanceConfig holds financial statement constants.
type FinanceConfig struct {
	CashFlowOpeningBalance decimal.Decimal
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "zafra"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Zakat configuration (IDR per gram of gold)
	goldPrice, err := decimal.NewFromString(getEnv("ZAKAT_GOLD_PRICE_PER_GRAM", "1200000"))
	if err != nil {
		return nil, fmt.Errorf("invalid ZAKAT_GOLD_PRICE_PER_GRAM: %w", err)
	}
	config.Zakat = ZakatConfig{GoldPricePerGram: goldPrice}

	// Cash-flow statement opening balance
	openingBalance, err := decimal.NewFromString(getEnv("CASH_FLOW_OPENING_BALANCE", "5000000"))
	if err != nil {
		return nil, fmt.Errorf("invalid CASH_FLOW_OPENING_BALANCE: %w", err)
	}
	config.Finance = FinanceConfig{CashFlowOpeningBalance: openingBalance}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if !c.Zakat.GoldPricePerGram.IsPositive() {
		return fmt.Errorf("ZAKAT_GOLD_PRICE_PER_GRAM must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
