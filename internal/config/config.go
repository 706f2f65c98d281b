package config

import (
	"fmt"
	"os"
	"time"
)

// Config содержит все настройки приложения, читаемые из переменных окружения.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	JWTSecret string
	JWTExpiry time.Duration

	BaseCurrency   string
	CurrencyAPIURL string

	WeatherAPIURL string
	WeatherAPIKey string

	PlacesAPIURL string
	PlacesAPIKey string
}

const devJWTSecret = "dev-secret-change-in-production"

// Load читает конфигурацию из окружения, подставляя значения по умолчанию.
// В production-окружении требует явно заданный JWT_SECRET.
func Load() (Config, error) {
	cfg := Config{
		Port:     getEnv("API_PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: os.Getenv("DB_USER"),
		DBPass: os.Getenv("DB_PASS"),
		DBName: os.Getenv("DB_NAME"),

		JWTSecret: getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry: 24 * time.Hour,

		BaseCurrency:   getEnv("BASE_CURRENCY", "USD"),
		CurrencyAPIURL: getEnv("CURRENCY_API_URL", "https://open.er-api.com/v6/latest"),

		WeatherAPIURL: getEnv("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5/weather"),
		WeatherAPIKey: os.Getenv("WEATHER_API_KEY"),

		PlacesAPIURL: getEnv("PLACES_API_URL", "https://api.geoapify.com/v2/places"),
		PlacesAPIKey: os.Getenv("GEOAPIFY_API_KEY"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return Config{}, fmt.Errorf("в production-окружении переменная JWT_SECRET обязательна")
	}

	return cfg, nil
}

// DSN собирает строку подключения к PostgreSQL.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
