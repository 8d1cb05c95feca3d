package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	JWTSecret      string
	JWTExpiry      time.Duration
	WeatherAPIKey  string
	GeoBaseURL     string
	WeatherBaseURL string
	StaticDir      string
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "3001"),
		Env:            getEnv("ENV", "development"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/skycast?parseTime=true"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:      time.Hour,
		WeatherAPIKey:  getEnv("WEATHER_API_KEY", ""),
		GeoBaseURL:     getEnv("GEO_BASE_URL", "https://api.openweathermap.org/geo/1.0"),
		WeatherBaseURL: getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		StaticDir:      getEnv("STATIC_DIR", "public"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}
	if cfg.WeatherAPIKey == "" {
		slog.Warn("WEATHER_API_KEY not set — weather lookups will fail")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
