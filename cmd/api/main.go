package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/skycast/skycast-go/internal/config"
	"github.com/skycast/skycast-go/internal/handler"
	"github.com/skycast/skycast-go/internal/middleware"
	"github.com/skycast/skycast-go/internal/repository"
	"github.com/skycast/skycast-go/internal/service"
	"github.com/skycast/skycast-go/internal/weather"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	locationRepo := repository.NewLocationRepository(db)
	locationService := service.NewLocationService(locationRepo)
	weatherClient := weather.NewClient(cfg.WeatherAPIKey,
		weather.WithBaseURLs(cfg.GeoBaseURL, cfg.WeatherBaseURL))
	aggregator := weather.NewAggregator(weatherClient)
	locationHandler := handler.NewLocationHandler(locationService, aggregator)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/register", authHandler.HandleRegister)
		r.Post("/api/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/check-auth", authHandler.HandleCheckAuth)

		r.Get("/api/locations", locationHandler.HandleList)
		r.Post("/api/locations", locationHandler.HandleAdd)
		r.Delete("/api/locations/{id}", locationHandler.HandleDelete)
		r.Get("/api/locations/weather", locationHandler.HandleWeather)
	})

	// Everything else serves the static entry page.
	indexPage := filepath.Join(cfg.StaticDir, "index.html")
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, indexPage)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
