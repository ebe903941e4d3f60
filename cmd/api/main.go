package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/astroguide/astroguide-go/internal/config"
	"github.com/astroguide/astroguide-go/internal/handler"
	"github.com/astroguide/astroguide-go/internal/llm"
	"github.com/astroguide/astroguide-go/internal/middleware"
	"github.com/astroguide/astroguide-go/internal/repository"
	"github.com/astroguide/astroguide-go/internal/service"
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

	// The generation backend is chosen once here, never per request.
	var backend llm.Backend
	if cfg.TestingMode {
		slog.Info("testing mode enabled — using mock generation backend")
		backend = llm.NewMockBackend()
	} else {
		if cfg.AzureOpenAIEndpoint == "" || cfg.AzureOpenAIKey == "" {
			slog.Error("AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_API_KEY must be set outside testing mode")
			os.Exit(1)
		}
		backend = llm.NewAzureClient(cfg.AzureOpenAIEndpoint, cfg.AzureOpenAIKey, cfg.AzureOpenAIDeployment)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenExpiry)
	readingService := service.NewReadingService(userRepo, backend)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(authService)
	readingHandler := handler.NewReadingHandler(readingService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/auth/register", authHandler.HandleRegister)
	r.Post("/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(cfg.JWTSecret))

		r.Get("/profile", profileHandler.HandleGetProfile)
		r.Put("/profile", profileHandler.HandleUpdateProfile)

		r.Post("/horoscope/daily", readingHandler.HandleDailyHoroscope)
		r.Post("/compatibility/analyze", readingHandler.HandleCompatibility)
		r.Post("/friends/advice", readingHandler.HandleFriendAdvice)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "testing_mode", cfg.TestingMode)
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
