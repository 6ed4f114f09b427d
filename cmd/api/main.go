package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sugatraj/password-generator/internal/config"
	"github.com/Sugatraj/password-generator/internal/crypto"
	"github.com/Sugatraj/password-generator/internal/handler"
	"github.com/Sugatraj/password-generator/internal/profile"
	"github.com/Sugatraj/password-generator/internal/repository"
	"github.com/Sugatraj/password-generator/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	src, err := crypto.NewSource(cfg.RandomSource)
	if err != nil {
		slog.Error("invalid random source", "error", err)
		os.Exit(1)
	}
	if cfg.RandomSource != crypto.SourceCrypto {
		slog.Warn("using non-cryptographic random source; set RANDOM_SOURCE=crypto for real passwords")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := repository.NewSessionRepository(cfg.SessionTTL)
	go sessions.RunSweeper(ctx, time.Minute)

	footerService := service.NewFooterService(
		profile.NewClient(cfg.ProfileAPIURL, cfg.ProfileTimeout),
		cfg.ProfileUser,
		service.DefaultLinks(),
	)
	go footerService.Refresh(ctx)

	router := handler.NewRouter(ctx,
		handler.RouterConfig{
			SessionSecret:  cfg.SessionSecret,
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
		},
		handler.NewGeneratorHandler(service.NewGeneratorService(src)),
		handler.NewSessionHandler(service.NewSessionService(sessions, src, cfg.SessionSecret, cfg.TokenExpiry)),
		handler.NewFooterHandler(footerService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "random_source", cfg.RandomSource)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
