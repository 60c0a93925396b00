package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/config"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/db"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/handlers"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
	api "github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/routes"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/services"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database schema up to date")

	// Avatar mirroring runs only when the R2 block is fully configured.
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	}

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	soloRepo := repositories.NewPostgresSoloRepository(dbConn)
	joinRepo := repositories.NewPostgresJoinRepository(dbConn)
	requestRepo := repositories.NewPostgresRequestRepository(dbConn)

	authService := services.NewGitHubAuthService(cfg.GitHubAPIURL)
	userService := services.NewUserService(userRepo, uploader, logger)
	eventService := services.NewEventService(eventRepo)
	teamService := services.NewTeamService(teamRepo, userRepo)
	soloService := services.NewSoloService(soloRepo, userRepo)
	joinService := services.NewJoinService(joinRepo, userRepo)
	requestService := services.NewRequestService(requestRepo, userRepo)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.CORSAllowedOrigins,
		authService,
		handlers.NewUserHandler(userService),
		handlers.NewEventHandler(eventService),
		handlers.NewTeamHandler(teamService),
		handlers.NewSoloHandler(soloService),
		handlers.NewJoinHandler(joinService),
		handlers.NewRequestHandler(requestService),
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}

func logLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
