package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"new-arrivals-chi/internal/api/middleware"
	"new-arrivals-chi/internal/api/routes"
	"new-arrivals-chi/internal/config"
	"new-arrivals-chi/internal/database"
	"new-arrivals-chi/internal/logger"
	"new-arrivals-chi/internal/mail"
	"new-arrivals-chi/internal/metrics"
	"new-arrivals-chi/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	_ "new-arrivals-chi/docs" // This is needed for swag
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 10 * time.Second

//	@title			New Arrivals Chicago API
//	@version		1.0
//	@description	Read-only JSON API for the New Arrivals Chicago service directory and organization profiles.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:5000
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}
	logger.Setup(cfg.LogLevel)

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "serve":
		if err := serve(cfg); err != nil {
			logrus.WithError(err).Fatal("server stopped with error")
		}
	case "migrate":
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			logrus.WithError(err).Fatal("migration failed")
		}
		logrus.Info("migrations applied")
	default:
		logrus.Fatalf("unknown command %q (expected serve or migrate)", command)
	}
}

func serve(cfg *config.Config) error {
	ctx := context.Background()

	tel, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:       cfg.OTelEndpoint,
		Headers:        cfg.OTelHeaders,
		ServiceName:    cfg.OTelServiceName,
		ServiceVersion: version,
	})
	if err != nil {
		return err
	}
	if tel != nil {
		logrus.WithField("endpoint", cfg.OTelEndpoint).Info("tracing enabled")
	} else {
		logrus.Info("tracing disabled (no endpoint configured)")
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: cfg.AutoMigrate})
	if err != nil {
		return err
	}
	logrus.Info("database connected")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		PerMinute: cfg.LoginRatePerMinute,
		Burst:     cfg.LoginRateBurst,
	}, collector)
	defer limiter.Stop()

	router, err := routes.SetupRoutes(db, cfg, routes.Dependencies{
		Metrics:     collector,
		Gatherer:    prometheus.DefaultGatherer,
		Mailer:      mail.NewFromConfig(cfg),
		RateLimiter: limiter,
		Version:     version,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server shutdown error")
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("telemetry shutdown error")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
