package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/orderdesk/orderdesk/config"
	"github.com/orderdesk/orderdesk/internal/email"
	"github.com/orderdesk/orderdesk/internal/health"
	"github.com/orderdesk/orderdesk/internal/infrastructure/postgres"
	ctxlog "github.com/orderdesk/orderdesk/internal/log"
	"github.com/orderdesk/orderdesk/internal/metrics"
	"github.com/orderdesk/orderdesk/internal/report"
	httptransport "github.com/orderdesk/orderdesk/internal/transport/http"
	"github.com/orderdesk/orderdesk/internal/transport/http/handler"
	"github.com/orderdesk/orderdesk/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		stop()
		log.Fatalf("schema: %v", err)
	}

	sender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	// Auth
	authUsecase, err := usecase.NewAuthUsecase(
		cfg.AdminEmail,
		cfg.AdminPassword,
		[]byte(cfg.JWTSecret),
		cfg.JWTAlgorithm,
		time.Duration(cfg.TokenExpireMinutes)*time.Minute,
	)
	if err != nil {
		stop()
		log.Fatalf("auth: %v", err)
	}
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Orders
	orderRepo := postgres.NewOrderRepository(pool)
	orderUsecase := usecase.NewOrderUsecase(orderRepo, sender, cfg.NotifyEmail, logger)
	orderHandler := handler.NewOrderHandler(orderUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	reporter, err := report.NewReporter(orderRepo, sender, logger, cfg.SummaryCron, cfg.NotifyEmail)
	if err != nil {
		stop()
		log.Fatalf("reporter: %v", err)
	}
	go reporter.Start(ctx)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, authHandler, orderHandler, authUsecase),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
