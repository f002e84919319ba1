// cmd/assistance-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"financial-assistance/internal/api"
	"financial-assistance/internal/common/aws"
	"financial-assistance/internal/common/camunda"
	"financial-assistance/internal/common/config"
	"financial-assistance/internal/common/database"
	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/common/observability"
	aiassistance "financial-assistance/internal/handlers/ai-assistance"
	submitapplication "financial-assistance/internal/handlers/submit-application"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting assistance server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
		zap.String("envFile", cfg.EnvFile),
	)

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Warn("observability disabled", zap.Error(err))
	}

	ctx := context.Background()

	// --- Hand-offs (all optional) ---
	var handoffs submitapplication.Handoffs

	if cfg.Camunda.Enabled {
		var zeebe *camunda.Client
		err = retryWithBackoff(func() error {
			var err error
			zeebe, err = camunda.NewClient(cfg.Camunda.BrokerAddress, config.GetDuration(cfg.Camunda.RequestTimeout))
			return err
		}, 5, 2*time.Second, zapLog, "Zeebe client initialization")
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		defer zeebe.Close()
		handoffs.Process = zeebe
		zapLog.Info("Zeebe client connected successfully", zap.String("processId", cfg.Camunda.ProcessID))
	}

	if cfg.Notifications.Email.Enabled {
		ses, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region, cfg.Notifications.Email.FromEmail)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		handoffs.Email = ses
	}

	if cfg.Notifications.SMS.Enabled {
		sns, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		handoffs.SMS = sns
	}

	// Readiness follows the shared form store when it lives in Redis.
	checks := map[string]api.Pinger{}
	if cfg.Client.Storage.Backend == "redis" {
		redis := database.NewRedis(cfg.Database.Redis)
		defer redis.Close()
		checks["redis"] = redis
	}

	if cfg.AI.APIKey == "" {
		zapLog.Warn("GROK_API_KEY is not set; /api/ai-assistance will answer 500")
	}

	router := api.NewRouter(api.Dependencies{
		AIAssistance:      aiassistance.NewHandler(aiassistance.LoadConfig(cfg), log),
		SubmitApplication: submitapplication.NewHandler(submitapplication.LoadConfig(cfg), handoffs, log),
		Service:           cfg.App.Name,
		Version:           cfg.App.Version,
		Checks:            checks,
		Observability:     obs,
		Logger:            log,
		RequestTimeout:    config.GetDuration(cfg.Server.RequestTimeout),
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
		IdleTimeout:  config.GetDuration(cfg.Server.IdleTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	zapLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Warn("observability shutdown failed", zap.Error(err))
	}

	zapLog.Info("Server stopped")
}
