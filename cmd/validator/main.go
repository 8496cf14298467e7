package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"id_validator/internal/api"
	"id_validator/internal/processor"
	"id_validator/internal/report"
	"id_validator/internal/repository/csvlog"
	"id_validator/internal/repository/memory"
	"id_validator/internal/service"
	"id_validator/pkg/crypto"
	"id_validator/pkg/metrics"
)

const (
	appName = "id_validator"
)

func main() {
	var (
		httpAddr     = flag.String("addr", ":8080", "HTTP listen address")
		metricsAddr  = flag.String("metrics-addr", ":9090", "metrics listen address")
		logPath      = flag.String("log-path", "validation_log.csv", "append-only attempt log path")
		alertWorkers = flag.Int("alert-workers", 3, "number of alert workers")
		hmacKey      = flag.String("hmac-key", "", "HMAC key for attempt log signatures (empty disables signing)")
	)
	flag.Parse()

	logger := setupLogger()
	logger.Info("Starting application",
		slog.String("name", appName))

	metricsCollector := metrics.NewMetricsCollector(logger)

	var signer *crypto.Signer
	if *hmacKey != "" {
		signer = crypto.NewSigner(*hmacKey, logger)
	}

	attemptRepo := memory.NewAttemptRepository()
	attemptLog := csvlog.NewLogger(*logPath)
	alertService := service.NewAlertService(
		&service.MockEmailService{},
		&service.MockSlackService{},
		*alertWorkers,
		logger,
	)
	pipeline := processor.NewValidationPipeline(attemptRepo, attemptLog, signer, alertService, logger)

	exporters := []report.Exporter{
		&report.CSVExporter{},
		&report.TableExporter{},
		&report.PDFExporter{},
	}
	apiHandler := api.NewAPIHandler(pipeline, metricsCollector, exporters, logger)

	metricsServer := metricsCollector.StartMetricsServer(*metricsAddr)
	httpServer := startHTTPServer(*httpAddr, apiHandler, logger)
	waitForShutdown(logger, httpServer, metricsServer, alertService)
	logger.Info("Application shutdown complete")
}

func setupLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

func startHTTPServer(addr string, apiHandler *api.APIHandler, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	apiHandler.RegisterRoutes(mux)

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"name": "%s", "status": "ok"}`, appName)
	})

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	return server
}

func waitForShutdown(
	logger *slog.Logger,
	httpServer *http.Server,
	metricsServer *http.Server,
	alertService *service.AlertService,
) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(ctx); err != nil {
		logger.Error("Metrics server shutdown failed", slog.String("error", err.Error()))
	}

	if err := alertService.Shutdown(ctx); err != nil {
		logger.Error("Alert service shutdown failed", slog.String("error", err.Error()))
	}
}
