package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ashu-94/bank-ai-analyzer/internal/common"
	"github.com/ashu-94/bank-ai-analyzer/internal/extract"
	"github.com/ashu-94/bank-ai-analyzer/internal/llm/azure"
	"github.com/ashu-94/bank-ai-analyzer/internal/pipeline"
	"github.com/ashu-94/bank-ai-analyzer/internal/server"
)

func main() {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("config validation failed", "err", err)
		os.Exit(1)
	}

	extractor := extract.NewPDFExtractor(logger)
	client := azure.NewClient(azure.Config{
		APIKey:      cfg.Azure.APIKey,
		Endpoint:    cfg.Azure.Endpoint,
		APIVersion:  cfg.Azure.APIVersion,
		Deployment:  cfg.Azure.Deployment,
		Temperature: cfg.Azure.Temperature,
		Timeout:     cfg.Azure.Timeout,
	}, logger)
	analyzer := pipeline.NewAnalyzer(logger, extractor, client, cfg.Limits.MaxTextBytes)
	handler := server.NewStatementHandler(logger, analyzer, cfg.Limits.MaxUploadBytes)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: server.NewRouter(logger, handler),
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr, "deployment", cfg.Azure.Deployment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
	logger.Info("stopped")
}
