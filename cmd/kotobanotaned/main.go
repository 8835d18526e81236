package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tempsotsusei/kotobanotane/internal/async"
	"github.com/tempsotsusei/kotobanotane/internal/common"
	"github.com/tempsotsusei/kotobanotane/internal/export"
	"github.com/tempsotsusei/kotobanotane/internal/feedback"
	"github.com/tempsotsusei/kotobanotane/internal/llm"
	repo "github.com/tempsotsusei/kotobanotane/internal/repository"
	svc "github.com/tempsotsusei/kotobanotane/internal/server"
	"github.com/tempsotsusei/kotobanotane/internal/story"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.HTTPAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	storiesRepo := repo.NewStoryRepository(entc, logger)
	chaptersRepo := repo.NewChapterRepository(entc, logger)
	keywordsRepo := repo.NewKeywordRepository(entc, logger)
	feedbacksRepo := repo.NewFeedbackRepository(entc, logger)

	modelClient := llm.NewClient(llm.Config{
		BaseURL:                cfg.LLM.BaseURL,
		APIKey:                 cfg.LLM.APIKey,
		Model:                  cfg.LLM.Model,
		Timeout:                cfg.LLM.Timeout,
		DefaultMaxOutputTokens: cfg.LLM.MaxOutputTokens,
		MaxAttempts:            cfg.LLM.MaxAttempts,
	}, logger)

	keywordGen := llm.NewKeywordListsGenerator(modelClient, logger)
	feedbackGen := llm.NewFeedbackGenerator(modelClient, logger)

	runner := feedback.NewRunner(feedbackGen, feedbacksRepo, logger)
	queue := async.NewFeedbackQueue(runner, logger,
		async.WithWorkers(cfg.Jobs.Workers),
		async.WithQueueCapacity(cfg.Jobs.QueueCapacity),
		async.WithJobTimeout(cfg.Jobs.JobTimeout),
	)

	storyService := story.NewService(storiesRepo, chaptersRepo, keywordsRepo, keywordGen, logger)
	exportService := export.NewService(storiesRepo, chaptersRepo, feedbacksRepo, logger)

	handler := svc.NewServer(storyService, exportService, feedbacksRepo, queue, logger)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("kotobanotane listening", "addr", addr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	queue.Shutdown(shutdownCtx)
}
