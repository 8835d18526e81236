// Command keywords is a smoke tool for the suggestion pipeline: it reads
// chapter text from the argument or stdin and prints the generated sets.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tempsotsusei/kotobanotane/internal/common"
	"github.com/tempsotsusei/kotobanotane/internal/llm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if os.Getenv("OPENAI_API_KEY") == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	var text string
	if len(os.Args) >= 2 {
		text = strings.Join(os.Args[1:], " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("read stdin", "error", err)
			os.Exit(1)
		}
		text = string(data)
	}

	cfg := common.LoadConfig()
	client := llm.NewClient(llm.Config{
		BaseURL:                cfg.LLM.BaseURL,
		APIKey:                 cfg.LLM.APIKey,
		Model:                  cfg.LLM.Model,
		Timeout:                cfg.LLM.Timeout,
		DefaultMaxOutputTokens: cfg.LLM.MaxOutputTokens,
		MaxAttempts:            cfg.LLM.MaxAttempts,
	}, logger)
	gen := llm.NewKeywordListsGenerator(client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var (
		sets [][]string
		err  error
	)
	if strings.TrimSpace(text) == "" {
		sets, err = gen.GenerateInitial(ctx)
	} else {
		sets, err = gen.Generate(ctx, text)
	}
	if err != nil {
		logger.Error("generate keywords", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]any{"keywords": sets})
}
