// Package llm implements the structured-output model client and the
// generators built on top of it.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	baseBackoff = 500 * time.Millisecond
	maxBackoff  = 5 * time.Second

	defaultSchemaName = "structured_output"
)

// Config for the model client.
type Config struct {
	BaseURL                string        // default https://api.openai.com/v1
	APIKey                 string        // if empty, falls back to env OPENAI_API_KEY
	Model                  string        // e.g. "gpt-4o-mini"
	Timeout                time.Duration // per-attempt timeout
	DefaultMaxOutputTokens int           // used when a request leaves the cap unset
	MaxAttempts            int           // total attempts, never below 1
}

// Invoker is the interface generators depend on.
type Invoker interface {
	RequestStructuredJSON(ctx context.Context, req StructuredRequest) (json.RawMessage, error)
}

// Client calls the Responses API with a JSON-Schema-constrained output format.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.DefaultMaxOutputTokens <= 0 {
		cfg.DefaultMaxOutputTokens = 2000
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  logger,
	}
}

// RequestStructuredJSON sends the request and returns the schema-constrained
// JSON value extracted from the response envelope. Attempts that fail with a
// retryable status (408, 429, 5xx) or a connection-level/timeout error are
// retried with exponential backoff up to the configured attempt cap; every
// other failure is terminal. The same payload is reused across attempts.
func (c *Client) RequestStructuredJSON(ctx context.Context, req StructuredRequest) (json.RawMessage, error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("invalid structured request: %w", err)
	}

	schemaName := req.SchemaName
	if schemaName == "" {
		schemaName = defaultSchemaName
	}
	maxTokens := req.MaxOutputTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.DefaultMaxOutputTokens
	}

	payload := map[string]any{
		"model": c.cfg.Model,
		"input": []map[string]string{
			{"role": "system", "content": req.SystemPrompt},
			{"role": "user", "content": req.UserInput},
		},
		"text": map[string]any{
			"format": map[string]any{
				"type":   "json_schema",
				"name":   schemaName,
				"schema": req.Schema,
			},
		},
		"max_output_tokens": maxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/responses"
	start := time.Now()

	for attempt := 1; ; attempt++ {
		raw, cerr := c.post(ctx, endpoint, body)
		if cerr == nil {
			decoded, derr := extractJSONContent(raw)
			if derr != nil {
				c.log.Error("llm.invoke.decode_failed", "attempts", attempt, "error", derr)
				return nil, derr
			}
			c.log.Info("llm.invoke.ok",
				"attempts", attempt,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"max_output_tokens", maxTokens,
			)
			return decoded, nil
		}

		if !cerr.Kind.retryable() || attempt >= c.cfg.MaxAttempts {
			c.log.Error("llm.invoke.failed",
				"attempts", attempt, "kind", cerr.Kind, "error", cerr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, cerr
		}

		delay := backoffDelay(attempt)
		c.log.Warn("llm.invoke.retry",
			"attempt", attempt, "max_attempts", c.cfg.MaxAttempts,
			"kind", cerr.Kind, "backoff_ms", delay.Milliseconds(), "error", cerr,
		)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, &ClientError{Kind: KindInterrupted, Message: "retry backoff interrupted", Cause: ctx.Err()}
		}
	}
}

// post runs a single attempt under the per-attempt timeout.
func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, *ClientError) {
	attemptCtx := ctx
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Kind: KindRemoteError, Message: "build request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, classifyTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(resp.StatusCode, raw)
	}
	return raw, nil
}

func classifyStatus(status int, body []byte) *ClientError {
	msg := fmt.Sprintf("model API returned status %d: %s", status, truncate(string(body), 200))
	switch {
	case status == http.StatusRequestTimeout:
		return &ClientError{Kind: KindTimeout, Message: msg}
	case status == http.StatusTooManyRequests:
		return &ClientError{Kind: KindRateLimited, Message: msg}
	case status >= 500 && status < 600:
		return &ClientError{Kind: KindServerError, Message: msg}
	default:
		return &ClientError{Kind: KindRemoteError, Message: msg}
	}
}

// classifyTransport maps a transport error to a retryable kind. Timeouts are
// detected anywhere in the wrapped cause chain; everything else coming out of
// http.Client.Do is connection-level.
func classifyTransport(err error) *ClientError {
	if isTimeout(err) {
		return &ClientError{Kind: KindTimeout, Message: "model API call timed out", Cause: err}
	}
	return &ClientError{Kind: KindConnection, Message: "model API call failed", Cause: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// backoffDelay returns min(500ms * 2^(attempt-1), 5s) for the given attempt
// number (1-based).
func backoffDelay(attempt int) time.Duration {
	shift := attempt - 1
	if shift < 0 {
		shift = 0
	}
	if shift > 30 {
		shift = 30
	}
	d := baseBackoff << uint(shift)
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

// responseEnvelope is the subset of the Responses API wire format the client
// reads; the schema-constrained payload nests inside it.
type responseEnvelope struct {
	Output []struct {
		Content []struct {
			Type string          `json:"type"`
			JSON json.RawMessage `json:"json"`
			Text string          `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// extractJSONContent scans output[].content[] in order and returns the first
// output_json_schema or output_text entry as a JSON value.
func extractJSONContent(raw []byte) (json.RawMessage, *ClientError) {
	var env responseEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ClientError{Kind: KindDecodeFailed, Message: "unexpected model response format", Cause: err}
	}
	if len(env.Output) == 0 {
		return nil, &ClientError{Kind: KindDecodeFailed, Message: "model response is missing the output array"}
	}
	for _, item := range env.Output {
		for _, content := range item.Content {
			switch content.Type {
			case "output_json_schema":
				if len(content.JSON) > 0 {
					return content.JSON, nil
				}
			case "output_text":
				var v json.RawMessage
				if err := json.Unmarshal([]byte(content.Text), &v); err != nil {
					return nil, &ClientError{Kind: KindDecodeFailed, Message: "parse textual JSON output", Cause: err}
				}
				return v, nil
			}
		}
	}
	return nil, &ClientError{Kind: KindDecodeFailed, Message: "model response did not contain JSON output"}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
