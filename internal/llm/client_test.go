package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() StructuredRequest {
	return StructuredRequest{
		SystemPrompt: "system",
		UserInput:    "user",
		Schema:       map[string]any{"type": "object"},
		SchemaName:   "test_schema",
	}
}

func newTestClient(t *testing.T, url string, maxAttempts int) *Client {
	t.Helper()
	return NewClient(Config{
		BaseURL:     url,
		APIKey:      "test-key",
		Model:       "test-model",
		Timeout:     5 * time.Second,
		MaxAttempts: maxAttempts,
	}, nil)
}

func TestRequestStructuredJSONSchemaOutput(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/responses", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"output":[{"content":[{"type":"output_json_schema","json":{"answer":42}}]}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	raw, err := c.RequestStructuredJSON(context.Background(), testRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":42}`, string(raw))

	assert.Equal(t, "test-model", gotBody["model"])
	text := gotBody["text"].(map[string]any)
	format := text["format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
	assert.Equal(t, "test_schema", format["name"])
	input := gotBody["input"].([]any)
	require.Len(t, input, 2)
	assert.Equal(t, "system", input[0].(map[string]any)["role"])
	assert.Equal(t, "user", input[1].(map[string]any)["role"])
}

func TestRequestStructuredJSONTextOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"output":[{"content":[{"type":"output_text","text":"{\"keywords\":[]}"}]}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	raw, err := c.RequestStructuredJSON(context.Background(), testRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"keywords":[]}`, string(raw))
}

func TestRequestStructuredJSONClientErrorNoRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.RequestStructuredJSON(context.Background(), testRequest())
	require.Error(t, err)

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindRemoteError, cerr.Kind)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRequestStructuredJSONRetriesRateLimit(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"output":[{"content":[{"type":"output_json_schema","json":{}}]}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.RequestStructuredJSON(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRequestStructuredJSONExhaustsAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 2)
	_, err := c.RequestStructuredJSON(context.Background(), testRequest())
	require.Error(t, err)

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindServerError, cerr.Kind)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRequestStructuredJSONInterruptedBackoff(t *testing.T) {
	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// cancel before the retry sleep begins so the backoff select sees it
		cancel()
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.RequestStructuredJSON(ctx, testRequest())
	require.Error(t, err)

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindInterrupted, cerr.Kind)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRequestStructuredJSONRetriesConnectionError(t *testing.T) {
	// a server that is already closed gives a connection refusal on every dial
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, 2)
	start := time.Now()
	_, err := c.RequestStructuredJSON(context.Background(), testRequest())
	require.Error(t, err)

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindConnection, cerr.Kind)
	// both attempts ran: one backoff interval passed between them
	assert.GreaterOrEqual(t, time.Since(start), 500*time.Millisecond)
}

func TestRequestStructuredJSONDecodeFailureIsTerminal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"output":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.RequestStructuredJSON(context.Background(), testRequest())
	require.Error(t, err)

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindDecodeFailed, cerr.Kind)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRequestStructuredJSONNoMatchingContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"output":[{"content":[{"type":"reasoning","text":"hmm"}]}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 1)
	_, err := c.RequestStructuredJSON(context.Background(), testRequest())
	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindDecodeFailed, cerr.Kind)
}

func TestRequestStructuredJSONRejectsInvalidRequest(t *testing.T) {
	c := newTestClient(t, "http://localhost:0", 1)

	_, err := c.RequestStructuredJSON(context.Background(), StructuredRequest{
		UserInput: "user",
		Schema:    map[string]any{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "systemPrompt")

	req := testRequest()
	req.MaxOutputTokens = -1
	_, err = c.RequestStructuredJSON(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestBackoffDelay(t *testing.T) {
	want := []time.Duration{
		500 * time.Millisecond,
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		5 * time.Second,
		5 * time.Second,
	}
	for i, w := range want {
		assert.Equal(t, w, backoffDelay(i+1), "attempt %d", i+1)
	}
	assert.Equal(t, 5*time.Second, backoffDelay(64))
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, KindTimeout, classifyStatus(408, nil).Kind)
	assert.Equal(t, KindRateLimited, classifyStatus(429, nil).Kind)
	assert.Equal(t, KindServerError, classifyStatus(503, nil).Kind)
	assert.Equal(t, KindRemoteError, classifyStatus(404, nil).Kind)
}

func TestRetryableKinds(t *testing.T) {
	assert.True(t, KindTimeout.retryable())
	assert.True(t, KindConnection.retryable())
	assert.True(t, KindRateLimited.retryable())
	assert.True(t, KindServerError.retryable())
	assert.False(t, KindRemoteError.retryable())
	assert.False(t, KindDecodeFailed.retryable())
	assert.False(t, KindInterrupted.retryable())
}
