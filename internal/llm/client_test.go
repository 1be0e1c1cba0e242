package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/port"
)

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		APIKey:           "test-key",
		Model:            "gpt-4o",
		TimeoutSecs:      5,
		MaxAttempts:      4,
		DefaultMaxTokens: 4096,
		MaxTokenCeiling:  8192,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClientWithEndpoint(testLLMConfig(), srv.URL, nil)
	c.backoffBase = time.Millisecond
	return c
}

type chatRequest struct {
	Model     string  `json:"model"`
	MaxTokens int     `json:"max_tokens"`
	Temp      float64 `json:"temperature"`
	TopP      float64 `json:"top_p"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionBody(content, finishReason string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message":       map[string]string{"content": content},
				"finish_reason": finishReason,
			},
		},
	})
	return string(b)
}

func TestGenerate_Success(t *testing.T) {
	var got chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(completionBody(`{"ok": true}`, "stop")))
	})

	out, err := client.Generate(context.Background(), port.GenerateRequest{
		System:       "system prompt",
		Instructions: "extract fields",
		Document:     "INVOICE NO INV-1",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, out)

	assert.Equal(t, 0.1, got.Temp)
	assert.Equal(t, 0.9, got.TopP)
	assert.Equal(t, 4096, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[1].Content, "INVOICE NO INV-1")
}

func TestGenerate_StripsFences(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completionBody("```json\n{\"a\": 1}\n```", "stop")))
	})

	out, err := client.Generate(context.Background(), port.GenerateRequest{Instructions: "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, out)
}

func TestGenerate_RetriesThenExhausted(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "code": "rate_limit_exceeded"}}`))
	})

	_, err := client.Generate(context.Background(), port.GenerateRequest{Instructions: "x"})

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Equal(t, ErrKindExhausted, modelErr.Kind)
	assert.Equal(t, 4, modelErr.Attempts)
	assert.Equal(t, 4, hits)
}

func TestGenerate_FatalErrorStopsImmediately(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key", "code": "invalid_api_key"}}`))
	})

	_, err := client.Generate(context.Background(), port.GenerateRequest{Instructions: "x"})

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Equal(t, ErrKindFatal, modelErr.Kind)
	assert.Equal(t, 1, hits)
}

func TestGenerate_TokenOverflowShrinksAndTruncates(t *testing.T) {
	longDoc := ""
	for i := 0; i < 3000; i++ {
		longDoc += "word "
	}

	var secondReq chatRequest
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"message": "maximum context length exceeded", "code": "context_length_exceeded"}}`))
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&secondReq))
		_, _ = w.Write([]byte(completionBody(`{"recovered": true}`, "stop")))
	})

	out, err := client.Generate(context.Background(), port.GenerateRequest{
		Instructions: "extract",
		Document:     longDoc,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"recovered": true}`, out)
	assert.Equal(t, 2, hits)

	// Budget shrank by 0.8 and the document tail was cut with a marker.
	shrunk := float64(4096) * shrinkFactor
	assert.Equal(t, int(shrunk), secondReq.MaxTokens)
	assert.Contains(t, secondReq.Messages[1].Content, "[document text truncated]")
	// Instructions survive truncation untouched.
	assert.Contains(t, secondReq.Messages[1].Content, "extract")
}

func TestGenerate_LengthFinishGrowsOnce(t *testing.T) {
	var reqs []chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		reqs = append(reqs, req)
		if len(reqs) == 1 {
			_, _ = w.Write([]byte(completionBody(`{"partial":`, "length")))
			return
		}
		_, _ = w.Write([]byte(completionBody(`{"full": true}`, "stop")))
	})

	out, err := client.Generate(context.Background(), port.GenerateRequest{Instructions: "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"full": true}`, out)

	require.Len(t, reqs, 2)
	assert.Equal(t, 4096, reqs[0].MaxTokens)
	assert.Equal(t, int(4096*1.5), reqs[1].MaxTokens)
}

func TestGenerate_LengthFinishAtCeilingAccepted(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(completionBody(`{"cut": "off"}`, "length")))
	})

	cfg := testLLMConfig()
	cfg.DefaultMaxTokens = 8192
	cfg.MaxTokenCeiling = 8192
	srvClient := NewClientWithEndpoint(cfg, client.endpoint, nil)
	srvClient.backoffBase = time.Millisecond

	out, err := srvClient.Generate(context.Background(), port.GenerateRequest{Instructions: "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"cut": "off"}`, out)
	assert.Equal(t, 1, hits)
}

func TestGenerate_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(completionBody("{}", "stop")))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, port.GenerateRequest{Instructions: "x"})

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Equal(t, ErrKindTimeout, modelErr.Kind)
}

func TestClassify_APIErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *apiError
		want ErrorKind
	}{
		{"overflow code", &apiError{Status: 400, Code: "context_length_exceeded", Message: "too long"}, ErrKindTokenOverflow},
		{"overflow message", &apiError{Status: 400, Message: "This model's maximum context length is 128000 tokens"}, ErrKindTokenOverflow},
		{"rate limit", &apiError{Status: 429, Message: "slow down"}, ErrKindRetryable},
		{"server error", &apiError{Status: 503, Message: "overloaded"}, ErrKindRetryable},
		{"bad request", &apiError{Status: 400, Message: "invalid payload"}, ErrKindFatal},
		{"auth", &apiError{Status: 401, Message: "bad key"}, ErrKindFatal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}
