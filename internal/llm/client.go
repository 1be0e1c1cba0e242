package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/port"
)

const (
	defaultTemperature = 0.1
	defaultTopP        = 0.9

	// Token budget adjustments. Shrink applies on a reported context-length
	// overflow; grow applies once when the response was cut off by the output
	// token limit.
	shrinkFactor = 0.8
	growFactor   = 1.5
	minTokens    = 256

	// Rough chars-per-token estimate used to size the document prefix after a
	// budget shrink.
	charsPerToken = 4

	maxBackoff = 30 * time.Second

	truncationMarker = "\n...[document text truncated]"
)

// Admission gates outbound model calls across all in-flight extractions.
// Acquire blocks until both a concurrency slot and a rate token are
// available; the returned release func must be called exactly once.
type Admission interface {
	Acquire(ctx context.Context) (release func(), err error)
}

// Client calls an OpenAI-compatible chat-completions API. Each Generate call
// runs its own self-contained retry loop; no state is carried between calls.
type Client struct {
	apiKey           string
	model            string
	endpoint         string
	httpClient       *http.Client
	maxAttempts      int
	defaultMaxTokens int
	maxTokenCeiling  int
	admission        Admission
	backoffBase      time.Duration
}

// NewClient creates a gateway client from config. admission may be nil, in
// which case calls are not gated.
func NewClient(cfg *config.LLMConfig, admission Admission) *Client {
	return newClient(cfg, cfg.BaseURL, admission)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.LLMConfig, endpoint string, admission Admission) *Client {
	return newClient(cfg, endpoint, admission)
}

func newClient(cfg *config.LLMConfig, endpoint string, admission Admission) *Client {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 4
	}
	defaultMaxTokens := cfg.DefaultMaxTokens
	if defaultMaxTokens <= 0 {
		defaultMaxTokens = 4096
	}
	ceiling := cfg.MaxTokenCeiling
	if ceiling < defaultMaxTokens {
		ceiling = defaultMaxTokens * 2
	}
	return &Client{
		apiKey:           cfg.APIKey,
		model:            model,
		endpoint:         endpoint,
		httpClient:       &http.Client{Timeout: timeout},
		maxAttempts:      maxAttempts,
		defaultMaxTokens: defaultMaxTokens,
		maxTokenCeiling:  ceiling,
		admission:        admission,
		backoffBase:      time.Second,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Generate sends one completion request, retrying on timeouts, transport
// failures, and token overflow. On overflow the token budget shrinks and the
// document tail is truncated to fit; a response cut off by the output limit
// is retried once with a grown budget before being accepted.
func (c *Client) Generate(ctx context.Context, req port.GenerateRequest) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.defaultMaxTokens
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	topP := req.TopP
	if topP == 0 {
		topP = defaultTopP
	}

	doc := req.Document
	grewForLength := false
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := c.sleepBackoff(ctx, attempt); err != nil {
				return "", &ModelError{Kind: ErrKindTimeout, Attempts: attempt, Err: err}
			}
		}

		release := func() {}
		if c.admission != nil {
			var err error
			release, err = c.admission.Acquire(ctx)
			if err != nil {
				return "", &ModelError{Kind: ErrKindTimeout, Attempts: attempt, Err: err}
			}
		}

		text, finishReason, err := c.doAttempt(ctx, req.System, userContent(req.Instructions, doc), maxTokens, temperature, topP)
		release()

		if err != nil {
			if ctx.Err() != nil {
				return "", &ModelError{Kind: ErrKindTimeout, Attempts: attempt + 1, Err: ctx.Err()}
			}
			switch classify(err) {
			case ErrKindTokenOverflow:
				maxTokens = int(float64(maxTokens) * shrinkFactor)
				if maxTokens < minTokens {
					maxTokens = minTokens
				}
				doc = truncateTail(doc, maxTokens*charsPerToken)
				lastErr = err
				continue
			case ErrKindTimeout, ErrKindRetryable:
				lastErr = err
				continue
			default:
				return "", &ModelError{Kind: ErrKindFatal, Attempts: attempt + 1, Err: err}
			}
		}

		if finishReason == "length" && !grewForLength {
			grewForLength = true
			grown := int(float64(maxTokens) * growFactor)
			if grown > c.maxTokenCeiling {
				grown = c.maxTokenCeiling
			}
			if grown > maxTokens {
				maxTokens = grown
				lastErr = fmt.Errorf("output truncated (finish_reason: length)")
				continue
			}
			// Budget already at the ceiling; keep the truncated output.
		}

		return strings.TrimSpace(stripFences(text)), nil
	}

	return "", &ModelError{Kind: ErrKindExhausted, Attempts: c.maxAttempts, Err: lastErr}
}

// apiError is a non-2xx response from the completion API.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("completion API error (status %d, code %q): %s", e.Status, e.Code, e.Message)
}

// apiResponse models the chat-completions response body.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (c *Client) doAttempt(ctx context.Context, system, user string, maxTokens int, temperature, topP float64) (string, string, error) {
	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]interface{}{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"max_tokens":  maxTokens,
		"temperature": temperature,
		"top_p":       topP,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("calling completion API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", parseAPIError(resp.StatusCode, respBody)
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", "", fmt.Errorf("empty response from API: no choices")
	}

	return parsed.Choices[0].Message.Content, parsed.Choices[0].FinishReason, nil
}

func parseAPIError(status int, body []byte) *apiError {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}
	out := &apiError{Status: status, Message: string(body)}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		out.Code = envelope.Error.Code
		out.Message = envelope.Error.Message
	}
	return out
}

// classify maps an attempt error to its retry category.
func classify(err error) ErrorKind {
	var ae *apiError
	if errors.As(err, &ae) {
		msg := strings.ToLower(ae.Message)
		if ae.Code == "context_length_exceeded" ||
			strings.Contains(msg, "context length") ||
			strings.Contains(msg, "maximum context") {
			return ErrKindTokenOverflow
		}
		if ae.Status == http.StatusTooManyRequests || ae.Status >= 500 {
			return ErrKindRetryable
		}
		return ErrKindFatal
	}

	var ne net.Error
	if errors.As(err, &ne) {
		if ne.Timeout() {
			return ErrKindTimeout
		}
		return ErrKindRetryable
	}
	// Connection resets and DNS failures arrive as wrapped *url.Error values
	// that do not implement net.Error timeouts.
	if strings.Contains(err.Error(), "calling completion API") {
		return ErrKindRetryable
	}
	return ErrKindFatal
}

func (c *Client) sleepBackoff(ctx context.Context, attempt int) error {
	delay := c.backoffBase << (attempt - 1)
	if delay > maxBackoff {
		delay = maxBackoff
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func userContent(instructions, doc string) string {
	if doc == "" {
		return instructions
	}
	return instructions + "\n\nDOCUMENT TEXT:\n" + doc
}

// truncateTail cuts the document down to budget characters, keeping the head
// and appending a marker so the model knows text was dropped.
func truncateTail(doc string, budget int) string {
	doc = strings.TrimSuffix(doc, truncationMarker)
	if len(doc) <= budget {
		return doc
	}
	if budget < 0 {
		budget = 0
	}
	return doc[:budget] + truncationMarker
}
