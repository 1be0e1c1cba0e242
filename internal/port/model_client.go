package port

import "context"

// GenerateRequest carries one completion request through the model gateway.
// Instructions hold the schema/extraction prompt and are never truncated;
// Document holds the raw document text and is the only part the gateway may
// shorten when the provider reports a context-length overflow.
type GenerateRequest struct {
	System       string
	Instructions string
	Document     string
	Temperature  float64
	TopP         float64
	MaxTokens    int
}

// ModelClient abstracts the remote text-completion API.
type ModelClient interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
