package llm

import "fmt"

// ErrorKind classifies a gateway failure.
type ErrorKind string

const (
	ErrKindTimeout       ErrorKind = "timeout"
	ErrKindTokenOverflow ErrorKind = "token_overflow"
	ErrKindRetryable     ErrorKind = "retryable"
	ErrKindExhausted     ErrorKind = "exhausted"
	ErrKindFatal         ErrorKind = "fatal"
)

// ModelError is the terminal error surfaced by the gateway. Timeout,
// token-overflow, and retryable conditions are retried internally; only
// exhausted and fatal (or an expired caller context) reach the caller.
type ModelError struct {
	Kind     ErrorKind
	Attempts int
	Err      error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model call failed (%s, %d attempts): %v", e.Kind, e.Attempts, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// DecodeError indicates the tolerant decoder could not recover JSON from a
// model response. Err is always the original strict-parse error, never the
// error from a repair attempt.
type DecodeError struct {
	Snippet string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("decoding model output: empty response (snippet: %q)", e.Snippet)
	}
	return fmt.Sprintf("decoding model output: %v (snippet: %q)", e.Err, e.Snippet)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
