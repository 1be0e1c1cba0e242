package llm

import (
	"encoding/json"
	"strings"
)

const snippetLen = 500

// Decode recovers a JSON value from raw model output. Models wrap JSON in
// markdown fences, prepend or append prose, and occasionally cut off a
// trailing quote; the repair steps run in a fixed order and each either
// produces parseable text or falls through to the next. If strict parsing
// still fails after repair, the original parse error is returned inside a
// *DecodeError along with the first 500 characters of the attempted text.
func Decode(raw string) (json.RawMessage, error) {
	candidate := strings.TrimSpace(stripFences(raw))
	if candidate == "" {
		return nil, &DecodeError{Snippet: snippet(raw)}
	}

	candidate = trimToBoundaries(candidate)

	if json.Valid([]byte(candidate)) {
		return json.RawMessage(candidate), nil
	}

	// Capture the strict-parse error before attempting repair.
	var probe interface{}
	origErr := json.Unmarshal([]byte(candidate), &probe)
	if origErr == nil {
		return json.RawMessage(candidate), nil
	}

	if repaired, ok := repairOddQuote(candidate); ok {
		if json.Valid([]byte(repaired)) {
			return json.RawMessage(repaired), nil
		}
	}

	return nil, &DecodeError{Snippet: snippet(candidate), Err: origErr}
}

// DecodeInto decodes raw model output directly into v.
func DecodeInto(raw string, v interface{}) error {
	msg, err := Decode(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(msg, v); err != nil {
		return &DecodeError{Snippet: snippet(string(msg)), Err: err}
	}
	return nil
}

// stripFences removes a leading ```json (or bare ```) line and a trailing
// ``` line when present. Inner fences are left alone.
func stripFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return s
	}
	if idx := strings.IndexByte(t, '\n'); idx >= 0 {
		t = t[idx+1:]
	} else {
		t = strings.TrimPrefix(t, "```")
	}
	t = strings.TrimSpace(t)
	if strings.HasSuffix(t, "```") {
		t = strings.TrimSpace(t[:len(t)-3])
	}
	return t
}

// trimToBoundaries drops prose before the first { or [ and after the last
// matching } or ].
func trimToBoundaries(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	var closer string
	if s[start] == '{' {
		closer = "}"
	} else {
		closer = "]"
	}
	end := strings.LastIndex(s, closer)
	if end <= start {
		return s[start:]
	}
	return s[start : end+1]
}

// repairOddQuote inserts a closing quote immediately before the final closing
// brace or bracket when the text contains an odd number of quote characters.
// Returns false when the heuristic does not apply.
func repairOddQuote(s string) (string, bool) {
	if strings.Count(s, `"`)%2 == 0 {
		return "", false
	}
	last := strings.LastIndexAny(s, "}]")
	if last < 0 {
		return "", false
	}
	return s[:last] + `"` + s[last:], true
}

func snippet(s string) string {
	if len(s) <= snippetLen {
		return s
	}
	return s[:snippetLen]
}
