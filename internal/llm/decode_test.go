package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_StrictJSON(t *testing.T) {
	msg, err := Decode(`{"invoice_number": "INV-001", "total": 42.5}`)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(msg, &out))
	assert.Equal(t, "INV-001", out["invoice_number"])
}

func TestDecode_FencedJSON(t *testing.T) {
	raw := "```json\n{\"a\": 1}\n```"
	msg, err := Decode(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, string(msg))
}

func TestDecode_BareFence(t *testing.T) {
	raw := "```\n[1, 2, 3]\n```"
	msg, err := Decode(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, 3]`, string(msg))
}

func TestDecode_ProseAroundObject(t *testing.T) {
	raw := "Here is the extracted data:\n{\"exporter_name\": \"Acme\"}\nLet me know if you need anything else."
	msg, err := Decode(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"exporter_name": "Acme"}`, string(msg))
}

func TestDecode_OddQuoteRepair(t *testing.T) {
	// Trailing closing quote dropped by the model.
	raw := `{"name": "Acme Exports}`
	msg, err := Decode(raw)
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, json.Unmarshal(msg, &out))
	assert.Equal(t, "Acme Exports", out["name"])
}

func TestDecode_EmptyOutputIsFailure(t *testing.T) {
	for _, raw := range []string{"", "   ", "```json\n```"} {
		_, err := Decode(raw)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr, "input %q", raw)
	}
}

func TestDecode_UnrecoverableKeepsOriginalError(t *testing.T) {
	raw := `{"a": 1,, "b": 2}`
	_, err := Decode(raw)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Error(t, decodeErr.Err, "original parse error must be preserved")
	assert.Contains(t, decodeErr.Snippet, `"a": 1`)
}

func TestDecode_SnippetCappedAt500(t *testing.T) {
	raw := "not json at all " + strings.Repeat("x", 2000)
	_, err := Decode(raw)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.LessOrEqual(t, len(decodeErr.Snippet), 500)
}

func TestDecodeInto(t *testing.T) {
	var out struct {
		Total float64 `json:"total"`
	}
	err := DecodeInto("```json\n{\"total\": 99.99}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, 99.99, out.Total)
}

func TestTruncateTail(t *testing.T) {
	doc := strings.Repeat("a", 100)
	got := truncateTail(doc, 40)
	assert.True(t, strings.HasSuffix(got, truncationMarker))
	assert.Equal(t, strings.Repeat("a", 40), strings.TrimSuffix(got, truncationMarker))

	// Under budget: untouched.
	assert.Equal(t, "short", truncateTail("short", 40))

	// Repeated truncation does not stack markers.
	again := truncateTail(got, 20)
	assert.Equal(t, 1, strings.Count(again, "[document text truncated]"))
}
