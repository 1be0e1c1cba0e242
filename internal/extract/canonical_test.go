package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool(t *testing.T) {
	tests := []struct {
		raw  string
		want *bool
	}{
		{`true`, boolPtr(true)},
		{`"true"`, boolPtr(true)},
		{`" True "`, boolPtr(true)},
		{`false`, nil},
		{`"false"`, nil},
		{`"yes"`, nil},
		{`null`, nil},
		{`1`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var f FlexBool
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.want, f.V)
		})
	}
}

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{`42.555`, floatPtr(42.56)},
		{`"1,234.5"`, floatPtr(1234.5)},
		{`"  99 "`, floatPtr(99)},
		{`"USD 100"`, nil},
		{`null`, nil},
		{`true`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var f FlexFloat
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.want, f.V)
		})
	}
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		raw  string
		want *string
	}{
		{`"Acme"`, strPtr("Acme")},
		{`"  padded  "`, strPtr("padded")},
		{`""`, nil},
		{`"   "`, nil},
		{`null`, nil},
		{`7318.15`, strPtr("7318.15")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var f FlexString
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.want, f.V)
		})
	}
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
