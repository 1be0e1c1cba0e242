package extract

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// The model returns loosely-typed values: numbers as strings, booleans as
// words, amounts with thousands separators. The Flex types absorb that during
// unmarshaling and expose a canonical pointer value (nil = not extracted).

// FlexBool normalizes boolean-like fields. Only native true or the literal
// string "true" yield a value; everything else, including false-ish values,
// stays nil so an ambiguous model answer is never read as a definite "no".
type FlexBool struct {
	V *bool
}

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	f.V = nil
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		if v {
			t := true
			f.V = &t
		}
	case string:
		if strings.EqualFold(strings.TrimSpace(v), "true") {
			t := true
			f.V = &t
		}
	}
	return nil
}

// FlexFloat accepts a number or a numeric string (commas tolerated) and
// rounds to 2 decimals.
type FlexFloat struct {
	V *float64
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	f.V = nil
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		r := round2(v)
		f.V = &r
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if n, err := strconv.ParseFloat(cleaned, 64); err == nil {
			r := round2(n)
			f.V = &r
		}
	}
	return nil
}

// FlexString accepts a string or a number; empty strings stay nil.
type FlexString struct {
	V *string
}

func (f *FlexString) UnmarshalJSON(b []byte) error {
	f.V = nil
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			f.V = &trimmed
		}
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		f.V = &s
	}
	return nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
