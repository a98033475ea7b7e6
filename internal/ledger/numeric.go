package ledger

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// RawValue is user-typed numeric text. When decoded from JSON it accepts
// both strings and bare numbers, so "5000" and 5000 end up the same.
type RawValue string

func (v *RawValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	switch string(data) {
	case "null":
		*v = ""
		return nil
	case "true", "false":
		// not a number, so it reads as 0 like any other non-numeric text
		*v = RawValue(data)
		return nil
	}
	if len(data) > 0 && (data[0] == '[' || data[0] == '{') {
		return fmt.Errorf("raw value: unexpected json %s", data[:1])
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("raw value: %w", err)
	}
	text, err := plainDecimal(num)
	if err != nil {
		return err
	}
	*v = RawValue(text)
	return nil
}

// plainDecimal rewrites a JSON number without exponent, so 1.5e3 reads as
// "1500" rather than being cut at the "e" by ParseCount.
func plainDecimal(num json.Number) (string, error) {
	text := num.String()
	if !strings.ContainsAny(text, "eE") {
		return text, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return "", fmt.Errorf("raw value: number %s: %w", text, err)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func (v RawValue) String() string {
	return string(v)
}

// ParseCount reads a leading integer from free text, the way a form field is
// read: leading whitespace is skipped and trailing garbage ignored ("12abc"
// is 12, "3.7" is 3). Anything without leading digits, negative or out of
// range yields 0.
func ParseCount(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	if s == "" {
		return 0
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// parseWeight returns nil for an empty, malformed or negative weight.
func parseWeight(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return nil
	}
	return &w
}
