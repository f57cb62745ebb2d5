package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// scoreField is the payload field holding the score.
const scoreField = "1"

var errNoScore = errors.New("mark payload has no score")

// ExtractMark returns the score stored in a mark payload, or 0 when the payload is
// malformed.
func ExtractMark(payload string) int {
	score, err := ParseMark(payload)
	if err != nil {
		return 0
	}
	return score
}

// ParseMark decodes a mark payload such as {"1": 88}. Numeric scores are truncated;
// textual scores use their leading integer ("42", "42 marks").
func ParseMark(payload string) (int, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return 0, fmt.Errorf("decode mark payload: %w", err)
	}
	raw, ok := fields[scoreField]
	if !ok {
		return 0, errNoScore
	}

	var value interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return 0, fmt.Errorf("decode score: %w", err)
	}

	switch v := value.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
			return 0, fmt.Errorf("score %s out of range", v)
		}
		return int(f), nil
	case string:
		return leadingInt(v)
	default:
		return 0, fmt.Errorf("score has unsupported type %T", value)
	}
}

func leadingInt(s string) (int, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("score %q is not numeric", s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("score %q: %w", s, err)
	}
	return n, nil
}
