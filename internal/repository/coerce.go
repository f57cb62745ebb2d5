package repository

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errMissingField = errors.New("missing field")

// int64Field coerces a stored identifier. Rows written by different tools carry ids as
// int32, int64, double or numeric text.
func int64Field(row bson.M, key string) (int64, error) {
	value, ok := row[key]
	if !ok || value == nil {
		return 0, fmt.Errorf("%s: %w", key, errMissingField)
	}
	switch v := value.(type) {
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, fmt.Errorf("%s: %v is not an integer", key, v)
		}
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not an integer", key, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s: cannot convert %T to int64", key, value)
	}
}

// stringField reads text, formatting numbers so register numbers stored as numbers
// still compare equal to their URL form.
func stringField(row bson.M, key string) string {
	switch v := row[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// payloadField returns a mark payload as JSON text. Embedded documents are rendered as
// relaxed extended JSON; anything else yields an empty payload.
func payloadField(row bson.M, key string) string {
	switch v := row[key].(type) {
	case string:
		return v
	case primitive.D, primitive.M:
		raw, err := bson.MarshalExtJSON(v, false, false)
		if err != nil {
			return ""
		}
		return string(raw)
	default:
		return ""
	}
}
