package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestInt64Field(t *testing.T) {
	row := bson.M{
		"i32":     int32(5),
		"i64":     int64(7),
		"float":   float64(9),
		"text":    " 11 ",
		"half":    2.5,
		"word":    "abc",
		"boolean": true,
		"null":    nil,
	}

	cases := map[string]int64{"i32": 5, "i64": 7, "float": 9, "text": 11}
	for key, want := range cases {
		got, err := int64Field(row, key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	for _, key := range []string{"half", "word", "boolean", "null", "absent"} {
		_, err := int64Field(row, key)
		assert.Error(t, err, key)
	}
}

func TestStringField(t *testing.T) {
	row := bson.M{"text": " S100 ", "num": int32(100), "big": int64(42), "float": 12.5, "flag": true}

	assert.Equal(t, "S100", stringField(row, "text"))
	assert.Equal(t, "100", stringField(row, "num"))
	assert.Equal(t, "42", stringField(row, "big"))
	assert.Equal(t, "12.5", stringField(row, "float"))
	assert.Equal(t, "", stringField(row, "flag"))
	assert.Equal(t, "", stringField(row, "absent"))
}

func TestPayloadField(t *testing.T) {
	row := bson.M{
		"text":     `{"1":88}`,
		"document": bson.D{{Key: "1", Value: int32(91)}},
		"number":   int32(3),
	}

	assert.Equal(t, `{"1":88}`, payloadField(row, "text"))
	assert.JSONEq(t, `{"1":91}`, payloadField(row, "document"))
	assert.Equal(t, "", payloadField(row, "number"))
	assert.Equal(t, "", payloadField(row, "absent"))
}
