package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMark(t *testing.T) {
	cases := map[string]struct {
		payload string
		want    int
	}{
		"integer":         {`{"1": 42}`, 42},
		"float truncated": {`{"1": 87.9}`, 87},
		"numeric string":  {`{"1": "76"}`, 76},
		"leading digits":  {`{"1": "64 marks"}`, 64},
		"zero":            {`{"1": 0}`, 0},
		"extra fields":    {`{"2": 5, "1": 33}`, 33},
		"not json":        {"not json", 0},
		"empty":           {"", 0},
		"missing field":   {`{"2": 50}`, 0},
		"null score":      {`{"1": null}`, 0},
		"word score":      {`{"1": "absent"}`, 0},
		"array payload":   {`[1, 2]`, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractMark(tc.payload))
		})
	}
}

func TestParseMarkReportsMalformedPayloads(t *testing.T) {
	_, err := ParseMark(`{"1": true}`)
	assert.Error(t, err)

	_, err = ParseMark(`{"1": 1e40}`)
	assert.Error(t, err)

	score, err := ParseMark(`{"1": -3}`)
	assert.NoError(t, err)
	assert.Equal(t, -3, score)
}
