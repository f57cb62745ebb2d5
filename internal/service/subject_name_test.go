package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSubjectName(t *testing.T) {
	cases := []struct{ in, want string }{
		{in: "MATHEMATICS", want: "Mathematics"},
		{in: "SOCIAL SCIENCE", want: "Social Science"},
		{in: "MATHEMATICS (CORE)", want: "Mathematics (core)"},
		{in: "english", want: "english"},
		{in: "", want: ""},
		{in: "COMPUTER  SCIENCE", want: "Computer  Science"},
		{in: "ÉTUDES FRANÇAISES", want: "Études Françaises"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSubjectName(tc.in), tc.in)
	}
}
