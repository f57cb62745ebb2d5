package service

import (
	"strings"
	"unicode"
)

// FormatSubjectName keeps the first character of every word and any parentheses, and
// lower-cases the rest: "MATHEMATICS (CORE)" becomes "Mathematics (core)".
func FormatSubjectName(name string) string {
	words := strings.Split(name, " ")
	for i, word := range words {
		var b strings.Builder
		b.Grow(len(word))
		for j, r := range word {
			if j == 0 || r == '(' || r == ')' {
				b.WriteRune(r)
				continue
			}
			b.WriteRune(unicode.ToLower(r))
		}
		words[i] = b.String()
	}
	return strings.Join(words, " ")
}
