package models

import "strings"

// Student is a row of the student table. RegisterNo is the public identifier used in URLs.
type Student struct {
	ID         int64  `json:"id"`
	RegisterNo string `json:"register_no" validate:"required"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// FullName joins first and last name.
func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
