package models

// Subject is a row of the subject table.
type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}
