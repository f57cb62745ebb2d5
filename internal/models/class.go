package models

// Class is a row of the class table.
type Class struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

// Section is a row of the section table.
type Section struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

// Option is a value/label pair offered by the class and section pickers.
type Option struct {
	Value int64  `json:"value"`
	Name  string `json:"name"`
}

// PickerOptions groups the choices rendered on the landing page.
type PickerOptions struct {
	Classes  []Option `json:"classes"`
	Sections []Option `json:"sections"`
}
