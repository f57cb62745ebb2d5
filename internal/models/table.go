package models

// TableName names one logical table inside the progress card collection.
type TableName string

// Tables stored in the collection.
const (
	TableClass      TableName = "class"
	TableSection    TableName = "section"
	TableStudent    TableName = "student"
	TableEnrollment TableName = "enroll"
	TableSubject    TableName = "subject"
	TableMark       TableName = "mark"
)
