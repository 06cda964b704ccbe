package models

import "time"

// Course represents a course owned by a single instructor. The owning
// instructor is immutable after creation.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	MaxStudents  int       `json:"maxStudents" db:"max_students"`
	ClassCode    string    `json:"classCode" db:"class_code"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
