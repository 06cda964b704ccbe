package dto

import "time"

// CreateCourseRequest represents a course creation request
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	MaxStudents int    `json:"max_students" binding:"omitempty,min=1"`
	ClassCode   string `json:"class_code"`
}

// CreateCourseResponse carries the identifier of the newly created course
type CreateCourseResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// CourseResponse represents a course with the owning instructor's display name
// joined in.
type CourseResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	InstructorID   int64     `json:"instructorId"`
	InstructorName string    `json:"instructorName"`
	MaxStudents    int       `json:"maxStudents"`
	ClassCode      string    `json:"classCode"`
	CreatedAt      time.Time `json:"createdAt"`
}

// EnrolledCourseResponse is a CourseResponse extended with the caller's
// enrollment timestamp.
type EnrolledCourseResponse struct {
	CourseResponse
	EnrolledAt time.Time `json:"enrolledAt"`
}
