package dto

// EnrollRequest represents a student's request to enroll in a course
type EnrollRequest struct {
	CourseID int64 `json:"course_id" binding:"required,min=1"`
}
