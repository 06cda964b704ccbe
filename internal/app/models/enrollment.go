package models

import "time"

// Enrollment records a student/course relationship. At most one enrollment
// exists per (user, course) pair, enforced by a storage-level unique constraint.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
}
