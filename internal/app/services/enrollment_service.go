package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/webslearn/webslearn/internal/app/repositories"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID int64) error
	ListForStudent(ctx context.Context, studentID int64) ([]*repositories.EnrolledCourseDetails, error)
}

// enrollmentServiceImpl implements EnrollmentService
type enrollmentServiceImpl struct {
	enrollmentRepo repositories.IEnrollmentRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollmentRepo repositories.IEnrollmentRepository, logger zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// Enroll records the student/course pair. The storage-level unique constraint
// rejects duplicates, surfacing ErrAlreadyEnrolled.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentID, courseID int64) error {
	if err := s.enrollmentRepo.Create(ctx, studentID, courseID); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Student enrolled")
	return nil
}

// ListForStudent returns the caller's enrolled courses with enrollment
// timestamps and instructor names.
func (s *enrollmentServiceImpl) ListForStudent(ctx context.Context, studentID int64) ([]*repositories.EnrolledCourseDetails, error) {
	return s.enrollmentRepo.ListCoursesForStudent(ctx, studentID)
}
