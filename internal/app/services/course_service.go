package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/webslearn/webslearn/internal/app/models"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/app/repositories"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
	"github.com/webslearn/webslearn/internal/pkg/filestorage"
)

// CourseService defines the interface for course operations
type CourseService interface {
	Create(ctx context.Context, instructorID int64, req *dto.CreateCourseRequest) (int64, error)
	List(ctx context.Context) ([]*repositories.CourseDetails, error)
	Get(ctx context.Context, id int64) (*repositories.CourseDetails, error)
	ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error)
	ListEnrolled(ctx context.Context, studentID int64) ([]*repositories.EnrolledCourseDetails, error)
	Delete(ctx context.Context, courseID, instructorID int64) error
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo     repositories.ICourseRepository
	lessonRepo     repositories.ILessonRepository
	enrollmentRepo repositories.IEnrollmentRepository
	fileStorage    filestorage.FileStorage
	logger         zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	lessonRepo repositories.ILessonRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

// Create persists a new course owned by the calling instructor. The role gate
// runs in the middleware; ownership is fixed here and never changes afterwards.
func (s *courseServiceImpl) Create(ctx context.Context, instructorID int64, req *dto.CreateCourseRequest) (int64, error) {
	course := &models.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: instructorID,
		MaxStudents:  req.MaxStudents,
		ClassCode:    req.ClassCode,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Int64("courseID", id).Int64("instructorID", instructorID).Msg("Course created")
	return id, nil
}

// List returns all courses with instructor names, unfiltered.
func (s *courseServiceImpl) List(ctx context.Context) ([]*repositories.CourseDetails, error) {
	return s.courseRepo.GetAll(ctx)
}

// Get returns one course with the instructor name, or ErrCourseNotFound.
func (s *courseServiceImpl) Get(ctx context.Context, id int64) (*repositories.CourseDetails, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListByInstructor returns only courses owned by the calling instructor.
func (s *courseServiceImpl) ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	return s.courseRepo.GetByInstructor(ctx, instructorID)
}

// ListEnrolled returns the courses the calling student is enrolled in.
func (s *courseServiceImpl) ListEnrolled(ctx context.Context, studentID int64) ([]*repositories.EnrolledCourseDetails, error) {
	return s.enrollmentRepo.ListCoursesForStudent(ctx, studentID)
}

// Delete removes a course and all its dependents: lesson file assets first
// (best effort), then lesson records and the course record in one transaction.
// The file reference fetch must succeed before anything is deleted; individual
// file deletion failures are logged and skipped. A crash between the file pass
// and the transaction can leave orphaned files, which a retry cleans up.
func (s *courseServiceImpl) Delete(ctx context.Context, courseID, instructorID int64) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	if course.InstructorID != instructorID {
		return apperrors.ErrPermissionDenied
	}

	refs, err := s.lessonRepo.ListFileRefs(ctx, courseID)
	if err != nil {
		return fmt.Errorf("error fetching lesson file references: %w", err)
	}

	for _, ref := range refs {
		if err := s.fileStorage.DeleteFile(ref); err != nil {
			s.logger.Error().Err(err).Str("file", ref).Int64("courseID", courseID).Msg("Failed to delete lesson file, continuing")
		}
	}

	if err := s.courseRepo.DeleteWithLessons(ctx, courseID); err != nil {
		return err
	}

	s.logger.Info().Int64("courseID", courseID).Int("files", len(refs)).Msg("Course deleted with lessons and file assets")
	return nil
}
