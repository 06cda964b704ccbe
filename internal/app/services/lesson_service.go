package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/webslearn/webslearn/internal/app/models"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/app/repositories"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
	"github.com/webslearn/webslearn/internal/pkg/filestorage"
)

// LessonService defines the interface for lesson content operations
type LessonService interface {
	AddByURL(ctx context.Context, courseID, instructorID int64, req *dto.CreateLessonRequest) (int64, error)
	AddByUpload(ctx context.Context, courseID, instructorID int64, form *dto.UploadLessonForm, file *multipart.FileHeader) (int64, string, error)
	List(ctx context.Context, courseID int64) ([]*models.Lesson, error)
	Update(ctx context.Context, lessonID, instructorID int64, req *dto.UpdateLessonRequest) error
	Delete(ctx context.Context, lessonID, instructorID int64) error
	Reorder(ctx context.Context, courseID, instructorID int64, orderedIDs []int64) error
}

// lessonServiceImpl implements LessonService
type lessonServiceImpl struct {
	lessonRepo  repositories.ILessonRepository
	courseRepo  repositories.ICourseRepository
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewLessonService creates a new LessonService
func NewLessonService(
	lessonRepo repositories.ILessonRepository,
	courseRepo repositories.ICourseRepository,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) LessonService {
	return &lessonServiceImpl{
		lessonRepo:  lessonRepo,
		courseRepo:  courseRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// requireCourseOwnership runs the combined existence+ownership check. A missing
// course and a course owned by someone else both return ErrCourseAccessDenied.
func (s *lessonServiceImpl) requireCourseOwnership(ctx context.Context, courseID, instructorID int64) error {
	owned, err := s.courseRepo.IsOwnedBy(ctx, courseID, instructorID)
	if err != nil {
		return fmt.Errorf("error checking course ownership: %w", err)
	}
	if !owned {
		return apperrors.ErrCourseAccessDenied
	}
	return nil
}

// AddByURL persists a lesson with external content pointers and no file asset.
func (s *lessonServiceImpl) AddByURL(ctx context.Context, courseID, instructorID int64, req *dto.CreateLessonRequest) (int64, error) {
	if err := s.requireCourseOwnership(ctx, courseID, instructorID); err != nil {
		return 0, err
	}

	lesson := &models.Lesson{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		DocumentURL: req.DocumentURL,
		VideoURL:    req.VideoURL,
	}

	id, err := s.lessonRepo.Create(ctx, lesson)
	if err != nil {
		return 0, fmt.Errorf("error creating lesson: %w", err)
	}

	return id, nil
}

// AddByUpload stores the uploaded file and persists a lesson referencing it.
// If the record insert fails after the file was written, the stored file is
// removed before the error is returned so no orphan is left behind.
func (s *lessonServiceImpl) AddByUpload(ctx context.Context, courseID, instructorID int64, form *dto.UploadLessonForm, file *multipart.FileHeader) (int64, string, error) {
	if err := s.requireCourseOwnership(ctx, courseID, instructorID); err != nil {
		return 0, "", err
	}

	fileURL, err := s.fileStorage.SaveFile(file)
	if err != nil {
		return 0, "", err
	}

	lesson := &models.Lesson{
		CourseID:    courseID,
		Title:       form.Title,
		Description: form.Description,
		VideoURL:    form.VideoURL,
		FileURL:     &fileURL,
	}

	id, err := s.lessonRepo.Create(ctx, lesson)
	if err != nil {
		// Compensating action: the file is already on disk but nothing
		// references it.
		if delErr := s.fileStorage.DeleteFile(fileURL); delErr != nil {
			s.logger.Error().Err(delErr).Str("file", fileURL).Msg("Failed to delete orphaned upload after insert failure")
		}
		return 0, "", fmt.Errorf("error creating lesson: %w", err)
	}

	return id, fileURL, nil
}

// List returns a course's lessons ordered by ascending order index.
func (s *lessonServiceImpl) List(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	return s.lessonRepo.ListByCourse(ctx, courseID)
}

// Update alters a lesson's title, description and content URLs. The lesson's
// file pointer and order index stay as they are.
func (s *lessonServiceImpl) Update(ctx context.Context, lessonID, instructorID int64, req *dto.UpdateLessonRequest) error {
	lesson, err := s.lessonRepo.GetWithOwner(ctx, lessonID)
	if err != nil {
		return err
	}

	if lesson.InstructorID != instructorID {
		return apperrors.ErrPermissionDenied
	}

	lesson.Title = req.Title
	lesson.Description = req.Description
	lesson.DocumentURL = req.DocumentURL
	lesson.VideoURL = req.VideoURL

	return s.lessonRepo.Update(ctx, &lesson.Lesson)
}

// Delete removes a lesson and its file asset if one is stored. File deletion
// is best effort: a failure is logged and the record deletion proceeds.
func (s *lessonServiceImpl) Delete(ctx context.Context, lessonID, instructorID int64) error {
	lesson, err := s.lessonRepo.GetWithOwner(ctx, lessonID)
	if err != nil {
		return err
	}

	if lesson.InstructorID != instructorID {
		return apperrors.ErrPermissionDenied
	}

	if lesson.FileURL != nil {
		if err := s.fileStorage.DeleteFile(*lesson.FileURL); err != nil {
			s.logger.Error().Err(err).Str("file", *lesson.FileURL).Int64("lessonID", lessonID).Msg("Failed to delete lesson file, deleting record anyway")
		}
	}

	return s.lessonRepo.Delete(ctx, lessonID)
}

// Reorder assigns 0-based positions following the supplied identifier order.
func (s *lessonServiceImpl) Reorder(ctx context.Context, courseID, instructorID int64, orderedIDs []int64) error {
	if err := s.requireCourseOwnership(ctx, courseID, instructorID); err != nil {
		return err
	}

	return s.lessonRepo.Reorder(ctx, courseID, orderedIDs)
}
