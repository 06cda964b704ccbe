package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webslearn/webslearn/internal/app/models"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/app/repositories"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
)

type lessonServiceFixture struct {
	svc        LessonService
	courseRepo *fakeCourseRepo
	lessonRepo *fakeLessonRepo
	storage    *fakeFileStorage
}

func newLessonFixture() *lessonServiceFixture {
	courseRepo := newFakeCourseRepo()
	lessonRepo := newFakeLessonRepo()
	storage := newFakeFileStorage()
	return &lessonServiceFixture{
		svc:        NewLessonService(lessonRepo, courseRepo, storage, zerolog.Nop()),
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		storage:    storage,
	}
}

func strPtr(s string) *string { return &s }

func TestAddLessonByURL(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)

	id, err := f.svc.AddByURL(context.Background(), courseID, 7, &dto.CreateLessonRequest{
		Title:       "Intro",
		Description: "First lesson",
		DocumentURL: strPtr("https://example.com/intro.pdf"),
	})
	require.NoError(t, err)

	stored := f.lessonRepo.lessons[id]
	assert.Equal(t, courseID, stored.CourseID)
	assert.Equal(t, "https://example.com/intro.pdf", *stored.DocumentURL)
	assert.Nil(t, stored.FileURL)
}

func TestAddLessonDeniedForNonOwner(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)

	_, err := f.svc.AddByURL(context.Background(), courseID, 8, &dto.CreateLessonRequest{Title: "Intro"})
	assert.ErrorIs(t, err, apperrors.ErrCourseAccessDenied)

	// An absent course is indistinguishable from someone else's course.
	_, err = f.svc.AddByURL(context.Background(), 999, 7, &dto.CreateLessonRequest{Title: "Intro"})
	assert.ErrorIs(t, err, apperrors.ErrCourseAccessDenied)
}

func TestAddLessonByUpload(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)

	fh := makeUploadHeader(t)
	id, fileURL, err := f.svc.AddByUpload(context.Background(), courseID, 7, &dto.UploadLessonForm{Title: "Slides"}, fh)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/stored-file.pdf", fileURL)

	stored := f.lessonRepo.lessons[id]
	require.NotNil(t, stored.FileURL)
	assert.Equal(t, fileURL, *stored.FileURL)
}

func TestAddLessonByUploadCleansUpOnInsertFailure(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)
	f.lessonRepo.createErr = errStorage

	_, _, err := f.svc.AddByUpload(context.Background(), courseID, 7, &dto.UploadLessonForm{Title: "Slides"}, makeUploadHeader(t))
	require.Error(t, err)

	// The stored file was removed once the record insert failed.
	assert.Equal(t, []string{"/uploads/stored-file.pdf"}, f.storage.deleted)
}

func TestAddLessonByUploadStorageRejection(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)
	f.storage.saveErr = apperrors.ErrFileTypeNotAllowed

	_, _, err := f.svc.AddByUpload(context.Background(), courseID, 7, &dto.UploadLessonForm{Title: "Slides"}, makeUploadHeader(t))
	assert.ErrorIs(t, err, apperrors.ErrFileTypeNotAllowed)
	assert.Empty(t, f.lessonRepo.lessons)
}

func TestUpdateLessonPreservesFileAndOrder(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)

	fileURL := "/uploads/existing.pdf"
	id, err := f.lessonRepo.Create(context.Background(), &models.Lesson{
		CourseID: courseID,
		Title:    "Old title",
		FileURL:  &fileURL,
	})
	require.NoError(t, err)
	f.lessonRepo.lessons[id].InstructorID = 7
	f.lessonRepo.lessons[id].OrderIndex = 3

	err = f.svc.Update(context.Background(), id, 7, &dto.UpdateLessonRequest{
		Title:       "New title",
		Description: "Updated",
		VideoURL:    strPtr("https://example.com/vid.mp4"),
	})
	require.NoError(t, err)

	stored := f.lessonRepo.lessons[id]
	assert.Equal(t, "New title", stored.Title)
	require.NotNil(t, stored.FileURL)
	assert.Equal(t, fileURL, *stored.FileURL)
	assert.Equal(t, 3, stored.OrderIndex)
}

func TestUpdateLessonDeniedForNonOwner(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)

	id, err := f.lessonRepo.Create(context.Background(), &models.Lesson{CourseID: courseID, Title: "L"})
	require.NoError(t, err)
	f.lessonRepo.lessons[id].InstructorID = 7

	err = f.svc.Update(context.Background(), id, 8, &dto.UpdateLessonRequest{Title: "Hijack"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDeleteLessonRemovesFile(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)

	fileURL := "/uploads/doomed.pdf"
	id, err := f.lessonRepo.Create(context.Background(), &models.Lesson{CourseID: courseID, Title: "L", FileURL: &fileURL})
	require.NoError(t, err)
	f.lessonRepo.lessons[id].InstructorID = 7

	require.NoError(t, f.svc.Delete(context.Background(), id, 7))
	assert.Equal(t, []string{fileURL}, f.storage.deleted)
	assert.NotContains(t, f.lessonRepo.lessons, id)
}

func TestDeleteLessonWithoutFile(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)

	id, err := f.lessonRepo.Create(context.Background(), &models.Lesson{CourseID: courseID, Title: "L"})
	require.NoError(t, err)
	f.lessonRepo.lessons[id].InstructorID = 7

	require.NoError(t, f.svc.Delete(context.Background(), id, 7))
	assert.Empty(t, f.storage.deleted)
}

func TestDeleteLessonRecordGoesDespiteFileError(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)
	f.storage.deleteErr = errStorage

	fileURL := "/uploads/stuck.pdf"
	id, err := f.lessonRepo.Create(context.Background(), &models.Lesson{CourseID: courseID, Title: "L", FileURL: &fileURL})
	require.NoError(t, err)
	f.lessonRepo.lessons[id].InstructorID = 7

	require.NoError(t, f.svc.Delete(context.Background(), id, 7))
	assert.NotContains(t, f.lessonRepo.lessons, id)
}

func TestReorderLessons(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)

	var ids []int64
	for _, title := range []string{"a", "b", "c"} {
		id, err := f.lessonRepo.Create(context.Background(), &models.Lesson{CourseID: courseID, Title: title})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	// Reverse the order.
	newOrder := []int64{ids[2], ids[1], ids[0]}
	require.NoError(t, f.svc.Reorder(context.Background(), courseID, 7, newOrder))

	assert.Equal(t, 0, f.lessonRepo.lessons[ids[2]].OrderIndex)
	assert.Equal(t, 1, f.lessonRepo.lessons[ids[1]].OrderIndex)
	assert.Equal(t, 2, f.lessonRepo.lessons[ids[0]].OrderIndex)
}

func TestReorderDeniedForNonOwner(t *testing.T) {
	f := newLessonFixture()
	courseID := f.courseRepo.addCourse(7)

	err := f.svc.Reorder(context.Background(), courseID, 8, []int64{1, 2})
	assert.ErrorIs(t, err, apperrors.ErrCourseAccessDenied)
	assert.Empty(t, f.lessonRepo.reordered)
}

var _ repositories.ILessonRepository = (*fakeLessonRepo)(nil)
var _ repositories.ICourseRepository = (*fakeCourseRepo)(nil)
