package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webslearn/webslearn/internal/app/models"
	"github.com/webslearn/webslearn/internal/app/repositories"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
	"github.com/webslearn/webslearn/internal/pkg/filestorage"
)

// makeUploadHeader builds a multipart.FileHeader carrying a small PDF part.
func makeUploadHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "slides.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, fileHeader, err := req.FormFile("file")
	require.NoError(t, err)
	return fileHeader
}

// In-memory fakes for the repository and storage interfaces. Each fake keeps
// its records in maps and mimics the error mapping of the real implementation.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	id := r.nextID
	r.nextID++
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

type fakeCourseRepo struct {
	courses    map[int64]*repositories.CourseDetails
	nextID     int64
	deletedIDs []int64
	deleteErr  error
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[int64]*repositories.CourseDetails{}, nextID: 1}
}

func (r *fakeCourseRepo) addCourse(instructorID int64) int64 {
	id := r.nextID
	r.nextID++
	r.courses[id] = &repositories.CourseDetails{ID: id, Title: "Course", InstructorID: instructorID}
	return id
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) (int64, error) {
	id := r.nextID
	r.nextID++
	r.courses[id] = &repositories.CourseDetails{
		ID:           id,
		Title:        course.Title,
		Description:  course.Description,
		InstructorID: course.InstructorID,
		MaxStudents:  course.MaxStudents,
		ClassCode:    course.ClassCode,
	}
	return id, nil
}

func (r *fakeCourseRepo) GetAll(_ context.Context) ([]*repositories.CourseDetails, error) {
	var out []*repositories.CourseDetails
	for _, c := range r.courses {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*repositories.CourseDetails, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (r *fakeCourseRepo) GetByInstructor(_ context.Context, instructorID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range r.courses {
		if c.InstructorID == instructorID {
			out = append(out, &models.Course{ID: c.ID, Title: c.Title, InstructorID: c.InstructorID})
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) IsOwnedBy(_ context.Context, courseID, instructorID int64) (bool, error) {
	course, ok := r.courses[courseID]
	return ok && course.InstructorID == instructorID, nil
}

func (r *fakeCourseRepo) DeleteWithLessons(_ context.Context, courseID int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.courses[courseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, courseID)
	r.deletedIDs = append(r.deletedIDs, courseID)
	return nil
}

type fakeLessonRepo struct {
	lessons     map[int64]*repositories.LessonDetails
	nextID      int64
	createErr   error
	fileRefs    []string
	fileRefsErr error
	reordered   [][]int64
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: map[int64]*repositories.LessonDetails{}, nextID: 1}
}

func (r *fakeLessonRepo) Create(_ context.Context, lesson *models.Lesson) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	id := r.nextID
	r.nextID++
	stored := *lesson
	stored.ID = id
	r.lessons[id] = &repositories.LessonDetails{Lesson: stored}
	return id, nil
}

func (r *fakeLessonRepo) GetWithOwner(_ context.Context, id int64) (*repositories.LessonDetails, error) {
	lesson, ok := r.lessons[id]
	if !ok {
		return nil, apperrors.ErrLessonNotFound
	}
	copied := *lesson
	return &copied, nil
}

func (r *fakeLessonRepo) ListByCourse(_ context.Context, courseID int64) ([]*models.Lesson, error) {
	var out []*models.Lesson
	for _, l := range r.lessons {
		if l.CourseID == courseID {
			lesson := l.Lesson
			out = append(out, &lesson)
		}
	}
	return out, nil
}

func (r *fakeLessonRepo) ListFileRefs(_ context.Context, _ int64) ([]string, error) {
	if r.fileRefsErr != nil {
		return nil, r.fileRefsErr
	}
	return r.fileRefs, nil
}

func (r *fakeLessonRepo) Update(_ context.Context, lesson *models.Lesson) error {
	stored, ok := r.lessons[lesson.ID]
	if !ok {
		return apperrors.ErrLessonNotFound
	}
	stored.Title = lesson.Title
	stored.Description = lesson.Description
	stored.DocumentURL = lesson.DocumentURL
	stored.VideoURL = lesson.VideoURL
	return nil
}

func (r *fakeLessonRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.lessons[id]; !ok {
		return apperrors.ErrLessonNotFound
	}
	delete(r.lessons, id)
	return nil
}

func (r *fakeLessonRepo) Reorder(_ context.Context, _ int64, orderedIDs []int64) error {
	r.reordered = append(r.reordered, orderedIDs)
	for idx, id := range orderedIDs {
		if lesson, ok := r.lessons[id]; ok {
			lesson.OrderIndex = idx
		}
	}
	return nil
}

type fakeEnrollmentRepo struct {
	enrolled map[[2]int64]bool
	courses  []*repositories.EnrolledCourseDetails
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrolled: map[[2]int64]bool{}}
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, userID, courseID int64) error {
	key := [2]int64{userID, courseID}
	if r.enrolled[key] {
		return apperrors.ErrAlreadyEnrolled
	}
	r.enrolled[key] = true
	return nil
}

func (r *fakeEnrollmentRepo) ListCoursesForStudent(_ context.Context, _ int64) ([]*repositories.EnrolledCourseDetails, error) {
	return r.courses, nil
}

// fakeFileStorage records saves and deletes without touching disk.
type fakeFileStorage struct {
	saveErr   error
	deleteErr error
	saved     []string
	deleted   []string
	nextName  string
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{nextName: "/uploads/stored-file.pdf"}
}

func (f *fakeFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	if fileHeader == nil {
		return "", apperrors.ErrFileMissing
	}
	f.saved = append(f.saved, f.nextName)
	return f.nextName, nil
}

func (f *fakeFileStorage) DeleteFile(path string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeFileStorage) URLFor(reference string) string {
	return reference
}

var errStorage = errors.New("storage failure")

var _ filestorage.FileStorage = (*fakeFileStorage)(nil)
