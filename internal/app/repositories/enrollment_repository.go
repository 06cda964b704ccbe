package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
	"github.com/webslearn/webslearn/internal/pkg/dberrors"
	"github.com/webslearn/webslearn/internal/pkg/logger"
)

// EnrolledCourseDetails includes a course joined through the caller's
// enrollment, with the enrollment timestamp and the instructor's name.
type EnrolledCourseDetails struct {
	CourseDetails
	EnrolledAt time.Time `db:"enrolled_at" json:"enrolledAt"`
}

// IEnrollmentRepository defines the interface for enrollment database operations
type IEnrollmentRepository interface {
	Create(ctx context.Context, userID, courseID int64) error
	ListCoursesForStudent(ctx context.Context, userID int64) ([]*EnrolledCourseDetails, error)
}

// EnrollmentRepository handles database operations for Enrollment.
type EnrollmentRepository struct {
	DB *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Create records a student/course enrollment. Duplicates are rejected by the
// enrollments_user_course_key constraint rather than a check-then-insert, so
// concurrent duplicate requests cannot both succeed.
func (r *EnrollmentRepository) Create(ctx context.Context, userID, courseID int64) error {
	sql, args, err := squirrel.Insert("enrollments").
		Columns("user_id", "course_id").
		Values(userID, courseID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return err
	}

	_, err = r.DB.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_user_course_key") {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create enrollment query")
		return err
	}

	return nil
}

// ListCoursesForStudent returns the courses a student is enrolled in, with
// enrollment timestamps and instructor names.
func (r *EnrollmentRepository) ListCoursesForStudent(ctx context.Context, userID int64) ([]*EnrolledCourseDetails, error) {
	sqlStr, args, err := squirrel.Select(
		"c.id", "c.title", "c.description", "c.instructor_id",
		"u.username as instructor_name", "c.max_students", "c.class_code", "c.created_at",
		"e.enrolled_at",
	).From("courses c").
		Join("enrollments e ON c.id = e.course_id").
		Join("users u ON c.instructor_id = u.id").
		Where(squirrel.Eq{"e.user_id": userID}).
		OrderBy("e.enrolled_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list enrolled courses SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrolled courses query")
		return nil, err
	}
	defer rows.Close()

	courses := make([]*EnrolledCourseDetails, 0)
	for rows.Next() {
		var course EnrolledCourseDetails
		err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.InstructorID,
			&course.InstructorName, &course.MaxStudents, &course.ClassCode, &course.CreatedAt,
			&course.EnrolledAt,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning enrolled course row")
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating through enrolled course rows")
		return nil, err
	}

	return courses, nil
}
