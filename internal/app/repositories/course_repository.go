package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/webslearn/webslearn/internal/app/models"
	"github.com/webslearn/webslearn/internal/db"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
	"github.com/webslearn/webslearn/internal/pkg/logger"
)

// CourseDetails includes a course with the owning instructor's display name
// joined in.
type CourseDetails struct {
	ID             int64     `db:"id" json:"id"`
	Title          string    `db:"title" json:"title"`
	Description    string    `db:"description" json:"description"`
	InstructorID   int64     `db:"instructor_id" json:"instructorId"`
	InstructorName string    `db:"instructor_name" json:"instructorName"`
	MaxStudents    int       `db:"max_students" json:"maxStudents"`
	ClassCode      string    `db:"class_code" json:"classCode"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetAll(ctx context.Context) ([]*CourseDetails, error)
	GetByID(ctx context.Context, id int64) (*CourseDetails, error)
	GetByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error)
	IsOwnedBy(ctx context.Context, courseID, instructorID int64) (bool, error)
	DeleteWithLessons(ctx context.Context, courseID int64) error
}

// CourseRepository handles database operations for Course.
type CourseRepository struct {
	DB *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{DB: db}
}

// Common select query builder for courses with the instructor name joined in
func (r *CourseRepository) selectCourseDetailsQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id", "c.title", "c.description", "c.instructor_id",
		"u.username as instructor_name", "c.max_students", "c.class_code", "c.created_at",
	).From("courses c").
		Join("users u ON c.instructor_id = u.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanCourseDetails(row pgx.Row) (*CourseDetails, error) {
	var course CourseDetails
	err := row.Scan(
		&course.ID, &course.Title, &course.Description, &course.InstructorID,
		&course.InstructorName, &course.MaxStudents, &course.ClassCode, &course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error scanning course details")
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course owned by course.InstructorID.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := squirrel.Insert("courses").
		Columns("title", "description", "instructor_id", "max_students", "class_code").
		Values(course.Title, course.Description, course.InstructorID, course.MaxStudents, course.ClassCode).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, err
	}

	return id, nil
}

// GetAll retrieves all courses with instructor names.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*CourseDetails, error) {
	sqlStr, args, err := r.selectCourseDetailsQuery().OrderBy("c.id ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, err
	}
	defer rows.Close()

	courses := make([]*CourseDetails, 0)
	for rows.Next() {
		course, err := scanCourseDetails(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating through course rows")
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves one course with the instructor name, or ErrCourseNotFound.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*CourseDetails, error) {
	sqlStr, args, err := r.selectCourseDetailsQuery().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, err
	}

	return scanCourseDetails(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetByInstructor retrieves only courses owned by the given instructor.
func (r *CourseRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	sqlStr, args, err := squirrel.Select("id", "title", "description", "instructor_id", "max_students", "class_code", "created_at").
		From("courses").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get courses by instructor SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get courses by instructor query")
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		var course models.Course
		err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.InstructorID,
			&course.MaxStudents, &course.ClassCode, &course.CreatedAt,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating through instructor course rows")
		return nil, err
	}

	return courses, nil
}

// IsOwnedBy reports whether the course exists and is owned by the instructor.
// A missing course and a foreign course are indistinguishable here.
func (r *CourseRepository) IsOwnedBy(ctx context.Context, courseID, instructorID int64) (bool, error) {
	sqlStr, args, err := squirrel.Select("1").
		From("courses").
		Where(squirrel.Eq{"id": courseID, "instructor_id": instructorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course ownership SQL")
		return false, err
	}

	var one int
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Msg("Error executing course ownership query")
		return false, err
	}

	return true, nil
}

// DeleteWithLessons removes a course's enrollments, lessons and the course
// itself in a single transaction, dependents first to satisfy the foreign keys.
// File assets are not transactional resources and are cleaned up by the caller.
func (r *CourseRepository) DeleteWithLessons(ctx context.Context, courseID int64) error {
	return db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE course_id = $1`, courseID); err != nil {
			logger.Error().Err(err).Int64("courseID", courseID).Msg("Error deleting enrollments for course")
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM lessons WHERE course_id = $1`, courseID); err != nil {
			logger.Error().Err(err).Int64("courseID", courseID).Msg("Error deleting lessons for course")
			return err
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, courseID)
		if err != nil {
			logger.Error().Err(err).Int64("courseID", courseID).Msg("Error deleting course")
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}
		return nil
	})
}
