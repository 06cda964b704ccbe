package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/webslearn/webslearn/internal/app/models"
	"github.com/webslearn/webslearn/internal/db"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
	"github.com/webslearn/webslearn/internal/pkg/logger"
)

// LessonDetails includes a lesson joined with its course's owning instructor,
// used for ownership checks on lesson-scoped operations.
type LessonDetails struct {
	models.Lesson
	InstructorID int64 `db:"instructor_id" json:"instructorId"`
}

// ILessonRepository defines the interface for lesson-related database operations
type ILessonRepository interface {
	Create(ctx context.Context, lesson *models.Lesson) (int64, error)
	GetWithOwner(ctx context.Context, id int64) (*LessonDetails, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Lesson, error)
	ListFileRefs(ctx context.Context, courseID int64) ([]string, error)
	Update(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, courseID int64, orderedIDs []int64) error
}

// LessonRepository handles database operations for Lesson.
type LessonRepository struct {
	DB *pgxpool.Pool
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{DB: db}
}

// Create inserts a new lesson into the database.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) (int64, error) {
	sql, args, err := squirrel.Insert("lessons").
		Columns("course_id", "title", "description", "document_url", "video_url", "file_url", "order_index").
		Values(lesson.CourseID, lesson.Title, lesson.Description, lesson.DocumentURL, lesson.VideoURL, lesson.FileURL, lesson.OrderIndex).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create lesson SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create lesson query")
		return 0, err
	}

	return id, nil
}

// GetWithOwner retrieves a lesson joined with its course's instructor id.
func (r *LessonRepository) GetWithOwner(ctx context.Context, id int64) (*LessonDetails, error) {
	sqlStr, args, err := squirrel.Select(
		"l.id", "l.course_id", "l.title", "l.description",
		"l.document_url", "l.video_url", "l.file_url", "l.order_index",
		"c.instructor_id",
	).From("lessons l").
		Join("courses c ON l.course_id = c.id").
		Where(squirrel.Eq{"l.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get lesson with owner SQL")
		return nil, err
	}

	var lesson LessonDetails
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.Description,
		&lesson.DocumentURL, &lesson.VideoURL, &lesson.FileURL, &lesson.OrderIndex,
		&lesson.InstructorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonNotFound
		}
		logger.Error().Err(err).Msg("Error scanning lesson details")
		return nil, err
	}

	return &lesson, nil
}

// ListByCourse returns a course's lessons ordered by ascending order index,
// ties broken by insertion order.
func (r *LessonRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	sqlStr, args, err := squirrel.Select(
		"id", "course_id", "title", "description", "document_url", "video_url", "file_url", "order_index",
	).From("lessons").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("order_index ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list lessons SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list lessons query")
		return nil, err
	}
	defer rows.Close()

	lessons := make([]*models.Lesson, 0)
	for rows.Next() {
		var lesson models.Lesson
		err := rows.Scan(
			&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.Description,
			&lesson.DocumentURL, &lesson.VideoURL, &lesson.FileURL, &lesson.OrderIndex,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning lesson row")
			return nil, err
		}
		lessons = append(lessons, &lesson)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating through lesson rows")
		return nil, err
	}

	return lessons, nil
}

// ListFileRefs returns the stored file references of a course's lessons.
func (r *LessonRepository) ListFileRefs(ctx context.Context, courseID int64) ([]string, error) {
	sqlStr, args, err := squirrel.Select("file_url").
		From("lessons").
		Where(squirrel.And{
			squirrel.Eq{"course_id": courseID},
			squirrel.NotEq{"file_url": nil},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list file refs SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list file refs query")
		return nil, err
	}
	defer rows.Close()

	refs := make([]string, 0)
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			logger.Error().Err(err).Msg("Error scanning file ref")
			return nil, err
		}
		refs = append(refs, ref)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating through file ref rows")
		return nil, err
	}

	return refs, nil
}

// Update alters a lesson's title, description and content URLs. The file
// pointer and order index are never touched here.
func (r *LessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	sql, args, err := squirrel.Update("lessons").
		Set("title", lesson.Title).
		Set("description", lesson.Description).
		Set("document_url", lesson.DocumentURL).
		Set("video_url", lesson.VideoURL).
		Where(squirrel.Eq{"id": lesson.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update lesson SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update lesson query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}

	return nil
}

// Delete removes a lesson by its ID.
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("lessons").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete lesson SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete lesson query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}

	return nil
}

// Reorder assigns each lesson its position in orderedIDs as the new order
// index, all within one transaction so concurrent reorders on the same course
// serialize on the row locks. Updates are scoped by course id, so a lesson id
// belonging to another course is silently ignored.
func (r *LessonRepository) Reorder(ctx context.Context, courseID int64, orderedIDs []int64) error {
	return db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		for position, lessonID := range orderedIDs {
			_, err := tx.Exec(ctx,
				`UPDATE lessons SET order_index = $1 WHERE id = $2 AND course_id = $3`,
				position, lessonID, courseID,
			)
			if err != nil {
				logger.Error().Err(err).Int64("lessonID", lessonID).Msg("Error updating lesson order")
				return err
			}
		}
		return nil
	})
}
