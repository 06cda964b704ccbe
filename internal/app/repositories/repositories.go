package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances sharing one connection pool.
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	LessonRepository     *LessonRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories creates all repositories backed by the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		CourseRepository:     NewCourseRepository(db),
		LessonRepository:     NewLessonRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
