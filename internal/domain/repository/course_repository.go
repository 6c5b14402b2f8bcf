package repository

import (
	"context"

	"coursehub/internal/domain/entity"
)

// CourseFilter narrows List queries. Zero values mean "no constraint".
type CourseFilter struct {
	Status       entity.CourseStatus // restrict to one lifecycle status
	Search       string              // case-insensitive substring on title/description
	CategoryID   string              // courses associated with this category
	InstructorID string              // courses owned by this instructor
	Page         int
	Limit        int
}

// CourseRepository defines the interface for course persistence.
// List results are ordered by creation time descending; reads populate the
// instructor summary and category associations.
type CourseRepository interface {
	Create(ctx context.Context, c *entity.Course, categoryIDs []string) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	List(ctx context.Context, f CourseFilter) ([]*entity.Course, int, error)
	Update(ctx context.Context, c *entity.Course) error
	ReplaceCategories(ctx context.Context, courseID string, categoryIDs []string) error
	Delete(ctx context.Context, id string) error
}

// EnrollmentRepository exposes the enrollment reads used by course policies.
type EnrollmentRepository interface {
	ListByCourse(ctx context.Context, courseID string) ([]entity.EnrollmentSummary, error)
	CountByCourseAndStatus(ctx context.Context, courseID string, status entity.EnrollmentStatus) (int, error)
	StatsByCourse(ctx context.Context, courseID string) (entity.EnrollmentStats, error)
}
