package repository

import (
	"context"

	"coursehub/internal/domain/entity"
)

// CategoryWithCount pairs a category with the number of courses tagged by it.
type CategoryWithCount struct {
	entity.Category
	CourseCount int
}

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]CategoryWithCount, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
	CountCourses(ctx context.Context, categoryID string) (int, error)
}
