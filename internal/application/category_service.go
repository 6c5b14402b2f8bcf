package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"coursehub/internal/domain/entity"
	"coursehub/internal/domain/repository"
	"coursehub/pkg/apperr"
)

type CategoryService struct {
	Categories repository.CategoryRepository
	Courses    repository.CourseRepository
	Logger     *logrus.Logger
}

func NewCategoryService(categories repository.CategoryRepository, courses repository.CourseRepository, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Categories: categories, Courses: courses, Logger: logger}
}

type CategoryView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CourseCount int       `json:"courseCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryDetail includes the published courses filed under the category.
type CategoryDetail struct {
	CategoryView
	Courses []*CourseView `json:"courses"`
}

func newCategoryView(c *entity.Category, count int) *CategoryView {
	return &CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		CourseCount: count,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type CategoryInput struct {
	Name        string
	Description string
	Color       string
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*CategoryView, error) {
	c := &entity.Category{Name: in.Name, Description: in.Description, Color: in.Color}
	if err := s.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return newCategoryView(c, 0), nil
}

func (s *CategoryService) List(ctx context.Context) ([]*CategoryView, error) {
	rows, err := s.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*CategoryView, 0, len(rows))
	for _, r := range rows {
		views = append(views, newCategoryView(&r.Category, r.CourseCount))
	}
	return views, nil
}

// GetByID returns the category together with its published courses.
func (s *CategoryService) GetByID(ctx context.Context, id string) (*CategoryDetail, error) {
	c, err := s.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	courses, total, err := s.Courses.List(ctx, repository.CourseFilter{
		Status:     entity.CoursePublished,
		CategoryID: id,
	})
	if err != nil {
		return nil, err
	}
	views := make([]*CourseView, 0, len(courses))
	for _, course := range courses {
		views = append(views, newCourseView(course))
	}
	return &CategoryDetail{CategoryView: *newCategoryView(c, total), Courses: views}, nil
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Color       *string
}

func (s *CategoryService) Update(ctx context.Context, id string, in UpdateCategoryInput) (*CategoryView, error) {
	c, err := s.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Color != nil {
		c.Color = *in.Color
	}
	if err := s.Categories.Update(ctx, c); err != nil {
		return nil, err
	}
	count, err := s.Categories.CountCourses(ctx, id)
	if err != nil {
		return nil, err
	}
	return newCategoryView(c, count), nil
}

// Delete refuses to remove a category that still has courses filed under it.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.Categories.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.Categories.CountCourses(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("CATEGORY_HAS_COURSES", "Cannot delete category that has courses assigned to it")
	}
	return s.Categories.Delete(ctx, id)
}
