package application

import (
	"context"

	"coursehub/internal/domain/entity"
	"coursehub/internal/domain/repository"
	"coursehub/pkg/apperr"
)

// Hand-rolled mocks: each method delegates to a func field so individual
// tests override only what they need.

type mockUserRepo struct {
	createFn         func(ctx context.Context, u *entity.User) error
	getByIDFn        func(ctx context.Context, id string) (*entity.User, error)
	getByEmailFn     func(ctx context.Context, email string) (*entity.User, error)
	updateFn         func(ctx context.Context, u *entity.User) error
	updatePasswordFn func(ctx context.Context, id, hash string) error

	createCalls         int
	updatePasswordCalls int
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	u.ID = "u-1"
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, apperr.NotFound("USER_NOT_FOUND", "User not found")
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, apperr.NotFound("USER_NOT_FOUND", "User not found")
}

func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	m.updatePasswordCalls++
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

type mockResetRepo struct {
	createFn     func(ctx context.Context, r *entity.PasswordReset) error
	getByTokenFn func(ctx context.Context, token string) (*entity.PasswordReset, error)
	deleteFn     func(ctx context.Context, id string) error

	created     []*entity.PasswordReset
	deleteCalls int
}

func (m *mockResetRepo) Create(ctx context.Context, r *entity.PasswordReset) error {
	m.created = append(m.created, r)
	if m.createFn != nil {
		return m.createFn(ctx, r)
	}
	r.ID = "pr-1"
	return nil
}

func (m *mockResetRepo) GetByToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, apperr.Validation("INVALID_RESET_TOKEN", "Invalid or expired reset token")
}

func (m *mockResetRepo) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockResetRepo) DeleteExpired(ctx context.Context) (int, error) { return 0, nil }

type mockCourseRepo struct {
	createFn            func(ctx context.Context, c *entity.Course, categoryIDs []string) error
	getByIDFn           func(ctx context.Context, id string) (*entity.Course, error)
	listFn              func(ctx context.Context, f repository.CourseFilter) ([]*entity.Course, int, error)
	updateFn            func(ctx context.Context, c *entity.Course) error
	replaceCategoriesFn func(ctx context.Context, courseID string, categoryIDs []string) error
	deleteFn            func(ctx context.Context, id string) error

	deleteCalls int
	lastFilter  repository.CourseFilter
}

func (m *mockCourseRepo) Create(ctx context.Context, c *entity.Course, categoryIDs []string) error {
	if m.createFn != nil {
		return m.createFn(ctx, c, categoryIDs)
	}
	c.ID = "c-1"
	return nil
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, apperr.NotFound("COURSE_NOT_FOUND", "Course not found")
}

func (m *mockCourseRepo) List(ctx context.Context, f repository.CourseFilter) ([]*entity.Course, int, error) {
	m.lastFilter = f
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *mockCourseRepo) Update(ctx context.Context, c *entity.Course) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, c)
	}
	return nil
}

func (m *mockCourseRepo) ReplaceCategories(ctx context.Context, courseID string, categoryIDs []string) error {
	if m.replaceCategoriesFn != nil {
		return m.replaceCategoriesFn(ctx, courseID, categoryIDs)
	}
	return nil
}

func (m *mockCourseRepo) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockEnrollmentRepo struct {
	listByCourseFn func(ctx context.Context, courseID string) ([]entity.EnrollmentSummary, error)
	countFn        func(ctx context.Context, courseID string, status entity.EnrollmentStatus) (int, error)
	statsFn        func(ctx context.Context, courseID string) (entity.EnrollmentStats, error)
}

func (m *mockEnrollmentRepo) ListByCourse(ctx context.Context, courseID string) ([]entity.EnrollmentSummary, error) {
	if m.listByCourseFn != nil {
		return m.listByCourseFn(ctx, courseID)
	}
	return nil, nil
}

func (m *mockEnrollmentRepo) CountByCourseAndStatus(ctx context.Context, courseID string, status entity.EnrollmentStatus) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, courseID, status)
	}
	return 0, nil
}

func (m *mockEnrollmentRepo) StatsByCourse(ctx context.Context, courseID string) (entity.EnrollmentStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, courseID)
	}
	return entity.EnrollmentStats{}, nil
}

type mockCategoryRepo struct {
	createFn       func(ctx context.Context, c *entity.Category) error
	getByIDFn      func(ctx context.Context, id string) (*entity.Category, error)
	listFn         func(ctx context.Context) ([]repository.CategoryWithCount, error)
	updateFn       func(ctx context.Context, c *entity.Category) error
	deleteFn       func(ctx context.Context, id string) error
	countCoursesFn func(ctx context.Context, categoryID string) (int, error)

	deleteCalls int
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	c.ID = "cat-1"
	return nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, apperr.NotFound("CATEGORY_NOT_FOUND", "Category not found")
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]repository.CategoryWithCount, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCategoryRepo) CountCourses(ctx context.Context, categoryID string) (int, error) {
	if m.countCoursesFn != nil {
		return m.countCoursesFn(ctx, categoryID)
	}
	return 0, nil
}

type mockPublisher struct {
	publishFn func(ctx context.Context, body any) error
	published []any
}

func (m *mockPublisher) PublishJSON(ctx context.Context, body any) error {
	m.published = append(m.published, body)
	if m.publishFn != nil {
		return m.publishFn(ctx, body)
	}
	return nil
}
