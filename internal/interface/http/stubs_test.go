package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"coursehub/internal/domain/entity"
	"coursehub/internal/domain/repository"
	"coursehub/pkg/apperr"
	"coursehub/pkg/helpers"
)

// Minimal repository stubs for exercising handlers through real services.

type userRepoStub struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
	nextID  int
}

func newUserRepoStub(users ...*entity.User) *userRepoStub {
	s := &userRepoStub{byEmail: map[string]*entity.User{}, byID: map[string]*entity.User{}}
	for _, u := range users {
		s.byEmail[u.Email] = u
		s.byID[u.ID] = u
	}
	return s
}

func (s *userRepoStub) Create(ctx context.Context, u *entity.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return apperr.Conflict("EMAIL_ALREADY_EXISTS", "User with this email already exists")
	}
	s.nextID++
	u.ID = "u-" + string(rune('0'+s.nextID))
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	s.byEmail[u.Email] = u
	s.byID[u.ID] = u
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("USER_NOT_FOUND", "User not found")
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("USER_NOT_FOUND", "User not found")
}

func (s *userRepoStub) Update(ctx context.Context, u *entity.User) error { return nil }

func (s *userRepoStub) UpdatePassword(ctx context.Context, id, hash string) error {
	if u, ok := s.byID[id]; ok {
		u.Password = hash
		return nil
	}
	return apperr.NotFound("USER_NOT_FOUND", "User not found")
}

type resetRepoStub struct {
	byToken map[string]*entity.PasswordReset
}

func newResetRepoStub() *resetRepoStub {
	return &resetRepoStub{byToken: map[string]*entity.PasswordReset{}}
}

func (s *resetRepoStub) Create(ctx context.Context, r *entity.PasswordReset) error {
	r.ID = "pr-" + r.Token[:4]
	s.byToken[r.Token] = r
	return nil
}

func (s *resetRepoStub) GetByToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	if r, ok := s.byToken[token]; ok {
		return r, nil
	}
	return nil, apperr.Validation("INVALID_RESET_TOKEN", "Invalid or expired reset token")
}

func (s *resetRepoStub) Delete(ctx context.Context, id string) error {
	for tok, r := range s.byToken {
		if r.ID == id {
			delete(s.byToken, tok)
		}
	}
	return nil
}

func (s *resetRepoStub) DeleteExpired(ctx context.Context) (int, error) { return 0, nil }

type courseRepoStub struct {
	byID       map[string]*entity.Course
	lastFilter repository.CourseFilter
}

func newCourseRepoStub(courses ...*entity.Course) *courseRepoStub {
	s := &courseRepoStub{byID: map[string]*entity.Course{}}
	for _, c := range courses {
		s.byID[c.ID] = c
	}
	return s
}

func (s *courseRepoStub) Create(ctx context.Context, c *entity.Course, categoryIDs []string) error {
	c.ID = "c-new"
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	if c.Instructor == nil {
		c.Instructor = &entity.UserSummary{ID: c.InstructorID}
	}
	s.byID[c.ID] = c
	return nil
}

func (s *courseRepoStub) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, apperr.NotFound("COURSE_NOT_FOUND", "Course not found")
}

func (s *courseRepoStub) List(ctx context.Context, f repository.CourseFilter) ([]*entity.Course, int, error) {
	s.lastFilter = f
	var out []*entity.Course
	for _, c := range s.byID {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.InstructorID != "" && c.InstructorID != f.InstructorID {
			continue
		}
		out = append(out, c)
	}
	return out, len(out), nil
}

func (s *courseRepoStub) Update(ctx context.Context, c *entity.Course) error {
	s.byID[c.ID] = c
	return nil
}

func (s *courseRepoStub) ReplaceCategories(ctx context.Context, courseID string, categoryIDs []string) error {
	return nil
}

func (s *courseRepoStub) Delete(ctx context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

type enrollRepoStub struct {
	activeByCourse map[string]int
}

func (s *enrollRepoStub) ListByCourse(ctx context.Context, courseID string) ([]entity.EnrollmentSummary, error) {
	return nil, nil
}

func (s *enrollRepoStub) CountByCourseAndStatus(ctx context.Context, courseID string, status entity.EnrollmentStatus) (int, error) {
	return s.activeByCourse[courseID], nil
}

func (s *enrollRepoStub) StatsByCourse(ctx context.Context, courseID string) (entity.EnrollmentStats, error) {
	return entity.EnrollmentStats{}, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func seedUser(id, email, password string, role entity.Role) *entity.User {
	hash, _ := helpers.HashPassword(password)
	return &entity.User{
		ID:        id,
		Email:     email,
		Password:  hash,
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		Status:    entity.UserActive,
	}
}
