package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"coursehub/internal/domain/entity"
	"coursehub/internal/domain/repository"
	"coursehub/pkg/apperr"
)

const (
	defaultPage        = 1
	defaultLimit       = 10
	maxLimit           = 100
	defaultMaxStudents = 50
)

// CourseService enforces ownership and lifecycle rules around course
// persistence. The Elasticsearch index is a best-effort mirror used for
// search tooling; the SQL store stays authoritative.
type CourseService struct {
	Courses     repository.CourseRepository
	Enrollments repository.EnrollmentRepository
	Logger      *logrus.Logger
	ES          *elasticsearch.Client
	ESIndex     string
}

func NewCourseService(courses repository.CourseRepository, enrollments repository.EnrollmentRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *CourseService {
	return &CourseService{Courses: courses, Enrollments: enrollments, Logger: logger, ES: es, ESIndex: esIndex}
}

// CategoryRef is the category projection embedded in course responses.
type CategoryRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CourseView is the response-safe projection of a course.
type CourseView struct {
	ID                string                     `json:"id"`
	Title             string                     `json:"title"`
	Description       string                     `json:"description"`
	Content           string                     `json:"content,omitempty"`
	Duration          int                        `json:"duration"`
	Price             float64                    `json:"price"`
	MaxStudents       int                        `json:"maxStudents"`
	CurrentEnrollment int                        `json:"currentEnrollment"`
	Status            entity.CourseStatus        `json:"status"`
	Thumbnail         string                     `json:"thumbnail,omitempty"`
	Instructor        *entity.UserSummary        `json:"instructor"`
	Categories        []CategoryRef              `json:"categories"`
	Enrollments       []entity.EnrollmentSummary `json:"enrollments,omitempty"`
	EnrollmentStats   *entity.EnrollmentStats    `json:"enrollmentStats,omitempty"`
	CreatedAt         time.Time                  `json:"createdAt"`
	UpdatedAt         time.Time                  `json:"updatedAt"`
}

func newCourseView(c *entity.Course) *CourseView {
	refs := make([]CategoryRef, 0, len(c.Categories))
	for _, cat := range c.Categories {
		refs = append(refs, CategoryRef{ID: cat.ID, Name: cat.Name, Color: cat.Color})
	}
	return &CourseView{
		ID:                c.ID,
		Title:             c.Title,
		Description:       c.Description,
		Content:           c.Content,
		Duration:          c.Duration,
		Price:             c.Price,
		MaxStudents:       c.MaxStudents,
		CurrentEnrollment: c.CurrentEnrollment,
		Status:            c.Status,
		Thumbnail:         c.Thumbnail,
		Instructor:        c.Instructor,
		Categories:        refs,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

type CreateCourseInput struct {
	Title       string
	Description string
	Content     string
	Duration    int
	Price       float64
	MaxStudents int
	Thumbnail   string
	CategoryIDs []string
}

// UpdateCourseInput uses pointers so absent fields are left untouched.
type UpdateCourseInput struct {
	Title       *string
	Description *string
	Content     *string
	Duration    *int
	Price       *float64
	MaxStudents *int
	Thumbnail   *string
	Status      *entity.CourseStatus
	CategoryIDs []string // nil means keep, empty slice clears
}

// ListParams narrows the public course listing.
type ListParams struct {
	Page       int
	Limit      int
	Search     string
	CategoryID string
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func (s *CourseService) Create(ctx context.Context, in CreateCourseInput, instructorID string) (*CourseView, error) {
	if in.MaxStudents == 0 {
		in.MaxStudents = defaultMaxStudents
	}
	c := &entity.Course{
		Title:        in.Title,
		Description:  in.Description,
		Content:      in.Content,
		Duration:     in.Duration,
		Price:        in.Price,
		MaxStudents:  in.MaxStudents,
		Thumbnail:    in.Thumbnail,
		Status:       entity.CourseDraft,
		InstructorID: instructorID,
	}
	if err := s.Courses.Create(ctx, c, in.CategoryIDs); err != nil {
		return nil, err
	}
	created, err := s.Courses.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	s.indexCourse(ctx, created)
	return newCourseView(created), nil
}

// List returns the public catalog: published courses only.
func (s *CourseService) List(ctx context.Context, p ListParams) ([]*CourseView, int, int, int, error) {
	page, limit := normalizePage(p.Page, p.Limit)
	courses, total, err := s.Courses.List(ctx, repository.CourseFilter{
		Status:     entity.CoursePublished,
		Search:     p.Search,
		CategoryID: p.CategoryID,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, 0, 0, 0, err
	}
	views := make([]*CourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, newCourseView(c))
	}
	return views, page, limit, total, nil
}

// GetByID returns the course detail with enrollment summaries, regardless of
// lifecycle status.
func (s *CourseService) GetByID(ctx context.Context, id string) (*CourseView, error) {
	c, err := s.Courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := newCourseView(c)
	enrollments, err := s.Enrollments.ListByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Enrollments = enrollments
	return view, nil
}

// canMutate is the ownership check shared by update, delete, publish and
// archive: the owning instructor, or an admin.
func canMutate(c *entity.Course, actorID string, actorRole entity.Role) bool {
	return c.InstructorID == actorID || actorRole == entity.RoleAdmin
}

func (s *CourseService) Update(ctx context.Context, id string, in UpdateCourseInput, actorID string, actorRole entity.Role) (*CourseView, error) {
	c, err := s.Courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(c, actorID, actorRole) {
		return nil, apperr.Forbidden("INSUFFICIENT_PERMISSIONS", "You are not authorized to update this course")
	}

	if in.CategoryIDs != nil {
		if err := s.Courses.ReplaceCategories(ctx, id, in.CategoryIDs); err != nil {
			return nil, err
		}
	}

	if in.Title != nil {
		c.Title = *in.Title
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Content != nil {
		c.Content = *in.Content
	}
	if in.Duration != nil {
		c.Duration = *in.Duration
	}
	if in.Price != nil {
		c.Price = *in.Price
	}
	if in.MaxStudents != nil {
		c.MaxStudents = *in.MaxStudents
	}
	if in.Thumbnail != nil {
		c.Thumbnail = *in.Thumbnail
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, apperr.Validation("INVALID_STATUS", "Status must be one of: DRAFT, PUBLISHED, ARCHIVED")
		}
		c.Status = *in.Status
	}

	if err := s.Courses.Update(ctx, c); err != nil {
		return nil, err
	}
	updated, err := s.Courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.indexCourse(ctx, updated)
	return newCourseView(updated), nil
}

// Delete removes a course unless it still has active enrollments.
func (s *CourseService) Delete(ctx context.Context, id, actorID string, actorRole entity.Role) error {
	c, err := s.Courses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(c, actorID, actorRole) {
		return apperr.Forbidden("INSUFFICIENT_PERMISSIONS", "You are not authorized to delete this course")
	}

	active, err := s.Enrollments.CountByCourseAndStatus(ctx, id, entity.EnrollmentEnrolled)
	if err != nil {
		return err
	}
	if active > 0 {
		return apperr.Conflict("COURSE_HAS_ENROLLMENTS", "Cannot delete course with active enrollments")
	}

	if err := s.Courses.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *CourseService) Publish(ctx context.Context, id, actorID string, actorRole entity.Role) (*CourseView, error) {
	status := entity.CoursePublished
	return s.Update(ctx, id, UpdateCourseInput{Status: &status}, actorID, actorRole)
}

func (s *CourseService) Archive(ctx context.Context, id, actorID string, actorRole entity.Role) (*CourseView, error) {
	status := entity.CourseArchived
	return s.Update(ctx, id, UpdateCourseInput{Status: &status}, actorID, actorRole)
}

// InstructorCourses lists the caller's own courses (every status) with
// per-course enrollment stats.
func (s *CourseService) InstructorCourses(ctx context.Context, instructorID string, page, limit int) ([]*CourseView, int, int, int, error) {
	page, limit = normalizePage(page, limit)
	courses, total, err := s.Courses.List(ctx, repository.CourseFilter{
		InstructorID: instructorID,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return nil, 0, 0, 0, err
	}
	views := make([]*CourseView, 0, len(courses))
	for _, c := range courses {
		view := newCourseView(c)
		stats, err := s.Enrollments.StatsByCourse(ctx, c.ID)
		if err != nil {
			return nil, 0, 0, 0, err
		}
		view.EnrollmentStats = &stats
		views = append(views, view)
	}
	return views, page, limit, total, nil
}

func (s *CourseService) indexCourse(ctx context.Context, c *entity.Course) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	catNames := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		catNames = append(catNames, cat.Name)
	}
	doc := map[string]any{
		"id":            c.ID,
		"title":         c.Title,
		"description":   c.Description,
		"status":        c.Status,
		"instructor_id": c.InstructorID,
		"categories":    catNames,
		"created_at":    c.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":    c.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: c.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	esCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(esCtx, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("course_id", c.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("course_id", c.ID).Warn("es index response error")
	}
}

func (s *CourseService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	esCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(esCtx, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("course_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
