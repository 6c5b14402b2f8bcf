package application

import (
	"context"
	"testing"

	"coursehub/internal/domain/entity"
	"coursehub/internal/domain/repository"
	"coursehub/pkg/apperr"
)

func sampleCourse(id, instructorID string, status entity.CourseStatus) *entity.Course {
	return &entity.Course{
		ID:           id,
		Title:        "Go from scratch",
		Description:  "A long enough description of the course contents.",
		Duration:     10,
		Price:        49.99,
		MaxStudents:  50,
		Status:       status,
		InstructorID: instructorID,
		Instructor:   &entity.UserSummary{ID: instructorID, FirstName: "Jane", Email: "jane@example.com"},
	}
}

func newCourseService(courses *mockCourseRepo, enrollments *mockEnrollmentRepo) *CourseService {
	return NewCourseService(courses, enrollments, quietLogger(), nil, "")
}

func TestCreateCourseStartsAsDraft(t *testing.T) {
	var created *entity.Course
	courses := &mockCourseRepo{
		createFn: func(ctx context.Context, c *entity.Course, categoryIDs []string) error {
			c.ID = "c-1"
			created = c
			return nil
		},
		getByIDFn: func(ctx context.Context, id string) (*entity.Course, error) {
			return sampleCourse(id, "inst-1", entity.CourseDraft), nil
		},
	}
	svc := newCourseService(courses, &mockEnrollmentRepo{})

	view, err := svc.Create(context.Background(), CreateCourseInput{
		Title:       "Go from scratch",
		Description: "A long enough description of the course contents.",
		Duration:    10,
		Price:       49.99,
	}, "inst-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != entity.CourseDraft {
		t.Errorf("status = %s, want DRAFT", created.Status)
	}
	if created.MaxStudents != 50 {
		t.Errorf("maxStudents = %d, want default 50", created.MaxStudents)
	}
	if created.InstructorID != "inst-1" {
		t.Errorf("instructorID = %s", created.InstructorID)
	}
	if view.ID != "c-1" {
		t.Errorf("view.ID = %s", view.ID)
	}
}

func TestListFiltersToPublished(t *testing.T) {
	courses := &mockCourseRepo{
		listFn: func(ctx context.Context, f repository.CourseFilter) ([]*entity.Course, int, error) {
			return []*entity.Course{sampleCourse("c-1", "inst-1", entity.CoursePublished)}, 1, nil
		},
	}
	svc := newCourseService(courses, &mockEnrollmentRepo{})

	views, page, limit, total, err := svc.List(context.Background(), ListParams{Search: "go"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if courses.lastFilter.Status != entity.CoursePublished {
		t.Errorf("filter status = %s, want PUBLISHED", courses.lastFilter.Status)
	}
	if page != 1 || limit != 10 {
		t.Errorf("defaults page=%d limit=%d, want 1/10", page, limit)
	}
	if total != 1 || len(views) != 1 {
		t.Errorf("total=%d len=%d", total, len(views))
	}
}

func TestListClampsLimit(t *testing.T) {
	courses := &mockCourseRepo{}
	svc := newCourseService(courses, &mockEnrollmentRepo{})

	_, _, limit, _, err := svc.List(context.Background(), ListParams{Page: 2, Limit: 5000})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if limit != 100 {
		t.Errorf("limit = %d, want clamp to 100", limit)
	}
	if courses.lastFilter.Page != 2 {
		t.Errorf("page = %d", courses.lastFilter.Page)
	}
}

func TestGetByIDIncludesEnrollments(t *testing.T) {
	courses := &mockCourseRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Course, error) {
			return sampleCourse(id, "inst-1", entity.CoursePublished), nil
		},
	}
	enrollments := &mockEnrollmentRepo{
		listByCourseFn: func(ctx context.Context, courseID string) ([]entity.EnrollmentSummary, error) {
			return []entity.EnrollmentSummary{{ID: "e-1", UserID: "u-1", Status: entity.EnrollmentEnrolled}}, nil
		},
	}
	svc := newCourseService(courses, enrollments)

	view, err := svc.GetByID(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(view.Enrollments) != 1 {
		t.Fatalf("enrollments = %d, want 1", len(view.Enrollments))
	}
}

func TestUpdateRequiresOwnershipOrAdmin(t *testing.T) {
	courses := &mockCourseRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Course, error) {
			return sampleCourse(id, "inst-1", entity.CourseDraft), nil
		},
	}
	svc := newCourseService(courses, &mockEnrollmentRepo{})
	title := "New title"

	_, err := svc.Update(context.Background(), "c-1", UpdateCourseInput{Title: &title}, "inst-2", entity.RoleInstructor)
	if apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("other instructor: kind = %v, want Forbidden", apperr.KindOf(err))
	}

	if _, err := svc.Update(context.Background(), "c-1", UpdateCourseInput{Title: &title}, "inst-1", entity.RoleInstructor); err != nil {
		t.Fatalf("owner: %v", err)
	}
	if _, err := svc.Update(context.Background(), "c-1", UpdateCourseInput{Title: &title}, "admin-1", entity.RoleAdmin); err != nil {
		t.Fatalf("admin override: %v", err)
	}
}

func TestUpdateRejectsBadStatus(t *testing.T) {
	courses := &mockCourseRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Course, error) {
			return sampleCourse(id, "inst-1", entity.CourseDraft), nil
		},
	}
	svc := newCourseService(courses, &mockEnrollmentRepo{})
	bad := entity.CourseStatus("LIVE")

	_, err := svc.Update(context.Background(), "c-1", UpdateCourseInput{Status: &bad}, "inst-1", entity.RoleInstructor)
	if apperr.CodeOf(err) != "INVALID_STATUS" {
		t.Fatalf("code = %s", apperr.CodeOf(err))
	}
}

func TestDeleteBlockedByActiveEnrollments(t *testing.T) {
	courses := &mockCourseRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Course, error) {
			return sampleCourse(id, "inst-1", entity.CoursePublished), nil
		},
	}
	enrollments := &mockEnrollmentRepo{
		countFn: func(ctx context.Context, courseID string, status entity.EnrollmentStatus) (int, error) {
			if status != entity.EnrollmentEnrolled {
				t.Errorf("counted status %s, want ENROLLED", status)
			}
			return 3, nil
		},
	}
	svc := newCourseService(courses, enrollments)

	err := svc.Delete(context.Background(), "c-1", "inst-1", entity.RoleInstructor)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("kind = %v, want Conflict", apperr.KindOf(err))
	}
	if apperr.CodeOf(err) != "COURSE_HAS_ENROLLMENTS" {
		t.Errorf("code = %s", apperr.CodeOf(err))
	}
	if courses.deleteCalls != 0 {
		t.Error("Delete must not reach the store")
	}
}

func TestDeleteSucceedsWithoutActiveEnrollments(t *testing.T) {
	courses := &mockCourseRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Course, error) {
			return sampleCourse(id, "inst-1", entity.CourseDraft), nil
		},
	}
	svc := newCourseService(courses, &mockEnrollmentRepo{})

	if err := svc.Delete(context.Background(), "c-1", "inst-1", entity.RoleInstructor); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if courses.deleteCalls != 1 {
		t.Errorf("deleteCalls = %d, want 1", courses.deleteCalls)
	}
}

func TestPublishSetsStatus(t *testing.T) {
	var updated *entity.Course
	courses := &mockCourseRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Course, error) {
			if updated != nil {
				return updated, nil
			}
			return sampleCourse(id, "inst-1", entity.CourseDraft), nil
		},
		updateFn: func(ctx context.Context, c *entity.Course) error {
			updated = c
			return nil
		},
	}
	svc := newCourseService(courses, &mockEnrollmentRepo{})

	view, err := svc.Publish(context.Background(), "c-1", "inst-1", entity.RoleInstructor)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if view.Status != entity.CoursePublished {
		t.Errorf("status = %s, want PUBLISHED", view.Status)
	}
}

func TestInstructorCoursesAttachStats(t *testing.T) {
	courses := &mockCourseRepo{
		listFn: func(ctx context.Context, f repository.CourseFilter) ([]*entity.Course, int, error) {
			return []*entity.Course{
				sampleCourse("c-1", "inst-1", entity.CourseDraft),
				sampleCourse("c-2", "inst-1", entity.CoursePublished),
			}, 2, nil
		},
	}
	enrollments := &mockEnrollmentRepo{
		statsFn: func(ctx context.Context, courseID string) (entity.EnrollmentStats, error) {
			return entity.EnrollmentStats{Total: 5, Active: 3, Completed: 2}, nil
		},
	}
	svc := newCourseService(courses, enrollments)

	views, _, _, total, err := svc.InstructorCourses(context.Background(), "inst-1", 1, 10)
	if err != nil {
		t.Fatalf("InstructorCourses: %v", err)
	}
	if courses.lastFilter.InstructorID != "inst-1" {
		t.Errorf("filter instructor = %s", courses.lastFilter.InstructorID)
	}
	if courses.lastFilter.Status != "" {
		t.Errorf("instructor listing must include every status, filter = %s", courses.lastFilter.Status)
	}
	if total != 2 || len(views) != 2 {
		t.Fatalf("total=%d len=%d", total, len(views))
	}
	for _, v := range views {
		if v.EnrollmentStats == nil || v.EnrollmentStats.Total != 5 {
			t.Errorf("course %s missing stats", v.ID)
		}
	}
}
