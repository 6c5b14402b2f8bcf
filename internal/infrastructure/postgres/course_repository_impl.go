package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coursehub/internal/domain/entity"
	"coursehub/internal/domain/repository"
	"coursehub/pkg/apperr"
)

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

const courseColumns = `c.id, c.title, c.description, c.content, c.duration, c.price, c.max_students,
	c.current_enrollment, c.status, c.thumbnail, c.instructor_id, c.created_at, c.updated_at,
	u.id, u.first_name, u.last_name, u.email`

func scanCourse(row pgx.Row) (*entity.Course, error) {
	c := &entity.Course{Instructor: &entity.UserSummary{}}
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Content, &c.Duration, &c.Price,
		&c.MaxStudents, &c.CurrentEnrollment, &c.Status, &c.Thumbnail, &c.InstructorID,
		&c.CreatedAt, &c.UpdatedAt,
		&c.Instructor.ID, &c.Instructor.FirstName, &c.Instructor.LastName, &c.Instructor.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("COURSE_NOT_FOUND", "Course not found")
		}
		return nil, apperr.Wrap(err, "query course")
	}
	return c, nil
}

func (r *CourseRepository) Create(ctx context.Context, c *entity.Course, categoryIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperr.Wrap(err, "begin")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO courses (title, description, content, duration, price, max_students, status, thumbnail, instructor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, current_enrollment, created_at, updated_at
	`, c.Title, c.Description, c.Content, c.Duration, c.Price, c.MaxStudents, c.Status, c.Thumbnail, c.InstructorID)
	if err := row.Scan(&c.ID, &c.CurrentEnrollment, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return apperr.Wrap(err, "insert course")
	}

	for _, catID := range categoryIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO course_categories (course_id, category_id) VALUES ($1, $2)
		`, c.ID, catID); err != nil {
			return apperr.Validation("INVALID_CATEGORY", "One or more category IDs are invalid")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.Wrap(err, "commit")
	}
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	c, err := scanCourse(r.pool.QueryRow(ctx, `
		SELECT `+courseColumns+`
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		WHERE c.id = $1
	`, id))
	if err != nil {
		return nil, err
	}
	if err := r.attachCategories(ctx, []*entity.Course{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns one page of matching courses plus the total match count.
func (r *CourseRepository) List(ctx context.Context, f repository.CourseFilter) ([]*entity.Course, int, error) {
	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" {
		where = append(where, "c.status = "+arg(f.Status))
	}
	if f.InstructorID != "" {
		where = append(where, "c.instructor_id = "+arg(f.InstructorID))
	}
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		where = append(where, "(c.title ILIKE "+p+" OR c.description ILIKE "+p+")")
	}
	if f.CategoryID != "" {
		where = append(where, "EXISTS (SELECT 1 FROM course_categories cc WHERE cc.course_id = c.id AND cc.category_id = "+arg(f.CategoryID)+")")
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM courses c`+cond, args...).Scan(&total); err != nil {
		return nil, 0, apperr.Wrap(err, "count courses")
	}

	query := `
		SELECT ` + courseColumns + `
		FROM courses c
		JOIN users u ON u.id = c.instructor_id` + cond + `
		ORDER BY c.created_at DESC`
	if f.Limit > 0 {
		offset := (f.Page - 1) * f.Limit
		query += `
		LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperr.Wrap(err, "list courses")
	}
	defer rows.Close()

	var courses []*entity.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperr.Wrap(err, "list courses")
	}

	if err := r.attachCategories(ctx, courses); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *CourseRepository) Update(ctx context.Context, c *entity.Course) error {
	c.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE courses
		SET title = $1, description = $2, content = $3, duration = $4, price = $5,
			max_students = $6, status = $7, thumbnail = $8, updated_at = $9
		WHERE id = $10
	`, c.Title, c.Description, c.Content, c.Duration, c.Price, c.MaxStudents, c.Status, c.Thumbnail, c.UpdatedAt, c.ID)
	if err != nil {
		return apperr.Wrap(err, "update course")
	}
	if res.RowsAffected() == 0 {
		return apperr.NotFound("COURSE_NOT_FOUND", "Course not found")
	}
	return nil
}

// ReplaceCategories swaps the full association set for a course.
func (r *CourseRepository) ReplaceCategories(ctx context.Context, courseID string, categoryIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperr.Wrap(err, "begin")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM course_categories WHERE course_id = $1`, courseID); err != nil {
		return apperr.Wrap(err, "clear course categories")
	}
	for _, catID := range categoryIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO course_categories (course_id, category_id) VALUES ($1, $2)
		`, courseID, catID); err != nil {
			return apperr.Validation("INVALID_CATEGORY", "One or more category IDs are invalid")
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return apperr.Wrap(err, "commit")
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(err, "delete course")
	}
	if res.RowsAffected() == 0 {
		return apperr.NotFound("COURSE_NOT_FOUND", "Course not found")
	}
	return nil
}

func (r *CourseRepository) attachCategories(ctx context.Context, courses []*entity.Course) error {
	if len(courses) == 0 {
		return nil
	}
	ids := make([]string, 0, len(courses))
	byID := make(map[string]*entity.Course, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
		byID[c.ID] = c
		c.Categories = []entity.Category{}
	}

	rows, err := r.pool.Query(ctx, `
		SELECT cc.course_id, cat.id, cat.name, cat.description, cat.color, cat.created_at, cat.updated_at
		FROM course_categories cc
		JOIN categories cat ON cat.id = cc.category_id
		WHERE cc.course_id = ANY($1)
	`, ids)
	if err != nil {
		return apperr.Wrap(err, "load course categories")
	}
	defer rows.Close()

	for rows.Next() {
		var courseID string
		var cat entity.Category
		if err := rows.Scan(&courseID, &cat.ID, &cat.Name, &cat.Description, &cat.Color, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return apperr.Wrap(err, "scan course category")
		}
		if c, ok := byID[courseID]; ok {
			c.Categories = append(c.Categories, cat)
		}
	}
	return rows.Err()
}

var _ repository.CourseRepository = (*CourseRepository)(nil)
