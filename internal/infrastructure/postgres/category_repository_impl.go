package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coursehub/internal/domain/entity"
	"coursehub/internal/domain/repository"
	"coursehub/pkg/apperr"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name, description, color)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Description, c.Color)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if uniqueViolation(err) {
			return apperr.Conflict("CATEGORY_ALREADY_EXISTS", "Category with this name already exists")
		}
		return apperr.Wrap(err, "insert category")
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c := &entity.Category{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, color, created_at, updated_at
		FROM categories
		WHERE id = $1
	`, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("CATEGORY_NOT_FOUND", "Category not found")
		}
		return nil, apperr.Wrap(err, "query category")
	}
	return c, nil
}

// List returns all categories ordered by name with their course counts.
func (r *CategoryRepository) List(ctx context.Context) ([]repository.CategoryWithCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cat.id, cat.name, cat.description, cat.color, cat.created_at, cat.updated_at,
			count(cc.course_id)
		FROM categories cat
		LEFT JOIN course_categories cc ON cc.category_id = cat.id
		GROUP BY cat.id
		ORDER BY cat.name ASC
	`)
	if err != nil {
		return nil, apperr.Wrap(err, "list categories")
	}
	defer rows.Close()

	out := []repository.CategoryWithCount{}
	for rows.Next() {
		var c repository.CategoryWithCount
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.CreatedAt, &c.UpdatedAt, &c.CourseCount); err != nil {
			return nil, apperr.Wrap(err, "scan category")
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	c.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET name = $1, description = $2, color = $3, updated_at = $4
		WHERE id = $5
	`, c.Name, c.Description, c.Color, c.UpdatedAt, c.ID)
	if err != nil {
		if uniqueViolation(err) {
			return apperr.Conflict("CATEGORY_ALREADY_EXISTS", "Category with this name already exists")
		}
		return apperr.Wrap(err, "update category")
	}
	if res.RowsAffected() == 0 {
		return apperr.NotFound("CATEGORY_NOT_FOUND", "Category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(err, "delete category")
	}
	if res.RowsAffected() == 0 {
		return apperr.NotFound("CATEGORY_NOT_FOUND", "Category not found")
	}
	return nil
}

func (r *CategoryRepository) CountCourses(ctx context.Context, categoryID string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM course_categories WHERE category_id = $1
	`, categoryID).Scan(&n); err != nil {
		return 0, apperr.Wrap(err, "count category courses")
	}
	return n, nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
