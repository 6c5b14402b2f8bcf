package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"coursehub/internal/domain/entity"
	"coursehub/internal/domain/repository"
	"coursehub/pkg/apperr"
)

type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]entity.EnrollmentSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, status, enrolled_at
		FROM enrollments
		WHERE course_id = $1
		ORDER BY enrolled_at DESC
	`, courseID)
	if err != nil {
		return nil, apperr.Wrap(err, "list enrollments")
	}
	defer rows.Close()

	out := []entity.EnrollmentSummary{}
	for rows.Next() {
		var e entity.EnrollmentSummary
		if err := rows.Scan(&e.ID, &e.UserID, &e.Status, &e.EnrolledAt); err != nil {
			return nil, apperr.Wrap(err, "scan enrollment")
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EnrollmentRepository) CountByCourseAndStatus(ctx context.Context, courseID string, status entity.EnrollmentStatus) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM enrollments WHERE course_id = $1 AND status = $2
	`, courseID, status).Scan(&n); err != nil {
		return 0, apperr.Wrap(err, "count enrollments")
	}
	return n, nil
}

func (r *EnrollmentRepository) StatsByCourse(ctx context.Context, courseID string) (entity.EnrollmentStats, error) {
	var s entity.EnrollmentStats
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE status = 'ENROLLED'),
			count(*) FILTER (WHERE status = 'COMPLETED')
		FROM enrollments
		WHERE course_id = $1
	`, courseID).Scan(&s.Total, &s.Active, &s.Completed); err != nil {
		return entity.EnrollmentStats{}, apperr.Wrap(err, "enrollment stats")
	}
	return s, nil
}

var _ repository.EnrollmentRepository = (*EnrollmentRepository)(nil)
