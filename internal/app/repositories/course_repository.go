package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
	"github.com/duhai-alshukaili/cems/internal/pkg/dberrors"
	"github.com/duhai-alshukaili/cems/internal/pkg/logger"
)

// CourseFilter narrows course List queries. Zero values mean "no filter".
type CourseFilter struct {
	DepartmentID *int64
	Search       string // Matches code or name
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, department_id, coordinator_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Code, course.Name, course.DepartmentID, course.CoordinatorID).Scan(&course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, code, name, department_id, coordinator_id
		FROM courses
		WHERE id = $1
	`

	course := &models.Course{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID, &course.Code, &course.Name, &course.DepartmentID, &course.CoordinatorID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetByCode retrieves a course by its unique code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := `
		SELECT id, code, name, department_id, coordinator_id
		FROM courses
		WHERE code = $1
	`

	course := &models.Course{}
	err := r.db.QueryRow(ctx, query, code).Scan(
		&course.ID, &course.Code, &course.Name, &course.DepartmentID, &course.CoordinatorID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// List retrieves courses matching the filter, ordered by code
func (r *CourseRepository) List(ctx context.Context, filter CourseFilter, limit, offset int) ([]*models.Course, error) {
	builder := r.sb.Select("id, code, name, department_id, coordinator_id").
		From("courses").
		OrderBy("code").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	builder = applyCourseFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(
			&course.ID, &course.Code, &course.Name,
			&course.DepartmentID, &course.CoordinatorID); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Count returns how many courses match the filter
func (r *CourseRepository) Count(ctx context.Context, filter CourseFilter) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("courses")
	builder = applyCourseFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}

	return count, nil
}

func applyCourseFilter(builder squirrel.SelectBuilder, filter CourseFilter) squirrel.SelectBuilder {
	if filter.DepartmentID != nil {
		builder = builder.Where(squirrel.Eq{"department_id": *filter.DepartmentID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"code": pattern},
			squirrel.ILike{"name": pattern},
		})
	}
	return builder
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, name = $2, department_id = $3, coordinator_id = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Name, course.DepartmentID, course.CoordinatorID, course.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID; its sections go with it
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
