package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
	"github.com/duhai-alshukaili/cems/internal/pkg/dberrors"
)

// SectionRepository handles database operations for course sections
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

// Create creates a new section. The number range is enforced by the table
// check constraint and surfaces as ErrSectionNumberInvalid.
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (course_id, number, lecturer_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		section.CourseID, section.Number, section.LecturerID).Scan(&section.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "sections_course_number_key") {
			return apperrors.ErrSectionAlreadyExists
		}
		if dberrors.IsCheckViolation(err, "sections_number_range_check") {
			return apperrors.ErrSectionNumberInvalid
		}
		return fmt.Errorf("error creating section: %w", err)
	}

	return nil
}

// GetByID retrieves a section by ID
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	query := `
		SELECT id, course_id, number, lecturer_id
		FROM sections
		WHERE id = $1
	`

	section := &models.Section{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&section.ID, &section.CourseID, &section.Number, &section.LecturerID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	return section, nil
}

// GetByCourseAndNumber retrieves a section by its natural key
func (r *SectionRepository) GetByCourseAndNumber(ctx context.Context, courseID int64, number int) (*models.Section, error) {
	query := `
		SELECT id, course_id, number, lecturer_id
		FROM sections
		WHERE course_id = $1 AND number = $2
	`

	section := &models.Section{}
	err := r.db.QueryRow(ctx, query, courseID, number).Scan(
		&section.ID, &section.CourseID, &section.Number, &section.LecturerID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	return section, nil
}

// GetByCourseID retrieves all sections of a course ordered by number
func (r *SectionRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Section, error) {
	query := `
		SELECT id, course_id, number, lecturer_id
		FROM sections
		WHERE course_id = $1
		ORDER BY number
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		section := &models.Section{}
		if err := rows.Scan(
			&section.ID, &section.CourseID, &section.Number, &section.LecturerID); err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// UpdateLecturer reassigns the lecturer of a section
func (r *SectionRepository) UpdateLecturer(ctx context.Context, id int64, lecturerID *int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE sections
		SET lecturer_id = $1
		WHERE id = $2`,
		lecturerID, id)

	if err != nil {
		return fmt.Errorf("error updating section lecturer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// Delete deletes a section by ID
func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}
