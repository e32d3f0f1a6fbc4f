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
	"github.com/duhai-alshukaili/cems/internal/pkg/auth"
	"github.com/duhai-alshukaili/cems/internal/pkg/dberrors"
	"github.com/duhai-alshukaili/cems/internal/pkg/logger"
)

// UserFilter narrows List queries. Zero values mean "no filter".
type UserFilter struct {
	UserType              models.UserType
	DepartmentID          *int64
	IsLecturer            *bool
	IsInvigilator         *bool
	IsExamCommitteeMember *bool
	Search                string // Matches username, first name or last name
}

const userColumns = `id, username, password, email, prefix, first_name, middle_name, last_name,
	gender, user_type, department_id, is_lecturer, is_invigilator, is_exam_committee_member,
	can_create_users, can_approve_absence_excuses, can_view_all_statistics, created_at, updated_at`

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new user. The plaintext password is hashed here and never
// stored; role flags are reconciled with the user type before the insert.
func (r *UserRepository) Create(ctx context.Context, user *models.User, plainPassword string) error {
	user.EnforceRoleInvariants()

	hashed, err := auth.HashPassword(plainPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = hashed

	query := `
		INSERT INTO users (
			username, password, email, prefix, first_name, middle_name, last_name,
			gender, user_type, department_id, is_lecturer, is_invigilator,
			is_exam_committee_member, can_create_users, can_approve_absence_excuses,
			can_view_all_statistics
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		user.Username, user.Password, user.Email, user.Prefix, user.FirstName,
		user.MiddleName, user.LastName, user.Gender, user.UserType, user.DepartmentID,
		user.IsLecturer, user.IsInvigilator, user.IsExamCommitteeMember,
		user.CanCreateUsers, user.CanApproveAbsenceExcuses, user.CanViewAllStatistics,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			logger.Warn().Str("username", user.Username).Msg("Attempted to create duplicate user")
			return apperrors.ErrUsernameExists
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByUsername retrieves a user by the institutional ID
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user := &models.User{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email, &user.Prefix,
		&user.FirstName, &user.MiddleName, &user.LastName, &user.Gender,
		&user.UserType, &user.DepartmentID, &user.IsLecturer, &user.IsInvigilator,
		&user.IsExamCommitteeMember, &user.CanCreateUsers,
		&user.CanApproveAbsenceExcuses, &user.CanViewAllStatistics,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user := &models.User{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email, &user.Prefix,
		&user.FirstName, &user.MiddleName, &user.LastName, &user.Gender,
		&user.UserType, &user.DepartmentID, &user.IsLecturer, &user.IsInvigilator,
		&user.IsExamCommitteeMember, &user.CanCreateUsers,
		&user.CanApproveAbsenceExcuses, &user.CanViewAllStatistics,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// List retrieves users matching the filter, ordered by username, with
// offset-based pagination.
func (r *UserRepository) List(ctx context.Context, filter UserFilter, limit, offset int) ([]*models.User, error) {
	builder := r.sb.Select(userColumns).
		From("users").
		OrderBy("username").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	builder = applyUserFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list users SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Username, &user.Password, &user.Email, &user.Prefix,
			&user.FirstName, &user.MiddleName, &user.LastName, &user.Gender,
			&user.UserType, &user.DepartmentID, &user.IsLecturer, &user.IsInvigilator,
			&user.IsExamCommitteeMember, &user.CanCreateUsers,
			&user.CanApproveAbsenceExcuses, &user.CanViewAllStatistics,
			&user.CreatedAt, &user.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning user row")
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Count returns how many users match the filter
func (r *UserRepository) Count(ctx context.Context, filter UserFilter) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("users")
	builder = applyUserFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}

	return count, nil
}

func applyUserFilter(builder squirrel.SelectBuilder, filter UserFilter) squirrel.SelectBuilder {
	if filter.UserType != "" {
		builder = builder.Where(squirrel.Eq{"user_type": filter.UserType})
	}
	if filter.DepartmentID != nil {
		builder = builder.Where(squirrel.Eq{"department_id": *filter.DepartmentID})
	}
	if filter.IsLecturer != nil {
		builder = builder.Where(squirrel.Eq{"is_lecturer": *filter.IsLecturer})
	}
	if filter.IsInvigilator != nil {
		builder = builder.Where(squirrel.Eq{"is_invigilator": *filter.IsInvigilator})
	}
	if filter.IsExamCommitteeMember != nil {
		builder = builder.Where(squirrel.Eq{"is_exam_committee_member": *filter.IsExamCommitteeMember})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"username": pattern},
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
		})
	}
	return builder
}

// Update updates a user's profile fields. The password and username are not
// touched here.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.EnforceRoleInvariants()

	query := `
		UPDATE users
		SET email = $1, prefix = $2, first_name = $3, middle_name = $4, last_name = $5,
			gender = $6, user_type = $7, department_id = $8, is_lecturer = $9,
			is_invigilator = $10, is_exam_committee_member = $11, can_create_users = $12,
			can_approve_absence_excuses = $13, can_view_all_statistics = $14,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $15
	`

	cmdTag, err := r.db.Exec(ctx, query,
		user.Email, user.Prefix, user.FirstName, user.MiddleName, user.LastName,
		user.Gender, user.UserType, user.DepartmentID, user.IsLecturer,
		user.IsInvigilator, user.IsExamCommitteeMember, user.CanCreateUsers,
		user.CanApproveAbsenceExcuses, user.CanViewAllStatistics, user.ID)

	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces a user's password with a fresh hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, plainPassword string) error {
	hashed, err := auth.HashPassword(plainPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`,
		hashed, id)

	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete deletes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UsernameExists checks if a username already exists
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}
