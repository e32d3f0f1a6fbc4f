package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/pkg/logger"
)

// Repositories holds all the repository instances and exposes the facade the
// import pipeline writes through.
type Repositories struct {
	db *pgxpool.Pool

	UserRepository       *UserRepository
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	SectionRepository    *SectionRepository
	RoomRepository       *RoomRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		db:                   db,
		UserRepository:       NewUserRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		SectionRepository:    NewSectionRepository(db),
		RoomRepository:       NewRoomRepository(db),
	}
}

// DepartmentByName retrieves a department by name
func (r *Repositories) DepartmentByName(ctx context.Context, name string) (*models.Department, error) {
	return r.DepartmentRepository.GetByName(ctx, name)
}

// CreateDepartment creates a new department
func (r *Repositories) CreateDepartment(ctx context.Context, department *models.Department) error {
	return r.DepartmentRepository.Create(ctx, department)
}

// UserByUsername retrieves a user by username
func (r *Repositories) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.UserRepository.GetByUsername(ctx, username)
}

// CreateUser creates a new user from a plaintext password
func (r *Repositories) CreateUser(ctx context.Context, user *models.User, plainPassword string) error {
	return r.UserRepository.Create(ctx, user, plainPassword)
}

// CourseByCode retrieves a course by code
func (r *Repositories) CourseByCode(ctx context.Context, code string) (*models.Course, error) {
	return r.CourseRepository.GetByCode(ctx, code)
}

// CreateCourse creates a new course
func (r *Repositories) CreateCourse(ctx context.Context, course *models.Course) error {
	return r.CourseRepository.Create(ctx, course)
}

// SectionByCourseAndNumber retrieves a section by its natural key
func (r *Repositories) SectionByCourseAndNumber(ctx context.Context, courseID int64, number int) (*models.Section, error) {
	return r.SectionRepository.GetByCourseAndNumber(ctx, courseID, number)
}

// CreateSection creates a new section
func (r *Repositories) CreateSection(ctx context.Context, section *models.Section) error {
	return r.SectionRepository.Create(ctx, section)
}

// PurgeImported deletes all sections, courses, students and lecturers in one
// transaction. Departments, rooms and non-academic users are kept. Deletion
// order follows the foreign keys.
func (r *Repositories) PurgeImported(ctx context.Context) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start purge transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`DELETE FROM sections`,
		`DELETE FROM courses`,
		`DELETE FROM users
		 WHERE user_type = 'student'
		    OR (user_type = 'academic_staff' AND is_lecturer)`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("purge failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit purge transaction: %w", err)
	}

	logger.Info().Msg("Purged imported sections, courses, students and lecturers")
	return nil
}
