package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/app/repositories"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

// CourseService handles course and section operations
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	sectionRepo    *repositories.SectionRepository
	departmentRepo *repositories.DepartmentRepository
	userRepo       *repositories.UserRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	sectionRepo *repositories.SectionRepository,
	departmentRepo *repositories.DepartmentRepository,
	userRepo *repositories.UserRepository,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		sectionRepo:    sectionRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
	}
}

// CreateCourse creates a new course after checking its department exists
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if strings.TrimSpace(course.Code) == "" {
		return fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.departmentRepo.GetByID(ctx, course.DepartmentID); err != nil {
		return err
	}

	if course.CoordinatorID != nil {
		if err := s.requireAcademicStaff(ctx, *course.CoordinatorID); err != nil {
			return err
		}
	}

	course.Code = strings.TrimSpace(course.Code)
	course.Name = strings.TrimSpace(course.Name)
	return s.courseRepo.Create(ctx, course)
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetCourseByCode retrieves a course by code
func (s *CourseService) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	return s.courseRepo.GetByCode(ctx, strings.TrimSpace(code))
}

// ListCourses retrieves a page of courses matching the filter along with the
// total match count.
func (s *CourseService) ListCourses(ctx context.Context, filter repositories.CourseFilter, limit, offset int) ([]*models.Course, int64, error) {
	courses, err := s.courseRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.courseRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// UpdateCourse updates an existing course
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if course.CoordinatorID != nil {
		if err := s.requireAcademicStaff(ctx, *course.CoordinatorID); err != nil {
			return err
		}
	}
	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse deletes a course and its sections
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

// CreateSection creates a new section for a course. The number must be inside
// the allowed range before it reaches the database.
func (s *CourseService) CreateSection(ctx context.Context, section *models.Section) error {
	if !models.IsValidSectionNumber(section.Number) {
		return apperrors.ErrSectionNumberInvalid
	}

	if _, err := s.courseRepo.GetByID(ctx, section.CourseID); err != nil {
		return err
	}

	if section.LecturerID != nil {
		if err := s.requireAcademicStaff(ctx, *section.LecturerID); err != nil {
			return err
		}
	}

	return s.sectionRepo.Create(ctx, section)
}

// GetSectionsByCourse retrieves all sections of a course
func (s *CourseService) GetSectionsByCourse(ctx context.Context, courseID int64) ([]*models.Section, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.sectionRepo.GetByCourseID(ctx, courseID)
}

// AssignLecturer reassigns the lecturer of a section. A nil lecturer clears
// the assignment.
func (s *CourseService) AssignLecturer(ctx context.Context, sectionID int64, lecturerID *int64) error {
	if lecturerID != nil {
		if err := s.requireAcademicStaff(ctx, *lecturerID); err != nil {
			return err
		}
	}
	return s.sectionRepo.UpdateLecturer(ctx, sectionID, lecturerID)
}

// DeleteSection deletes a section by ID
func (s *CourseService) DeleteSection(ctx context.Context, id int64) error {
	return s.sectionRepo.Delete(ctx, id)
}

func (s *CourseService) requireAcademicStaff(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.UserType != models.UserTypeAcademicStaff {
		return fmt.Errorf("%w: user %s is not academic staff", apperrors.ErrRoleMismatch, user.Username)
	}
	return nil
}
