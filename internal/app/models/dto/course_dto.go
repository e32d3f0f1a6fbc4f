package dto

import "github.com/duhai-alshukaili/cems/internal/app/models"

// CourseResponse represents basic course information
type CourseResponse struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	DepartmentID  int64  `json:"departmentId"`
	CoordinatorID *int64 `json:"coordinatorId,omitempty"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	DepartmentID  int64  `json:"departmentId" binding:"required,gt=0"`
	CoordinatorID *int64 `json:"coordinatorId,omitempty"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	DepartmentID  int64  `json:"departmentId" binding:"required,gt=0"`
	CoordinatorID *int64 `json:"coordinatorId,omitempty"`
}

// CourseListResponse represents a paginated list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	PaginationInfo
}

// SectionResponse represents a course section
type SectionResponse struct {
	ID         int64  `json:"id"`
	CourseID   int64  `json:"courseId"`
	Number     int    `json:"number"`
	LecturerID *int64 `json:"lecturerId,omitempty"`
}

// CreateSectionRequest represents section creation data
type CreateSectionRequest struct {
	CourseID   int64  `json:"courseId" binding:"required,gt=0"`
	Number     int    `json:"number" binding:"required,gte=1,lte=200"`
	LecturerID *int64 `json:"lecturerId,omitempty"`
}

// AssignLecturerRequest reassigns the lecturer of a section
type AssignLecturerRequest struct {
	LecturerID *int64 `json:"lecturerId"`
}

// SectionListResponse represents the sections of a course
type SectionListResponse struct {
	Sections []SectionResponse `json:"sections"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:            course.ID,
		Code:          course.Code,
		Name:          course.Name,
		DepartmentID:  course.DepartmentID,
		CoordinatorID: course.CoordinatorID,
	}
}

// FromSection converts a models.Section to a SectionResponse
func FromSection(section *models.Section) SectionResponse {
	return SectionResponse{
		ID:         section.ID,
		CourseID:   section.CourseID,
		Number:     section.Number,
		LecturerID: section.LecturerID,
	}
}
