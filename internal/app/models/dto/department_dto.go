package dto

import "github.com/duhai-alshukaili/cems/internal/app/models"

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// DepartmentListResponse represents a list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// FromDepartment converts a models.Department to a DepartmentResponse
func FromDepartment(department *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Email:       department.Email,
		PhoneNumber: department.PhoneNumber,
	}
}
