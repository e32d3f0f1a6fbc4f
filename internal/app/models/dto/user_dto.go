package dto

import "github.com/duhai-alshukaili/cems/internal/app/models"

// UserResponse represents user information returned by the API. The password
// hash never leaves the server.
type UserResponse struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Prefix       *string `json:"prefix,omitempty"`
	FirstName    string  `json:"firstName"`
	MiddleName   *string `json:"middleName,omitempty"`
	LastName     string  `json:"lastName"`
	Gender       *string `json:"gender,omitempty"`
	UserType     string  `json:"userType"`
	DepartmentID *int64  `json:"departmentId,omitempty"`

	IsLecturer            bool `json:"isLecturer"`
	IsInvigilator         bool `json:"isInvigilator"`
	IsExamCommitteeMember bool `json:"isExamCommitteeMember"`

	CanCreateUsers           bool `json:"canCreateUsers"`
	CanApproveAbsenceExcuses bool `json:"canApproveAbsenceExcuses"`
	CanViewAllStatistics     bool `json:"canViewAllStatistics"`
}

// CreateUserRequest represents user creation data. The password is optional;
// when absent the server issues one.
type CreateUserRequest struct {
	Username     string  `json:"username" binding:"required"`
	Password     string  `json:"password,omitempty"`
	Email        string  `json:"email,omitempty" binding:"omitempty,email"`
	Prefix       *string `json:"prefix,omitempty"`
	FirstName    string  `json:"firstName" binding:"required"`
	MiddleName   *string `json:"middleName,omitempty"`
	LastName     string  `json:"lastName" binding:"required"`
	Gender       *string `json:"gender,omitempty" binding:"omitempty,oneof=M F O"`
	UserType     string  `json:"userType" binding:"required,oneof=student academic_staff non_academic_staff senior_management"`
	DepartmentID *int64  `json:"departmentId,omitempty"`

	IsLecturer            bool `json:"isLecturer"`
	IsInvigilator         bool `json:"isInvigilator"`
	IsExamCommitteeMember bool `json:"isExamCommitteeMember"`

	CanCreateUsers           bool `json:"canCreateUsers"`
	CanApproveAbsenceExcuses bool `json:"canApproveAbsenceExcuses"`
	CanViewAllStatistics     bool `json:"canViewAllStatistics"`
}

// UpdateUserRequest represents user profile update data
type UpdateUserRequest struct {
	Email        string  `json:"email,omitempty" binding:"omitempty,email"`
	Prefix       *string `json:"prefix,omitempty"`
	FirstName    string  `json:"firstName" binding:"required"`
	MiddleName   *string `json:"middleName,omitempty"`
	LastName     string  `json:"lastName" binding:"required"`
	Gender       *string `json:"gender,omitempty" binding:"omitempty,oneof=M F O"`
	DepartmentID *int64  `json:"departmentId,omitempty"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	PaginationInfo
}

// DisplayNameResponse carries the readable name of a user
type DisplayNameResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	var gender *string
	if user.Gender != nil {
		g := string(*user.Gender)
		gender = &g
	}

	return UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Prefix:       user.Prefix,
		FirstName:    user.FirstName,
		MiddleName:   user.MiddleName,
		LastName:     user.LastName,
		Gender:       gender,
		UserType:     string(user.UserType),
		DepartmentID: user.DepartmentID,

		IsLecturer:            user.IsLecturer,
		IsInvigilator:         user.IsInvigilator,
		IsExamCommitteeMember: user.IsExamCommitteeMember,

		CanCreateUsers:           user.CanCreateUsers,
		CanApproveAbsenceExcuses: user.CanApproveAbsenceExcuses,
		CanViewAllStatistics:     user.CanViewAllStatistics,
	}
}
