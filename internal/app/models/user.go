package models

import (
	"strings"
	"time"
)

// User defines the user model based on the 'users' table. Students and
// lecturers are not separate tables; they are users whose UserType and
// academic flags agree with their specialization (see EnforceRoleInvariants).
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	Username   string    `json:"username" db:"username" example:"24S1234"` // Natural key, institutional ID
	Password   string    `json:"-" db:"password"`                          // Hashed, excluded from JSON
	Email      string    `json:"email" db:"email" example:"24S1234@utas.edu.om"`
	Prefix     *string   `json:"prefix,omitempty" db:"prefix" example:"Dr"`
	FirstName  string    `json:"firstName" db:"first_name" example:"Ahmed"`
	MiddleName *string   `json:"middleName,omitempty" db:"middle_name" example:"Said"`
	LastName   string    `json:"lastName" db:"last_name" example:"AlSaadi"`
	Gender     *Gender   `json:"gender,omitempty" db:"gender" example:"M"`
	UserType   UserType  `json:"userType" db:"user_type" example:"student"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`

	// Department reference (nullable)
	DepartmentID *int64      `json:"departmentId,omitempty" db:"department_id"`
	Department   *Department `json:"department,omitempty"` // Relation, no db tag

	// Academic staff flags
	IsLecturer            bool `json:"isLecturer" db:"is_lecturer"`
	IsInvigilator         bool `json:"isInvigilator" db:"is_invigilator"`
	IsExamCommitteeMember bool `json:"isExamCommitteeMember" db:"is_exam_committee_member"`

	// Non-academic staff permissions
	CanCreateUsers           bool `json:"canCreateUsers" db:"can_create_users"`
	CanApproveAbsenceExcuses bool `json:"canApproveAbsenceExcuses" db:"can_approve_absence_excuses"`
	CanViewAllStatistics     bool `json:"canViewAllStatistics" db:"can_view_all_statistics"`
}

// NewStudent constructs a student user with the role invariant applied.
func NewStudent(username, email, firstName, middleName, lastName string, departmentID *int64) *User {
	u := &User{
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		UserType:     UserTypeStudent,
		DepartmentID: departmentID,
	}
	if middleName != "" {
		u.MiddleName = &middleName
	}
	u.EnforceRoleInvariants()
	return u
}

// NewLecturer constructs an academic-staff user with the lecturer and
// invigilator flags forced on.
func NewLecturer(username, email string, prefix *string, firstName, middleName, lastName string, departmentID *int64) *User {
	u := &User{
		Username:     username,
		Email:        email,
		Prefix:       prefix,
		FirstName:    firstName,
		LastName:     lastName,
		UserType:     UserTypeAcademicStaff,
		DepartmentID: departmentID,
		IsLecturer:   true,
	}
	if middleName != "" {
		u.MiddleName = &middleName
	}
	u.EnforceRoleInvariants()
	return u
}

// EnforceRoleInvariants reconciles the role flags with the user type. It is
// applied at write time: a student never carries academic flags, and a
// lecturer is always an invigilator-capable academic staff member.
func (u *User) EnforceRoleInvariants() {
	switch u.UserType {
	case UserTypeStudent:
		u.IsLecturer = false
		u.IsInvigilator = false
		u.IsExamCommitteeMember = false
	case UserTypeAcademicStaff:
		if u.IsLecturer {
			u.IsInvigilator = true
		}
	}

	if u.UserType != UserTypeNonAcademicStaff {
		u.CanCreateUsers = false
		u.CanApproveAbsenceExcuses = false
		u.CanViewAllStatistics = false
	}
}

// DisplayName returns a readable name assembled from prefix, first, middle and
// last name, falling back to the username when no name parts are set.
func (u *User) DisplayName() string {
	var parts []string

	if u.Prefix != nil && *u.Prefix != "" {
		parts = append(parts, *u.Prefix)
	}
	if u.FirstName != "" {
		parts = append(parts, u.FirstName)
	}
	if u.MiddleName != nil && *u.MiddleName != "" {
		parts = append(parts, *u.MiddleName)
	}
	if u.LastName != "" {
		parts = append(parts, u.LastName)
	}

	if len(parts) == 0 {
		return u.Username
	}
	return strings.Join(parts, " ")
}
