package models

// Course represents a course offered by a department.
type Course struct {
	ID            int64  `json:"id" db:"id"`
	Code          string `json:"code" db:"code"` // Natural key
	Name          string `json:"name" db:"name"`
	DepartmentID  int64  `json:"departmentId" db:"department_id"`
	CoordinatorID *int64 `json:"coordinatorId,omitempty" db:"coordinator_id"` // Academic staff, nullable

	// Relations (populated when needed)
	Department  *Department `json:"department,omitempty"`
	Coordinator *User       `json:"coordinator,omitempty"`
}
