package models

// Department represents an academic department. Departments are cumulative:
// they are created lazily during imports and never purged.
type Department struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}
