package models

import "testing"

func strPtr(s string) *string { return &s }

func TestUserDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{
			name: "full name with prefix",
			user: User{Username: "1023", Prefix: strPtr("Dr"), FirstName: "Fatma", MiddleName: strPtr("Al"), LastName: "Harthy"},
			want: "Dr Fatma Al Harthy",
		},
		{
			name: "no middle name",
			user: User{Username: "1044", FirstName: "John", LastName: "Smith"},
			want: "John Smith",
		},
		{
			name: "no name parts falls back to username",
			user: User{Username: "24S1234"},
			want: "24S1234",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnforceRoleInvariants(t *testing.T) {
	t.Run("student loses academic flags", func(t *testing.T) {
		u := User{UserType: UserTypeStudent, IsLecturer: true, IsInvigilator: true, IsExamCommitteeMember: true}
		u.EnforceRoleInvariants()
		if u.IsLecturer || u.IsInvigilator || u.IsExamCommitteeMember {
			t.Errorf("student kept academic flags: %+v", u)
		}
	})

	t.Run("lecturer is always an invigilator", func(t *testing.T) {
		u := User{UserType: UserTypeAcademicStaff, IsLecturer: true}
		u.EnforceRoleInvariants()
		if !u.IsInvigilator {
			t.Error("lecturer should have the invigilator flag set")
		}
	})

	t.Run("student loses administrative permissions", func(t *testing.T) {
		u := User{UserType: UserTypeStudent, CanCreateUsers: true}
		u.EnforceRoleInvariants()
		if u.CanCreateUsers {
			t.Error("student should not keep administrative permissions")
		}
	})
}

func TestNewLecturer(t *testing.T) {
	deptID := int64(3)
	u := NewLecturer("1023", "1023@utas.edu.om", strPtr("Dr"), "Fatma", "Al", "Harthy", &deptID)

	if u.UserType != UserTypeAcademicStaff {
		t.Errorf("UserType = %q, want %q", u.UserType, UserTypeAcademicStaff)
	}
	if !u.IsLecturer || !u.IsInvigilator {
		t.Errorf("lecturer flags not set: lecturer=%v invigilator=%v", u.IsLecturer, u.IsInvigilator)
	}
	if u.MiddleName == nil || *u.MiddleName != "Al" {
		t.Errorf("MiddleName = %v, want Al", u.MiddleName)
	}
}
