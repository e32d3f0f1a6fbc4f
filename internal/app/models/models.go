package models

// UserType distinguishes students from the different kinds of staff. A single
// users table carries all of them; the type is the discriminant.
type UserType string

const (
	UserTypeStudent          UserType = "student"
	UserTypeAcademicStaff    UserType = "academic_staff"
	UserTypeNonAcademicStaff UserType = "non_academic_staff"
	UserTypeSeniorManagement UserType = "senior_management"
)

// Gender values
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// Honorific prefixes accepted on user records
var ValidPrefixes = []string{"Mr", "Ms", "Mrs", "Dr", "Prof"}

// IsValidPrefix reports whether p is one of the accepted honorific prefixes.
func IsValidPrefix(p string) bool {
	for _, v := range ValidPrefixes {
		if v == p {
			return true
		}
	}
	return false
}

// RoomType classifies examination rooms
type RoomType string

const (
	RoomTypeClassroom   RoomType = "classroom"
	RoomTypeLab         RoomType = "lab"
	RoomTypeLectureHall RoomType = "lecture_hall"
	RoomTypeAuditorium  RoomType = "auditorium"
)

// Section numbers are constrained to this range by the sections table.
const (
	MinSectionNumber = 1
	MaxSectionNumber = 200
)

// IsValidSectionNumber reports whether n is inside the allowed section range.
func IsValidSectionNumber(n int) bool {
	return n >= MinSectionNumber && n <= MaxSectionNumber
}
