package models

// Section represents a numbered section of a course. The natural key is
// (course, number); the number range is enforced by the sections table check
// constraint, not re-validated by the import pipeline.
type Section struct {
	ID         int64  `json:"id" db:"id"`
	CourseID   int64  `json:"courseId" db:"course_id"`
	Number     int    `json:"number" db:"number"`
	LecturerID *int64 `json:"lecturerId,omitempty" db:"lecturer_id"` // Academic staff, nullable

	// Relations (populated when needed)
	Course   *Course `json:"course,omitempty"`
	Lecturer *User   `json:"lecturer,omitempty"`
}
