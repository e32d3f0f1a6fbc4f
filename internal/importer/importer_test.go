package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

// fakeStore is an in-memory Store keyed the same way the real one is: by
// natural keys.
type fakeStore struct {
	departments map[string]*models.Department
	users       map[string]*models.User
	courses     map[string]*models.Course
	sections    map[string]*models.Section

	passwords map[string]string // plaintext per username, as handed to CreateUser
	nextID    int64
	purges    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		departments: make(map[string]*models.Department),
		users:       make(map[string]*models.User),
		courses:     make(map[string]*models.Course),
		sections:    make(map[string]*models.Section),
		passwords:   make(map[string]string),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) DepartmentByName(_ context.Context, name string) (*models.Department, error) {
	if d, ok := s.departments[name]; ok {
		return d, nil
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (s *fakeStore) CreateDepartment(_ context.Context, d *models.Department) error {
	if _, ok := s.departments[d.Name]; ok {
		return apperrors.ErrDepartmentAlreadyExists
	}
	d.ID = s.id()
	s.departments[d.Name] = d
	return nil
}

func (s *fakeStore) UserByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := s.users[username]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeStore) CreateUser(_ context.Context, u *models.User, plainPassword string) error {
	if _, ok := s.users[u.Username]; ok {
		return apperrors.ErrUsernameExists
	}
	u.ID = s.id()
	s.users[u.Username] = u
	s.passwords[u.Username] = plainPassword
	return nil
}

func (s *fakeStore) CourseByCode(_ context.Context, code string) (*models.Course, error) {
	if c, ok := s.courses[code]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s *fakeStore) CreateCourse(_ context.Context, c *models.Course) error {
	if _, ok := s.courses[c.Code]; ok {
		return apperrors.ErrCourseAlreadyExists
	}
	c.ID = s.id()
	s.courses[c.Code] = c
	return nil
}

func sectionKey(courseID int64, number int) string {
	return fmt.Sprintf("%d/%d", courseID, number)
}

func (s *fakeStore) SectionByCourseAndNumber(_ context.Context, courseID int64, number int) (*models.Section, error) {
	if sec, ok := s.sections[sectionKey(courseID, number)]; ok {
		return sec, nil
	}
	return nil, apperrors.ErrSectionNotFound
}

func (s *fakeStore) CreateSection(_ context.Context, sec *models.Section) error {
	key := sectionKey(sec.CourseID, sec.Number)
	if _, ok := s.sections[key]; ok {
		return apperrors.ErrSectionAlreadyExists
	}
	sec.ID = s.id()
	s.sections[key] = sec
	return nil
}

func (s *fakeStore) PurgeImported(_ context.Context) error {
	s.purges++
	s.sections = make(map[string]*models.Section)
	s.courses = make(map[string]*models.Course)
	for username, u := range s.users {
		if u.UserType == models.UserTypeStudent || (u.UserType == models.UserTypeAcademicStaff && u.IsLecturer) {
			delete(s.users, username)
		}
	}
	return nil
}

func testRow() Row {
	return Row{
		ColDepartmentName:    "Information Technology",
		ColStudentNo:         "24S1234",
		ColStudentName:       "Ahmed Al Saadi",
		ColDepartmentCourses: "Engineering",
		ColLecturerName:      "1023 - Dr. Fatma Al Harthy",
		ColCourseNo:          "COMP2101",
		ColCourseName:        "Data Structures",
		ColSectionNo:         " 3 ",
	}
}

func newTestImporter(t *testing.T, store Store) (*Importer, string) {
	t.Helper()
	auditPath := filepath.Join(t.TempDir(), "created_users_log.csv")
	audit, err := OpenAuditLog(auditPath)
	if err != nil {
		t.Fatalf("OpenAuditLog: %v", err)
	}
	t.Cleanup(func() { audit.Close() })

	return New(store, NewSeededPasswordGenerator(1), audit, "utas.edu.om", zerolog.Nop()), auditPath
}

func readAudit(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open audit log: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read audit log: %v", err)
	}
	return records
}

func TestImportRowCreatesEntities(t *testing.T) {
	store := newFakeStore()
	imp, auditPath := newTestImporter(t, store)

	sum := &Summary{}
	if err := imp.ImportRow(context.Background(), testRow(), sum); err != nil {
		t.Fatalf("ImportRow: %v", err)
	}

	if sum.DepartmentsCreated != 2 || sum.StudentsCreated != 1 || sum.LecturersCreated != 1 ||
		sum.CoursesCreated != 1 || sum.SectionsCreated != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	student, err := store.UserByUsername(context.Background(), "24S1234")
	if err != nil {
		t.Fatalf("student not created: %v", err)
	}
	if student.FirstName != "Ahmed" || student.LastName != "AlSaadi" {
		t.Errorf("student name = %q %q, want Ahmed AlSaadi", student.FirstName, student.LastName)
	}
	if student.Email != "24S1234@utas.edu.om" {
		t.Errorf("student email = %q", student.Email)
	}
	if student.UserType != models.UserTypeStudent {
		t.Errorf("student user type = %q", student.UserType)
	}
	if student.DepartmentID == nil || *student.DepartmentID != store.departments["Information Technology"].ID {
		t.Error("student not attached to its department")
	}

	lecturer, err := store.UserByUsername(context.Background(), "1023")
	if err != nil {
		t.Fatalf("lecturer not created: %v", err)
	}
	if lecturer.UserType != models.UserTypeAcademicStaff || !lecturer.IsLecturer || !lecturer.IsInvigilator {
		t.Errorf("lecturer role invariant violated: %+v", lecturer)
	}
	if lecturer.Prefix == nil || *lecturer.Prefix != "Dr" {
		t.Errorf("lecturer prefix = %v, want Dr", lecturer.Prefix)
	}
	if lecturer.DepartmentID == nil || *lecturer.DepartmentID != store.departments["Engineering"].ID {
		t.Error("lecturer not attached to the course department")
	}

	course := store.courses["COMP2101"]
	if course == nil {
		t.Fatal("course not created")
	}
	if course.Name != "Data Structures" || course.DepartmentID != store.departments["Engineering"].ID {
		t.Errorf("unexpected course: %+v", course)
	}

	section, err := store.SectionByCourseAndNumber(context.Background(), course.ID, 3)
	if err != nil {
		t.Fatalf("section not created: %v", err)
	}
	if section.LecturerID == nil || *section.LecturerID != lecturer.ID {
		t.Error("section not attached to the lecturer")
	}

	records := readAudit(t, auditPath)
	if len(records) != 3 { // header + student + lecturer
		t.Fatalf("audit rows = %d, want 3", len(records))
	}
	if records[1][0] != "24S1234" || records[1][2] != AuditUserTypeStudent || records[1][3] != "Information Technology" {
		t.Errorf("unexpected student audit row: %v", records[1])
	}
	if records[2][0] != "1023" || records[2][2] != AuditUserTypeLecturer || records[2][3] != "Engineering" {
		t.Errorf("unexpected lecturer audit row: %v", records[2])
	}
	if pwd := records[1][1]; len(pwd) != PasswordLength || pwd != store.passwords["24S1234"] {
		t.Errorf("audited password %q does not match the issued one", pwd)
	}
}

func TestImportRowIsIdempotent(t *testing.T) {
	store := newFakeStore()
	imp, auditPath := newTestImporter(t, store)

	sum := &Summary{}
	for i := 0; i < 2; i++ {
		if err := imp.ImportRow(context.Background(), testRow(), sum); err != nil {
			t.Fatalf("ImportRow #%d: %v", i+1, err)
		}
	}

	if len(store.users) != 2 || len(store.courses) != 1 || len(store.sections) != 1 {
		t.Errorf("second application changed record counts: users=%d courses=%d sections=%d",
			len(store.users), len(store.courses), len(store.sections))
	}
	if sum.StudentsCreated != 1 || sum.LecturersCreated != 1 {
		t.Errorf("accounts created twice: %+v", sum)
	}

	// No new passwords on the second pass
	if records := readAudit(t, auditPath); len(records) != 3 {
		t.Errorf("audit rows = %d, want 3", len(records))
	}
}

func writeTestReport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create report: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows := [][]string{
		requiredColumns,
		{"Information Technology", "24S1234", "Ahmed Al Saadi", "Engineering", "1023 - Dr. Fatma Al Harthy", "COMP2101", "Data Structures", "3"},
		{"Information Technology", "24S5678", "MARYAM AL-BALUSHI", "Engineering", "1023 - Dr. Fatma Al Harthy", "COMP2101", "Data Structures", "3"},
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write report: %v", err)
	}
	return path
}

func TestRunPurgeAndReimport(t *testing.T) {
	store := newFakeStore()
	imp, auditPath := newTestImporter(t, store)
	report := writeTestReport(t)

	var first *Summary
	for run := 0; run < 2; run++ {
		sum, err := imp.Run(context.Background(), report)
		if err != nil {
			t.Fatalf("Run #%d: %v", run+1, err)
		}
		if run == 0 {
			first = sum
			continue
		}

		// The purge makes every row new again
		if sum.StudentsCreated != first.StudentsCreated ||
			sum.LecturersCreated != first.LecturersCreated ||
			sum.CoursesCreated != first.CoursesCreated ||
			sum.SectionsCreated != first.SectionsCreated {
			t.Errorf("reimport summary %+v differs from first run %+v", sum, first)
		}
	}

	if store.purges != 2 {
		t.Errorf("purges = %d, want 2", store.purges)
	}
	if len(store.departments) != 2 {
		t.Errorf("departments = %d, want 2 (never purged)", len(store.departments))
	}

	// 1 header + (2 students + 1 lecturer) per run: the audit log keeps
	// history across runs
	if records := readAudit(t, auditPath); len(records) != 7 {
		t.Errorf("audit rows = %d, want 7", len(records))
	}
}

func TestImportRowInvalidSectionNumber(t *testing.T) {
	store := newFakeStore()
	imp, _ := newTestImporter(t, store)

	row := testRow()
	row[ColSectionNo] = "three"
	err := imp.ImportRow(context.Background(), row, &Summary{})
	if !errors.Is(err, apperrors.ErrInvalidRecordFormat) {
		t.Errorf("error = %v, want ErrInvalidRecordFormat", err)
	}
}

func TestImportRowInvalidLecturerEntry(t *testing.T) {
	store := newFakeStore()
	imp, _ := newTestImporter(t, store)

	row := testRow()
	row[ColLecturerName] = "Dr. Fatma Al Harthy"
	err := imp.ImportRow(context.Background(), row, &Summary{})
	if !errors.Is(err, apperrors.ErrInvalidRecordFormat) {
		t.Errorf("error = %v, want ErrInvalidRecordFormat", err)
	}
}

func TestRunMissingInputFile(t *testing.T) {
	store := newFakeStore()
	imp, _ := newTestImporter(t, store)

	_, err := imp.Run(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, apperrors.ErrInputNotFound) {
		t.Errorf("error = %v, want ErrInputNotFound", err)
	}
	if store.purges != 0 {
		t.Error("purge must not run when the input file cannot be opened")
	}
}
