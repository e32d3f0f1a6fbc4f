// Package importer implements the bulk-load pipeline that populates the
// system from an institutional Examination List Report. Each report row is
// resolved into a department, a student, a lecturer, a course and a section,
// created lazily by natural key. The pipeline is a single-threaded batch:
// one row is fully applied before the next begins, and the first error stops
// the run, leaving already-applied records in place.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

// Store is the record store the pipeline upserts into. Lookups by natural key
// return the package-level not-found sentinels from apperrors; anything else
// propagates and aborts the run. CreateUser receives the plaintext password
// exactly once and is expected to persist only a hash.
type Store interface {
	DepartmentByName(ctx context.Context, name string) (*models.Department, error)
	CreateDepartment(ctx context.Context, department *models.Department) error

	UserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User, plainPassword string) error

	CourseByCode(ctx context.Context, code string) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error

	SectionByCourseAndNumber(ctx context.Context, courseID int64, number int) (*models.Section, error)
	CreateSection(ctx context.Context, section *models.Section) error

	// PurgeImported deletes all students, lecturers, courses and sections.
	// Departments are cumulative and survive.
	PurgeImported(ctx context.Context) error
}

// Summary reports what a run created.
type Summary struct {
	Rows               int
	DepartmentsCreated int
	StudentsCreated    int
	LecturersCreated   int
	CoursesCreated     int
	SectionsCreated    int
}

// Importer wires the report reader, the name normalizers, the record store
// and the credential issuer into one pipeline.
type Importer struct {
	store       Store
	passwords   *PasswordGenerator
	audit       *AuditLog
	emailDomain string
	logger      zerolog.Logger
}

// New creates an Importer. The password generator is injected so runs can be
// made deterministic in tests.
func New(store Store, passwords *PasswordGenerator, audit *AuditLog, emailDomain string, lgr zerolog.Logger) *Importer {
	return &Importer{
		store:       store,
		passwords:   passwords,
		audit:       audit,
		emailDomain: emailDomain,
		logger:      lgr,
	}
}

// Run executes a full import: it purges all previously imported students,
// lecturers, courses and sections, then applies every report row in order.
//
// The purge is destructive; manual edits made to imported records
// since the last run are lost. There is no transaction around the whole run:
// rows applied before a failure stay applied.
func (imp *Importer) Run(ctx context.Context, path string) (*Summary, error) {
	reader, err := OpenReport(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	imp.logger.Warn().Msg("Purging previously imported students, lecturers, courses and sections")
	if err := imp.store.PurgeImported(ctx); err != nil {
		return nil, fmt.Errorf("failed to purge imported records: %w", err)
	}

	sum := &Summary{}
	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("report row %d: %w", sum.Rows+1, err)
		}

		if err := imp.ImportRow(ctx, row, sum); err != nil {
			return sum, fmt.Errorf("report row %d: %w", sum.Rows+1, err)
		}
		sum.Rows++
	}

	imp.logger.Info().
		Int("rows", sum.Rows).
		Int("students", sum.StudentsCreated).
		Int("lecturers", sum.LecturersCreated).
		Int("courses", sum.CoursesCreated).
		Int("sections", sum.SectionsCreated).
		Msg("Import run complete")
	return sum, nil
}

// ImportRow applies a single report row. Creation order follows the foreign
// key dependencies: student department, student, course department, lecturer,
// course, section. Every step is get-or-create by natural key; existing
// records are left untouched, so re-applying a row is a no-op.
func (imp *Importer) ImportRow(ctx context.Context, row Row, sum *Summary) error {
	// 1. The student's department
	studentDept, err := imp.departmentByNameOrCreate(ctx, row[ColDepartmentName], sum)
	if err != nil {
		return err
	}

	// 2. The student
	studentNo := strings.TrimSpace(row[ColStudentNo])
	if err := imp.ensureStudent(ctx, studentNo, row[ColStudentName], studentDept, sum); err != nil {
		return err
	}

	// 3. The department offering the course; read from the report, not
	// derived from the student's department
	courseDept, err := imp.departmentByNameOrCreate(ctx, row[ColDepartmentCourses], sum)
	if err != nil {
		return err
	}

	// 4. The lecturer
	lecturer, err := imp.ensureLecturer(ctx, row[ColLecturerName], courseDept, sum)
	if err != nil {
		return err
	}

	// 5. The course
	courseNo := strings.TrimSpace(row[ColCourseNo])
	course, err := imp.ensureCourse(ctx, courseNo, row[ColCourseName], courseDept, sum)
	if err != nil {
		return err
	}

	// 6. The section
	sectionNo, err := parseSectionNumber(row[ColSectionNo])
	if err != nil {
		return err
	}
	if err := imp.ensureSection(ctx, course, sectionNo, lecturer, sum); err != nil {
		return err
	}

	imp.logger.Info().
		Str("student", studentNo).
		Str("lecturer", lecturer.Username).
		Str("course", courseNo).
		Int("section", sectionNo).
		Msg("Processed report row")
	return nil
}

func (imp *Importer) departmentByNameOrCreate(ctx context.Context, name string, sum *Summary) (*models.Department, error) {
	name = strings.TrimSpace(name)

	dept, err := imp.store.DepartmentByName(ctx, name)
	if err == nil {
		return dept, nil
	}
	if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		return nil, err
	}

	dept = &models.Department{Name: name}
	if err := imp.store.CreateDepartment(ctx, dept); err != nil {
		return nil, err
	}
	sum.DepartmentsCreated++
	return dept, nil
}

func (imp *Importer) ensureStudent(ctx context.Context, studentNo, fullName string, dept *models.Department, sum *Summary) error {
	_, err := imp.store.UserByUsername(ctx, studentNo)
	if err == nil {
		// Existing student: password, name and department stay untouched
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	first, middle, last := SplitTransliteratedName(fullName)
	student := models.NewStudent(studentNo, imp.email(studentNo), first, middle, last, &dept.ID)

	password := imp.passwords.Generate()
	if err := imp.store.CreateUser(ctx, student, password); err != nil {
		return err
	}
	if err := imp.audit.Record(studentNo, password, AuditUserTypeStudent, dept.Name); err != nil {
		return err
	}
	sum.StudentsCreated++
	return nil
}

func (imp *Importer) ensureLecturer(ctx context.Context, entry string, dept *models.Department, sum *Summary) (*models.User, error) {
	parsed, err := ParseTaggedEntry(entry)
	if err != nil {
		return nil, err
	}

	lecturer, err := imp.store.UserByUsername(ctx, parsed.Username)
	if err == nil {
		return lecturer, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	lecturer = models.NewLecturer(parsed.Username, imp.email(parsed.Username),
		parsed.Prefix, parsed.FirstName, parsed.MiddleName, parsed.LastName, &dept.ID)

	password := imp.passwords.Generate()
	if err := imp.store.CreateUser(ctx, lecturer, password); err != nil {
		return nil, err
	}
	if err := imp.audit.Record(parsed.Username, password, AuditUserTypeLecturer, dept.Name); err != nil {
		return nil, err
	}
	sum.LecturersCreated++
	return lecturer, nil
}

func (imp *Importer) ensureCourse(ctx context.Context, code, name string, dept *models.Department, sum *Summary) (*models.Course, error) {
	course, err := imp.store.CourseByCode(ctx, code)
	if err == nil {
		// Existing course: no rename or re-departmenting on conflict
		return course, nil
	}
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		return nil, err
	}

	course = &models.Course{
		Code:         code,
		Name:         strings.TrimSpace(name),
		DepartmentID: dept.ID,
	}
	if err := imp.store.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	sum.CoursesCreated++
	return course, nil
}

func (imp *Importer) ensureSection(ctx context.Context, course *models.Course, number int, lecturer *models.User, sum *Summary) error {
	_, err := imp.store.SectionByCourseAndNumber(ctx, course.ID, number)
	if err == nil {
		// Existing section keeps its lecturer until the next purge
		return nil
	}
	if !errors.Is(err, apperrors.ErrSectionNotFound) {
		return err
	}

	section := &models.Section{
		CourseID:   course.ID,
		Number:     number,
		LecturerID: &lecturer.ID,
	}
	if err := imp.store.CreateSection(ctx, section); err != nil {
		return err
	}
	sum.SectionsCreated++
	return nil
}

func (imp *Importer) email(username string) string {
	return username + "@" + imp.emailDomain
}

func parseSectionNumber(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: section number %q is not an integer",
			apperrors.ErrInvalidRecordFormat, value)
	}
	return n, nil
}
