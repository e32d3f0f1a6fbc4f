package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

// Column headers expected in the Examination List Report.
const (
	ColDepartmentName    = "Department Name"
	ColStudentNo         = "Student No"
	ColStudentName       = "Student Name"
	ColDepartmentCourses = "Department Courses"
	ColLecturerName      = "Lecturer Name"
	ColCourseNo          = "Course No"
	ColCourseName        = "Course Name"
	ColSectionNo         = "Section No"
)

// requiredColumns must all be present in the header row.
var requiredColumns = []string{
	ColDepartmentName,
	ColStudentNo,
	ColStudentName,
	ColDepartmentCourses,
	ColLecturerName,
	ColCourseNo,
	ColCourseName,
	ColSectionNo,
}

// Row maps a report column header to the cell value of one record.
type Row map[string]string

// ReportReader streams header-mapped rows from an Examination List Report.
// Reports arrive either as a CSV export or as the original .xlsx workbook.
type ReportReader struct {
	headers []string

	// CSV mode
	csv  *csv.Reader
	file io.Closer

	// Workbook mode: the sheet is materialized up front
	rows [][]string
	pos  int
}

// OpenReport opens a report file, dispatching on the file extension. The
// header row is read and validated immediately so a report missing a required
// column fails before any row is processed.
func OpenReport(path string) (*ReportReader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return openWorkbook(path)
	default:
		return openCSV(path)
	}
}

func openCSV(path string) (*ReportReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInputNotFound, err)
	}

	r := csv.NewReader(f)
	headers, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: cannot read report header: %w", apperrors.ErrInvalidRecordFormat, err)
	}
	if len(headers) > 0 {
		// Excel CSV exports often carry a byte order mark
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}

	if err := validateHeaders(headers); err != nil {
		f.Close()
		return nil, err
	}

	return &ReportReader{headers: headers, csv: r, file: f}, nil
}

func openWorkbook(path string) (*ReportReader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrInvalidRecordFormat)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: header row", apperrors.ErrMissingColumn)
	}

	headers := rows[0]
	if err := validateHeaders(headers); err != nil {
		return nil, err
	}

	return &ReportReader{headers: headers, rows: rows[1:]}, nil
}

func validateHeaders(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[strings.TrimSpace(h)] = true
	}

	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// Next returns the next record as a Row, or io.EOF after the last one.
// Workbook rows can be shorter than the header when trailing cells are empty;
// the missing cells are treated as empty strings.
func (r *ReportReader) Next() (Row, error) {
	var record []string
	if r.csv != nil {
		rec, err := r.csv.Read()
		if err != nil {
			return nil, err
		}
		record = rec
	} else {
		if r.pos >= len(r.rows) {
			return nil, io.EOF
		}
		record = r.rows[r.pos]
		r.pos++
	}

	row := make(Row, len(r.headers))
	for i, h := range r.headers {
		key := strings.TrimSpace(h)
		if i < len(record) {
			row[key] = record[i]
		} else {
			row[key] = ""
		}
	}
	return row, nil
}

// Close releases the underlying file, if any.
func (r *ReportReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
