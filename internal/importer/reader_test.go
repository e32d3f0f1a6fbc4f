package importer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const reportHeader = "Department Name,Student No,Student Name,Department Courses,Lecturer Name,Course No,Course Name,Section No"

func TestOpenReportCSV(t *testing.T) {
	path := writeFile(t, "report.csv",
		reportHeader+"\n"+
			"IT,24S1234,Ahmed Al Saadi,Engineering,1023 - Dr. Fatma Al Harthy,COMP2101,Data Structures,3\n")

	r, err := OpenReport(path)
	if err != nil {
		t.Fatalf("OpenReport: %v", err)
	}
	defer r.Close()

	row, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if row[ColStudentNo] != "24S1234" || row[ColSectionNo] != "3" {
		t.Errorf("unexpected row: %v", row)
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after last row, got %v", err)
	}
}

func TestOpenReportCSVWithBOM(t *testing.T) {
	path := writeFile(t, "report.csv", "\uFEFF"+reportHeader+"\nIT,1,A,E,1 - B,C1,N,2\n")

	r, err := OpenReport(path)
	if err != nil {
		t.Fatalf("OpenReport with BOM: %v", err)
	}
	defer r.Close()

	row, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if row[ColDepartmentName] != "IT" {
		t.Errorf("BOM not stripped from first header: %v", row)
	}
}

func TestOpenReportMissingColumns(t *testing.T) {
	path := writeFile(t, "report.csv", "Department Name,Student No\nIT,1\n")

	_, err := OpenReport(path)
	if !errors.Is(err, apperrors.ErrMissingColumn) {
		t.Errorf("error = %v, want ErrMissingColumn", err)
	}
}

func TestOpenReportUnreadableHeader(t *testing.T) {
	// An empty file exists and opens fine but has no header row
	path := writeFile(t, "report.csv", "")

	_, err := OpenReport(path)
	if !errors.Is(err, apperrors.ErrInvalidRecordFormat) {
		t.Errorf("error = %v, want ErrInvalidRecordFormat", err)
	}

	// A directory opens too, yet cannot be read as CSV
	_, err = OpenReport(t.TempDir())
	if !errors.Is(err, apperrors.ErrInvalidRecordFormat) {
		t.Errorf("error = %v, want ErrInvalidRecordFormat", err)
	}
}

func TestOpenReportMissingFile(t *testing.T) {
	_, err := OpenReport(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, apperrors.ErrInputNotFound) {
		t.Errorf("error = %v, want ErrInputNotFound", err)
	}
}

func TestOpenReportWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]interface{}{
		{"Department Name", "Student No", "Student Name", "Department Courses", "Lecturer Name", "Course No", "Course Name", "Section No"},
		{"IT", "24S1234", "Ahmed Al Saadi", "Engineering", "1023 - Dr. Fatma Al Harthy", "COMP2101", "Data Structures", 3},
	}
	for i, rowCells := range cells {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, addr, &rowCells); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	f.Close()

	r, err := OpenReport(path)
	if err != nil {
		t.Fatalf("OpenReport: %v", err)
	}
	defer r.Close()

	row, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if row[ColStudentNo] != "24S1234" || row[ColSectionNo] != "3" {
		t.Errorf("unexpected row: %v", row)
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after last row, got %v", err)
	}
}
