package importer

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func readAuditFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open audit file: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read audit file: %v", err)
	}
	return records
}

func TestAuditLogWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "created_users_log.csv")

	// First open on an empty file writes the header
	log, err := OpenAuditLog(path)
	if err != nil {
		t.Fatalf("OpenAuditLog: %v", err)
	}
	if err := log.Record("24S1234", "s3cret42", AuditUserTypeStudent, "IT"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening appends without another header
	log, err = OpenAuditLog(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := log.Record("1023", "pA55word", AuditUserTypeLecturer, "Engineering"); err != nil {
		t.Fatalf("Record after reopen: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("Close after reopen: %v", err)
	}

	records := readAuditFile(t, path)
	want := [][]string{
		{"username", "password", "user_type", "department"},
		{"24S1234", "s3cret42", "Student", "IT"},
		{"1023", "pA55word", "Lecturer", "Engineering"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("audit file = %v, want %v", records, want)
	}
}

func TestAuditLogRecordsSurviveWithoutClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "created_users_log.csv")

	log, err := OpenAuditLog(path)
	if err != nil {
		t.Fatalf("OpenAuditLog: %v", err)
	}
	defer log.Close()

	if err := log.Record("24S1234", "s3cret42", AuditUserTypeStudent, "IT"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	// Flushed per record: an interrupted run keeps what it already issued
	if records := readAuditFile(t, path); len(records) != 2 {
		t.Errorf("records = %d, want 2 before Close", len(records))
	}
}
