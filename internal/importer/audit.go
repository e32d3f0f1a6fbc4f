package importer

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Audit log user_type values. These are display literals, not the user_type
// enum stored on user records.
const (
	AuditUserTypeStudent  = "Student"
	AuditUserTypeLecturer = "Lecturer"
)

var auditHeader = []string{"username", "password", "user_type", "department"}

// AuditLog is the append-only record of newly issued credentials, written as
// CSV for out-of-band distribution to users. The file is opened in append
// mode so partial runs never lose earlier entries. A full purge-and-reimport
// therefore duplicates audit history; rotating the file is an operational
// task, not handled here.
type AuditLog struct {
	file *os.File
	w    *csv.Writer
}

// OpenAuditLog opens (or creates) the audit file at path. The header row is
// written only when the file is empty at open time.
func OpenAuditLog(path string) (*AuditLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	log := &AuditLog{file: f, w: csv.NewWriter(f)}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat audit log: %w", err)
	}
	if info.Size() == 0 {
		if err := log.write(auditHeader); err != nil {
			f.Close()
			return nil, err
		}
	}

	return log, nil
}

// Record appends one credential row. The plaintext password appears here and
// nowhere else; the store only persists a hash.
func (l *AuditLog) Record(username, password, userType, department string) error {
	return l.write([]string{username, password, userType, department})
}

func (l *AuditLog) write(record []string) error {
	if err := l.w.Write(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	// Flush per record so an aborted run keeps everything issued so far
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return fmt.Errorf("failed to flush audit log: %w", err)
	}
	return nil
}

// Close flushes and closes the audit file.
func (l *AuditLog) Close() error {
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}
