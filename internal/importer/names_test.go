package importer

import (
	"errors"
	"testing"

	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

func TestSplitTransliteratedName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		first  string
		middle string
		last   string
	}{
		{
			name:  "al particle merges with the next token",
			input: "Al Saadi Said",
			first: "AlSaadi", middle: "", last: "Said",
		},
		{
			name:  "single token keeps an empty last name",
			input: "Ahmed",
			first: "Ahmed", middle: "", last: "",
		},
		{
			name:  "hyphenated al prefix",
			input: "MARYAM AL-BALUSHI",
			first: "Maryam", middle: "", last: "AlBalushi",
		},
		{
			name:  "middle names join with spaces",
			input: "said mohammed salim al habsi",
			first: "Said", middle: "Mohammed Salim", last: "AlHabsi",
		},
		{
			name:  "trailing al is kept as its own token",
			input: "Said Al",
			first: "Said", middle: "", last: "Al",
		},
		{
			name:  "mixed casing is normalized",
			input: "aHMED saID",
			first: "Ahmed", middle: "", last: "Said",
		},
		{
			name:  "empty input",
			input: "",
			first: "", middle: "", last: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, middle, last := SplitTransliteratedName(tt.input)
			if first != tt.first || middle != tt.middle || last != tt.last {
				t.Errorf("SplitTransliteratedName(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.input, first, middle, last, tt.first, tt.middle, tt.last)
			}
		})
	}
}

func TestParseTaggedEntry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		username string
		prefix   string // "" means nil expected
		first    string
		middle   string
		last     string
	}{
		{
			name:     "prefixed lecturer entry",
			input:    "1023 - Dr. Fatma Al Harthy",
			username: "1023", prefix: "Dr",
			first: "Fatma", middle: "Al", last: "Harthy",
		},
		{
			name:     "entry without prefix",
			input:    "1044 - John Smith",
			username: "1044",
			first:    "John", last: "Smith",
		},
		{
			name:     "prefix without period",
			input:    "1050 - Prof Salim Al Riyami",
			username: "1050", prefix: "Prof",
			first: "Salim", middle: "Al", last: "Riyami",
		},
		{
			name:     "lowercase prefix is canonicalized",
			input:    "1061 - mrs. Aisha Said",
			username: "1061", prefix: "Mrs",
			first: "Aisha", last: "Said",
		},
		{
			name:     "internal casing is preserved",
			input:    "1072 - Khalid AlRawahi",
			username: "1072",
			first:    "Khalid", last: "AlRawahi",
		},
		{
			name:     "name that merely starts with a prefix spelling",
			input:    "1083 - Drake Johnson",
			username: "1083",
			first:    "Drake", last: "Johnson",
		},
		{
			name:     "single name token",
			input:    "1090 - Huda",
			username: "1090",
			first:    "Huda",
		},
		{
			name:     "only a prefix after the id",
			input:    "1095 - Dr.",
			username: "1095", prefix: "Dr",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaggedEntry(tt.input)
			if err != nil {
				t.Fatalf("ParseTaggedEntry(%q) returned error: %v", tt.input, err)
			}
			if got.Username != tt.username {
				t.Errorf("Username = %q, want %q", got.Username, tt.username)
			}
			if tt.prefix == "" {
				if got.Prefix != nil {
					t.Errorf("Prefix = %q, want nil", *got.Prefix)
				}
			} else if got.Prefix == nil || *got.Prefix != tt.prefix {
				t.Errorf("Prefix = %v, want %q", got.Prefix, tt.prefix)
			}
			if got.FirstName != tt.first || got.MiddleName != tt.middle || got.LastName != tt.last {
				t.Errorf("name = (%q, %q, %q), want (%q, %q, %q)",
					got.FirstName, got.MiddleName, got.LastName, tt.first, tt.middle, tt.last)
			}
		})
	}
}

func TestParseTaggedEntryMissingSeparator(t *testing.T) {
	_, err := ParseTaggedEntry("1023 Dr. Fatma Al Harthy")
	if err == nil {
		t.Fatal("expected an error for a missing separator")
	}
	if !errors.Is(err, apperrors.ErrInvalidRecordFormat) {
		t.Errorf("error = %v, want ErrInvalidRecordFormat", err)
	}
}
