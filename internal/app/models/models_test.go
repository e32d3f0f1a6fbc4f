package models

import "testing"

func TestIsValidSectionNumber(t *testing.T) {
	tests := []struct {
		number int
		want   bool
	}{
		{0, false},
		{MinSectionNumber, true},
		{MaxSectionNumber, true},
		{MaxSectionNumber + 1, false},
		{-5, false},
	}
	for _, tt := range tests {
		if got := IsValidSectionNumber(tt.number); got != tt.want {
			t.Errorf("IsValidSectionNumber(%d) = %v, want %v", tt.number, got, tt.want)
		}
	}
}
