package services

import (
	"context"
	"errors"
	"testing"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

func TestCreateSectionRejectsOutOfRangeNumbers(t *testing.T) {
	// The range check fires before any repository access, so a service
	// without repositories is enough here.
	svc := NewCourseService(nil, nil, nil, nil)

	tests := []struct {
		name   string
		number int
	}{
		{"zero", 0},
		{"just above the maximum", models.MaxSectionNumber + 1},
		{"negative", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := &models.Section{CourseID: 1, Number: tt.number}
			err := svc.CreateSection(context.Background(), section)
			if !errors.Is(err, apperrors.ErrSectionNumberInvalid) {
				t.Errorf("CreateSection(number=%d) = %v, want ErrSectionNumberInvalid", tt.number, err)
			}
		})
	}
}
