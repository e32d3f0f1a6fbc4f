package middleware

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", apperrors.ErrUserNotFound, 404},
		{"department not found", apperrors.ErrDepartmentNotFound, 404},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrSectionNotFound), 404},
		{"username exists", apperrors.ErrUsernameExists, 409},
		{"section exists", apperrors.ErrSectionAlreadyExists, 409},
		{"conflict", apperrors.NewConflictError("department has courses"), 409},
		{"validation", apperrors.ErrValidationFailed, 400},
		{"section number", apperrors.ErrSectionNumberInvalid, 400},
		{"role mismatch", fmt.Errorf("%w: user 12345 is not academic staff", apperrors.ErrRoleMismatch), 400},
		{"unknown", errors.New("connection reset"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
