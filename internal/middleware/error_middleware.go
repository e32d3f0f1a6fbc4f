package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/duhai-alshukaili/cems/internal/app/models/dto"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Controllers call
// it for any error coming out of the service layer.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrSectionNotFound,
		apperrors.ErrRoomNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrUsernameExists,
		apperrors.ErrDepartmentAlreadyExists,
		apperrors.ErrCourseAlreadyExists,
		apperrors.ErrSectionAlreadyExists,
		apperrors.ErrRoomAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrSectionNumberInvalid,
		apperrors.ErrRoleMismatch,
		apperrors.ErrInvalidRecordFormat):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
