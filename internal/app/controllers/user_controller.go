package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/app/models/dto"
	"github.com/duhai-alshukaili/cems/internal/app/repositories"
	"github.com/duhai-alshukaili/cems/internal/app/services"
	"github.com/duhai-alshukaili/cems/internal/middleware"
	"github.com/duhai-alshukaili/cems/internal/pkg/helpers"
)

// UserController handles user-related endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser handles user creation. When no password is supplied one is
// issued and returned in the response, once.
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	user := userFromCreateRequest(&req)

	issued, err := c.userService.CreateUser(ctx, user, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := gin.H{"user": dto.FromUser(user)}
	if req.Password == "" {
		// The issued plaintext leaves the server exactly once
		resp["issuedPassword"] = issued
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

func userFromCreateRequest(req *dto.CreateUserRequest) *models.User {
	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Prefix:       req.Prefix,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		UserType:     models.UserType(req.UserType),
		DepartmentID: req.DepartmentID,

		IsLecturer:            req.IsLecturer,
		IsInvigilator:         req.IsInvigilator,
		IsExamCommitteeMember: req.IsExamCommitteeMember,

		CanCreateUsers:           req.CanCreateUsers,
		CanApproveAbsenceExcuses: req.CanApproveAbsenceExcuses,
		CanViewAllStatistics:     req.CanViewAllStatistics,
	}
	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		user.Gender = &g
	}
	return user
}

// GetUserByUsername retrieves a user by the institutional ID
// @Summary Get user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /users/{username} [get]
func (c *UserController) GetUserByUsername(ctx *gin.Context) {
	user, err := c.userService.GetUserByUsername(ctx, ctx.Param("username"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromUser(user)))
}

// GetDisplayName resolves the readable name for a username
// @Summary Get a user's display name
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.APIResponse{data=dto.DisplayNameResponse}
// @Router /users/{username}/display-name [get]
func (c *UserController) GetDisplayName(ctx *gin.Context) {
	username := ctx.Param("username")

	name, err := c.userService.DisplayName(ctx, username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DisplayNameResponse{
		Username:    username,
		DisplayName: name,
	}))
}

// ListUsers retrieves a filtered, paginated list of users
// @Summary List users
// @Tags users
// @Produce json
// @Param userType query string false "Filter by user type"
// @Param departmentId query int false "Filter by department"
// @Param isLecturer query bool false "Filter by lecturer flag"
// @Param isInvigilator query bool false "Filter by invigilator flag"
// @Param isExamCommitteeMember query bool false "Filter by exam committee flag"
// @Param search query string false "Match username, first or last name"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse}
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	filter := repositories.UserFilter{
		UserType: models.UserType(ctx.Query("userType")),
		Search:   ctx.Query("search"),
	}

	if v := ctx.Query("departmentId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department ID")
			ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
			return
		}
		filter.DepartmentID = &id
	}

	if v := ctx.Query("isLecturer"); v != "" {
		isLecturer, err := strconv.ParseBool(v)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid isLecturer value")
			ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
			return
		}
		filter.IsLecturer = &isLecturer
	}

	if v := ctx.Query("isInvigilator"); v != "" {
		isInvigilator, err := strconv.ParseBool(v)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid isInvigilator value")
			ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
			return
		}
		filter.IsInvigilator = &isInvigilator
	}

	if v := ctx.Query("isExamCommitteeMember"); v != "" {
		isMember, err := strconv.ParseBool(v)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid isExamCommitteeMember value")
			ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
			return
		}
		filter.IsExamCommitteeMember = &isMember
	}

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, total, err := c.userService.ListUsers(ctx, filter, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.UserListResponse{
		Users:          make([]dto.UserResponse, 0, len(users)),
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}
	for _, user := range users {
		resp.Users = append(resp.Users, dto.FromUser(user))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateUser updates a user's profile
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body dto.UpdateUserRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /users/{username} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	user, err := c.userService.GetUserByUsername(ctx, ctx.Param("username"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	user.Prefix = req.Prefix
	user.FirstName = req.FirstName
	user.MiddleName = req.MiddleName
	user.LastName = req.LastName
	user.DepartmentID = req.DepartmentID
	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		user.Gender = &g
	}

	if err := c.userService.UpdateUser(ctx, user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromUser(user)))
}

// ResetPassword issues a fresh password for the user
// @Summary Reset a user's password
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /users/{username}/reset-password [post]
func (c *UserController) ResetPassword(ctx *gin.Context) {
	password, err := c.userService.ResetPassword(ctx, ctx.Param("username"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"issuedPassword": password}))
}

// DeleteUser deletes a user
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.APIResponse
// @Router /users/{username} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	user, err := c.userService.GetUserByUsername(ctx, ctx.Param("username"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.userService.DeleteUser(ctx, user.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "User deleted"})
}
