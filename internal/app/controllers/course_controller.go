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

// CourseController handles course and section endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	course := &models.Course{
		Code:          req.Code,
		Name:          req.Name,
		DepartmentID:  req.DepartmentID,
		CoordinatorID: req.CoordinatorID,
	}

	if err := c.courseService.CreateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromCourse(course)))
}

// GetCourse retrieves a course by ID or code
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID or code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	key := ctx.Param("id")

	var course *models.Course
	var err error
	if id, parseErr := strconv.ParseInt(key, 10, 64); parseErr == nil {
		course, err = c.courseService.GetCourseByID(ctx, id)
	} else {
		course, err = c.courseService.GetCourseByCode(ctx, key)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course)))
}

// ListCourses retrieves a filtered, paginated list of courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Param departmentId query int false "Filter by department"
// @Param search query string false "Match code or name"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	filter := repositories.CourseFilter{
		Search: ctx.Query("search"),
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

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	courses, total, err := c.courseService.ListCourses(ctx, filter, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CourseListResponse{
		Courses:        make([]dto.CourseResponse, 0, len(courses)),
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, dto.FromCourse(course))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course information"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	course := &models.Course{
		ID:            id,
		Code:          req.Code,
		Name:          req.Name,
		DepartmentID:  req.DepartmentID,
		CoordinatorID: req.CoordinatorID,
	}

	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course)))
}

// DeleteCourse deletes a course and its sections
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.APIResponse
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course deleted"})
}

// GetCourseSections retrieves all sections of a course
// @Summary List course sections
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SectionListResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /courses/{id}/sections [get]
func (c *CourseController) GetCourseSections(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	sections, err := c.courseService.GetSectionsByCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.SectionListResponse{Sections: make([]dto.SectionResponse, 0, len(sections))}
	for _, section := range sections {
		resp.Sections = append(resp.Sections, dto.FromSection(section))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// CreateSection creates a new section
// @Summary Create a section
// @Tags sections
// @Accept json
// @Produce json
// @Param request body dto.CreateSectionRequest true "Section information"
// @Success 201 {object} dto.APIResponse{data=dto.SectionResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /sections [post]
func (c *CourseController) CreateSection(ctx *gin.Context) {
	var req dto.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	section := &models.Section{
		CourseID:   req.CourseID,
		Number:     req.Number,
		LecturerID: req.LecturerID,
	}

	if err := c.courseService.CreateSection(ctx, section); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromSection(section)))
}

// AssignLecturer reassigns the lecturer of a section
// @Summary Assign a section lecturer
// @Tags sections
// @Accept json
// @Produce json
// @Param id path int true "Section ID"
// @Param request body dto.AssignLecturerRequest true "Lecturer assignment"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.APIResponse
// @Router /sections/{id}/lecturer [put]
func (c *CourseController) AssignLecturer(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section ID")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	var req dto.AssignLecturerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	if err := c.courseService.AssignLecturer(ctx, id, req.LecturerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Lecturer assigned"})
}

// DeleteSection deletes a section
// @Summary Delete a section
// @Tags sections
// @Produce json
// @Param id path int true "Section ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.APIResponse
// @Router /sections/{id} [delete]
func (c *CourseController) DeleteSection(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section ID")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	if err := c.courseService.DeleteSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Section deleted"})
}
