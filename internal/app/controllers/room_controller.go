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
)

// RoomController handles examination room endpoints
type RoomController struct {
	roomService *services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// CreateRoom handles room creation
// @Summary Create a new room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room information"
// @Success 201 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	room := &models.Room{
		Label:    req.Label,
		Campus:   req.Campus,
		RoomType: models.RoomType(req.RoomType),
		Capacity: req.Capacity,
		Block:    req.Block,
	}

	if err := c.roomService.CreateRoom(ctx, room); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromRoom(room)))
}

// GetRoomByID retrieves a room by ID
// @Summary Get room by ID
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoomByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room ID")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	room, err := c.roomService.GetRoomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromRoom(room)))
}

// ListRooms retrieves rooms matching the filters
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param campus query string false "Filter by campus"
// @Param roomType query string false "Filter by room type"
// @Param minCapacity query int false "Minimum capacity"
// @Success 200 {object} dto.APIResponse{data=dto.RoomListResponse}
// @Router /rooms [get]
func (c *RoomController) ListRooms(ctx *gin.Context) {
	filter := repositories.RoomFilter{
		Campus:   ctx.Query("campus"),
		RoomType: models.RoomType(ctx.Query("roomType")),
	}

	if v := ctx.Query("minCapacity"); v != "" {
		minCapacity, err := strconv.Atoi(v)
		if err != nil || minCapacity < 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid minimum capacity")
			ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
			return
		}
		filter.MinCapacity = minCapacity
	}

	rooms, err := c.roomService.ListRooms(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.RoomListResponse{Rooms: make([]dto.RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, dto.FromRoom(room))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateRoom updates an existing room
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Room information"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room ID")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	room := &models.Room{
		ID:       id,
		Label:    req.Label,
		Campus:   req.Campus,
		RoomType: models.RoomType(req.RoomType),
		Capacity: req.Capacity,
		Block:    req.Block,
	}

	if err := c.roomService.UpdateRoom(ctx, room); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromRoom(room)))
}

// DeleteRoom deletes a room
// @Summary Delete a room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.APIResponse
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room ID")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	if err := c.roomService.DeleteRoom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Room deleted"})
}
