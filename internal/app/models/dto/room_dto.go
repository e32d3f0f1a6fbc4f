package dto

import "github.com/duhai-alshukaili/cems/internal/app/models"

// RoomResponse represents an examination room
type RoomResponse struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	Campus   string `json:"campus"`
	RoomType string `json:"roomType"`
	Capacity int    `json:"capacity"`
	Block    string `json:"block"`
}

// CreateRoomRequest represents room creation data
type CreateRoomRequest struct {
	Label    string `json:"label" binding:"required"`
	Campus   string `json:"campus" binding:"required"`
	RoomType string `json:"roomType" binding:"required,oneof=classroom lab lecture_hall auditorium"`
	Capacity int    `json:"capacity" binding:"gte=0"`
	Block    string `json:"block"`
}

// UpdateRoomRequest represents room update data
type UpdateRoomRequest struct {
	Label    string `json:"label" binding:"required"`
	Campus   string `json:"campus" binding:"required"`
	RoomType string `json:"roomType" binding:"required,oneof=classroom lab lecture_hall auditorium"`
	Capacity int    `json:"capacity" binding:"gte=0"`
	Block    string `json:"block"`
}

// RoomListResponse represents a list of rooms
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromRoom converts a models.Room to a RoomResponse
func FromRoom(room *models.Room) RoomResponse {
	return RoomResponse{
		ID:       room.ID,
		Label:    room.Label,
		Campus:   room.Campus,
		RoomType: string(room.RoomType),
		Capacity: room.Capacity,
		Block:    room.Block,
	}
}
