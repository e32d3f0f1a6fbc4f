package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/app/repositories"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

// RoomService handles examination room operations
type RoomService struct {
	roomRepo *repositories.RoomRepository
}

// NewRoomService creates a new room service instance
func NewRoomService(roomRepo *repositories.RoomRepository) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
	}
}

func (s *RoomService) validateRoom(room *models.Room) error {
	if room == nil {
		return fmt.Errorf("%w: room is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(room.Label) == "" {
		return fmt.Errorf("%w: label cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(room.Campus) == "" {
		return fmt.Errorf("%w: campus cannot be empty", apperrors.ErrValidationFailed)
	}
	switch room.RoomType {
	case models.RoomTypeClassroom, models.RoomTypeLab,
		models.RoomTypeLectureHall, models.RoomTypeAuditorium:
	default:
		return fmt.Errorf("%w: unknown room type %q", apperrors.ErrValidationFailed, room.RoomType)
	}
	if room.Capacity < 0 {
		return fmt.Errorf("%w: capacity cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateRoom creates a new room
func (s *RoomService) CreateRoom(ctx context.Context, room *models.Room) error {
	if err := s.validateRoom(room); err != nil {
		return err
	}
	return s.roomRepo.Create(ctx, room)
}

// GetRoomByID retrieves a room by ID
func (s *RoomService) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

// ListRooms retrieves rooms matching the filter
func (s *RoomService) ListRooms(ctx context.Context, filter repositories.RoomFilter) ([]*models.Room, error) {
	return s.roomRepo.List(ctx, filter)
}

// UpdateRoom updates an existing room
func (s *RoomService) UpdateRoom(ctx context.Context, room *models.Room) error {
	if err := s.validateRoom(room); err != nil {
		return err
	}
	return s.roomRepo.Update(ctx, room)
}

// DeleteRoom deletes a room by ID
func (s *RoomService) DeleteRoom(ctx context.Context, id int64) error {
	return s.roomRepo.Delete(ctx, id)
}
