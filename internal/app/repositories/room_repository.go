package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duhai-alshukaili/cems/internal/app/models"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
	"github.com/duhai-alshukaili/cems/internal/pkg/dberrors"
	"github.com/duhai-alshukaili/cems/internal/pkg/logger"
)

// RoomFilter narrows room List queries. Zero values mean "no filter".
type RoomFilter struct {
	Campus      string
	RoomType    models.RoomType
	MinCapacity int
}

// RoomRepository handles database operations for examination rooms
type RoomRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new room
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (label, campus, room_type, capacity, block)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		room.Label, room.Campus, room.RoomType, room.Capacity, room.Block).Scan(&room.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "rooms_label_campus_key") {
			return apperrors.ErrRoomAlreadyExists
		}
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	query := `
		SELECT id, label, campus, room_type, capacity, block
		FROM rooms
		WHERE id = $1
	`

	room := &models.Room{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID, &room.Label, &room.Campus, &room.RoomType, &room.Capacity, &room.Block)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return room, nil
}

// GetByLabelAndCampus retrieves a room by its natural key
func (r *RoomRepository) GetByLabelAndCampus(ctx context.Context, label, campus string) (*models.Room, error) {
	query := `
		SELECT id, label, campus, room_type, capacity, block
		FROM rooms
		WHERE label = $1 AND campus = $2
	`

	room := &models.Room{}
	err := r.db.QueryRow(ctx, query, label, campus).Scan(
		&room.ID, &room.Label, &room.Campus, &room.RoomType, &room.Capacity, &room.Block)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return room, nil
}

// List retrieves rooms matching the filter, ordered by campus then label
func (r *RoomRepository) List(ctx context.Context, filter RoomFilter) ([]*models.Room, error) {
	builder := r.sb.Select("id, label, campus, room_type, capacity, block").
		From("rooms").
		OrderBy("campus", "label")

	if filter.Campus != "" {
		builder = builder.Where(squirrel.Eq{"campus": filter.Campus})
	}
	if filter.RoomType != "" {
		builder = builder.Where(squirrel.Eq{"room_type": filter.RoomType})
	}
	if filter.MinCapacity > 0 {
		builder = builder.Where(squirrel.GtOrEq{"capacity": filter.MinCapacity})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list rooms SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list rooms query")
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(
			&room.ID, &room.Label, &room.Campus, &room.RoomType,
			&room.Capacity, &room.Block); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// Update updates an existing room
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms
		SET label = $1, campus = $2, room_type = $3, capacity = $4, block = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		room.Label, room.Campus, room.RoomType, room.Capacity, room.Block, room.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "rooms_label_campus_key") {
			return apperrors.ErrRoomAlreadyExists
		}
		return fmt.Errorf("error updating room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// Delete deletes a room by ID
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}
