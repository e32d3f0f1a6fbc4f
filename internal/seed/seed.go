// Package seed creates the baseline records a fresh installation needs:
// the standing departments and the examination rooms of both campuses.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/duhai-alshukaili/cems/internal/app/models"
	appRepos "github.com/duhai-alshukaili/cems/internal/app/repositories"
	"github.com/duhai-alshukaili/cems/internal/pkg/apperrors"
)

var defaultDepartments = []string{
	"Information Technology",
	"Engineering",
	"Business Studies",
	"Applied Sciences",
	"Preparatory Studies",
}

var defaultRooms = []appModels.Room{
	{Label: "A101", Campus: "Main", RoomType: appModels.RoomTypeClassroom, Capacity: 30, Block: "A"},
	{Label: "A102", Campus: "Main", RoomType: appModels.RoomTypeClassroom, Capacity: 30, Block: "A"},
	{Label: "B201", Campus: "Main", RoomType: appModels.RoomTypeLab, Capacity: 24, Block: "B"},
	{Label: "C301", Campus: "Main", RoomType: appModels.RoomTypeLectureHall, Capacity: 80, Block: "C"},
	{Label: "AUD1", Campus: "Main", RoomType: appModels.RoomTypeAuditorium, Capacity: 250, Block: "D"},
	{Label: "A101", Campus: "North", RoomType: appModels.RoomTypeClassroom, Capacity: 28, Block: "A"},
	{Label: "L101", Campus: "North", RoomType: appModels.RoomTypeLab, Capacity: 20, Block: "L"},
}

// CreateDefaultData creates the default departments and rooms if they don't
// exist. Existing records are left alone; errors are collected so one bad
// record does not stop the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	roomRepo := appRepos.NewRoomRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Departments/Rooms)...")
	var finalErr error

	for _, name := range defaultDepartments {
		dept := &appModels.Department{Name: name}
		err := departmentRepo.Create(ctx, dept)
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for i := range defaultRooms {
		room := defaultRooms[i]
		err := roomRepo.Create(ctx, &room)
		if err != nil && !errors.Is(err, apperrors.ErrRoomAlreadyExists) {
			lgr.Error().Err(err).
				Str("label", room.Label).
				Str("campus", room.Campus).
				Msg("Error creating default room")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data is in place")
	}
	return finalErr
}
