package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Sensor=MockSensorService

import (
	"context"
	"fmt"
	"time"

	"wakens/infras/otel"
	"wakens/internal/domains/sensor/model"
	"wakens/internal/domains/sensor/model/dto"
	"wakens/internal/domains/sensor/repository"
	"wakens/shared/constant"
	"wakens/shared/failure"
	"wakens/shared/timezone"
	"wakens/shared/validator"

	"github.com/rs/zerolog/log"
)

type Sensor interface {
	Ingest(ctx context.Context, req dto.ReadingRequest) error
	Snapshot(ctx context.Context, roomID string) (dto.SnapshotResponse, error)
	History(ctx context.Context, roomID string, limit int) (dto.HistoryResponse, error)
	Rooms(ctx context.Context) (dto.RoomsResponse, error)
}

type serviceImpl struct {
	repo repository.Sensor
	otel otel.Otel
}

func New(repo repository.Sensor, otel otel.Otel) Sensor {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Ingest(ctx context.Context, req dto.ReadingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ingest")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if _, err = time.Parse(time.RFC3339, req.Timestamp); err != nil {
		return failure.BadRequestFromString("timestamp must be an RFC3339 datetime") //nolint:wrapcheck
	}

	if err = s.repo.WriteReading(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Str("roomId", req.RoomID).Msg("failed to write reading")

		return fmt.Errorf("failed to write reading: %w", err)
	}

	return nil
}

func (s *serviceImpl) Snapshot(ctx context.Context, roomID string) (res dto.SnapshotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	latest, found, err := s.repo.GetLatest(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Str("roomId", roomID).Msg("failed to get latest reading")

		return res, fmt.Errorf("failed to get latest reading: %w", err)
	}

	if !found {
		return res, failure.NotFound("no sensor data for room " + roomID) //nolint:wrapcheck
	}

	res.RoomID = roomID
	res.Latest = latest
	res.Status = model.DeriveStatus(&latest, timezone.Now())

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, roomID string, limit int) (res dto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(err)

	if limit <= 0 {
		limit = constant.DefaultValueHistoryLimit
	}

	readings, err := s.repo.GetRecent(ctx, roomID, limit)
	if err != nil {
		log.Error().Err(err).Str("roomId", roomID).Msg("failed to get reading history")

		return res, fmt.Errorf("failed to get reading history: %w", err)
	}

	res.FromModels(roomID, limit, readings)

	return res, nil
}

func (s *serviceImpl) Rooms(ctx context.Context) (res dto.RoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.repo.ListRoomsWithData(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms with sensor data")

		return res, fmt.Errorf("failed to list rooms with sensor data: %w", err)
	}

	res.Rooms = rooms
	res.Count = len(rooms)

	return res, nil
}
