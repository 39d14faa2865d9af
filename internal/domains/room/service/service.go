package service

import (
	"context"
	"fmt"
	"net/http"

	"wakens/config"
	"wakens/infras/otel"
	"wakens/internal/domains/room/model/dto"
	"wakens/internal/domains/room/repository"
	sensorService "wakens/internal/domains/sensor/service"
	"wakens/shared"
	"wakens/shared/cache"
	"wakens/shared/constant"
	"wakens/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheHotelRooms = "room:by-hotel"
)

type Room interface {
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	GetByHotel(ctx context.Context, hotelID string) (dto.GetRoomsResponse, error)
	Metrics(ctx context.Context, roomID string) (dto.RoomMetricsResponse, error)
}

type serviceImpl struct {
	repo    repository.Room
	metrics repository.Metric
	sensor  sensorService.Sensor
	cfg     *config.Config
	cache   cache.Cache
	otel    otel.Otel
}

func New(repo repository.Room, metrics repository.Metric, sensor sensorService.Sensor, cfg *config.Config, cache cache.Cache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:    repo,
		metrics: metrics,
		sensor:  sensor,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByHotel(ctx context.Context, hotelID string) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheHotelRooms, hotelID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel rooms")

		return res, nil
	}

	rooms, err := s.repo.GetByHotel(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel rooms")

		return res, fmt.Errorf("failed to get hotel rooms: %w", err)
	}

	res.FromModels(hotelID, rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel rooms to cache")
		}
	}()

	return res, nil
}

// Metrics serves the live sensor snapshot for a room, falling back to the
// static reference metric when there is no live reading or the reading
// store is unreachable. Responses are never cached; staleness is exactly
// what the status field reports.
func (s *serviceImpl) Metrics(ctx context.Context, roomID string) (res dto.RoomMetricsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Metrics")
	defer scope.End()
	defer scope.TraceIfError(err)

	snapshot, err := s.sensor.Snapshot(ctx, roomID)
	if err == nil {
		res.FromSnapshot(snapshot)

		return res, nil
	}

	if failure.GetCode(err) != http.StatusNotFound {
		log.Warn().Err(err).Str("roomId", roomID).Msg("live sensor read failed, serving reference metrics")
	}

	metric, err := s.metrics.GetByRoom(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reference metric")

		return res, fmt.Errorf("failed to get reference metric: %w", err)
	}

	if metric.RoomID == constant.Empty {
		return res, failure.NotFound("no metrics for room " + roomID) //nolint:wrapcheck
	}

	res.FromReference(metric)

	return res, nil
}
