package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"wakens/infras/otel"
	"wakens/internal/domains/sensor/model"
	"wakens/shared"
	"wakens/shared/constant"
	"wakens/shared/logger"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Sensor stores environmental readings per room. Each room has a bucket of
// timestamped entries plus a "latest" entry that the writer overwrites on
// every write. Writers are expected to apply readings in non-decreasing
// timestamp order; no ordering check is performed here.
type Sensor interface {
	WriteReading(ctx context.Context, reading model.Reading) error
	GetLatest(ctx context.Context, roomID string) (model.Reading, bool, error)
	GetRecent(ctx context.Context, roomID string, limit int) ([]model.Reading, error)
	ListRoomsWithData(ctx context.Context) ([]string, error)
}

type repositoryImpl struct {
	client *redis.Client
	otel   otel.Otel
}

func New(client *redis.Client, otel otel.Otel) Sensor {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func bucketKey(roomID string) string {
	return shared.BuildCacheKey(model.KeyPrefix, roomID)
}

func (repo *repositoryImpl) WriteReading(ctx context.Context, reading model.Reading) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.WriteReading", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	payload, err := json.Marshal(reading)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to marshal reading (%s): %w", model.EntityName, err)
	}

	// One HSET covers both the timestamped entry and the latest pointer, so
	// the bucket never holds one without the other.
	err = repo.client.HSet(ctx, bucketKey(reading.RoomID),
		reading.Timestamp, payload,
		model.LatestField, payload,
	).Err()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to write reading (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetLatest(ctx context.Context, roomID string) (reading model.Reading, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetLatest", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	payload, err := repo.client.HGet(ctx, bucketKey(roomID), model.LatestField).Result()
	if errors.Is(err, redis.Nil) {
		return reading, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return reading, false, fmt.Errorf("failed to get latest reading (%s): %w", model.EntityName, err)
	}

	if err = json.Unmarshal([]byte(payload), &reading); err != nil {
		logger.ErrorWithStack(err)

		return reading, false, fmt.Errorf("failed to unmarshal latest reading (%s): %w", model.EntityName, err)
	}

	return reading, true, nil
}

func (repo *repositoryImpl) GetRecent(ctx context.Context, roomID string, limit int) (readings []model.Reading, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetRecent", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	entries, err := repo.client.HGetAll(ctx, bucketKey(roomID)).Result()
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get readings (%s): %w", model.EntityName, err)
	}

	readings = []model.Reading{}

	for field, payload := range entries {
		if field == model.LatestField {
			continue
		}

		var reading model.Reading
		if err := json.Unmarshal([]byte(payload), &reading); err != nil {
			log.Error().Err(err).Str("roomId", roomID).Str("field", field).Msg("skipping unreadable reading entry")

			continue
		}

		readings = append(readings, reading)
	}

	sortByTimestampDesc(readings)

	if limit > 0 && len(readings) > limit {
		readings = readings[:limit]
	}

	return readings, nil
}

func (repo *repositoryImpl) ListRoomsWithData(ctx context.Context) (rooms []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ListRoomsWithData", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms = []string{}
	prefix := model.KeyPrefix + ":"

	iter := repo.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		rooms = append(rooms, strings.TrimPrefix(iter.Val(), prefix))
	}

	if err = iter.Err(); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list rooms with data (%s): %w", model.EntityName, err)
	}

	sort.Strings(rooms)

	return rooms, nil
}

func sortByTimestampDesc(readings []model.Reading) {
	sort.SliceStable(readings, func(i, j int) bool {
		left, errLeft := readings[i].Time()
		right, errRight := readings[j].Time()

		if errLeft != nil || errRight != nil {
			return readings[i].Timestamp > readings[j].Timestamp
		}

		return left.After(right)
	})
}
