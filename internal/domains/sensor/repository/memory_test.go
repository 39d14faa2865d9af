package repository_test

import (
	"context"
	"testing"
	"time"

	"wakens/internal/domains/sensor/model"
	"wakens/internal/domains/sensor/repository"

	"github.com/stretchr/testify/assert"
)

func reading(roomID string, at time.Time) model.Reading {
	return model.Reading{
		RoomID:    roomID,
		Timestamp: at.Format(time.RFC3339),
		AirQuality: model.AirQuality{
			PM25: 8,
			AQI:  30,
		},
	}
}

func TestMemorySensorRepository_LatestFollowsWrites(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	_, found, err := repo.GetLatest(ctx, "room-1")
	assert.NoError(t, err)
	assert.False(t, found)

	for i := range 5 {
		err := repo.WriteReading(ctx, reading("room-1", base.Add(time.Duration(i)*time.Minute)))
		assert.NoError(t, err)

		latest, found, err := repo.GetLatest(ctx, "room-1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, base.Add(time.Duration(i)*time.Minute).Format(time.RFC3339), latest.Timestamp)
	}
}

func TestMemorySensorRepository_GetRecent(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	for i := range 6 {
		err := repo.WriteReading(ctx, reading("room-1", base.Add(time.Duration(i)*time.Minute)))
		assert.NoError(t, err)
	}

	t.Run("sorted descending and truncated", func(t *testing.T) {
		readings, err := repo.GetRecent(ctx, "room-1", 4)
		assert.NoError(t, err)
		assert.Len(t, readings, 4)

		for i, r := range readings {
			want := base.Add(time.Duration(5-i) * time.Minute).Format(time.RFC3339)
			assert.Equal(t, want, r.Timestamp)
		}
	})

	t.Run("latest pseudo-entry is excluded", func(t *testing.T) {
		readings, err := repo.GetRecent(ctx, "room-1", 0)
		assert.NoError(t, err)
		assert.Len(t, readings, 6)
	})

	t.Run("unknown room yields empty slice", func(t *testing.T) {
		readings, err := repo.GetRecent(ctx, "room-x", 10)
		assert.NoError(t, err)
		assert.NotNil(t, readings)
		assert.Empty(t, readings)
	})
}

func TestMemorySensorRepository_ListRoomsWithData(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, repo.WriteReading(ctx, reading("room-b", now)))
	assert.NoError(t, repo.WriteReading(ctx, reading("room-a", now)))

	rooms, err := repo.ListRoomsWithData(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"room-a", "room-b"}, rooms)
}
