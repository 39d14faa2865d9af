package repository

import (
	"context"
	"sort"
	"sync"

	"wakens/internal/domains/sensor/model"
)

// memoryImpl is the demo-mode reading store used when no Redis is
// configured. Same bucket layout as the live store: timestamped entries
// plus an overwritten latest pointer, per room.
type memoryImpl struct {
	mu      sync.RWMutex
	buckets map[string]map[string]model.Reading
}

func NewMemory() Sensor {
	return &memoryImpl{
		buckets: map[string]map[string]model.Reading{},
	}
}

func (repo *memoryImpl) WriteReading(_ context.Context, reading model.Reading) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	bucket, ok := repo.buckets[reading.RoomID]
	if !ok {
		bucket = map[string]model.Reading{}
		repo.buckets[reading.RoomID] = bucket
	}

	bucket[reading.Timestamp] = reading
	bucket[model.LatestField] = reading

	return nil
}

func (repo *memoryImpl) GetLatest(_ context.Context, roomID string) (model.Reading, bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	bucket, ok := repo.buckets[roomID]
	if !ok {
		return model.Reading{}, false, nil
	}

	latest, ok := bucket[model.LatestField]

	return latest, ok, nil
}

func (repo *memoryImpl) GetRecent(_ context.Context, roomID string, limit int) ([]model.Reading, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	readings := []model.Reading{}

	for field, reading := range repo.buckets[roomID] {
		if field == model.LatestField {
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

func (repo *memoryImpl) ListRoomsWithData(_ context.Context) ([]string, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	rooms := []string{}
	for roomID := range repo.buckets {
		rooms = append(rooms, roomID)
	}

	sort.Strings(rooms)

	return rooms, nil
}
