package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wakens/config"
	"wakens/infras/otel/mocks"
	roomMocks "wakens/internal/domains/room/mocks"
	"wakens/internal/domains/room/model"
	"wakens/internal/domains/room/service"
	sensorMocks "wakens/internal/domains/sensor/mocks"
	sensorModel "wakens/internal/domains/sensor/model"
	sensorDto "wakens/internal/domains/sensor/model/dto"
	"wakens/shared/cache"
	cacheMocks "wakens/shared/cache/mocks"
	"wakens/shared/constant"
	"wakens/shared/failure"
)

type fixture struct {
	svc     service.Room
	repo    *roomMocks.MockRoom
	metrics *roomMocks.MockMetric
	sensor  *sensorMocks.MockSensorService
	cache   *cacheMocks.MockCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockMetrics := roomMocks.NewMockMetric(ctrl)
	mockSensor := sensorMocks.NewMockSensorService(ctrl)
	mockCache := cacheMocks.NewMockCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return fixture{
		svc:     service.New(mockRepo, mockMetrics, mockSensor, cfg, mockCache, mockOtel),
		repo:    mockRepo,
		metrics: mockMetrics,
		sensor:  mockSensor,
		cache:   mockCache,
	}
}

func (f fixture) cacheMiss() {
	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func TestRoomService_Get(t *testing.T) {
	t.Run("existing room", func(t *testing.T) {
		f := newFixture(t)

		f.cacheMiss()
		f.repo.EXPECT().
			Get(gomock.Any(), "r1").
			Return(model.Room{ID: "r1", HotelID: "h1", Name: "Canopy Suite", Price: 1800}, nil)

		res, err := f.svc.Get(context.Background(), "r1")

		assert.NoError(t, err)
		assert.Equal(t, "r1", res.ID)
		assert.Equal(t, 1800.0, res.Price)
	})

	t.Run("unknown room is not found", func(t *testing.T) {
		f := newFixture(t)

		f.cacheMiss()
		f.repo.EXPECT().
			Get(gomock.Any(), "nope").
			Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), "nope")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_Metrics(t *testing.T) {
	reference := model.Metric{
		RoomID:      "r1",
		EcoScore:    91,
		Noise:       32,
		PM25:        7,
		AQI:         28,
		Temperature: 22,
		Humidity:    44,
	}

	t.Run("live snapshot wins", func(t *testing.T) {
		f := newFixture(t)

		snapshot := sensorDto.SnapshotResponse{
			RoomID: "r1",
			Latest: sensorModel.Reading{
				RoomID:    "r1",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				AirQuality: sensorModel.AirQuality{
					PM25: 9,
					AQI:  31,
				},
			},
			Status: sensorModel.SensorStatus{Status: constant.SensorStatusOnline, MinutesAgo: 1},
		}

		f.sensor.EXPECT().
			Snapshot(gomock.Any(), "r1").
			Return(snapshot, nil)

		res, err := f.svc.Metrics(context.Background(), "r1")

		assert.NoError(t, err)
		assert.Equal(t, constant.MetricSourceCloud, res.Source)
		assert.Equal(t, constant.SensorStatusOnline, res.Status.Status)
		assert.Equal(t, 9.0, res.Metrics.AirQuality.PM25)
	})

	t.Run("no live reading falls back to reference", func(t *testing.T) {
		f := newFixture(t)

		f.sensor.EXPECT().
			Snapshot(gomock.Any(), "r1").
			Return(sensorDto.SnapshotResponse{}, failure.NotFound("no sensor data"))
		f.metrics.EXPECT().
			GetByRoom(gomock.Any(), "r1").
			Return(reference, nil)

		res, err := f.svc.Metrics(context.Background(), "r1")

		assert.NoError(t, err)
		assert.Equal(t, constant.MetricSourceReference, res.Source)
		assert.Equal(t, constant.SensorStatusOffline, res.Status.Status)
		assert.NotNil(t, res.Metrics.EcoScore)
		assert.Equal(t, 91, *res.Metrics.EcoScore)
	})

	t.Run("storage failure falls back to reference", func(t *testing.T) {
		f := newFixture(t)

		f.sensor.EXPECT().
			Snapshot(gomock.Any(), "r1").
			Return(sensorDto.SnapshotResponse{}, errors.New("connection refused"))
		f.metrics.EXPECT().
			GetByRoom(gomock.Any(), "r1").
			Return(reference, nil)

		res, err := f.svc.Metrics(context.Background(), "r1")

		assert.NoError(t, err)
		assert.Equal(t, constant.MetricSourceReference, res.Source)
	})

	t.Run("no reference either is not found", func(t *testing.T) {
		f := newFixture(t)

		f.sensor.EXPECT().
			Snapshot(gomock.Any(), "r1").
			Return(sensorDto.SnapshotResponse{}, failure.NotFound("no sensor data"))
		f.metrics.EXPECT().
			GetByRoom(gomock.Any(), "r1").
			Return(model.Metric{}, nil)

		_, err := f.svc.Metrics(context.Background(), "r1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
