package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wakens/infras/otel/mocks"
	sensorMocks "wakens/internal/domains/sensor/mocks"
	"wakens/internal/domains/sensor/model"
	"wakens/internal/domains/sensor/model/dto"
	"wakens/internal/domains/sensor/service"
	"wakens/shared/constant"
	"wakens/shared/failure"
)

func TestSensorService_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sensorMocks.NewMockSensor(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	fresh := model.Reading{
		RoomID:    "room-1",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantStatus string
	}{
		{
			name: "fresh reading yields online snapshot",
			setupMock: func() {
				mockRepo.EXPECT().
					GetLatest(gomock.Any(), "room-1").
					Return(fresh, true, nil)
			},
			wantStatus: constant.SensorStatusOnline,
		},
		{
			name: "absent reading is not found",
			setupMock: func() {
				mockRepo.EXPECT().
					GetLatest(gomock.Any(), "room-1").
					Return(model.Reading{}, false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "storage failure propagates",
			setupMock: func() {
				mockRepo.EXPECT().
					GetLatest(gomock.Any(), "room-1").
					Return(model.Reading{}, false, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Snapshot(context.Background(), "room-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "room-1", res.RoomID)
			assert.Equal(t, fresh.Timestamp, res.Latest.Timestamp)
			assert.Equal(t, tt.wantStatus, res.Status.Status)
		})
	}
}

func TestSensorService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sensorMocks.NewMockSensor(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	t.Run("zero limit falls back to default", func(t *testing.T) {
		mockRepo.EXPECT().
			GetRecent(gomock.Any(), "room-1", constant.DefaultValueHistoryLimit).
			Return([]model.Reading{}, nil)

		res, err := svc.History(context.Background(), "room-1", 0)

		assert.NoError(t, err)
		assert.Equal(t, constant.DefaultValueHistoryLimit, res.Limit)
		assert.Zero(t, res.Count)
		assert.NotNil(t, res.Readings)
	})

	t.Run("count mirrors returned readings", func(t *testing.T) {
		readings := []model.Reading{
			{RoomID: "room-1", Timestamp: "2026-09-01T10:02:00Z"},
			{RoomID: "room-1", Timestamp: "2026-09-01T10:01:00Z"},
		}

		mockRepo.EXPECT().
			GetRecent(gomock.Any(), "room-1", 5).
			Return(readings, nil)

		res, err := svc.History(context.Background(), "room-1", 5)

		assert.NoError(t, err)
		assert.Equal(t, 5, res.Limit)
		assert.Equal(t, 2, res.Count)
		assert.Equal(t, readings, res.Readings)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mockRepo.EXPECT().
			GetRecent(gomock.Any(), "room-1", 5).
			Return(nil, errors.New("connection refused"))

		_, err := svc.History(context.Background(), "room-1", 5)

		assert.Error(t, err)
	})
}

func TestSensorService_Ingest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sensorMocks.NewMockSensor(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		req       dto.ReadingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "valid reading is written",
			req: dto.ReadingRequest{
				RoomID:    "room-1",
				Timestamp: "2026-09-01T10:00:00Z",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					WriteReading(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "missing room is rejected",
			req: dto.ReadingRequest{
				Timestamp: "2026-09-01T10:00:00Z",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "malformed timestamp is rejected",
			req: dto.ReadingRequest{
				RoomID:    "room-1",
				Timestamp: "yesterday",
			},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Ingest(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
