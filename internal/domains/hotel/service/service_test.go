package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wakens/config"
	"wakens/infras/otel/mocks"
	hotelMocks "wakens/internal/domains/hotel/mocks"
	"wakens/internal/domains/hotel/model"
	"wakens/internal/domains/hotel/service"
	"wakens/shared/cache"
	cacheMocks "wakens/shared/cache/mocks"
	"wakens/shared/constant"
	"wakens/shared/failure"
)

func newService(t *testing.T) (service.Hotel, *hotelMocks.MockHotel, *hotelMocks.MockReview, *cacheMocks.MockCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockReviews := hotelMocks.NewMockReview(ctrl)
	mockCache := cacheMocks.NewMockCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, mockReviews, cfg, mockCache, mockOtel), mockRepo, mockReviews, mockCache
}

func cacheMiss(mockCache *cacheMocks.MockCache) {
	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func TestHotelService_List(t *testing.T) {
	hotels := []model.Hotel{
		{ID: "h1", Name: "Alder House", Location: "Munnar", EcoScore: 92, AirQuality: 90},
		{ID: "h2", Name: "Basalt Lodge", Location: "Coorg", EcoScore: 70, AirQuality: 60},
	}

	tests := []struct {
		name      string
		location  string
		setupMock func(repo *hotelMocks.MockHotel)
		wantCount int
		wantErr   bool
	}{
		{
			name:     "empty location lists everything",
			location: "",
			setupMock: func(repo *hotelMocks.MockHotel) {
				repo.EXPECT().GetAll(gomock.Any()).Return(hotels, nil)
			},
			wantCount: 2,
		},
		{
			name:     "eco preset selects curated picks",
			location: constant.SearchPresetEco,
			setupMock: func(repo *hotelMocks.MockHotel) {
				repo.EXPECT().EcoPicks(gomock.Any()).Return(hotels[:1], nil)
			},
			wantCount: 1,
		},
		{
			name:     "location falls through to substring search",
			location: "Coorg",
			setupMock: func(repo *hotelMocks.MockHotel) {
				repo.EXPECT().SearchByLocation(gomock.Any(), "Coorg").Return(hotels[1:], nil)
			},
			wantCount: 1,
		},
		{
			name:     "repository error propagates",
			location: "",
			setupMock: func(repo *hotelMocks.MockHotel) {
				repo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockCache := newService(t)

			cacheMiss(mockCache)
			tt.setupMock(mockRepo)

			res, err := svc.List(context.Background(), tt.location)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCount, res.Count)
			assert.Len(t, res.Hotels, tt.wantCount)
		})
	}
}

func TestHotelService_Get(t *testing.T) {
	t.Run("existing hotel", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		cacheMiss(mockCache)
		mockRepo.EXPECT().
			Get(gomock.Any(), "h1").
			Return(model.Hotel{ID: "h1", Name: "Alder House"}, nil)

		res, err := svc.Get(context.Background(), "h1")

		assert.NoError(t, err)
		assert.Equal(t, "h1", res.ID)
		assert.NotNil(t, res.Facilities)
	})

	t.Run("unknown hotel is not found", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		cacheMiss(mockCache)
		mockRepo.EXPECT().
			Get(gomock.Any(), "nope").
			Return(model.Hotel{}, nil)

		_, err := svc.Get(context.Background(), "nope")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHotelService_Reviews(t *testing.T) {
	t.Run("reviews for an existing hotel", func(t *testing.T) {
		svc, mockRepo, mockReviews, mockCache := newService(t)

		cacheMiss(mockCache)
		mockRepo.EXPECT().
			Get(gomock.Any(), "h1").
			Return(model.Hotel{ID: "h1"}, nil)
		mockReviews.EXPECT().
			GetByHotel(gomock.Any(), "h1").
			Return([]model.Review{{ID: "r1", HotelID: "h1", Author: "Meera", Rating: 4.5}}, nil)

		res, err := svc.Reviews(context.Background(), "h1")

		assert.NoError(t, err)
		assert.Equal(t, "h1", res.HotelID)
		assert.Equal(t, 1, res.Count)
	})

	t.Run("unknown hotel is not found", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		cacheMiss(mockCache)
		mockRepo.EXPECT().
			Get(gomock.Any(), "nope").
			Return(model.Hotel{}, nil)

		_, err := svc.Reviews(context.Background(), "nope")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
