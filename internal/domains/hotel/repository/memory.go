package repository

import (
	"context"
	"sort"
	"strings"

	"wakens/internal/domains/hotel/model"
	"wakens/shared/constant"
)

// Demo-mode catalog backed by the canned dataset. The catalog is
// immutable, so no locking is needed after construction.
type hotelMemoryImpl struct {
	hotels []model.Hotel
}

func NewMemory(hotels []model.Hotel) Hotel {
	return &hotelMemoryImpl{hotels: hotels}
}

func (repo *hotelMemoryImpl) Insert(_ context.Context, hotel model.Hotel) error {
	repo.hotels = append(repo.hotels, hotel)

	return nil
}

func (repo *hotelMemoryImpl) GetAll(_ context.Context) ([]model.Hotel, error) {
	hotels := make([]model.Hotel, len(repo.hotels))
	copy(hotels, repo.hotels)

	sortByName(hotels)

	return hotels, nil
}

func (repo *hotelMemoryImpl) Get(_ context.Context, id string) (model.Hotel, error) {
	for _, hotel := range repo.hotels {
		if hotel.ID == id {
			return hotel, nil
		}
	}

	return model.Hotel{}, nil
}

func (repo *hotelMemoryImpl) SearchByLocation(_ context.Context, location string) ([]model.Hotel, error) {
	needle := strings.ToLower(location)
	hotels := []model.Hotel{}

	for _, hotel := range repo.hotels {
		if strings.Contains(strings.ToLower(hotel.Location), needle) {
			hotels = append(hotels, hotel)
		}
	}

	sortByName(hotels)

	return hotels, nil
}

func (repo *hotelMemoryImpl) EcoPicks(_ context.Context) ([]model.Hotel, error) {
	hotels := []model.Hotel{}

	for _, hotel := range repo.hotels {
		if hotel.EcoScore >= constant.EcoPresetMinEcoScore && hotel.AirQuality >= constant.EcoPresetMinAirQuality {
			hotels = append(hotels, hotel)
		}
	}

	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].EcoScore+hotels[i].AirQuality > hotels[j].EcoScore+hotels[j].AirQuality
	})

	return hotels, nil
}

func (repo *hotelMemoryImpl) Count(_ context.Context) (int, error) {
	return len(repo.hotels), nil
}

func sortByName(hotels []model.Hotel) {
	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].Name < hotels[j].Name
	})
}

type reviewMemoryImpl struct {
	reviews []model.Review
}

func NewReviewMemory(reviews []model.Review) Review {
	return &reviewMemoryImpl{reviews: reviews}
}

func (repo *reviewMemoryImpl) Insert(_ context.Context, review model.Review) error {
	repo.reviews = append(repo.reviews, review)

	return nil
}

func (repo *reviewMemoryImpl) GetByHotel(_ context.Context, hotelID string) ([]model.Review, error) {
	reviews := []model.Review{}

	for _, review := range repo.reviews {
		if review.HotelID == hotelID {
			reviews = append(reviews, review)
		}
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].ID < reviews[j].ID
	})

	return reviews, nil
}
