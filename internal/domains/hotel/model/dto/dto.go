package dto

import (
	"wakens/internal/domains/hotel/model"
)

type HotelResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Price       float64  `json:"price"`
	EcoScore    int      `json:"ecoScore"`
	AirQuality  int      `json:"airQuality"`
	Description string   `json:"description"`
	Facilities  []string `json:"facilities"`
	Image       string   `json:"image"`
}

func (h *HotelResponse) FromModel(model model.Hotel) {
	h.ID = model.ID
	h.Name = model.Name
	h.Location = model.Location
	h.Rating = model.Rating
	h.Price = model.Price
	h.EcoScore = model.EcoScore
	h.AirQuality = model.AirQuality
	h.Description = model.Description
	h.Facilities = model.Facilities
	h.Image = model.Image

	if h.Facilities == nil {
		h.Facilities = []string{}
	}
}

type GetHotelsResponse struct {
	Hotels []HotelResponse `json:"hotels"`
	Count  int             `json:"count"`
}

func (g *GetHotelsResponse) FromModels(models []model.Hotel) {
	g.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		g.Hotels[i].FromModel(mod)
	}

	g.Count = len(models)
}

type ReviewResponse struct {
	ID     string  `json:"id"`
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Body   string  `json:"body"`
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.Author = model.Author
	r.Rating = model.Rating
	r.Body = model.Body
}

type GetReviewsResponse struct {
	HotelID string           `json:"hotelId"`
	Reviews []ReviewResponse `json:"reviews"`
	Count   int              `json:"count"`
}

func (g *GetReviewsResponse) FromModels(hotelID string, models []model.Review) {
	g.HotelID = hotelID
	g.Reviews = make([]ReviewResponse, len(models))

	for i, mod := range models {
		g.Reviews[i].FromModel(mod)
	}

	g.Count = len(models)
}
