package model

import "github.com/lib/pq"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID         = "id"
	FieldName       = "name"
	FieldLocation   = "location"
	FieldEcoScore   = "eco_score"
	FieldAirQuality = "air_quality"
)

const (
	ReviewTableName  = "hotel_reviews"
	ReviewEntityName = "review"

	FieldHotelID = "hotel_id"
)

// Hotel is immutable reference data seeded at migration time.
type Hotel struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Location    string         `db:"location"`
	Rating      float64        `db:"rating"`
	Price       float64        `db:"price"`
	EcoScore    int            `db:"eco_score"`
	AirQuality  int            `db:"air_quality"`
	Description string         `db:"description"`
	Facilities  pq.StringArray `db:"facilities"`
	Image       string         `db:"image"`
}

type Review struct {
	ID      string  `db:"id"`
	HotelID string  `db:"hotel_id"`
	Author  string  `db:"author"`
	Rating  float64 `db:"rating"`
	Body    string  `db:"body"`
}
