package model

import (
	sensorModel "wakens/internal/domains/sensor/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID      = "id"
	FieldHotelID = "hotel_id"
	FieldName    = "name"
)

const (
	MetricTableName  = "room_metrics"
	MetricEntityName = "metric"

	FieldRoomID = "room_id"
)

// Room is immutable reference data seeded at migration time.
type Room struct {
	ID      string  `db:"id"`
	HotelID string  `db:"hotel_id"`
	Name    string  `db:"name"`
	Size    string  `db:"size"`
	Beds    int     `db:"beds"`
	Price   float64 `db:"price"`
	Image   string  `db:"image"`
}

// Metric is the static reference measurement for a room, served when no
// live sensor reading is available.
type Metric struct {
	RoomID          string  `db:"room_id"`
	EcoScore        int     `db:"eco_score"`
	Noise           float64 `db:"noise"`
	PM25            float64 `db:"pm25"`
	PM10            float64 `db:"pm10"`
	SOx             float64 `db:"sox"`
	NOx             float64 `db:"nox"`
	VOC             float64 `db:"voc"`
	CO              float64 `db:"co"`
	CO2             float64 `db:"co2"`
	AQI             int     `db:"aqi"`
	TDS             float64 `db:"tds"`
	Turbidity       float64 `db:"turbidity"`
	PH              float64 `db:"ph"`
	DissolvedOxygen float64 `db:"dissolved_oxygen"`
	Temperature     float64 `db:"temperature"`
	Humidity        float64 `db:"humidity"`
}

func (m *Metric) AirQuality() sensorModel.AirQuality {
	return sensorModel.AirQuality{
		PM25: m.PM25,
		PM10: m.PM10,
		SOx:  m.SOx,
		NOx:  m.NOx,
		VOC:  m.VOC,
		CO:   m.CO,
		CO2:  m.CO2,
		AQI:  m.AQI,
	}
}

func (m *Metric) WaterQuality() sensorModel.WaterQuality {
	return sensorModel.WaterQuality{
		TDS:             m.TDS,
		Turbidity:       m.Turbidity,
		PH:              m.PH,
		DissolvedOxygen: m.DissolvedOxygen,
	}
}
