package dto

import (
	"wakens/internal/domains/room/model"
	sensorModel "wakens/internal/domains/sensor/model"
	sensorDto "wakens/internal/domains/sensor/model/dto"
	"wakens/shared/constant"
)

type RoomResponse struct {
	ID      string  `json:"id"`
	HotelID string  `json:"hotelId"`
	Name    string  `json:"name"`
	Size    string  `json:"size"`
	Beds    int     `json:"beds"`
	Price   float64 `json:"price"`
	Image   string  `json:"image"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.Size = model.Size
	r.Beds = model.Beds
	r.Price = model.Price
	r.Image = model.Image
}

type GetRoomsResponse struct {
	HotelID string         `json:"hotelId"`
	Rooms   []RoomResponse `json:"rooms"`
	Count   int            `json:"count"`
}

func (g *GetRoomsResponse) FromModels(hotelID string, models []model.Room) {
	g.HotelID = hotelID
	g.Rooms = make([]RoomResponse, len(models))

	for i, mod := range models {
		g.Rooms[i].FromModel(mod)
	}

	g.Count = len(models)
}

// MetricsPayload is the measurement block of a metrics response, filled
// either from a live reading or from the static reference metric.
type MetricsPayload struct {
	EcoScore     *int                      `json:"ecoScore,omitempty"`
	Noise        *float64                  `json:"noise,omitempty"`
	AirQuality   sensorModel.AirQuality    `json:"airQuality"`
	WaterQuality *sensorModel.WaterQuality `json:"waterQuality,omitempty"`
	Temperature  *float64                  `json:"temperature,omitempty"`
	Humidity     *float64                  `json:"humidity,omitempty"`
	Timestamp    string                    `json:"timestamp,omitempty"`
}

type RoomMetricsResponse struct {
	RoomID  string                   `json:"roomId"`
	Source  string                   `json:"source"`
	Status  sensorModel.SensorStatus `json:"status"`
	Metrics MetricsPayload           `json:"metrics"`
}

func (r *RoomMetricsResponse) FromSnapshot(snapshot sensorDto.SnapshotResponse) {
	r.RoomID = snapshot.RoomID
	r.Source = constant.MetricSourceCloud
	r.Status = snapshot.Status
	r.Metrics = MetricsPayload{
		AirQuality:   snapshot.Latest.AirQuality,
		WaterQuality: snapshot.Latest.WaterQuality,
		Temperature:  snapshot.Latest.Temperature,
		Humidity:     snapshot.Latest.Humidity,
		Timestamp:    snapshot.Latest.Timestamp,
	}
}

func (r *RoomMetricsResponse) FromReference(metric model.Metric) {
	ecoScore := metric.EcoScore
	noise := metric.Noise
	temperature := metric.Temperature
	humidity := metric.Humidity
	waterQuality := metric.WaterQuality()

	r.RoomID = metric.RoomID
	r.Source = constant.MetricSourceReference
	r.Status = sensorModel.SensorStatus{Status: constant.SensorStatusOffline}
	r.Metrics = MetricsPayload{
		EcoScore:     &ecoScore,
		Noise:        &noise,
		AirQuality:   metric.AirQuality(),
		WaterQuality: &waterQuality,
		Temperature:  &temperature,
		Humidity:     &humidity,
	}
}
