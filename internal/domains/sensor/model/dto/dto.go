package dto

import (
	"wakens/internal/domains/sensor/model"
)

// ReadingRequest is the wire shape of one ingested sample, both for the
// broker feed and the simulated feed.
type ReadingRequest struct {
	RoomID       string              `json:"roomId"    validate:"required"`
	Timestamp    string              `json:"timestamp" validate:"required"`
	AirQuality   model.AirQuality    `json:"airQuality"`
	WaterQuality *model.WaterQuality `json:"waterQuality,omitempty"`
	Temperature  *float64            `json:"temperature,omitempty"`
	Humidity     *float64            `json:"humidity,omitempty"`
}

func (r *ReadingRequest) ToModel() model.Reading {
	return model.Reading{
		RoomID:       r.RoomID,
		Timestamp:    r.Timestamp,
		AirQuality:   r.AirQuality,
		WaterQuality: r.WaterQuality,
		Temperature:  r.Temperature,
		Humidity:     r.Humidity,
	}
}

type SnapshotResponse struct {
	RoomID string             `json:"roomId"`
	Latest model.Reading      `json:"latest"`
	Status model.SensorStatus `json:"status"`
}

type HistoryResponse struct {
	RoomID   string          `json:"roomId"`
	Limit    int             `json:"limit"`
	Count    int             `json:"count"`
	Readings []model.Reading `json:"readings"`
}

func (h *HistoryResponse) FromModels(roomID string, limit int, readings []model.Reading) {
	if readings == nil {
		readings = []model.Reading{}
	}

	h.RoomID = roomID
	h.Limit = limit
	h.Count = len(readings)
	h.Readings = readings
}

type RoomsResponse struct {
	Rooms []string `json:"rooms"`
	Count int      `json:"count"`
}
