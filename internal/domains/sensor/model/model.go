package model

import (
	"math"
	"time"

	"wakens/shared/constant"
)

const (
	EntityName = "sensor"

	// KeyPrefix addresses the per-room bucket in the reading store.
	KeyPrefix = "sensors"

	// LatestField is the pseudo-entry inside each bucket holding the most
	// recent reading. It always mirrors one of the timestamped entries.
	LatestField = "latest"
)

type AirQuality struct {
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
	SOx  float64 `json:"sox"`
	NOx  float64 `json:"nox"`
	VOC  float64 `json:"voc"`
	CO   float64 `json:"co"`
	CO2  float64 `json:"co2"`
	AQI  int     `json:"aqi"`
}

type WaterQuality struct {
	TDS             float64 `json:"tds"`
	Turbidity       float64 `json:"turbidity"`
	PH              float64 `json:"ph"`
	DissolvedOxygen float64 `json:"dissolvedOxygen"`
}

// Reading is one timestamped environmental sample for a room.
type Reading struct {
	RoomID       string        `json:"roomId"`
	Timestamp    string        `json:"timestamp"`
	AirQuality   AirQuality    `json:"airQuality"`
	WaterQuality *WaterQuality `json:"waterQuality,omitempty"`
	Temperature  *float64      `json:"temperature,omitempty"`
	Humidity     *float64      `json:"humidity,omitempty"`
}

// Time parses the reading's RFC3339 timestamp.
func (r *Reading) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, r.Timestamp) //nolint:wrapcheck
}

type SensorStatus struct {
	Status     string `json:"status"`
	LastUpdate string `json:"lastUpdate,omitempty"`
	MinutesAgo int    `json:"minutesAgo"`
}

// DeriveStatus maps the age of the latest reading onto online/warning/offline.
// It is total: an absent or unparseable reading yields offline, never an error.
func DeriveStatus(latest *Reading, now time.Time) SensorStatus {
	if latest == nil {
		return SensorStatus{Status: constant.SensorStatusOffline, MinutesAgo: 0}
	}

	at, err := latest.Time()
	if err != nil {
		return SensorStatus{Status: constant.SensorStatusOffline, LastUpdate: latest.Timestamp, MinutesAgo: 0}
	}

	age := now.Sub(at)
	minutesAgo := int(math.Round(age.Minutes()))

	status := constant.SensorStatusOffline

	switch {
	case age < constant.SensorOnlineWindow:
		status = constant.SensorStatusOnline
	case age < constant.SensorWarningWindow:
		status = constant.SensorStatusWarning
	}

	return SensorStatus{
		Status:     status,
		LastUpdate: latest.Timestamp,
		MinutesAgo: minutesAgo,
	}
}
