package worker

import (
	"math/rand"
	"time"

	"wakens/internal/domains/sensor/model"
	"wakens/internal/domains/sensor/model/dto"
)

// SimulatedReading produces a plausible environmental sample for a room.
// Value ranges roughly track a healthy indoor environment so the derived
// status and air-quality figures look sensible on the dashboard.
func SimulatedReading(roomID string, now time.Time) dto.ReadingRequest {
	temperature := jitter(21, 4)
	humidity := jitter(45, 10)

	return dto.ReadingRequest{
		RoomID:    roomID,
		Timestamp: now.UTC().Format(time.RFC3339),
		AirQuality: model.AirQuality{
			PM25: jitter(8, 6),
			PM10: jitter(15, 10),
			SOx:  jitter(2, 1.5),
			NOx:  jitter(10, 6),
			VOC:  jitter(0.3, 0.2),
			CO:   jitter(0.6, 0.4),
			CO2:  jitter(450, 120),
			AQI:  25 + rand.Intn(30), //nolint:gosec
		},
		WaterQuality: &model.WaterQuality{
			TDS:             jitter(120, 40),
			Turbidity:       jitter(0.4, 0.3),
			PH:              jitter(7.2, 0.4),
			DissolvedOxygen: jitter(8, 1.5),
		},
		Temperature: &temperature,
		Humidity:    &humidity,
	}
}

func jitter(base, spread float64) float64 {
	return base + (rand.Float64()-0.5)*spread //nolint:gosec
}
