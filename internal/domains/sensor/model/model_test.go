package model_test

import (
	"testing"
	"time"

	"wakens/internal/domains/sensor/model"
	"wakens/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	reading := func(age time.Duration) *model.Reading {
		return &model.Reading{
			RoomID:    "room-1",
			Timestamp: now.Add(-age).Format(time.RFC3339),
		}
	}

	tests := []struct {
		name           string
		latest         *model.Reading
		wantStatus     string
		wantMinutesAgo int
	}{
		{
			name:           "absent reading is offline",
			latest:         nil,
			wantStatus:     constant.SensorStatusOffline,
			wantMinutesAgo: 0,
		},
		{
			name:           "fresh reading is online",
			latest:         reading(30 * time.Second),
			wantStatus:     constant.SensorStatusOnline,
			wantMinutesAgo: 1,
		},
		{
			name:           "just under five minutes is online",
			latest:         reading(4*time.Minute + 59*time.Second),
			wantStatus:     constant.SensorStatusOnline,
			wantMinutesAgo: 5,
		},
		{
			name:           "exactly five minutes is warning",
			latest:         reading(5 * time.Minute),
			wantStatus:     constant.SensorStatusWarning,
			wantMinutesAgo: 5,
		},
		{
			name:           "just under fifteen minutes is warning",
			latest:         reading(14*time.Minute + 59*time.Second),
			wantStatus:     constant.SensorStatusWarning,
			wantMinutesAgo: 15,
		},
		{
			name:           "twenty minutes is offline",
			latest:         reading(20 * time.Minute),
			wantStatus:     constant.SensorStatusOffline,
			wantMinutesAgo: 20,
		},
		{
			name:           "unparseable timestamp is offline",
			latest:         &model.Reading{RoomID: "room-1", Timestamp: "not-a-time"},
			wantStatus:     constant.SensorStatusOffline,
			wantMinutesAgo: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := model.DeriveStatus(tt.latest, now)

			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, tt.wantMinutesAgo, status.MinutesAgo)

			if tt.latest != nil {
				assert.Equal(t, tt.latest.Timestamp, status.LastUpdate)
			} else {
				assert.Empty(t, status.LastUpdate)
			}
		})
	}
}
