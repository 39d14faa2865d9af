package repository

import (
	"context"
	"sort"

	"wakens/internal/domains/room/model"
)

type roomMemoryImpl struct {
	rooms []model.Room
}

func NewMemory(rooms []model.Room) Room {
	return &roomMemoryImpl{rooms: rooms}
}

func (repo *roomMemoryImpl) Insert(_ context.Context, room model.Room) error {
	repo.rooms = append(repo.rooms, room)

	return nil
}

func (repo *roomMemoryImpl) Get(_ context.Context, id string) (model.Room, error) {
	for _, room := range repo.rooms {
		if room.ID == id {
			return room, nil
		}
	}

	return model.Room{}, nil
}

func (repo *roomMemoryImpl) GetAll(_ context.Context) ([]model.Room, error) {
	rooms := make([]model.Room, len(repo.rooms))
	copy(rooms, repo.rooms)

	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Name < rooms[j].Name
	})

	return rooms, nil
}

func (repo *roomMemoryImpl) GetByHotel(_ context.Context, hotelID string) ([]model.Room, error) {
	rooms := []model.Room{}

	for _, room := range repo.rooms {
		if room.HotelID == hotelID {
			rooms = append(rooms, room)
		}
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Name < rooms[j].Name
	})

	return rooms, nil
}

type metricMemoryImpl struct {
	metrics []model.Metric
}

func NewMetricMemory(metrics []model.Metric) Metric {
	return &metricMemoryImpl{metrics: metrics}
}

func (repo *metricMemoryImpl) Insert(_ context.Context, metric model.Metric) error {
	repo.metrics = append(repo.metrics, metric)

	return nil
}

func (repo *metricMemoryImpl) GetByRoom(_ context.Context, roomID string) (model.Metric, error) {
	for _, metric := range repo.metrics {
		if metric.RoomID == roomID {
			return metric, nil
		}
	}

	return model.Metric{}, nil
}
