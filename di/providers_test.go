package di

import (
	"errors"
	"testing"

	roomMocks "wakens/internal/domains/room/mocks"
	"wakens/internal/domains/room/model"
	roomRepository "wakens/internal/domains/room/repository"
	"wakens/internal/seed"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProvideSimulatedRoomIDs(t *testing.T) {
	rooms := roomRepository.NewMemory([]model.Room{
		{ID: "r-pine-201", HotelID: "h-pine", Name: "Loft"},
		{ID: "r-pine-202", HotelID: "h-pine", Name: "Deck Room"},
	})

	ids := ProvideSimulatedRoomIDs(rooms)

	assert.ElementsMatch(t, []string{"r-pine-201", "r-pine-202"}, ids)
}

func TestProvideSimulatedRoomIDs_FallsBackToDemoSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	rooms := roomMocks.NewMockRoom(ctrl)
	rooms.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("catalog unavailable"))

	assert.Equal(t, seed.RoomIDs(), ProvideSimulatedRoomIDs(rooms))
}
