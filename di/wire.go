//go:build wireinject
// +build wireinject

package di

import (
	"wakens/config"
	"wakens/infras/otel"
	"wakens/transport/http"
	"wakens/transport/http/middleware"
	"wakens/transport/http/router"

	bookingService "wakens/internal/domains/booking/service"
	hotelService "wakens/internal/domains/hotel/service"
	notificationService "wakens/internal/domains/notification/service"
	roomService "wakens/internal/domains/room/service"
	sensorService "wakens/internal/domains/sensor/service"
	"wakens/internal/domains/sensor/worker"

	bookingHandler "wakens/internal/handlers/booking"
	hotelHandler "wakens/internal/handlers/hotel"
	notificationHandler "wakens/internal/handlers/notification"
	roomHandler "wakens/internal/handlers/room"
	sensorHandler "wakens/internal/handlers/sensor"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	ProvidePostgres,
	ProvideRedis,
	ProvideMongo,
	ProvideKafka,
	ProvideMailer,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	ProvideCache,
)

var hotelDomain = wire.NewSet(
	ProvideHotelRepository,
	ProvideReviewRepository,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	ProvideRoomRepository,
	ProvideMetricRepository,
	roomService.New,
)

var sensorDomain = wire.NewSet(
	ProvideSensorRepository,
	sensorService.New,
	ProvideSimulatedRoomIDs,
	worker.New,
)

var bookingDomain = wire.NewSet(
	ProvideBookingRepository,
	ProvideHandoffRepository,
	bookingService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	roomDomain,
	sensorDomain,
	bookingDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	roomHandler.New,
	sensorHandler.New,
	bookingHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
