package router

import (
	"wakens/internal/handlers/booking"
	"wakens/internal/handlers/hotel"
	"wakens/internal/handlers/notification"
	"wakens/internal/handlers/room"
	"wakens/internal/handlers/sensor"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Hotel        hotel.Handler
	Room         room.Handler
	Sensor       sensor.Handler
	Booking      booking.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Sensor.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
