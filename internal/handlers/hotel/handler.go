package hotel

import (
	"net/http"

	"wakens/infras/otel"
	"wakens/internal/domains/hotel/service"
	roomService "wakens/internal/domains/room/service"
	"wakens/shared/constant"
	"wakens/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	rooms   roomService.Room
	otel    otel.Otel
}

func New(service service.Hotel, rooms roomService.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		rooms:   rooms,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{id}", handler.GetHotelByID)
		routerGroup.Get("/{id}/rooms", handler.GetHotelRooms)
		routerGroup.Get("/{id}/reviews", handler.GetHotelReviews)
	})
}

// GetHotels lists the catalog. The location query narrows it; the reserved
// value "eco" serves the curated eco picks.
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	location := r.URL.Query().Get(constant.RequestParamLocation)

	hotels, err := handler.service.List(ctx, location)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotels)
}

func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotel)
}

func (handler *Handler) GetHotelRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelRooms")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rooms, err := handler.rooms.GetByHotel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

func (handler *Handler) GetHotelReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelReviews")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reviews, err := handler.service.Reviews(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reviews)
}
