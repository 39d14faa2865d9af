package booking

import (
	"net/http"

	"wakens/infras/otel"
	"wakens/internal/domains/booking/model/dto"
	"wakens/internal/domains/booking/service"
	"wakens/shared/constant"
	"wakens/shared/validator"
	"wakens/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/handoff/{bookingId}", handler.ClaimBooking)
		routerGroup.Get("/{id}", handler.GetBookingByID)
	})
}

// CreateBooking drives a submission end to end and answers with the final
// snapshot. Persistence and the confirmation email continue in the
// background after the response is written.
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + booking.BookingID + " submitted")

	response.WithJSON(w, http.StatusCreated, booking)
}

func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	status := r.URL.Query().Get(constant.RequestParamStatus)
	search := r.URL.Query().Get(constant.RequestParamSearch)

	bookings, err := handler.service.List(ctx, status, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// ClaimBooking serves the confirmation page exactly once. A second call
// for the same booking, or a call after the slot expired, is a 404.
func (handler *Handler) ClaimBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClaimBooking")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	booking, err := handler.service.Claim(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to claim booking handoff")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}
