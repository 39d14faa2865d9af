package notification

import (
	"net/http"

	"wakens/infras/otel"
	"wakens/internal/domains/booking/model"
	"wakens/internal/domains/notification/service"
	"wakens/shared/constant"
	"wakens/shared/validator"
	"wakens/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/send-booking-email", handler.SendBookingEmail)
}

// SendBookingEmail re-sends the confirmation email for a booking snapshot
// supplied by the caller. Used by the demo frontend's resend button.
func (handler *Handler) SendBookingEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendBookingEmail")
	defer scope.End()

	booking := model.Booking{}

	if err := validator.Validate(r.Body, &booking); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SendBookingConfirmation(ctx, booking); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send booking confirmation email")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking confirmation email sent")
}
