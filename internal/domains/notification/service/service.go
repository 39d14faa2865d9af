package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"

	"wakens/infras/mailer"
	"wakens/infras/otel"
	bookingModel "wakens/internal/domains/booking/model"
	"wakens/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed confirmation.html
var confirmationTemplate string

var confirmation = template.Must(template.New("confirmation").Parse(confirmationTemplate))

// Notification sends the booking confirmation mail. At most one send is
// attempted per submission; a failed send is logged by the caller and
// never retried.
type Notification interface {
	SendBookingConfirmation(ctx context.Context, booking bookingModel.Booking) error
}

type serviceImpl struct {
	mailer mailer.Client
	otel   otel.Otel
}

func New(mailer mailer.Client, otel otel.Otel) Notification {
	return &serviceImpl{
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) SendBookingConfirmation(ctx context.Context, booking bookingModel.Booking) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendBookingConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("booking.id", booking.BookingID)

	var body bytes.Buffer
	if err = confirmation.Execute(&body, booking); err != nil {
		log.Error().Err(err).Str("bookingId", booking.BookingID).Msg("failed to render confirmation mail")

		return fmt.Errorf("failed to render confirmation mail: %w", err)
	}

	subject := fmt.Sprintf("Your WAKENS booking %s is confirmed", booking.BookingID)

	if err = s.mailer.Send(booking.GuestEmail, subject, body.String()); err != nil {
		log.Error().Err(err).Str("bookingId", booking.BookingID).Msg("failed to send confirmation mail")

		return fmt.Errorf("failed to send confirmation mail: %w", err)
	}

	log.Info().Str("bookingId", booking.BookingID).Str("to", booking.GuestEmail).Msg("Confirmation mail sent.")

	return nil
}
